package httptransport

import (
	"expvar"
	"fmt"
	"net/http"
	"sort"
	"strings"

	appbj "blackjack-table/internal/app/blackjack"
	"blackjack-table/internal/config"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func NewRouter(svc *appbj.Service, st HealthChecker, cfg config.ServerConfig) *chi.Mux {
	games := NewGameHandlers(svc)
	admin := NewAdminHandlers(st)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(CORSMiddleware(cfg.CORSAllowedOrigins))

	r.With(APILogMiddleware()).Get("/healthz", admin.Health())

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())
		r.Post("/games", games.Start())
		r.Get("/games/{game_id}", games.Get())
		r.Post("/games/{game_id}/hit", games.Hit())
		r.Post("/games/{game_id}/stand", games.Stand())

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.AdminAPIKey))
			r.Get("/stats", admin.Stats())
			r.Route("/debug", func(r chi.Router) {
				r.Use(BodyCaptureMiddleware(cfg.LogBodyMaxBytes))
				r.Get("/vars", expvar.Handler().ServeHTTP)
			})
		})
	})

	// Paths and documents of the original server, kept for existing clients.
	r.Route("/game", func(r chi.Router) {
		r.Use(APILogMiddleware())
		r.Use(BodyCaptureMiddleware(cfg.LogBodyMaxBytes))
		r.Post("/start", games.LegacyStart())
		r.Post("/hit", games.LegacyHit())
		r.Post("/stand", games.LegacyStand())
	})
	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 16)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
