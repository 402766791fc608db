package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"blackjack-table/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	mu      sync.Mutex
	writer  io.Writer = os.Stdout
	logFile *sizeLimitedWriter
)

// Init configures the global zerolog logger. When cfg.File is set, output
// goes to stdout and to a size-limited file.
func Init(cfg config.LogConfig) error {
	level := zerolog.InfoLevel
	if v := strings.TrimSpace(cfg.Level); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}

	var raw io.Writer = os.Stdout
	if cfg.File != "" {
		fw, err := newSizeLimitedWriter(cfg.File, cfg.MaxMB)
		if err != nil {
			return err
		}
		mu.Lock()
		if logFile != nil {
			_ = logFile.Close()
		}
		logFile = fw
		mu.Unlock()
		raw = io.MultiWriter(os.Stdout, fw)
	}

	output := raw
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: raw}
	}

	mu.Lock()
	writer = raw
	mu.Unlock()

	zerolog.SetGlobalLevel(level)
	ctx := zerolog.New(output).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	logger := ctx.Logger()
	if cfg.SampleEvery > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: uint32(cfg.SampleEvery)})
	}
	log.Logger = logger
	return nil
}

// Writer is the raw destination for other loggers, such as the HTTP access log.
func Writer() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return writer
}

func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	writer = os.Stdout
	return err
}
