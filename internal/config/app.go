package config

type AppConfig struct {
	Server ServerConfig
	Log    LogConfig
}

// LoadApp loads logging first so that a server config error can still be
// reported through the configured logger; Log is set whenever it parsed.
func LoadApp() (AppConfig, error) {
	var out AppConfig
	logCfg, err := LoadLog()
	if err != nil {
		return out, err
	}
	out.Log = logCfg
	serverCfg, err := LoadServer()
	if err != nil {
		return out, err
	}
	out.Server = serverCfg
	return out, nil
}
