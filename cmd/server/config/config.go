package config

// Config holds the report server configuration.
type Config struct {
	Server ServerConfig
	Report ReportConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string
	Port string
}

// ReportConfig holds report pipeline settings.
type ReportConfig struct {
	BasePath       string
	LogoPath       string
	MaxUploadBytes int64
}

// Defaults returns a Config with sensible defaults.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Host: "localhost",
			Port: "8080",
		},
		Report: ReportConfig{
			BasePath: "/reports",
			LogoPath: "./assets/logo.png",
		},
	}
}
