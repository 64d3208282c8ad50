package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Server ServerConfig
	JWT    JWTConfig
	Admin  AdminConfig
	Store  StoreConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type JWTConfig struct {
	SecretKey string
}

type AdminConfig struct {
	// Secret is the shared out-of-band credential accepted in the
	// X-Admin-Secret header.
	Secret string
	// Mobiles is the allow-list of mobile numbers that register as admin.
	Mobiles []string
}

type StoreConfig struct {
	DataFile string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Saree Market API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Admin: AdminConfig{
			Secret:  getEnv("ADMIN_SECRET", ""),
			Mobiles: splitList(getEnv("ADMIN_MOBILES", "")),
		},
		Store: StoreConfig{
			DataFile: getEnv("DATA_FILE", "data.json"),
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Admin.Secret == "" {
		return nil, errors.New("missing admin secret")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
