package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            string // dashboard gateway listen port
	StorePort       string // item store listen port
	BackendURL      string // base address of the upstream item store
	UpstreamTimeout time.Duration
	DBDSN           string
	LogFile         string
	StaticFallback  bool // serve the demo dataset when the upstream is down
}

func Load() Config {
	cfg := Config{
		Port:            getenv("PORT", "3000"),
		StorePort:       getenv("STORE_PORT", "8080"),
		BackendURL:      getenv("BACKEND_URL", "http://localhost:8080"),
		UpstreamTimeout: 5 * time.Second,
		DBDSN:           getenv("DB_DSN", "sweetshop.db"),
		LogFile:         os.Getenv("LOG_FILE"),
		StaticFallback:  true,
	}
	if ms := os.Getenv("UPSTREAM_TIMEOUT_MS"); ms != "" {
		if n, err := strconv.Atoi(ms); err == nil && n > 0 {
			cfg.UpstreamTimeout = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("STATIC_FALLBACK"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.StaticFallback = b
		}
	}
	log.Printf("[config] PORT=%s STORE_PORT=%s BACKEND_URL=%s DB_DSN=%s TIMEOUT=%s FALLBACK=%v",
		cfg.Port, cfg.StorePort, cfg.BackendURL, cfg.DBDSN, cfg.UpstreamTimeout, cfg.StaticFallback)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
