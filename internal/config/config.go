package config

import (
	"os"
	"time"
)

type Config struct {
	HTTPAddr      string
	ServiceName   string
	ToastTTL      time.Duration
	SessionTTL    time.Duration
	SweepInterval time.Duration
}

func Load() Config {
	return Config{
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		ServiceName:   getenv("SERVICE_NAME", "storefront-api"),
		ToastTTL:      getdur("TOAST_TTL", 3*time.Second),
		SessionTTL:    getdur("SESSION_TTL", 30*time.Minute),
		SweepInterval: getdur("SESSION_SWEEP_INTERVAL", time.Minute),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
