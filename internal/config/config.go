package config

import (
	"os"
	"strconv"
)

type Config struct {
	Env          string
	HTTPPort     string
	SeedClientes string
	SeedTarjetas string
	RateRPS      int
}

func Load() Config {
	return Config{
		Env:          get("APP_ENV", "dev"),
		HTTPPort:     get("HTTP_PORT", "8080"),
		SeedClientes: get("SEED_CLIENTES", "data/clientes.json"),
		SeedTarjetas: get("SEED_TARJETAS", "data/tarjetas.json"),
		RateRPS:      getInt("RATE_RPS", 100),
	}
}

func get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
