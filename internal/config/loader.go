package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type config struct {
	host string
	port string

	badRequestResponse bool

	pprofEnabled bool
	pprofPort    string
}

func parse() (*config, error) {
	host := getenv("HOST", "127.0.0.1")

	port, err := parsePort("PORT", "8000")
	if err != nil {
		return nil, err
	}

	badRequestResponse := getenvBool("BAD_REQUEST_RESPONSE", true)

	pprofEnabled := getenvBool("PPROF_ENABLED", false)
	pprofPort, err := parsePort("PPROF_PORT", "6060")
	if err != nil {
		return nil, err
	}

	return &config{
		host:               host,
		port:               port,
		badRequestResponse: badRequestResponse,
		pprofEnabled:       pprofEnabled,
		pprofPort:          pprofPort,
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func parsePort(key, def string) (string, error) {
	raw := getenv(key, def)
	if _, err := strconv.ParseUint(raw, 10, 16); err != nil {
		return "", fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return raw, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val == "true"
}
