// Package config reads the server's environment configuration: network
// address, Postgres credentials, JWT keys, cookie policy and per-family
// puzzle generation overrides.
package config

import (
	"fmt"
	"os"
)

func lookup(name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("%s env variable is not set", name)
	}
	return value, nil
}

func Addr() string {
	if port, ok := os.LookupEnv("APP_PORT"); ok {
		return ":" + port
	}
	return ":8080"
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
