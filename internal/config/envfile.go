package config

import (
	"bufio"
	"os"
	"strings"
)

// DefaultEnvFile is read from the working directory at startup
const DefaultEnvFile = ".env"

// LoadEnvFile copies KEY=VALUE pairs from path into the process environment.
// Variables that are already set are never overridden. A missing or unreadable
// file is ignored.
func LoadEnvFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseEnvLine(scanner.Text())
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		os.Setenv(key, value)
	}
}

func parseEnvLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	value = strings.Trim(strings.TrimSpace(value), `"`)
	value = strings.Trim(value, "'")
	return key, value, true
}
