package config

import (
	"bufio"
	"fmt"
	"maps"
	"os"
	"strings"
)

// ReadDotEnv parses a .env file of KEY=VALUE lines. Blank lines
// and lines starting with # are skipped; surrounding quotes are
// removed from values.
func ReadDotEnv(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open env file %s: %w", path, err)
	}
	defer file.Close()

	vars := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		vars[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return vars, nil
}

// LoadWithDotEnv loads the YAML config at path with variables from
// the .env file layered under the process environment. The process
// environment wins on conflicts.
func LoadWithDotEnv(path, dotEnvPath string) (Config, error) {
	vars, err := ReadDotEnv(dotEnvPath)
	if err != nil {
		return Config{}, err
	}
	maps.Copy(vars, environ())
	return LoadWithEnv(path, vars)
}
