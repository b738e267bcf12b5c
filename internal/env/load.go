package env

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ConfigVar names the preferences file to load instead of the default.
const ConfigVar = "CUBE_CONFIG"

// Load reads the given file (e.g. ".env") and sets an environment variable for each
// KEY=VALUE line that is not already set in the process environment.
// The file may be missing; that is not an error.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	vars, err := Parse(f)
	if err != nil {
		return err
	}
	for k, v := range vars {
		if _, set := os.LookupEnv(k); set {
			continue
		}
		_ = os.Setenv(k, v)
	}
	return nil
}

// Parse reads KEY=VALUE lines. Empty lines and lines starting with # are skipped,
// and surrounding quotes on values are removed.
func Parse(r io.Reader) (map[string]string, error) {
	vars := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		value = strings.TrimSpace(value)
		if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
		vars[key] = value
	}
	return vars, scanner.Err()
}

// ConfigPath returns $CUBE_CONFIG, or def when it is unset or empty.
func ConfigPath(def string) string {
	if p := os.Getenv(ConfigVar); p != "" {
		return p
	}
	return def
}
