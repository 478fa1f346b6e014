package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const DefaultSqlitePath = "db/app.db"

type Configuration struct {
	ApiPort  string `koanf:"api_port"`
	LogPath  string `koanf:"log_path"`
	LogLevel string `koanf:"log_level"`
	Debug    bool   `koanf:"debug"`

	// DbURI seleciona o banco: vazio usa sqlite local, "postgres://..." usa postgres.
	DbURI       string `koanf:"db_uri"`
	AutoMigrate bool   `koanf:"automigrate"`

	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// envKeys maps the supported environment variables to config keys.
var envKeys = map[string]string{
	"PORT":                 "api_port",
	"LOG_PATH":             "log_path",
	"LOG_LEVEL":            "log_level",
	"DEBUG":                "debug",
	"DB_URI":               "db_uri",
	"AUTOMIGRATE":          "automigrate",
	"CORS_ALLOWED_ORIGINS": "cors_allowed_origins",
}

// Get loads defaults, then the optional YAML file at path, then the environment.
func Get(path string) (Configuration, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"api_port":             "5555",
		"log_path":             "",
		"log_level":            "info",
		"debug":                false,
		"db_uri":               "",
		"automigrate":          false,
		"cors_allowed_origins": []string{"*"},
	}, "."), nil); err != nil {
		return Configuration{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Configuration{}, fmt.Errorf("error reading config file %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		name, ok := envKeys[key]
		if !ok {
			return "", nil
		}
		if name == "cors_allowed_origins" {
			var origins []string
			for _, o := range strings.Split(value, ",") {
				if o = strings.TrimSpace(o); o != "" {
					origins = append(origins, o)
				}
			}
			return name, origins
		}
		return name, value
	}), nil); err != nil {
		return Configuration{}, fmt.Errorf("failed to load env vars: %w", err)
	}

	var c Configuration
	if err := k.Unmarshal("", &c); err != nil {
		return Configuration{}, fmt.Errorf("failed to decode config: %w", err)
	}

	// defaults again for values explicitly blanked by file/env
	if strings.TrimSpace(c.ApiPort) == "" {
		c.ApiPort = "5555"
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = "info"
	}
	if len(c.CORSAllowedOrigins) == 0 {
		c.CORSAllowedOrigins = []string{"*"}
	}

	return c, nil
}

// ParseDatabaseURI turns DB_URI into a gorm dialect and connection string.
//
//	""                    -> sqlite3, DefaultSqlitePath
//	"sqlite://"           -> sqlite3, ":memory:"
//	"sqlite:///<path>"    -> sqlite3, <path>
//	"postgres://..."      -> postgres, uri
func ParseDatabaseURI(uri string) (dialect string, dsn string, err error) {
	uri = strings.TrimSpace(uri)
	switch {
	case uri == "":
		return "sqlite3", DefaultSqlitePath, nil
	case uri == "sqlite://":
		return "sqlite3", ":memory:", nil
	case strings.HasPrefix(uri, "sqlite:///"):
		path := strings.TrimPrefix(uri, "sqlite:///")
		if path == "" {
			return "", "", fmt.Errorf("db uri %q has no path", uri)
		}
		return "sqlite3", path, nil
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		return "postgres", uri, nil
	}
	return "", "", fmt.Errorf("unsupported db uri %q", uri)
}
