package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"arche-openrefine/core/database"
	"arche-openrefine/core/logger"
	"arche-openrefine/core/profile"
	"arche-openrefine/core/server"
	"arche-openrefine/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage the profile may be read from.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Profile locates the reconciliation profile document.
	Profile profile.Config `mapstructure:"profile"`
}

// LoadConfig loads configuration from environment variables and .env file
// and validates it.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate rejects settings the service cannot start with. All problems are
// reported at once.
func (c *Config) Validate() error {
	var errs []error

	if !c.Server.IsValidVariant() {
		errs = append(errs, fmt.Errorf("server.api_variant: unknown variant %q", c.Server.APIVariant))
	}
	switch c.Server.ManifestTrigger {
	case "", server.TriggerQuery, server.TriggerQueryAndBody:
	default:
		errs = append(errs, fmt.Errorf("server.manifest_trigger: unknown trigger %q", c.Server.ManifestTrigger))
	}
	if u, err := url.Parse(c.Server.BaseURL); err != nil || !u.IsAbs() {
		errs = append(errs, fmt.Errorf("server.base_url: %q is not an absolute URL", c.Server.BaseURL))
	}
	if c.Server.SuggestLimit < 0 {
		errs = append(errs, errors.New("server.suggest_limit: must not be negative"))
	}

	switch c.Database.Driver {
	case database.DriverPostgres, database.DriverMySQL:
	default:
		errs = append(errs, fmt.Errorf("database.driver: unsupported driver %q", c.Database.Driver))
	}

	if c.Profile.Path == "" && c.Profile.Object == "" {
		errs = append(errs, errors.New("profile: either path or object is required"))
	}

	return errors.Join(errs...)
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
