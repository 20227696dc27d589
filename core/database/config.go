package database

// Config holds configuration for the database connection.
type Config struct {
	// Driver is the database driver (postgres, mysql).
	Driver string `mapstructure:"driver" default:"postgres"`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"5432"`
	// User is the database user.
	User string `mapstructure:"user" default:"guest"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name.
	Name string `mapstructure:"name" default:"www-data"`
	// SSLMode is passed to postgres as sslmode.
	SSLMode string `mapstructure:"ssl_mode" default:"disable"`
	// DSN replaces the connection string built from the fields above.
	DSN string `mapstructure:"dsn" default:""`
	// TimeoutSeconds bounds connection setup and the initial ping.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// ApplicationName is reported to postgres in pg_stat_activity.
	ApplicationName string `mapstructure:"application_name" default:"openrefineapi"`
}
