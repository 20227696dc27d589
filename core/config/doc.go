// Package config provides configuration management for the reconciliation service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of the
// partial configurations.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, base URL, API variant, CORS policy)
//   - Database: datastore driver and connection details
//   - Storage: S3/MinIO credentials and bucket holding profiles
//   - Log: Logging level and format
//   - Profile: location of the reconciliation profile
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.BaseURL)
package config
