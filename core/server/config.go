package server

import (
	"net/url"
	"strings"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// BaseURL is the public URL the API is mounted at, e.g. https://arche.acdh.oeaw.ac.at/openrefine/.
	BaseURL string `mapstructure:"base_url" default:"http://127.0.0.1:8080/"`
	// Debug returns a full error dump instead of the message in error responses.
	Debug bool `mapstructure:"debug" default:"false"`
	// Cors is the allowed origin, "*" or "__secure__" to echo the caller's origin.
	Cors string `mapstructure:"cors" default:"*"`
	// APIVariant selects the protocol variant (basic, extended).
	APIVariant string `mapstructure:"api_variant" default:"extended"`
	// ManifestTrigger overrides which parameters decide between manifest and
	// batch on the reconcile path (query, query_and_body). Empty follows the variant.
	ManifestTrigger string `mapstructure:"manifest_trigger" default:""`
	// SuggestLimit caps entity suggestions per page; 0 disables the cap.
	SuggestLimit int `mapstructure:"suggest_limit" default:"25"`
}

const (
	VariantBasic    = "basic"
	VariantExtended = "extended"

	TriggerQuery        = "query"
	TriggerQueryAndBody = "query_and_body"
)

// IsValidVariant checks if the configured API variant is known.
func (c Config) IsValidVariant() bool {
	switch c.APIVariant {
	case VariantBasic, VariantExtended:
		return true
	default:
		return false
	}
}

// Extended reports whether the data extension and property proposal
// endpoints are served.
func (c Config) Extended() bool {
	return c.APIVariant == VariantExtended
}

// Trigger resolves the parameter set considered by the reconcile
// manifest-vs-batch rule.
func (c Config) Trigger() string {
	switch c.ManifestTrigger {
	case TriggerQuery, TriggerQueryAndBody:
		return c.ManifestTrigger
	}
	if c.Extended() {
		return TriggerQueryAndBody
	}
	return TriggerQuery
}

// ServiceURL returns BaseURL with a guaranteed trailing slash.
func (c Config) ServiceURL() string {
	if strings.HasSuffix(c.BaseURL, "/") {
		return c.BaseURL
	}
	return c.BaseURL + "/"
}

// ManifestURL is the canonical location of the service manifest.
func (c Config) ManifestURL() string {
	return c.ServiceURL() + "reconcile"
}

// BasePath is the path component of BaseURL without the trailing slash,
// used as the route prefix.
func (c Config) BasePath() string {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return ""
	}
	return strings.TrimSuffix(u.Path, "/")
}
