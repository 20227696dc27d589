package profile

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"arche-openrefine/core/storage"

	"gopkg.in/yaml.v3"
)

// Config locates the profile document.
type Config struct {
	// Path is a local YAML file.
	Path string `mapstructure:"path" default:"profile.yaml"`
	// Object is a key in the storage bucket. When set it takes precedence over Path.
	Object string `mapstructure:"object" default:""`
}

// Parse decodes and validates a profile document. Unknown fields are rejected.
func Parse(r io.Reader) (*Profile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &p, nil
}

// LoadFile reads a profile from a local file.
func LoadFile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// LoadObject reads a profile from object storage.
func LoadObject(ctx context.Context, client storage.Client, bucket, objectName string) (*Profile, error) {
	data, err := storage.ReadObject(ctx, client, bucket, objectName)
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(data))
}

// Load resolves cfg to a profile. newClient is only called for object sources.
func Load(ctx context.Context, cfg Config, bucket string, newClient func() (storage.Client, error)) (*Profile, error) {
	if cfg.Object == "" {
		return LoadFile(cfg.Path)
	}
	client, err := newClient()
	if err != nil {
		return nil, err
	}
	return LoadObject(ctx, client, bucket, cfg.Object)
}
