// Package storage provides read access to S3-compatible object storage.
//
// It wraps the MinIO Go client. The service only reads from storage: when the
// reconciliation profile is kept in a bucket (profile.object), it is fetched
// once at startup through ReadObject.
//
// # Client Interface
//
// The Client interface keeps the surface small so it can be mocked in unit
// tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	data, err := storage.ReadObject(ctx, client, cfg.Storage.Bucket, "profiles/arche.yaml")
package storage
