// Package source abstracts where dataset bytes come from.
//
// A Source maps an object name to a readable stream. The dataset
// package consumes Sources during CSV ingestion, so the same loading
// code works against the local file system, in-memory data, or object
// storage.
//
// # Implementations
//
//   - Local: files under a root directory (the default for loading)
//   - Bytes: in-memory map, handy in tests
//   - Throttled: wraps any Source with a byte-rate limit
//   - s3.Store, minio.Store (subpackages): object storage backends
//
// # Usage
//
//	src := source.NewThrottled(source.NewLocal("testdata"), 1<<20)
//	rc, err := src.Open(ctx, "iris.csv")
package source
