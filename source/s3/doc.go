// Package s3 provides an S3 implementation of the source.Source interface.
//
// # Usage
//
//	src, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("datasets/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	ds, enc, err := dataset.FromCSV(ctx, "iris.csv", dataset.WithSource(src))
//
// # Features
//
//   - Streams object bodies by default; optional buffered downloads via
//     the transfer manager for small objects
//   - Configurable prefix for multi-tenant isolation
//   - Credentials resolved from the ambient AWS configuration
package s3
