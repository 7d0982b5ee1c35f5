// Package minio provides a source.Source implementation using the MinIO client.
//
// MinIO is a high-performance, S3-compatible object storage system. This
// package uses the official MinIO Go client library for compatibility with
// MinIO and other S3-compatible systems like Ceph, SeaweedFS, and Garage.
//
// # Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	src := miniosource.NewStore(client, "my-bucket", "datasets/")
//	ds, enc, err := dataset.FromCSV(ctx, "iris.csv", dataset.WithSource(src))
//
// # Features
//
//   - Works with any S3-compatible storage
//   - Air-gap friendly (no AWS dependencies required)
package minio
