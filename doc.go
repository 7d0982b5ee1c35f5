// Package mlgo provides a small supervised-learning toolkit for Go.
//
// It bundles a dataset container with partitioning and scaling utilities,
// a family of pluggable distance metrics, a k-nearest-neighbor classifier,
// a linear regressor, and model-quality metrics. The pieces compose but do
// not depend on each other: use the dataset helpers with your own models,
// or the models with your own data pipeline.
//
// # Quick Start
//
//	ctx := context.Background()
//
//	ds, enc, _ := dataset.FromCSV(ctx, "iris.csv")
//	ds.Normalize()
//
//	train, test, _ := ds.TrainTestSplit(0.2, dataset.DefaultSeed)
//
//	clf, _ := knn.New(5)
//	_ = clf.Fit(ctx, train)
//
//	label, _ := clf.Predict(ctx, test.Features()[0])
//	fmt.Println(enc.Name(label))
//
//	acc, _ := clf.Score(ctx, test)
//	fmt.Printf("accuracy: %.2f\n", acc)
//
// # Remote Data
//
// CSV files can be pulled from object storage instead of the local
// file system:
//
//	src, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("datasets/"))
//	ds, _, _ := dataset.FromCSV(ctx, "iris.csv", dataset.WithSource(src))
//
// Compressed files (.csv.gz, .csv.zst, .csv.lz4) are decompressed
// transparently.
//
// # Determinism
//
// Train/test partitioning is seeded: the same seed yields the same
// partition for a given dataset. Neighbor ordering and vote tie-breaks
// are deterministic, so classification results are reproducible run
// to run.
//
// # Key Features
//
//   - Seeded train/test splitting with deep-copied partitions
//   - In-place min-max normalization and z-score standardization
//   - Euclidean, Manhattan, Chebyshev and Minkowski distances
//   - KNN classification with bounded-heap neighbor selection
//   - Linear regression (gradient descent or normal equation)
//   - Regression and classification quality metrics
//   - CSV ingestion from local disk, S3 or MinIO
package mlgo
