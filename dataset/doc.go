// Package dataset provides the labeled data container the models in
// this module consume: an n×d feature matrix with a parallel integer
// label vector, plus partitioning and column scaling.
//
// # Construction
//
// Build a Dataset directly from matrices:
//
//	ds, err := dataset.New([][]float64{{5.1, 3.5}, {4.9, 3.0}}, []int{0, 0})
//
// or load one from delimited text:
//
//	ds, enc, err := dataset.FromCSV(ctx, "data/iris.csv")
//
// FromCSV accepts plain .csv files as well as .csv.gz, .csv.zst and
// .csv.lz4 compressed variants, and can read from object storage via
// the source package. Text labels are remapped to integer ids in
// first-seen order; the returned LabelEncoding translates ids back.
//
// # Partitioning
//
// TrainTestSplit produces two independently owned Datasets using a
// seeded permutation, so the same seed always reproduces the same
// partition:
//
//	train, test, err := ds.TrainTestSplit(0.2, dataset.DefaultSeed)
//
// # Scaling
//
// Normalize (min-max into [0, 1]) and Standardize (zero mean, unit
// sample deviation) rescale feature columns in place. Both are
// destructive: no scaling parameters are retained, so the same
// transform cannot be reapplied to held-out data afterwards. Scale
// before splitting when train and test must share one scale.
package dataset
