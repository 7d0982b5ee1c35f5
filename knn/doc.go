// Package knn implements a k-nearest-neighbor classifier.
//
// KNN is a lazy learner: Fit stores the training data and all work
// happens at prediction time. A query computes the distance to every
// training row, keeps the k nearest in a bounded heap, and classifies
// by majority vote among their labels.
//
// # Determinism
//
// Queries are fully deterministic. Neighbors at equal distance are
// ranked by ascending training index, and vote ties go to the smallest
// label value.
//
// # Usage
//
//	clf, err := knn.New(5, knn.WithMetric(distance.Manhattan))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := clf.Fit(ctx, train); err != nil {
//	    log.Fatal(err)
//	}
//
//	label, err := clf.Predict(ctx, []float64{5.1, 3.5, 1.4, 0.2})
//
//	accuracy, err := clf.Score(ctx, test)
//
// PredictBatch classifies many samples at once, fanning out across a
// bounded worker pool (see WithWorkers).
package knn
