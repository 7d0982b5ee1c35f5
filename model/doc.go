// Package model defines the contracts shared by mlgo's learning models.
//
// # Interfaces
//
//   - Classifier: hard-label prediction (Fit/Predict/PredictBatch/Score)
//   - Regressor: continuous-target prediction
//   - LinearModel: parameter access for linear models
//
// Concrete implementations live in the knn and linear packages. Both
// satisfy these interfaces, so pipelines can be written against the
// contracts alone:
//
//	var clf model.Classifier
//	clf, _ = knn.New(3)
//	_ = clf.Fit(ctx, train)
package model
