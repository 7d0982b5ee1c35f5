// Package linear implements ordinary least squares linear regression.
//
// The model is y = intercept + w·x. Two solvers are available:
//
//   - SolverNormal (the default) solves the least-squares problem
//     exactly through a QR factorization of the design matrix. It
//     requires at least one more sample than features.
//   - SolverGradientDescent minimizes the MSE loss iteratively from a
//     zero start. It tolerates wide data but expects scaled features
//     and a learning rate tuned to them (see dataset.Normalize).
//
// # Usage
//
//	model, err := linear.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := model.Fit(ctx, features, targets); err != nil {
//	    log.Fatal(err)
//	}
//
//	value, err := model.Predict(ctx, []float64{2.5})
//
//	r2, err := model.Score(ctx, testFeatures, testTargets)
//
// Score reports the coefficient of determination R², where 1 is a
// perfect fit and 0 matches always predicting the mean target.
package linear
