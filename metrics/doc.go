// Package metrics provides model-quality metrics for regression and
// classification. All functions are stateless and compare a vector of
// true values against a vector of predictions aligned by index.
//
// Regression: MSE, RMSE, MAE and R2.
//
// Classification: Accuracy, ConfusionMatrix, per-class Precision,
// Recall and F1, and ClassificationReport for everything at once. The
// per-class metrics are computed over an inverted index of label
// postings (one bitmap of sample positions per label), so true/false
// positive counts reduce to bitmap intersections.
package metrics
