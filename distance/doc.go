// Package distance provides distance metrics for feature-vector comparison.
//
// # Supported Metrics
//
//   - Euclidean: straight-line (L2) distance, the KNN default
//   - Manhattan: sum of absolute coordinate differences (L1)
//   - Chebyshev: maximum absolute coordinate difference (L-infinity)
//   - Minkowski: generalized L_p distance with configurable order
//
// # Usage
//
//	d, err := distance.Euclidean.Distance(a, b)
//
//	m, _ := distance.NewMinkowski(3)
//	d, err = m.Distance(a, b)
//
// All built-in metrics are stateless and safe for concurrent use. A bare
// function can serve as a Metric via the Func adapter:
//
//	m := distance.Func(func(a, b []float64) (float64, error) {
//	    // ...
//	})
package distance
