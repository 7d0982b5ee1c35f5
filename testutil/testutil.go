// Package testutil provides seeded generators for synthetic labeled
// datasets and brute-force reference implementations, for use in tests
// and benchmarks.
package testutil

import (
	"sort"

	"github.com/daniel-garciasoto/mlgo/dataset"
	"github.com/daniel-garciasoto/mlgo/distance"
	"github.com/daniel-garciasoto/mlgo/util"
)

// Neighbor pairs a training-row index with its distance to a query.
// It mirrors knn.Neighbor without importing the knn package, so knn
// tests can compare against it.
type Neighbor struct {
	Index    int
	Distance float64
}

// Blobs generates a labeled dataset of Gaussian clusters, one per
// class. The centroid of class c sits at (c*separation, ..., c*separation)
// and samples scatter around it with standard deviation spread. Rows
// interleave classes, so any contiguous slice holds a mix of labels.
//
// The same seed always yields the same dataset.
func Blobs(seed int64, classes, perClass, dim int, separation, spread float64) *dataset.Dataset {
	rng := util.NewRNG(seed)

	n := classes * perClass

	features := make([][]float64, n)
	labels := make([]int, n)

	for i := range features {
		label := i % classes
		center := float64(label) * separation

		row := make([]float64, dim)
		for j := range row {
			row[j] = center + rng.NormFloat64()*spread
		}

		features[i] = row
		labels[i] = label
	}

	ds, err := dataset.New(features, labels)
	if err != nil {
		panic("testutil: " + err.Error())
	}

	return ds
}

// LinearProblem generates a regression problem y = intercept + w·x
// with Gaussian noise on the targets. Features are uniform in [0, 1).
//
// The same seed always yields the same problem.
func LinearProblem(seed int64, n int, weights []float64, intercept, noise float64) ([][]float64, []float64) {
	rng := util.NewRNG(seed)

	x := rng.GenerateRandomMatrix(n, len(weights))

	y := make([]float64, n)
	for i, row := range x {
		value := intercept
		for j, v := range row {
			value += weights[j] * v
		}
		y[i] = value + rng.NormFloat64()*noise
	}

	return x, y
}

// BruteForceNeighbors computes the exact k nearest rows to query by
// scoring every row and fully sorting, breaking distance ties by
// ascending row index. It is the ground truth a bounded selection must
// match.
func BruteForceNeighbors(features [][]float64, query []float64, k int, metric distance.Metric) ([]Neighbor, error) {
	neighbors := make([]Neighbor, len(features))

	for i, row := range features {
		d, err := metric.Distance(query, row)
		if err != nil {
			return nil, err
		}

		neighbors[i] = Neighbor{Index: i, Distance: d}
	}

	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].Distance != neighbors[j].Distance {
			return neighbors[i].Distance < neighbors[j].Distance
		}
		return neighbors[i].Index < neighbors[j].Index
	})

	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}

	return neighbors, nil
}
