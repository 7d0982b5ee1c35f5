package knn_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/daniel-garciasoto/mlgo/knn"
	"github.com/daniel-garciasoto/mlgo/testutil"
)

func BenchmarkPredict(b *testing.B) {
	sizes := []int{100, 1000, 10000}
	dim := 16

	for _, size := range sizes {
		b.Run(fmt.Sprintf("n%d", size), func(b *testing.B) {
			train := testutil.Blobs(0, 10, size/10, dim, 5, 1.0)

			clf, err := knn.New(10)
			if err != nil {
				b.Fatal(err)
			}

			ctx := context.Background()
			if err := clf.Fit(ctx, train); err != nil {
				b.Fatal(err)
			}

			query := train.Features()[0]

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				if _, err := clf.Predict(ctx, query); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPredictBatch(b *testing.B) {
	workers := []int{1, 4, 8}

	train := testutil.Blobs(0, 10, 1000, 16, 5, 1.0)
	queries := testutil.Blobs(1, 10, 25, 16, 5, 1.0).Features()

	for _, w := range workers {
		b.Run(fmt.Sprintf("workers%d", w), func(b *testing.B) {
			clf, err := knn.New(10, knn.WithWorkers(w))
			if err != nil {
				b.Fatal(err)
			}

			ctx := context.Background()
			if err := clf.Fit(ctx, train); err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				if _, err := clf.PredictBatch(ctx, queries); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkNeighbors(b *testing.B) {
	ks := []int{1, 10, 100}

	train := testutil.Blobs(0, 10, 1000, 16, 5, 1.0)
	query := train.Features()[0]

	for _, k := range ks {
		b.Run(fmt.Sprintf("k%d", k), func(b *testing.B) {
			clf, err := knn.New(k)
			if err != nil {
				b.Fatal(err)
			}

			ctx := context.Background()
			if err := clf.Fit(ctx, train); err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				if _, err := clf.Neighbors(ctx, query); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
