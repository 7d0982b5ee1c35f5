package metrics

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/daniel-garciasoto/mlgo"
)

// ErrClassOutOfRange is returned by ConfusionMatrix when a label does
// not fit the requested class count.
var ErrClassOutOfRange = errors.New("label outside class range")

// Accuracy returns the fraction of predictions matching the true
// labels, in [0, 1]. Empty input scores 0.0 without error, matching
// the classifier score contract.
func Accuracy(yTrue, yPred []int) (float64, error) {
	if len(yTrue) != len(yPred) {
		return 0, &mlgo.ErrDimensionMismatch{Expected: len(yTrue), Actual: len(yPred)}
	}

	if len(yTrue) == 0 {
		return 0, nil
	}

	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}

	return float64(correct) / float64(len(yTrue)), nil
}

// ConfusionMatrix returns an numClasses×numClasses matrix where cell
// [i][j] counts samples whose true class is i and predicted class is
// j. A numClasses of zero or less auto-detects the class count as the
// largest label seen plus one.
func ConfusionMatrix(yTrue, yPred []int, numClasses int) ([][]int, error) {
	if len(yTrue) != len(yPred) {
		return nil, &mlgo.ErrDimensionMismatch{Expected: len(yTrue), Actual: len(yPred)}
	}

	if numClasses <= 0 {
		for i := range yTrue {
			numClasses = max(numClasses, yTrue[i]+1, yPred[i]+1)
		}
	}

	cm := make([][]int, numClasses)
	for i := range cm {
		cm[i] = make([]int, numClasses)
	}

	for i := range yTrue {
		t, p := yTrue[i], yPred[i]
		if t < 0 || t >= numClasses || p < 0 || p >= numClasses {
			return nil, fmt.Errorf("%w: true %d, predicted %d, classes %d", ErrClassOutOfRange, t, p, numClasses)
		}
		cm[t][p]++
	}

	return cm, nil
}

// Precision returns TP/(TP+FP) for the target class: of everything
// predicted as the class, the fraction that really is. Returns 0 when
// the class was never predicted.
func Precision(yTrue, yPred []int, targetClass int) (float64, error) {
	if len(yTrue) != len(yPred) {
		return 0, &mlgo.ErrDimensionMismatch{Expected: len(yTrue), Actual: len(yPred)}
	}

	truth := labelPostings(yTrue)
	predicted := labelPostings(yPred)

	return precisionFromPostings(truth[targetClass], predicted[targetClass]), nil
}

// Recall returns TP/(TP+FN) for the target class: of everything that
// really is the class, the fraction found. Returns 0 when the class
// has no true samples.
func Recall(yTrue, yPred []int, targetClass int) (float64, error) {
	if len(yTrue) != len(yPred) {
		return 0, &mlgo.ErrDimensionMismatch{Expected: len(yTrue), Actual: len(yPred)}
	}

	truth := labelPostings(yTrue)
	predicted := labelPostings(yPred)

	return recallFromPostings(truth[targetClass], predicted[targetClass]), nil
}

// F1 returns the harmonic mean of precision and recall for the target
// class, or 0 when both are 0.
func F1(yTrue, yPred []int, targetClass int) (float64, error) {
	if len(yTrue) != len(yPred) {
		return 0, &mlgo.ErrDimensionMismatch{Expected: len(yTrue), Actual: len(yPred)}
	}

	truth := labelPostings(yTrue)
	predicted := labelPostings(yPred)

	precision := precisionFromPostings(truth[targetClass], predicted[targetClass])
	recall := recallFromPostings(truth[targetClass], predicted[targetClass])

	return f1From(precision, recall), nil
}

// ClassReport holds the per-class rows of a classification report.
type ClassReport struct {
	Class     int
	Precision float64
	Recall    float64
	F1        float64

	// Support is the number of true samples of the class.
	Support int
}

// Report summarizes classifier quality across all classes.
type Report struct {
	Accuracy float64
	Classes  []ClassReport
}

// ClassificationReport computes accuracy plus per-class precision,
// recall, F1 and support in one pass. Classes appearing in either
// vector are reported in ascending order.
func ClassificationReport(yTrue, yPred []int) (*Report, error) {
	accuracy, err := Accuracy(yTrue, yPred)
	if err != nil {
		return nil, err
	}

	truth := labelPostings(yTrue)
	predicted := labelPostings(yPred)

	classes := make(map[int]struct{}, len(truth))
	for class := range truth {
		classes[class] = struct{}{}
	}
	for class := range predicted {
		classes[class] = struct{}{}
	}

	report := &Report{Accuracy: accuracy}

	for _, class := range slices.Sorted(maps.Keys(classes)) {
		precision := precisionFromPostings(truth[class], predicted[class])
		recall := recallFromPostings(truth[class], predicted[class])

		support := uint64(0)
		if bm := truth[class]; bm != nil {
			support = bm.GetCardinality()
		}

		report.Classes = append(report.Classes, ClassReport{
			Class:     class,
			Precision: precision,
			Recall:    recall,
			F1:        f1From(precision, recall),
			Support:   int(support),
		})
	}

	return report, nil
}

// labelPostings builds an inverted index over labels: one bitmap of
// sample positions per label value.
func labelPostings(labels []int) map[int]*roaring.Bitmap {
	postings := make(map[int]*roaring.Bitmap)

	for i, label := range labels {
		bm, ok := postings[label]
		if !ok {
			bm = roaring.New()
			postings[label] = bm
		}
		bm.Add(uint32(i))
	}

	return postings
}

// truePositives is the intersection cardinality of the true and
// predicted postings for one class.
func truePositives(truth, predicted *roaring.Bitmap) uint64 {
	if truth == nil || predicted == nil {
		return 0
	}
	return roaring.And(truth, predicted).GetCardinality()
}

func precisionFromPostings(truth, predicted *roaring.Bitmap) float64 {
	if predicted == nil || predicted.IsEmpty() {
		return 0
	}
	return float64(truePositives(truth, predicted)) / float64(predicted.GetCardinality())
}

func recallFromPostings(truth, predicted *roaring.Bitmap) float64 {
	if truth == nil || truth.IsEmpty() {
		return 0
	}
	return float64(truePositives(truth, predicted)) / float64(truth.GetCardinality())
}

func f1From(precision, recall float64) float64 {
	if precision+recall == 0 {
		return 0
	}
	return 2 * precision * recall / (precision + recall)
}
