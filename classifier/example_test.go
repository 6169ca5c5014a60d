package classifier_test

import (
	"fmt"

	"github.com/katalvlaran/tswarp/classifier"
	"github.com/katalvlaran/tswarp/dtw"
)

// ExampleSummaryClassifier separates flat series from ramps using only
// their mean and maximum.
func ExampleSummaryClassifier() {
	train := []dtw.Sequence{
		dtw.Univariate([]float64{0, 0, 0, 0}),
		dtw.Univariate([]float64{0.1, 0, 0.1, 0}),
		dtw.Univariate([]float64{0, 1, 2, 3}),
		dtw.Univariate([]float64{0, 2, 4, 6}),
	}
	labels := []string{"flat", "flat", "ramp", "ramp"}

	clf := classifier.NewSummaryClassifier(
		classifier.WithSummaryFunctions(classifier.SummaryMean, classifier.SummaryMax),
		classifier.WithQuantiles(),
	)
	if err := clf.Fit(train, labels); err != nil {
		fmt.Println(err)
		return
	}

	pred, _ := clf.Predict([]dtw.Sequence{
		dtw.Univariate([]float64{0, 0.05, 0}),
		dtw.Univariate([]float64{1, 3, 5}),
	})
	fmt.Println(clf.Classes(), clf.FeatureNames())
	fmt.Println(pred)
	// Output:
	// [flat ramp] [c0_mean c0_max]
	// [flat ramp]
}
