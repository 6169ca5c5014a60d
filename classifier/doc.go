// SPDX-License-Identifier: MIT

// Package classifier provides SummaryClassifier, a pipeline that reduces
// each time series to per-channel summary statistics and hands the
// resulting feature table to a pluggable estimator.
//
// Collaborators are interfaces. An Estimator only has to Fit and Predict;
// richer behaviour is discovered through optional capabilities:
//
//	ProbaPredictor  PredictProba(X) → one row per sample, one column per class
//	Parallel        SetJobs(n)      receives the resolved worker count
//	Seedable        SetSeed(seed)   receives the random state, when set
//	Cloner          Clone()         gives Fit a private copy to train
//
// When the estimator cannot produce probabilities, PredictProba synthesises
// one-hot rows from Predict. Class columns always follow the sorted order of
// the labels seen in Fit.
//
//	clf := classifier.NewSummaryClassifier(
//	  classifier.WithEstimator(classifier.NewKNeighbors(3)),
//	  classifier.WithJobs(-1),
//	)
//	if err := clf.Fit(train, labels); err != nil { … }
//	pred, err := clf.Predict(test)
package classifier
