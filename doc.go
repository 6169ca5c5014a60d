// SPDX-License-Identifier: MIT

// Package tswarp is a toolkit for aligning, comparing and classifying time
// series with Dynamic Time Warping.
//
// 🚀 What is tswarp?
//
//	A small stack of packages, each usable on its own:
//		• dtw        – optimal alignment: cost, warping path, full cost matrix
//		• distance   – DTW as a reusable Distance, plus a parallel pairwise runner
//		• aligner    – named registry of aligners (engine + distance factory)
//		• classifier – summary-statistic features feeding a pluggable estimator
//		• signal     – deterministic chirp, pulse and random-walk generators
//
// ✨ Why tswarp?
//
//   - Exact – one recurrence, deterministic tie-breaking, every path valid
//   - Multivariate – observations are vectors; the cost function decides
//   - Concurrent – distances are stateless, batch runs are bounded and cancellable
//   - Observable – slog, Prometheus and OpenTelemetry hooks where work is heavy
//
// Layout:
//
//	dtw/         : Align, Distance, cost functions, Sakoe–Chiba window
//	distance/    : Distance, Factory, Pairwise (errgroup + metrics + tracing)
//	aligner/     : Registry, Default(), "dtw cost matrix alignment"
//	classifier/  : SummaryClassifier, SummaryTransformer, KNeighbors, BaggedNeighbors
//	signal/      : Chirp, Pulse, RandomWalk, Resample
//	cmd/tswarp/  : command-line front end
//
// Quick example:
//
//	A: 0 0 1 2 1 0        D[i][j] = cost(A[i-1], B[j-1]) +
//	B: 0 1 2 1 0                    min(D[i-1][j-1], D[i-1][j], D[i][j-1])
//
//	al, err := dtw.Align(dtw.Univariate(a), dtw.Univariate(b), dtw.SquaredEuclidean)
//	// al.Cost == 0, al.Path starts with (0,0),(1,0): the repeated 0 is absorbed.
//
//	go install github.com/katalvlaran/tswarp/cmd/tswarp@latest
package tswarp
