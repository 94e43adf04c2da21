// SPDX-License-Identifier: MIT
// Package: postman/builder
//
// errors.go - sentinel errors. Constructors wrap them with the method name
// and parameters via %w; callers branch with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not proceed (nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
