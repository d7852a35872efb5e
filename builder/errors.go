// SPDX-License-Identifier: MIT
// Package: seedmin/builder
//
// errors.go - sentinel errors for the builder package. Wrap with %w and
// check with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// below the minimum the constructor accepts.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG. Supply one with WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor that could not produce a valid
// fragment (nil constructor, bad explicit edge list).
var ErrConstructFailed = errors.New("builder: construction failed")
