// Package rng provides the single shared randomness source consumed by
// initialization and mini-batch sampling.
//
// Every draw takes an exclusive lock, so the draw sequence under a fixed
// seed is identical no matter how many workers or blocks participate in a
// run.
package rng
