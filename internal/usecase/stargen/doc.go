// Package stargen holds the stochastic rules that populate a starfield: which
// objects to place, where, how big and in which colour, plus the spiral curve
// used for swirl clusters.
//
// All randomness comes from an injected ports.RandomSource, so a seeded source
// reproduces a scene exactly.
package stargen
