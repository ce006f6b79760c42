package edgelist

import "github.com/pingcap/errors"

var (
	// ErrShortRecord indicates a record with a city but no (neighbour, distance) pair.
	ErrShortRecord = errors.New("edgelist: record has no neighbour")

	// ErrMissingWeight indicates a neighbour without a distance after it.
	ErrMissingWeight = errors.New("edgelist: neighbour without distance")

	// ErrBadWeight indicates a distance that is not a base-10 integer.
	ErrBadWeight = errors.New("edgelist: distance is not an integer")

	// ErrNegativeWeight indicates a negative distance while negatives are not allowed.
	ErrNegativeWeight = errors.New("edgelist: negative distance")
)
