package game

import "errors"

// ErrEmptyPotDistribution means winner selection found nobody for a
// nonzero pot. Unreachable with at least one non-folded seat; treated
// as fatal if it ever fires.
var ErrEmptyPotDistribution = errors.New("no winner for nonzero pot")
