// Package distance compares histograms with the Bhattacharyya coefficient,
// either over the whole histogram or fragment by fragment.
package distance

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrLengthMismatch  = errors.New("histogram lengths differ")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ReweightBreakpoint splits fragment distances into the range that is pulled
// towards 1 (at or above) and the range that is pulled towards 0 (below).
const ReweightBreakpoint = 0.5

// OverlapClamp decides what Bhattacharyya reports when the coefficient falls
// outside the open interval (0, 1).
type OverlapClamp int

const (
	// CollapseToZero reports 0 both for identical (b >= 1) and for fully
	// disjoint (b <= 0) histograms.
	CollapseToZero OverlapClamp = iota
	// Saturate reports 0 for b >= 1 and 1 for b <= 0.
	Saturate
)

type Calculator struct {
	Clamp OverlapClamp
}

var Default = Calculator{Clamp: CollapseToZero}

func Coefficient(x, y []int) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}
	return coefficient(x, y), nil
}

func Bhattacharyya(x, y []int) (float64, error) {
	return Default.Bhattacharyya(x, y)
}

func Fragmented(x, y []int, fragmentLength int) (float64, error) {
	return Default.Fragmented(x, y, fragmentLength)
}

// Bhattacharyya returns the distance sqrt(1-b) derived from the coefficient
// b of the two histograms, each normalised by its own sum.
func (c Calculator) Bhattacharyya(x, y []int) (float64, error) {
	b, err := Coefficient(x, y)
	if err != nil {
		return 0, err
	}
	return c.fromCoefficient(b), nil
}

// Fragmented splits both histograms into consecutive fragments of
// fragmentLength buckets, computes the reweighted Bhattacharyya distance of
// each fragment pair and returns the mean.
func (c Calculator) Fragmented(x, y []int, fragmentLength int) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}
	if fragmentLength < 1 {
		return 0, fmt.Errorf("%w: fragment length %d", ErrInvalidArgument, fragmentLength)
	}
	if len(x) == 0 || len(x)%fragmentLength != 0 {
		return 0, fmt.Errorf("%w: length %d is not divisible into fragments of %d",
			ErrInvalidArgument, len(x), fragmentLength)
	}

	fragmentCount := len(x) / fragmentLength
	var sum float64
	for k := range fragmentCount {
		lo, hi := k*fragmentLength, (k+1)*fragmentLength
		d := c.fromCoefficient(coefficient(x[lo:hi], y[lo:hi]))
		sum += Reweight(d)
	}

	return sum / float64(fragmentCount), nil
}

// Reweight pushes distances at or above ReweightBreakpoint up with a square
// root and distances below it down by squaring.
func Reweight(d float64) float64 {
	if d >= ReweightBreakpoint {
		return math.Sqrt(d)
	}
	return d * d
}

func (c Calculator) fromCoefficient(b float64) float64 {
	if b >= 1 {
		return 0
	}
	if b <= 0 {
		if c.Clamp == Saturate {
			return 1
		}
		return 0
	}
	return math.Sqrt(1 - math.Min(b, 1))
}

// coefficient expects len(x) == len(y).
func coefficient(x, y []int) float64 {
	sumX := float64(max(1, sum(x)))
	sumY := float64(max(1, sum(y)))

	var b float64
	for i := range x {
		b += math.Sqrt((float64(x[i]) / sumX) * (float64(y[i]) / sumY))
	}
	return b
}

func sum(v []int) int {
	s := 0
	for _, n := range v {
		s += n
	}
	return s
}
