package tablemetrics

import (
	"fmt"
	"strings"
)

// Aggregation decides how inputs holding several tables are scored.
type Aggregation int

const (
	// AggregateFirst compares the first table of each side and ignores the
	// rest. This is the default.
	AggregateFirst Aggregation = iota

	// AggregateMean pairs tables by position and averages the pair scores
	// over the larger table count; a table without a partner scores 0.
	AggregateMean
)

// String returns a string representation of the policy
func (a Aggregation) String() string {
	switch a {
	case AggregateFirst:
		return "first"
	case AggregateMean:
		return "mean"
	default:
		return fmt.Sprintf("Aggregation(%d)", int(a))
	}
}

// ParseAggregation parses a policy name ("first" or "mean").
func ParseAggregation(name string) (Aggregation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "first":
		return AggregateFirst, nil
	case "mean":
		return AggregateMean, nil
	default:
		return 0, fmt.Errorf("%w: unknown aggregation %q", ErrInvalidArgument, name)
	}
}

func (a Aggregation) valid() bool {
	return a == AggregateFirst || a == AggregateMean
}

// pairs returns the (truth, prediction) table index pairs to compare and the
// divisor applied to the summed pair scores. No pairs means the score is 0.
func (a Aggregation) pairs(numTruth, numPred int) ([][2]int, int) {
	if numTruth == 0 || numPred == 0 {
		return nil, 0
	}

	switch a {
	case AggregateMean:
		n := min(numTruth, numPred)
		pairs := make([][2]int, n)
		for i := range pairs {
			pairs[i] = [2]int{i, i}
		}
		return pairs, max(numTruth, numPred)
	default:
		return [][2]int{{0, 0}}, 1
	}
}
