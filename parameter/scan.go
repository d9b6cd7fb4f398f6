package parameter

import (
	"math/big"
	"strings"
)

// NewScanSource builds a Source from a --parameter-scan argument: values are
// generated by iterated addition from min while the running value is <= max.
// Arithmetic is done with exact rationals (math/big) rather than float64 so
// that a step like 0.1 does not accumulate binary-float error over many
// iterations; each generated value is formatted back to the largest number
// of decimal places among min, max and step.
func NewScanSource(name, minStr, maxStr, stepStr string) (Source, error) {
	min, ok := new(big.Rat).SetString(minStr)
	if !ok {
		return Source{}, &Error{Kind: InvalidNumber, Name: name, Err: errInvalid(minStr)}
	}
	max, ok := new(big.Rat).SetString(maxStr)
	if !ok {
		return Source{}, &Error{Kind: InvalidNumber, Name: name, Err: errInvalid(maxStr)}
	}
	if stepStr == "" {
		stepStr = "1"
	}
	step, ok := new(big.Rat).SetString(stepStr)
	if !ok {
		return Source{}, &Error{Kind: InvalidNumber, Name: name, Err: errInvalid(stepStr)}
	}

	if max.Cmp(min) < 0 {
		return Source{}, &Error{Kind: EmptyRange, Name: name}
	}
	if step.Sign() == 0 {
		return Source{}, &Error{Kind: ZeroStep, Name: name}
	}

	count, err := scanCount(min, max, step)
	if err != nil {
		return Source{}, err
	}
	if count > maxScanValues {
		return Source{}, &Error{Kind: TooLarge, Name: name}
	}

	decimals := maxDecimals(minStr, maxStr, stepStr)
	values := make([]string, count)
	cur := new(big.Rat).Set(min)
	for i := 0; i < count; i++ {
		values[i] = cur.FloatString(decimals)
		cur = new(big.Rat).Add(cur, step)
	}
	return Source{Name: name, Values: values}, nil
}

// scanCount computes floor((max-min)/step) + 1 using exact rational
// arithmetic.
func scanCount(min, max, step *big.Rat) (int, error) {
	diff := new(big.Rat).Sub(max, min)
	ratio := new(big.Rat).Quo(diff, step)
	if ratio.Sign() < 0 {
		return 0, &Error{Kind: EmptyRange}
	}
	// big.Rat's denominator is always positive, so Int.Div (Euclidean
	// division) on Num/Denom is equivalent to a floor division here.
	q := new(big.Int).Div(ratio.Num(), ratio.Denom())
	if !q.IsInt64() {
		return 0, &Error{Kind: TooLarge}
	}
	return int(q.Int64()) + 1, nil
}

func maxDecimals(values ...string) int {
	max := 0
	for _, v := range values {
		if d := decimalPlaces(v); d > max {
			max = d
		}
	}
	return max
}

func decimalPlaces(v string) int {
	idx := strings.IndexByte(v, '.')
	if idx < 0 {
		return 0
	}
	return len(v) - idx - 1
}

type invalidNumberError string

func (e invalidNumberError) Error() string { return "invalid number: " + string(e) }

func errInvalid(v string) error { return invalidNumberError(v) }
