package simulator

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidArgument is returned when a trade argument is missing, not a
// base-10 integer literal, or carries a sign.
var ErrInvalidArgument = errors.New("invalid trade argument")

var inputNames = [3]string{"alphaIn", "reserveIn", "reserveOut"}

// ParseTradeInputs converts the three positional command-line arguments
// <alphaIn> <reserveIn> <reserveOut> into typed values. Each argument must be
// an unsigned base-10 integer literal of arbitrary length; anything else
// fails with ErrInvalidArgument.
func ParseTradeInputs(args []string) (*TradeInputs, error) {
	if len(args) != len(inputNames) {
		return nil, fmt.Errorf("%w: want 3 arguments <alphaIn> <reserveIn> <reserveOut>, got %d", ErrInvalidArgument, len(args))
	}

	var values [3]*big.Int
	for i, raw := range args {
		v, err := parseUnsigned(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", inputNames[i], err)
		}
		values[i] = v
	}

	return &TradeInputs{
		AlphaIn:    values[0],
		ReserveIn:  values[1],
		ReserveOut: values[2],
	}, nil
}

func parseUnsigned(raw string) (*big.Int, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: empty argument", ErrInvalidArgument)
	}
	// big.Int.SetString accepts a leading sign; the CLI contract does not.
	if raw[0] == '+' || raw[0] == '-' {
		return nil, fmt.Errorf("%w: signed literal %q", ErrInvalidArgument, raw)
	}

	v, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a base-10 integer", ErrInvalidArgument, raw)
	}
	return v, nil
}
