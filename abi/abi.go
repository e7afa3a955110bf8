// Package abi encodes and decodes single uint256 words using the fixed-width
// ABI convention for contract calls: 32 big-endian bytes, rendered as a
// 0x-prefixed lowercase hex string.
package abi

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// encodedLen is len("0x") plus the 64 hex digits of a 32-byte word.
const encodedLen = 2 + 2*32

var (
	// ErrNilValue is returned when a nil pointer is passed for a value.
	ErrNilValue = errors.New("nil pointer passed as value")
	// ErrUint256Range is returned when a value cannot be represented as a uint256.
	ErrUint256Range = errors.New("value outside uint256 range")
	// ErrMalformedEncoding is returned when a string is not a canonical uint256 word.
	ErrMalformedEncoding = errors.New("malformed uint256 encoding")
)

// EncodeUint256 serializes v as a single ABI word. Values that are negative
// or need more than 256 bits fail with ErrUint256Range rather than wrapping.
func EncodeUint256(v *big.Int) (string, error) {
	if v == nil {
		return "", ErrNilValue
	}
	if v.Sign() < 0 {
		return "", fmt.Errorf("%w: negative value %s", ErrUint256Range, v)
	}

	word, overflow := uint256.FromBig(v)
	if overflow {
		return "", fmt.Errorf("%w: %s exceeds 2^256-1", ErrUint256Range, v)
	}

	buf := word.Bytes32()
	return hexutil.Encode(buf[:]), nil
}

// DecodeUint256 is the inverse of EncodeUint256. It requires the 0x prefix
// and exactly 64 hex digits.
func DecodeUint256(s string) (*big.Int, error) {
	if len(s) != encodedLen {
		return nil, fmt.Errorf("%w: want %d characters, got %d", ErrMalformedEncoding, encodedLen, len(s))
	}

	buf, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}

	return new(big.Int).SetBytes(buf), nil
}
