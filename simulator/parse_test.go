package simulator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTradeInputs(t *testing.T) {
	testCases := []struct {
		name        string
		args        []string
		expectError bool
	}{
		{
			name: "Valid Triple",
			args: []string{"10", "1000", "500"},
		},
		{
			name: "Valid Zero Values",
			args: []string{"0", "100", "50"},
		},
		{
			name: "Arbitrary Length Literals",
			args: []string{
				"1",
				"115792089237316195423570985008687907853269984665640564039457584007913129639935",
				strings.Repeat("9", 100),
			},
		},
		{
			name:        "Missing Arguments",
			args:        []string{"10", "1000"},
			expectError: true,
		},
		{
			name:        "Too Many Arguments",
			args:        []string{"10", "1000", "500", "1"},
			expectError: true,
		},
		{
			name:        "Empty Argument",
			args:        []string{"10", "", "500"},
			expectError: true,
		},
		{
			name:        "Negative Literal",
			args:        []string{"-10", "1000", "500"},
			expectError: true,
		},
		{
			name:        "Explicit Plus Sign",
			args:        []string{"+10", "1000", "500"},
			expectError: true,
		},
		{
			name:        "Hex Literal",
			args:        []string{"0x10", "1000", "500"},
			expectError: true,
		},
		{
			name:        "Decimal Point",
			args:        []string{"10.5", "1000", "500"},
			expectError: true,
		},
		{
			name:        "Non-Numeric",
			args:        []string{"ten", "1000", "500"},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in, err := ParseTradeInputs(tc.args)

			if tc.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, in)
			assert.Equal(t, tc.args[0], in.AlphaIn.String())
			assert.Equal(t, tc.args[1], in.ReserveIn.String())
			assert.Equal(t, tc.args[2], in.ReserveOut.String())
		})
	}
}
