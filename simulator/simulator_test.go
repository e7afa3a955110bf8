package simulator

import (
	"io"
	"log/slog"
	"math/big"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defistate/reserve-simulator-go/abi"
	"github.com/defistate/reserve-simulator-go/protocols/constantproduct/calculator"
)

func newTestSimulator(t *testing.T) *Simulator {
	t.Helper()
	sim, err := New(&Config{
		Registry: prometheus.NewRegistry(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return sim
}

func TestNew_ConfigValidation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := New(&Config{Registry: nil, Logger: logger})
	require.Error(t, err)

	_, err = New(&Config{Registry: prometheus.NewRegistry(), Logger: nil})
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	sim := newTestSimulator(t)

	res, err := sim.Run(&TradeInputs{
		AlphaIn:    big.NewInt(10),
		ReserveIn:  big.NewInt(1000),
		ReserveOut: big.NewInt(500),
	})
	require.NoError(t, err)

	assert.Zero(t, big.NewInt(496).Cmp(res.ReserveOut))
	assert.Equal(t, "0x"+strings.Repeat("0", 61)+"1f0", res.Encoded)
}

func TestRun_ZeroLiquidity(t *testing.T) {
	sim := newTestSimulator(t)

	_, err := sim.Run(&TradeInputs{
		AlphaIn:    big.NewInt(0),
		ReserveIn:  big.NewInt(0),
		ReserveOut: big.NewInt(50),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, calculator.ErrZeroLiquidity)
}

func TestRun_NilInputs(t *testing.T) {
	sim := newTestSimulator(t)

	_, err := sim.Run(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = sim.Run(&TradeInputs{})
	require.Error(t, err)
	assert.ErrorIs(t, err, calculator.ErrNilAmount)
}

// TestRun_ParseToEncode exercises the full pipeline the CLI uses: text
// arguments in, ABI word out.
func TestRun_ParseToEncode(t *testing.T) {
	sim := newTestSimulator(t)

	in, err := ParseTradeInputs([]string{"0", "100", "50"})
	require.NoError(t, err)

	res, err := sim.Run(in)
	require.NoError(t, err)
	assert.Equal(t, "0x"+strings.Repeat("0", 62)+"32", res.Encoded)

	decoded, err := abi.DecodeUint256(res.Encoded)
	require.NoError(t, err)
	assert.Zero(t, big.NewInt(50).Cmp(decoded))
}

func TestRun_MaxRangeReserves(t *testing.T) {
	sim := newTestSimulator(t)

	maxUint256 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	res, err := sim.Run(&TradeInputs{
		AlphaIn:    big.NewInt(0),
		ReserveIn:  big.NewInt(1),
		ReserveOut: new(big.Int).Set(maxUint256),
	})
	require.NoError(t, err)
	assert.Equal(t, "0x"+strings.Repeat("f", 64), res.Encoded)
}

// Inputs are arbitrary precision, so a result past 2^256-1 is reachable and
// must fail the encoding step instead of wrapping.
func TestRun_ResultOutOfRange(t *testing.T) {
	sim := newTestSimulator(t)

	_, err := sim.Run(&TradeInputs{
		AlphaIn:    big.NewInt(0),
		ReserveIn:  big.NewInt(1),
		ReserveOut: new(big.Int).Lsh(big.NewInt(1), 256),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, abi.ErrUint256Range)
}
