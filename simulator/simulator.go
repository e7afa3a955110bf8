// Package simulator ties argument parsing, the constant-product reserve
// calculation, and ABI encoding into one operation.
package simulator

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/defistate/reserve-simulator-go/abi"
	"github.com/defistate/reserve-simulator-go/protocols/constantproduct/calculator"
)

// Config holds the simulator's dependencies.
type Config struct {
	Registry prometheus.Registerer // Required for metrics.
	Logger   *slog.Logger          // Required for logging.
}

// validate checks if the configuration is valid, ensuring required dependencies are present.
func (c *Config) validate() error {
	if c.Registry == nil {
		return errors.New("config: Registry cannot be nil")
	}
	if c.Logger == nil {
		return errors.New("config: Logger cannot be nil")
	}
	return nil
}

// Simulator runs reserve simulations and encodes their results.
type Simulator struct {
	metrics *Metrics
	logger  *slog.Logger
}

// New constructs a Simulator from a configuration, returning an error if the
// config is invalid.
func New(cfg *Config) (*Simulator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Simulator{
		metrics: NewMetrics(cfg.Registry),
		logger:  cfg.Logger,
	}, nil
}

// Run computes the post-trade output reserve for the given inputs and encodes
// it as an ABI uint256 word. Errors from the calculator and the encoder are
// wrapped, so callers can match the package sentinels with errors.Is.
func (s *Simulator) Run(in *TradeInputs) (*Result, error) {
	totalTimer := prometheus.NewTimer(s.metrics.runDuration.WithLabelValues())
	defer totalTimer.ObserveDuration()

	if in == nil {
		s.metrics.runsTotal.WithLabelValues("invalid_input").Inc()
		return nil, fmt.Errorf("%w: nil inputs", ErrInvalidArgument)
	}

	reserveOutNew, err := calculator.SimulateReserveOut(in.AlphaIn, in.ReserveIn, in.ReserveOut)
	if err != nil {
		s.metrics.runsTotal.WithLabelValues(outcomeLabel(err)).Inc()
		return nil, fmt.Errorf("simulate reserves: %w", err)
	}

	encoded, err := abi.EncodeUint256(reserveOutNew)
	if err != nil {
		s.metrics.runsTotal.WithLabelValues("encode_error").Inc()
		return nil, fmt.Errorf("encode result: %w", err)
	}

	s.metrics.runsTotal.WithLabelValues("ok").Inc()
	s.logger.Debug("simulated reserve update",
		"alphaIn", in.AlphaIn.String(),
		"reserveIn", in.ReserveIn.String(),
		"reserveOut", in.ReserveOut.String(),
		"reserveOutNew", reserveOutNew.String(),
	)

	return &Result{ReserveOut: reserveOutNew, Encoded: encoded}, nil
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, calculator.ErrZeroLiquidity):
		return "zero_liquidity"
	case errors.Is(err, calculator.ErrNilAmount), errors.Is(err, calculator.ErrNegativeAmount):
		return "invalid_input"
	default:
		return "error"
	}
}
