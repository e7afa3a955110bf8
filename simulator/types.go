package simulator

import "math/big"

// TradeInputs are the three operands of one reserve simulation.
type TradeInputs struct {
	// AlphaIn is the trade amount credited to the input-side reserve.
	AlphaIn *big.Int `json:"alphaIn"`
	// ReserveIn is the current input-side reserve.
	ReserveIn *big.Int `json:"reserveIn"`
	// ReserveOut is the current output-side reserve.
	ReserveOut *big.Int `json:"reserveOut"`
}

// Result is the outcome of one simulation: the recomputed output-side
// reserve and its ABI uint256 encoding.
type Result struct {
	ReserveOut *big.Int `json:"reserveOut"`
	Encoded    string   `json:"encoded"`
}
