package constantproduct

import "math/big"

// Pool is a two-sided constant-product pair, oriented for a single trade
// direction: the trade amount is credited to ReserveIn and ReserveOut is
// recomputed from the invariant.
type Pool struct {
	ReserveIn  *big.Int `json:"reserveIn"`
	ReserveOut *big.Int `json:"reserveOut"`
}
