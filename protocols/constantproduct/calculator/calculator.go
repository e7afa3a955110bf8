package calculator

import (
	"errors"
	"math/big"
	"sync"

	constantproduct "github.com/defistate/reserve-simulator-go/protocols/constantproduct"
)

var (
	// one is a pre-computed big.Int for the value 1.
	one = big.NewInt(1)

	// ErrNilAmount is returned when a nil pointer is passed for an amount or reserve.
	ErrNilAmount = errors.New("nil pointer passed as amount")
	// ErrNegativeAmount is returned when an amount or reserve is negative.
	ErrNegativeAmount = errors.New("amount must be non-negative")
	// ErrZeroLiquidity is returned when the post-trade input reserve is zero,
	// which makes the invariant division undefined.
	ErrZeroLiquidity = errors.New("input reserve plus trade amount is zero")
)

// Calculator holds reusable big.Int objects to avoid memory allocations during
// calculations. Instances are NOT safe for concurrent use by themselves; they
// are managed by the sync.Pool below.
type Calculator struct {
	reserveInNew *big.Int
	product      *big.Int
	rem          *big.Int // Dedicated field for remainder calculations
}

// calculatorPool manages a pool of Calculator objects, allowing for safe
// concurrent use of the package-level functions without per-call allocations.
var calculatorPool = sync.Pool{
	New: func() any {
		return &Calculator{
			reserveInNew: new(big.Int),
			product:      new(big.Int),
			rem:          new(big.Int),
		}
	},
}

// SimulateReserveOut recomputes the output-side reserve after a trade of
// alphaIn is credited to the input side, holding the constant-product
// invariant. The division is rounded up so the returned reserve is never
// under-reported relative to the true invariant.
func SimulateReserveOut(alphaIn, reserveIn, reserveOut *big.Int) (*big.Int, error) {
	calc := calculatorPool.Get().(*Calculator)
	defer calculatorPool.Put(calc)
	return calc.simulateReserveOut(alphaIn, reserveIn, reserveOut)
}

// SimulateSwap applies a trade of alphaIn to the pool and returns the
// post-trade pool state. The returned reserves are fresh big.Int instances;
// the input pool is never mutated.
func SimulateSwap(alphaIn *big.Int, pool constantproduct.Pool) (constantproduct.Pool, error) {
	calc := calculatorPool.Get().(*Calculator)
	defer calculatorPool.Put(calc)
	return calc.simulateSwap(alphaIn, pool)
}

// DivRoundingUp writes ceil(a / b) into dest and returns dest. Both operands
// must be non-negative and b must be non-zero.
func DivRoundingUp(dest, a, b *big.Int) *big.Int {
	calc := calculatorPool.Get().(*Calculator)
	defer calculatorPool.Put(calc)
	calc.divRoundingUp(dest, a, b)
	return dest
}

// divRoundingUp writes ceil(a / b) into dest.
func (c *Calculator) divRoundingUp(dest, a, b *big.Int) {
	dest.Div(a, b)
	if c.rem.Rem(a, b).Sign() > 0 {
		dest.Add(dest, one)
	}
}

// simulateReserveOut is the internal calculation method that uses the
// pre-allocated fields.
func (c *Calculator) simulateReserveOut(alphaIn, reserveIn, reserveOut *big.Int) (*big.Int, error) {
	if alphaIn == nil || reserveIn == nil || reserveOut == nil {
		return nil, ErrNilAmount
	}
	if alphaIn.Sign() < 0 || reserveIn.Sign() < 0 || reserveOut.Sign() < 0 {
		return nil, ErrNegativeAmount
	}

	c.reserveInNew.Add(reserveIn, alphaIn)
	if c.reserveInNew.Sign() == 0 {
		return nil, ErrZeroLiquidity
	}

	c.product.Mul(reserveIn, reserveOut)

	// final result must NOT alias the pooled temporaries
	reserveOutNew := new(big.Int)
	c.divRoundingUp(reserveOutNew, c.product, c.reserveInNew)
	return reserveOutNew, nil
}

// simulateSwap is the internal calculation method that uses pre-allocated fields.
func (c *Calculator) simulateSwap(alphaIn *big.Int, pool constantproduct.Pool) (constantproduct.Pool, error) {
	reserveOutNew, err := c.simulateReserveOut(alphaIn, pool.ReserveIn, pool.ReserveOut)
	if err != nil {
		return constantproduct.Pool{}, err
	}

	// simulateReserveOut already validated the operands, so reserveInNew
	// still holds reserveIn + alphaIn here.
	newPoolState := constantproduct.Pool{
		ReserveIn:  new(big.Int).Set(c.reserveInNew),
		ReserveOut: reserveOutNew,
	}

	return newPoolState, nil
}
