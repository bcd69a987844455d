package rate

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ZeroDisplay is shown before any calculation and after a reset.
const ZeroDisplay = "Estimated Sea Freight Rate: $0.00"

// Quote is the result of one calculation. It is never cached.
type Quote struct {
	Currency      string
	Amount        float64
	ContainerSize ContainerSize
	GoodsType     GoodsType
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// cents rounds the exact binary value of Amount to two places, ties to even.
// Amount must be finite.
func (q Quote) cents() decimal.Decimal {
	// 1075 fractional digits hold any float64 exactly.
	s := new(big.Float).SetFloat64(q.Amount).Text('f', 1075)
	s = strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
	return decimal.RequireFromString(s).RoundBank(2)
}

// Rounded returns Amount rounded to cents. Non-finite amounts are returned as is.
func (q Quote) Rounded() float64 {
	if !finite(q.Amount) {
		return q.Amount
	}
	f, _ := q.cents().Float64()
	return f
}

// Fixed returns Amount with exactly two decimals, e.g. "1500.00".
func (q Quote) Fixed() string {
	if !finite(q.Amount) {
		return strconv.FormatFloat(q.Amount, 'f', 2, 64)
	}
	return q.cents().StringFixed(2)
}

// Display renders the quote the way users see it.
func (q Quote) Display() string {
	return "Estimated Sea Freight Rate: $" + q.Fixed()
}
