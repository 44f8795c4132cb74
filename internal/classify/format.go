// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// formatRelevance renders x with two decimals. A value lying exactly halfway
// between two hundredths is rounded away from zero, so 0.125 gives "0.13";
// strconv would round such ties to even.
func formatRelevance(x float64) string {
	if x == 0 {
		return "0.00"
	}
	s := strconv.FormatFloat(x, 'f', 2, 64)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return s
	}

	// 53 mantissa bits times 100 (7 bits) fits exactly in 128 bits.
	scaled := new(big.Float).SetPrec(128).SetFloat64(math.Abs(x))
	scaled.Mul(scaled, big.NewFloat(100))
	cents, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(128).SetInt(cents)
	frac.Sub(scaled, frac)
	if frac.Cmp(big.NewFloat(0.5)) != 0 {
		return s
	}

	cents.Add(cents, big.NewInt(1))
	whole, rem := new(big.Int).QuoRem(cents, big.NewInt(100), new(big.Int))
	sign := ""
	if x < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%d.%02d", sign, whole, rem.Int64())
}
