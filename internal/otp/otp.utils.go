package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// randomCode draws uniformly from [10^(digits-1), 10^digits - 1], so the
// code always has exactly `digits` digits.
func randomCode(digits int) string {
	low := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits-1)), nil)
	span := new(big.Int).Mul(low, big.NewInt(9))
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf("%d", n.Add(n, low))
}
