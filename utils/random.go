package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateDigits returns n random decimal digits.
func GenerateDigits(n int) (string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	value, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", n, value), nil
}

// GenerateOrderNumber builds a human-shareable order token: "BC" plus the
// last six digits of the current millisecond timestamp plus four random
// digits, e.g. BC1234567890.
func GenerateOrderNumber() (string, error) {
	timestamp := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(timestamp) > 6 {
		timestamp = timestamp[len(timestamp)-6:]
	}
	random, err := GenerateDigits(4)
	if err != nil {
		return "", err
	}
	return "BC" + timestamp + random, nil
}
