package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var orderNumberShape = regexp.MustCompile(`^BC\d{10}$`)

func TestGenerateOrderNumber_Shape(t *testing.T) {
	for i := 0; i < 50; i++ {
		number, err := GenerateOrderNumber()
		require.NoError(t, err)
		require.Regexp(t, orderNumberShape, number)
	}
}

func TestGenerateDigits_LengthAndCharset(t *testing.T) {
	digitsOnly := regexp.MustCompile(`^\d+$`)
	for _, n := range []int{1, 4, 6, 10} {
		value, err := GenerateDigits(n)
		require.NoError(t, err)
		require.Len(t, value, n)
		require.Regexp(t, digitsOnly, value)
	}
}
