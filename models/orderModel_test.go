package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidOrderStatus(t *testing.T) {
	for _, status := range []string{
		StatusPending, StatusConfirmed, StatusPreparing,
		StatusOutForDelivery, StatusDelivered, StatusCancelled,
	} {
		require.True(t, IsValidOrderStatus(status), status)
	}
	require.False(t, IsValidOrderStatus("shipped"))
	require.False(t, IsValidOrderStatus(""))
	require.False(t, IsValidOrderStatus("Pending"))
}

func TestCanCancel_OnlyFromPending(t *testing.T) {
	require.True(t, CanCancel(StatusPending))

	for _, status := range []string{
		StatusConfirmed, StatusPreparing, StatusOutForDelivery,
		StatusDelivered, StatusCancelled,
	} {
		require.False(t, CanCancel(status), status)
	}
}

func TestIsValidPaymentMethod(t *testing.T) {
	for _, method := range []string{PaymentCredit, PaymentDebit, PaymentPaypal, PaymentCash} {
		require.True(t, IsValidPaymentMethod(method), method)
	}
	require.False(t, IsValidPaymentMethod("bitcoin"))
	require.False(t, IsValidPaymentMethod(""))
}
