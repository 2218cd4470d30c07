package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/recipient"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCourier(t *testing.T, id kernel.UUID) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(id, "John Doe", "john@example.com")
	require.NoError(t, err)
	return c
}

func testRecipient(t *testing.T, id kernel.UUID) *recipient.Recipient {
	t.Helper()
	r, err := recipient.NewRecipient(id, "Jane Smith", recipient.Address{
		Street: "Baker Street",
		Number: "221B",
		City:   "London",
		State:  "LDN",
		Zip:    "NW1 6XE",
	})
	require.NoError(t, err)
	return r
}

func pendingDelivery(t *testing.T, id, courierID, recipientID kernel.UUID) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(id, "Mechanical keyboard", courierID, recipientID,
		time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return d
}

func pickedUpDelivery(t *testing.T, id, courierID, recipientID kernel.UUID) *delivery.Delivery {
	t.Helper()
	d := pendingDelivery(t, id, courierID, recipientID)
	require.NoError(t, d.MarkPickedUp(time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)))
	return d
}

func cancelledDelivery(t *testing.T, id, courierID, recipientID kernel.UUID) *delivery.Delivery {
	t.Helper()
	d := pendingDelivery(t, id, courierID, recipientID)
	require.NoError(t, d.MarkCancelled(time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC)))
	return d
}

func deliveredDelivery(t *testing.T, id, courierID, recipientID kernel.UUID) *delivery.Delivery {
	t.Helper()
	d := pickedUpDelivery(t, id, courierID, recipientID)
	require.NoError(t, d.MarkDelivered(time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC), kernel.NewUUID()))
	return d
}
