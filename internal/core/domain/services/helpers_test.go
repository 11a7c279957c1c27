package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// buildOrder creates an order owned by customerID and walks it to status.
// Every mutation uses at, so createdAt and updatedAt both equal at.
func buildOrder(t *testing.T, customerID kernel.UUID, status order.Status, riderID *kernel.UUID, cents int64, at time.Time) *order.Order {
	t.Helper()

	li, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "Ceiling Fan", kernel.NewColor("Oak", "#806517"),
		"52 inch", kernel.MustMoney(cents), 1, "ceiling.jpg")
	require.NoError(t, err)
	addr, err := kernel.NewAddress("Customer", "1 Main St", "Faro", "", "8000", "PT")
	require.NoError(t, err)
	contact, err := kernel.NewContactInfo("customer@example.com", "")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.LineItem{li}, addr, contact, "card", at)
	require.NoError(t, err)
	if status == order.Pending {
		return o
	}

	require.NoError(t, o.MarkPaid(at))
	switch status {
	case order.Paid:
	case order.Cancelled:
		require.NoError(t, o.Cancel(at))
	default:
		if riderID == nil {
			id := kernel.NewUUID()
			riderID = &id
		}
		require.NoError(t, o.AssignRider(*riderID, at))
		if status.HasDeliveryAttempt() {
			require.NoError(t, o.RecordDeliveryAttempt(status, at))
		}
	}
	return o
}

func newRiderUser(t *testing.T, role account.Role) *account.User {
	t.Helper()
	u, err := account.NewUser(kernel.NewUUID(), "sub-"+string(role), string(role)+"@example.com", "Rider", role, time.Now())
	require.NoError(t, err)
	return u
}
