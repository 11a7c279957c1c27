package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func actorWithRole(role account.Role) *account.Actor {
	return &account.Actor{ID: kernel.NewUUID(), Email: string(role) + "@example.com", Name: string(role), Role: role}
}

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("Ana Silva", "Rua Augusta 10", "Lisboa", "", "1100-053", "PT")
	require.NoError(t, err)
	return addr
}

func testContact(t *testing.T) kernel.ContactInfo {
	t.Helper()
	contact, err := kernel.NewContactInfo("ana@example.com", "+351900000000")
	require.NoError(t, err)
	return contact
}

func testProduct(t *testing.T, name string, cents int64, stock int) *catalog.Product {
	t.Helper()
	v, err := catalog.NewVariant(kernel.NewUUID(), kernel.NewColor("White", "#FFFFFF"), "16 inch",
		kernel.MustMoney(cents), stock, name+"-WHT")
	require.NoError(t, err)
	p, err := catalog.NewProduct(kernel.NewUUID(), name, "", "fans", []string{name + ".jpg"},
		[]catalog.Variant{v}, testNow)
	require.NoError(t, err)
	return p
}

func testUser(t *testing.T, role account.Role) *account.User {
	t.Helper()
	u, err := account.NewUser(kernel.NewUUID(), "sub-"+kernel.NewUUID().String(),
		kernel.NewUUID().String()[:8]+"@example.com", "Test "+string(role), role, testNow)
	require.NoError(t, err)
	return u
}

// testOrder builds an order owned by customerID in the given status. For
// rider statuses riderID is used as the assigned rider.
func testOrder(t *testing.T, customerID kernel.UUID, status order.Status, riderID *kernel.UUID) *order.Order {
	t.Helper()

	first, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "Desk Fan", kernel.NewColor("White", "#FFFFFF"),
		"16 inch", kernel.MustMoney(3000), 2, "desk.jpg")
	require.NoError(t, err)
	second, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "Window AC", kernel.NewColor("Grey", "#808080"),
		"1 ton", kernel.MustMoney(5000), 1, "ac.jpg")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.LineItem{first, second},
		testAddress(t), testContact(t), "card", testNow.Add(-time.Hour))
	require.NoError(t, err)
	if status == order.Pending {
		return o
	}
	require.NoError(t, o.MarkPaid(testNow.Add(-time.Hour)))

	switch status {
	case order.Paid:
	case order.Cancelled:
		require.NoError(t, o.Cancel(testNow.Add(-time.Hour)))
	default:
		require.NotNil(t, riderID)
		require.NoError(t, o.AssignRider(*riderID, testNow.Add(-time.Hour)))
		if status.HasDeliveryAttempt() {
			require.NoError(t, o.RecordDeliveryAttempt(status, testNow.Add(-time.Hour)))
		}
	}
	return o
}
