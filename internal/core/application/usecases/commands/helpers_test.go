package commands_test

import (
	"testing"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func timeNow() time.Time {
	return time.Now().UTC()
}

func mustMoney(t *testing.T, value string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(value)
	require.NoError(t, err)
	return m
}

func makeAddress(t *testing.T) order.Address {
	t.Helper()
	addr, err := order.NewAddress("Asha Rao", "+91-9000000000", "14 MG Road", "", "Bengaluru", "560001")
	require.NoError(t, err)
	return addr
}

func makeItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem("Green Tea", "250g", "SKU-TEA", mustMoney(t, "100"), 2)
	require.NoError(t, err)
	return []order.Item{item}
}

// makeOrder builds a freshly placed order with a 200 subtotal, 50 shipping
// charge, and 250 total.
func makeOrder(t *testing.T, method order.PaymentMethod) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), "ORD-TEST00000001", method, makeAddress(t), makeItems(t),
		mustMoney(t, "200"), kernel.ZeroMoney(), mustMoney(t, "50"), mustMoney(t, "250"),
	)
	require.NoError(t, err)
	return o
}

// makePaidOrder builds an order whose online payment already succeeded.
func makePaidOrder(t *testing.T) *order.Order {
	t.Helper()
	o := makeOrder(t, order.MethodOnline)
	require.NoError(t, o.MarkPaid())
	return o
}
