package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivambansal96/salon-Billing/models"
	"github.com/Shivambansal96/salon-Billing/store"
)

func testLedger(t *testing.T) (*Ledger, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	return NewLedger(mem, true), mem
}

func cartWith(items ...models.CatalogService) *Cart {
	cart := &Cart{}
	for _, svc := range items {
		cart.AddItem(svc, "women")
	}
	return cart
}

func TestFinalizeInvoiceRequiresNameOrPhone(t *testing.T) {
	l, _ := testLedger(t)
	_, err := l.FinalizeInvoice(cartWith(goldFacial), CustomerFields{}, time.Now())

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "customer name or phone number is required", vErr.Reason)
}

func TestFinalizeInvoiceRequiresItems(t *testing.T) {
	l, _ := testLedger(t)
	_, err := l.FinalizeInvoice(&Cart{}, CustomerFields{Name: "Priya"}, time.Now())

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "at least one service is required", vErr.Reason)
}

func TestFinalizeInvoiceRejectsBadPhone(t *testing.T) {
	l, _ := testLedger(t)
	fields := CustomerFields{Name: "Priya", Phone: "12345"}
	_, err := l.FinalizeInvoice(cartWith(goldFacial), fields, time.Now())

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "invalid phone number format", vErr.Reason)
}

func TestFinalizeInvoiceDefaultsPaymentModeToCash(t *testing.T) {
	l, _ := testLedger(t)
	inv, err := l.FinalizeInvoice(cartWith(goldFacial), CustomerFields{Name: "Priya"}, time.Now())

	require.NoError(t, err)
	assert.Equal(t, "Cash", inv.PaymentMode)
}

func TestFinalizeInvoiceSnapshotsCart(t *testing.T) {
	l, _ := testLedger(t)
	cart := cartWith(goldFacial)
	now := time.Now()

	inv, err := l.FinalizeInvoice(cart, CustomerFields{Name: "Priya", Phone: "9876543210"}, now)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(inv.ID, store.PrefixTransaction))
	assert.Equal(t, "cust_9876543210", inv.CustomerID)
	assert.Equal(t, now, inv.Date)
	require.Len(t, inv.Services, 1)
	assert.Equal(t, 1200.0, inv.Totals.Total)

	// Mutating the cart afterwards must not leak into the invoice.
	cart.SetMembership(true)
	assert.Equal(t, 1200.0, inv.Services[0].Price)
}

func TestDeriveCustomerIDWalkIn(t *testing.T) {
	now := time.Now()
	id1 := DeriveCustomerID("", now)
	id2 := DeriveCustomerID("", now)

	assert.True(t, strings.HasPrefix(id1, store.PrefixCustomer))
	assert.NotEqual(t, id1, id2)
}

func TestSubmitBillCreatesCustomer(t *testing.T) {
	l, mem := testLedger(t)
	ctx := context.Background()
	fields := CustomerFields{Name: "Priya", Phone: "9876543210", DOB: "1995-04-12"}

	inv, cust, err := l.SubmitBill(ctx, cartWith(goldFacial), fields, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "cust_9876543210", cust.ID)
	assert.Equal(t, []string{inv.ID}, cust.Visits)
	assert.Equal(t, 1200.0, cust.TotalSpent)
	require.NotNil(t, cust.LastVisit)

	var storedInv models.Invoice
	require.NoError(t, store.GetJSON(ctx, mem, inv.ID, &storedInv))
	assert.Equal(t, inv.ID, storedInv.ID)

	var storedCust models.Customer
	require.NoError(t, store.GetJSON(ctx, mem, cust.ID, &storedCust))
	assert.Equal(t, cust.Visits, storedCust.Visits)
}

func TestSubmitBillAccumulatesAcrossVisits(t *testing.T) {
	l, _ := testLedger(t)
	ctx := context.Background()
	fields := CustomerFields{Name: "Priya", Phone: "9876543210"}

	inv1, _, err := l.SubmitBill(ctx, cartWith(goldFacial), fields, time.Now())
	require.NoError(t, err)
	inv2, cust, err := l.SubmitBill(ctx, cartWith(aromaFacial), fields, time.Now())
	require.NoError(t, err)

	assert.Equal(t, []string{inv1.ID, inv2.ID}, cust.Visits)
	assert.Equal(t, 1950.0, cust.TotalSpent)
}

func TestSubmitBillIssuesGreenCardOnPurchase(t *testing.T) {
	l, _ := testLedger(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	greenCard := models.Membership{ID: models.GreenCardID, Name: "Green Card", Discount: 10, Price: 3000}
	cart := cartWith(goldFacial)
	cart.SelectPurchase(&greenCard)

	inv, cust, err := l.SubmitBill(ctx, cart, CustomerFields{Name: "Priya", Phone: "9876543210", CardNumber: "GC-042"}, now)
	require.NoError(t, err)

	require.NotNil(t, inv.MembershipCard)
	require.NotNil(t, cust.MembershipOwned)
	assert.Equal(t, "Green Card", cust.MembershipOwned.MembershipName)
	assert.Equal(t, "GC-042", cust.MembershipOwned.CardNumber)
	require.NotNil(t, cust.MembershipOwned.ExpiryDate)
	assert.Equal(t, now.AddDate(1, 0, 0), *cust.MembershipOwned.ExpiryDate)

	assert.True(t, l.MembershipActiveFor(ctx, "9876543210", now))
	assert.False(t, l.MembershipActiveFor(ctx, "9876543210", now.AddDate(1, 0, 1)))
}

func TestSubmitBillRecordsCardForAppliedPricingWithoutOne(t *testing.T) {
	l, _ := testLedger(t)
	ctx := context.Background()
	now := time.Now()

	cart := cartWith(goldFacial)
	cart.SetMembership(true)

	inv, cust, err := l.SubmitBill(ctx, cart, CustomerFields{Name: "Priya", Phone: "9876543210"}, now)
	require.NoError(t, err)

	assert.Equal(t, "Green Card", inv.Membership)
	require.NotNil(t, cust.MembershipOwned)
	assert.Equal(t, models.GreenCardID, cust.MembershipOwned.MembershipID)
	assert.True(t, cust.MembershipOwned.ActiveAt(now))
}

func TestSubmitBillKeepsExistingCardWhenStillValid(t *testing.T) {
	l, _ := testLedger(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	fields := CustomerFields{Name: "Priya", Phone: "9876543210"}

	greenCard := models.Membership{ID: models.GreenCardID, Name: "Green Card", Price: 3000}
	first := cartWith(goldFacial)
	first.SelectPurchase(&greenCard)
	_, bought, err := l.SubmitBill(ctx, first, fields, now)
	require.NoError(t, err)

	second := cartWith(aromaFacial)
	second.SetMembership(true)
	_, cust, err := l.SubmitBill(ctx, second, fields, now.AddDate(0, 1, 0))
	require.NoError(t, err)

	// The card on file survives; applying member pricing must not reissue it.
	assert.Equal(t, bought.MembershipOwned.DateOfIssue, cust.MembershipOwned.DateOfIssue)
}

func TestSubmitBillTracksServiceCardUsage(t *testing.T) {
	l, _ := testLedger(t)
	ctx := context.Background()

	serviceCard := models.Membership{
		ID: models.ServiceCardID, Name: "Service Card",
		ServicesNum: 6, TimesNum: 12, Price: 5000,
	}
	cart := cartWith(goldFacial, aromaFacial)
	cart.SelectPurchase(&serviceCard)

	_, cust, err := l.SubmitBill(ctx, cart, CustomerFields{Name: "Priya", Phone: "9876543210"}, time.Now())
	require.NoError(t, err)

	require.Len(t, cust.ServiceCardUsages, 2)
	assert.Equal(t, "Gold Facial", cust.ServiceCardUsages[0].Service)
	assert.Equal(t, "Facial", cust.ServiceCardUsages[0].Category)
	assert.Equal(t, "Aroma Facial", cust.ServiceCardUsages[1].Service)
}

func TestSubmitBillValidationLeavesStoreUntouched(t *testing.T) {
	l, mem := testLedger(t)
	ctx := context.Background()

	_, _, err := l.SubmitBill(ctx, &Cart{}, CustomerFields{Name: "Priya"}, time.Now())
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	keys, err := mem.List(ctx, store.PrefixTransaction)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestMembershipActiveForUnknownCustomer(t *testing.T) {
	l, _ := testLedger(t)
	assert.False(t, l.MembershipActiveFor(context.Background(), "9999999999", time.Now()))
	assert.False(t, l.MembershipActiveFor(context.Background(), "", time.Now()))
}

func TestMembershipActiveForCardWithoutExpiry(t *testing.T) {
	l, mem := testLedger(t)
	ctx := context.Background()

	issue := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	cust := models.Customer{
		ID:    "cust_9876543210",
		Name:  "Priya",
		Phone: "9876543210",
		MembershipOwned: &models.MembershipOwnership{
			MembershipID:   models.GreenCardID,
			MembershipName: "Green Card",
			DateOfIssue:    &issue,
		},
	}
	require.NoError(t, store.SetJSON(ctx, mem, cust.ID, cust))

	// Records stored without an expiry date never lapse.
	assert.True(t, l.MembershipActiveFor(ctx, "9876543210", time.Now()))
}
