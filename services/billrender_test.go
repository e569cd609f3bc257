package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivambansal96/salon-Billing/models"
)

func TestRenderReceiptText(t *testing.T) {
	inv := testInvoice()
	receipt := RenderReceiptText(inv)

	assert.Contains(t, receipt, "GREAT LOOK PROFESSIONALS")
	assert.Contains(t, receipt, "Customer Name: Priya")
	assert.Contains(t, receipt, "Gold Facial")
	assert.Contains(t, receipt, "TOTAL:             Rs.1200.00")
	assert.Contains(t, receipt, "Payment Mode:      Cash")
	assert.NotContains(t, receipt, "Discount:")
	assert.NotContains(t, receipt, "Membership:")
}

func TestRenderReceiptTextWalkInAndDiscount(t *testing.T) {
	inv := testInvoice()
	inv.CustomerName = ""
	inv.Membership = "Green Card"
	inv.Totals.Discount = 100
	inv.Totals.Total = 1100
	inv.Totals.AmountSaved = 100

	receipt := RenderReceiptText(inv)
	assert.Contains(t, receipt, "Customer Name: Walk-in Customer")
	assert.Contains(t, receipt, "Membership: Green Card")
	assert.Contains(t, receipt, "Discount:          Rs.100.00")
	assert.Contains(t, receipt, "Amount Saved:      Rs.100.00")
	assert.Contains(t, receipt, "TOTAL:             Rs.1100.00")
}

func TestRenderReceiptTextIsDeterministic(t *testing.T) {
	inv := testInvoice()
	assert.Equal(t, RenderReceiptText(inv), RenderReceiptText(inv))
}

func TestRenderInvoiceHTML(t *testing.T) {
	inv := testInvoice()
	page, err := RenderInvoiceHTML(inv, nil)
	require.NoError(t, err)

	assert.Contains(t, page, "Great Look Professional Unisex Studio")
	assert.Contains(t, page, inv.ID)
	assert.Contains(t, page, "Priya")
	assert.Contains(t, page, "Gold Facial")
	assert.Contains(t, page, "1200.00")
	assert.NotContains(t, page, "Membership Savings")
}

func TestRenderInvoiceHTMLPrefersCustomerRecord(t *testing.T) {
	inv := testInvoice()
	inv.CustomerName = ""
	inv.PhoneNumber = ""

	cust := &models.Customer{
		Name:  "Priya Sharma",
		Phone: "9876543210",
		MembershipOwned: &models.MembershipOwnership{
			MembershipID:   models.GreenCardID,
			MembershipName: "Green Card",
		},
	}

	page, err := RenderInvoiceHTML(inv, cust)
	require.NoError(t, err)
	assert.Contains(t, page, "Priya Sharma")
	assert.Contains(t, page, "9876543210")
	assert.Contains(t, page, "Membership: Green Card")
}

func TestRenderInvoiceHTMLShowsPurchaseAndSavings(t *testing.T) {
	inv := testInvoice()
	inv.PurchasedMembership = &models.Membership{ID: models.GreenCardID, Name: "Green Card", Price: 3000}
	inv.Totals.MembershipCost = 3000
	inv.Totals.AmountSaved = 100

	page, err := RenderInvoiceHTML(inv, nil)
	require.NoError(t, err)
	assert.True(t, strings.Contains(page, "Membership Purchase (Green Card)"))
	assert.True(t, strings.Contains(page, "Membership Savings"))
}
