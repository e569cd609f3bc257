package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivambansal96/salon-Billing/models"
)

func testInvoice() models.Invoice {
	return models.Invoice{
		ID:           "tx_1700000000000_ab12cd",
		CustomerID:   "cust_9876543210",
		CustomerName: "Priya",
		PhoneNumber:  "9876543210",
		Date:         time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
		Services: []models.LineItem{
			{ServiceName: "Gold Facial", Category: "Facial", RegularPrice: 1200, MemberPrice: 1100, Price: 1200, Gender: "women"},
		},
		PaymentMode: "Cash",
		Totals:      models.Totals{ServicesTotal: 1200, Subtotal: 1200, Total: 1200},
	}
}

func TestBillURLWithoutSecret(t *testing.T) {
	share := NewShareLinks("http://localhost:8080/", "", "91")
	url := share.BillURL(testInvoice())
	assert.Equal(t, "http://localhost:8080/bill/tx_1700000000000_ab12cd", url)
}

func TestBillURLCarriesSignedToken(t *testing.T) {
	share := NewShareLinks("http://localhost:8080", "test-secret", "91")
	inv := testInvoice()

	url := share.BillURL(inv)
	require.Contains(t, url, "?d=")

	token := url[strings.Index(url, "?d=")+3:]
	decoded, err := share.DecodeInvoiceToken(token)
	require.NoError(t, err)
	assert.Equal(t, inv.ID, decoded.ID)
	assert.Equal(t, inv.Totals.Total, decoded.Totals.Total)
	require.Len(t, decoded.Services, 1)
	assert.Equal(t, "Gold Facial", decoded.Services[0].ServiceName)
}

func TestDecodeInvoiceTokenRejectsTampering(t *testing.T) {
	signer := NewShareLinks("http://localhost:8080", "secret-a", "91")
	verifier := NewShareLinks("http://localhost:8080", "secret-b", "91")

	url := signer.BillURL(testInvoice())
	token := url[strings.Index(url, "?d=")+3:]

	_, err := verifier.DecodeInvoiceToken(token)
	assert.Error(t, err)
}

func TestDecodeInvoiceTokenWithoutSecret(t *testing.T) {
	share := NewShareLinks("http://localhost:8080", "", "91")
	_, err := share.DecodeInvoiceToken("anything")
	assert.Error(t, err)
}

func TestWhatsAppLinkPrefixesCountryCode(t *testing.T) {
	share := NewShareLinks("http://localhost:8080", "", "91")
	cust := models.Customer{Name: "Priya", Phone: "98765 43210"}

	link := share.WhatsAppLink(cust, testInvoice())
	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="))
	assert.Contains(t, link, "text=Dear")
}

func TestWhatsAppLinkKeepsExistingCountryCode(t *testing.T) {
	share := NewShareLinks("http://localhost:8080", "", "91")
	cust := models.Customer{Name: "Priya", Phone: "+91 9876543210"}

	link := share.WhatsAppLink(cust, testInvoice())
	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="))
}
