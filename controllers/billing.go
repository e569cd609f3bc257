// controllers/billing.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shivambansal96/salon-Billing/models"
	"github.com/Shivambansal96/salon-Billing/services"
	"github.com/Shivambansal96/salon-Billing/store"
	"github.com/Shivambansal96/salon-Billing/utils"
)

// BillItemInput selects one catalog service for the cart.
type BillItemInput struct {
	Gender  string `json:"gender" binding:"required,oneof=women men"`
	Service string `json:"service" binding:"required"`
	StaffID int    `json:"staffId"`
}

// CreateBillInput defines the expected JSON structure for submitting a bill.
type CreateBillInput struct {
	CustomerName string          `json:"customerName"`
	PhoneNumber  string          `json:"phoneNumber"`
	DOB          string          `json:"dob"`
	Items        []BillItemInput `json:"items"`

	// nil means auto-detect from the customer's membership on file.
	ApplyMembership *bool `json:"applyMembership"`

	DiscountValue float64 `json:"discountValue"`
	DiscountType  string  `json:"discountType" binding:"omitempty,oneof=fixed percentage"`

	PurchaseMembershipID int        `json:"purchaseMembershipId"`
	CardNumber           string     `json:"cardNumber"`
	DateOfIssue          *time.Time `json:"dateOfIssue"`
	ExpiryDate           *time.Time `json:"expiryDate"`

	PaymentMode string `json:"paymentMode"`
	Print       bool   `json:"print"`
}

// BillingController handles bill submission and live totals preview.
type BillingController struct {
	Ledger  *services.Ledger
	Catalog models.Catalog
	Docs    store.Documents
	Share   *services.ShareLinks
}

// buildCart resolves the request against the catalog, staff roster and
// membership catalog into a priced cart.
func (bc *BillingController) buildCart(c *gin.Context, input CreateBillInput) (*services.Cart, bool) {
	cart := &services.Cart{}

	var staff []models.Staff
	if err := store.GetJSON(c.Request.Context(), bc.Docs, store.KeyStaff, &staff); err != nil && !errors.Is(err, store.ErrNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load staff roster")
		return nil, false
	}

	for _, item := range input.Items {
		svc, ok := bc.Catalog.Find(item.Gender, item.Service)
		if !ok {
			utils.RespondWithError(c, http.StatusBadRequest, "Service not found: "+item.Service)
			return nil, false
		}
		cart.AddItem(svc, item.Gender)
		if member, ok := models.FindStaff(staff, item.StaffID); ok {
			cart.AssignStaff(len(cart.Items)-1, member)
		}
	}

	if input.ApplyMembership != nil {
		cart.SetMembership(*input.ApplyMembership)
	} else {
		active := bc.Ledger.MembershipActiveFor(c.Request.Context(), input.PhoneNumber, time.Now())
		cart.SetMembership(active)
	}

	cart.SetDiscount(input.DiscountValue, services.DiscountMode(input.DiscountType))

	if input.PurchaseMembershipID != 0 {
		var memberships []models.Membership
		if err := store.GetJSON(c.Request.Context(), bc.Docs, store.KeyMemberships, &memberships); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load membership catalog")
			return nil, false
		}
		m, ok := models.FindMembership(memberships, input.PurchaseMembershipID)
		if !ok {
			utils.RespondWithError(c, http.StatusBadRequest, "Membership not found")
			return nil, false
		}
		cart.SelectPurchase(&m)
	}
	return cart, true
}

// PreviewBill recomputes the totals breakdown for the current cart
// state, for live display while the bill is being composed.
func (bc *BillingController) PreviewBill(c *gin.Context) {
	var input CreateBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	cart, ok := bc.buildCart(c, input)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":            cart.Items,
		"membershipActive": cart.MembershipActive,
		"totals":           cart.ComputeTotals(),
	})
}

// CreateBill finalizes the cart into an invoice, persists it together
// with the updated customer ledger, and returns the share links.
func (bc *BillingController) CreateBill(c *gin.Context) {
	var input CreateBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	cart, ok := bc.buildCart(c, input)
	if !ok {
		return
	}

	fields := services.CustomerFields{
		Name:        input.CustomerName,
		Phone:       input.PhoneNumber,
		DOB:         input.DOB,
		PaymentMode: input.PaymentMode,
		Printed:     input.Print,
		CardNumber:  input.CardNumber,
		DateOfIssue: input.DateOfIssue,
		ExpiryDate:  input.ExpiryDate,
	}

	invoice, customer, err := bc.Ledger.SubmitBill(c.Request.Context(), cart, fields, time.Now())
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			utils.RespondWithError(c, http.StatusBadRequest, vErr.Reason)
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Could not save bill. Please try again.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"invoice":     invoice,
		"customer":    customer,
		"billUrl":     bc.Share.BillURL(invoice),
		"whatsappUrl": bc.Share.WhatsAppLink(customer, invoice),
	})
}
