// services/ledger.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Shivambansal96/salon-Billing/models"
	"github.com/Shivambansal96/salon-Billing/store"
	"github.com/Shivambansal96/salon-Billing/utils"
)

// ValidationError is a structured rejection of a billing submission.
// It blocks the submission but is never an unrecoverable fault.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ErrSaveFailed is the single generic failure reported when the store
// cannot persist a submission.
var ErrSaveFailed = errors.New("could not save bill")

// CustomerFields are the customer-identifying and membership-purchase
// inputs captured alongside the cart.
type CustomerFields struct {
	Name        string
	Phone       string
	DOB         string
	PaymentMode string
	Printed     bool

	CardNumber  string
	DateOfIssue *time.Time
	ExpiryDate  *time.Time
}

// Ledger turns a finalized cart into a persisted invoice and an updated
// customer record. It owns membership issuance and service-card usage
// tracking.
type Ledger struct {
	docs        store.Documents
	strictPhone bool

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLedger(docs store.Documents, strictPhone bool) *Ledger {
	return &Ledger{
		docs:        docs,
		strictPhone: strictPhone,
		locks:       make(map[string]*sync.Mutex),
	}
}

// DeriveCustomerID maps a phone number to the customer key. Walk-ins
// without a phone get a time-based id with a random suffix so two
// walk-ins in the same millisecond cannot collide.
func DeriveCustomerID(phone string, now time.Time) string {
	if phone != "" {
		return store.PrefixCustomer + phone
	}
	return fmt.Sprintf("%s%d_%s", store.PrefixCustomer, now.UnixMilli(), utils.GenerateRandomString(6))
}

// NewInvoiceID generates the time-based unique transaction id.
func NewInvoiceID(now time.Time) string {
	return fmt.Sprintf("%s%d_%s", store.PrefixTransaction, now.UnixMilli(), utils.GenerateRandomString(6))
}

// FinalizeInvoice validates the submission and freezes the cart into an
// immutable invoice record.
func (l *Ledger) FinalizeInvoice(cart *Cart, fields CustomerFields, now time.Time) (models.Invoice, error) {
	if fields.Name == "" && fields.Phone == "" {
		return models.Invoice{}, &ValidationError{Reason: "customer name or phone number is required"}
	}
	if len(cart.Items) == 0 {
		return models.Invoice{}, &ValidationError{Reason: "at least one service is required"}
	}
	if fields.Phone != "" && !utils.ValidatePhone(fields.Phone, l.strictPhone) {
		return models.Invoice{}, &ValidationError{Reason: "invalid phone number format"}
	}

	paymentMode := fields.PaymentMode
	if paymentMode == "" {
		paymentMode = "Cash"
	}

	items := make([]models.LineItem, len(cart.Items))
	copy(items, cart.Items)

	inv := models.Invoice{
		ID:           NewInvoiceID(now),
		CustomerID:   DeriveCustomerID(fields.Phone, now),
		CustomerName: fields.Name,
		PhoneNumber:  fields.Phone,
		DOB:          fields.DOB,
		Date:         now,
		Services:     items,
		PaymentMode:  paymentMode,
		Totals:       cart.ComputeTotals(),
		Printed:      fields.Printed,
	}

	if cart.MembershipActive {
		inv.Membership = "Green Card"
	}
	if cart.Purchase != nil {
		purchased := *cart.Purchase
		inv.PurchasedMembership = &purchased
		inv.MembershipCard = l.issueCard(purchased, fields, now)
	}
	return inv, nil
}

// issueCard builds the ownership record for a purchased membership.
// Missing issue and expiry dates are defaulted: issue = now, expiry =
// issue + 1 year.
func (l *Ledger) issueCard(m models.Membership, fields CustomerFields, now time.Time) *models.MembershipOwnership {
	issue := now
	if fields.DateOfIssue != nil {
		issue = *fields.DateOfIssue
	}
	expiry := issue.AddDate(1, 0, 0)
	if fields.ExpiryDate != nil {
		expiry = *fields.ExpiryDate
	}
	return &models.MembershipOwnership{
		MembershipID:   m.ID,
		MembershipName: m.Name,
		CardNumber:     fields.CardNumber,
		DateOfIssue:    &issue,
		ExpiryDate:     &expiry,
	}
}

// UpsertCustomer applies one finalized invoice to a customer record,
// creating it when existing is nil. Visits and totalSpent only ever
// grow; lastVisit is refreshed on every call.
func (l *Ledger) UpsertCustomer(existing *models.Customer, inv models.Invoice, now time.Time) models.Customer {
	var cust models.Customer
	if existing != nil {
		cust = *existing
	} else {
		cust = models.Customer{
			ID:     inv.CustomerID,
			Name:   inv.CustomerName,
			Phone:  inv.PhoneNumber,
			DOB:    inv.DOB,
			Visits: []string{},
		}
	}

	cust.Visits = append(cust.Visits, inv.ID)
	cust.TotalSpent += inv.Totals.Total
	lastVisit := now
	cust.LastVisit = &lastVisit

	switch {
	case inv.MembershipCard != nil:
		// Purchased on this bill: set or refresh the ownership.
		cust.MembershipOwned = inv.MembershipCard
	case inv.Membership != "" && !cust.MembershipOwned.ActiveAt(now):
		// Member pricing was applied without a valid card on file;
		// record a fresh Green Card with a defaulted 1-year validity.
		issue := now
		expiry := issue.AddDate(1, 0, 0)
		cust.MembershipOwned = &models.MembershipOwnership{
			MembershipID:   models.GreenCardID,
			MembershipName: "Green Card",
			DateOfIssue:    &issue,
			ExpiryDate:     &expiry,
		}
	}

	if inv.PurchasedMembership != nil && inv.PurchasedMembership.IsServiceCard() {
		for _, item := range inv.Services {
			cust.ServiceCardUsages = append(cust.ServiceCardUsages, models.ServiceCardUsage{
				Service:   item.ServiceName,
				Category:  item.Category,
				StaffName: item.StaffName,
				Gender:    item.Gender,
				Date:      now,
			})
		}
	}
	return cust
}

// SubmitBill finalizes the cart and persists the invoice together with
// the updated customer record in a single store transaction. A
// per-customer lock serializes concurrent submissions for the same
// customer so the read-modify-write cannot lose an update.
func (l *Ledger) SubmitBill(ctx context.Context, cart *Cart, fields CustomerFields, now time.Time) (models.Invoice, models.Customer, error) {
	inv, err := l.FinalizeInvoice(cart, fields, now)
	if err != nil {
		return models.Invoice{}, models.Customer{}, err
	}

	lock := l.lockFor(inv.CustomerID)
	lock.Lock()
	defer lock.Unlock()

	var cust models.Customer
	err = l.docs.Update(ctx, func(tx store.Tx) error {
		invRaw, err := json.Marshal(inv)
		if err != nil {
			return err
		}
		if err := tx.Set(inv.ID, invRaw); err != nil {
			return err
		}

		var existing *models.Customer
		raw, err := tx.Get(inv.CustomerID)
		switch {
		case err == nil:
			c, err := models.NormalizeCustomer(raw)
			if err != nil {
				return err
			}
			existing = &c
		case errors.Is(err, store.ErrNotFound):
		default:
			return err
		}

		cust = l.UpsertCustomer(existing, inv, now)
		custRaw, err := json.Marshal(cust)
		if err != nil {
			return err
		}
		return tx.Set(cust.ID, custRaw)
	})
	if err != nil {
		log.Printf("ledger: save failed for %s: %v", inv.ID, err)
		return models.Invoice{}, models.Customer{}, ErrSaveFailed
	}
	return inv, cust, nil
}

// MembershipActiveFor reports whether the customer behind a phone number
// holds a currently valid membership. Used to auto-apply member pricing
// during billing. Unknown customers and store errors read as inactive.
func (l *Ledger) MembershipActiveFor(ctx context.Context, phone string, now time.Time) bool {
	if phone == "" {
		return false
	}
	raw, err := l.docs.Get(ctx, store.PrefixCustomer+phone)
	if err != nil {
		return false
	}
	cust, err := models.NormalizeCustomer(raw)
	if err != nil {
		return false
	}
	return cust.MembershipOwned.ActiveAt(now)
}

func (l *Ledger) lockFor(customerID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[customerID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[customerID] = lock
	}
	return lock
}
