package models

import (
	"encoding/json"
	"time"
)

// LineItem is one priced service instance on a bill. Immutable once the
// invoice is finalized.
type LineItem struct {
	ServiceName  string  `json:"serviceName"`
	Category     string  `json:"category"`
	RegularPrice float64 `json:"r_price"`
	MemberPrice  float64 `json:"m_price"`
	Price        float64 `json:"price"`
	StaffID      int     `json:"staffId,omitempty"`
	StaffName    string  `json:"staffName,omitempty"`
	Gender       string  `json:"gender"`
}

// Totals is the computed breakdown of an invoice.
type Totals struct {
	ServicesTotal  float64 `json:"servicesTotal"`
	MembershipCost float64 `json:"membershipCost"`
	Subtotal       float64 `json:"subtotal"`
	AmountSaved    float64 `json:"amountSaved"`
	Discount       float64 `json:"discount"`
	Total          float64 `json:"total"`
}

// Invoice is the canonical, append-only transaction record stored under a
// tx_ key. Created exactly once per billing submission.
type Invoice struct {
	ID                  string               `json:"id"`
	CustomerID          string               `json:"customerId"`
	CustomerName        string               `json:"customerName"`
	PhoneNumber         string               `json:"phoneNumber"`
	DOB                 string               `json:"dob,omitempty"`
	Date                time.Time            `json:"date"`
	Services            []LineItem           `json:"services"`
	Membership          string               `json:"membership,omitempty"`
	PurchasedMembership *Membership          `json:"purchasedMembership,omitempty"`
	MembershipCard      *MembershipOwnership `json:"membershipCard,omitempty"`
	PaymentMode         string               `json:"paymentMode"`
	Totals              Totals               `json:"totals"`
	Printed             bool                 `json:"printed,omitempty"`
}

// legacyInvoice carries the field variants older records were written
// with: items instead of services, and a bare top-level total/amount
// instead of a totals object.
type legacyInvoice struct {
	Invoice
	Items  []LineItem `json:"items"`
	Total  float64    `json:"total"`
	Amount float64    `json:"amount"`
}

// NormalizeInvoice decodes a stored transaction document into the canonical
// Invoice schema. Legacy field variants are migrated here, at the read
// boundary, so the rest of the code never probes for alternate shapes.
// Missing numeric fields default to zero rather than failing.
func NormalizeInvoice(raw []byte) (Invoice, error) {
	var legacy legacyInvoice
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return Invoice{}, err
	}

	inv := legacy.Invoice
	if len(inv.Services) == 0 && len(legacy.Items) > 0 {
		inv.Services = legacy.Items
	}
	if inv.Totals.Total == 0 {
		switch {
		case legacy.Total != 0:
			inv.Totals.Total = legacy.Total
		case legacy.Amount != 0:
			inv.Totals.Total = legacy.Amount
		}
	}
	if inv.PaymentMode == "" {
		inv.PaymentMode = "Cash"
	}
	return inv, nil
}
