package models

import (
	"encoding/json"
	"time"
)

// ServiceCardUsage is one redemption logged against a Service Card
// membership. External usage-analytics viewers depend on these fields.
type ServiceCardUsage struct {
	Service   string    `json:"service"`
	Category  string    `json:"category"`
	StaffName string    `json:"staffName"`
	Gender    string    `json:"gender"`
	Date      time.Time `json:"date"`
}

// Customer is the per-customer ledger record stored under a cust_ key.
// It is read, mutated, and written back in full on every visit.
type Customer struct {
	ID                string               `json:"id"`
	Name              string               `json:"name"`
	Phone             string               `json:"phone"`
	DOB               string               `json:"dob,omitempty"`
	Visits            []string             `json:"visits"`
	TotalSpent        float64              `json:"totalSpent"`
	LastVisit         *time.Time           `json:"lastVisit,omitempty"`
	MembershipOwned   *MembershipOwnership `json:"membershipOwned,omitempty"`
	ServiceCardUsages []ServiceCardUsage   `json:"serviceCardUsages,omitempty"`
}

// NormalizeCustomer decodes a stored customer document, defaulting the
// ledger fields so partial or historical records stay readable.
func NormalizeCustomer(raw []byte) (Customer, error) {
	var cust Customer
	if err := json.Unmarshal(raw, &cust); err != nil {
		return Customer{}, err
	}
	if cust.Visits == nil {
		cust.Visits = []string{}
	}
	return cust, nil
}
