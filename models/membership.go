package models

import "time"

const (
	GreenCardID   = 1
	ServiceCardID = 2
)

// Membership is one purchasable plan. Green Card is a discount plan;
// Service Card is a prepaid bundle of services.
type Membership struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Discount       float64 `json:"discount,omitempty"`
	Price          float64 `json:"price,omitempty"`
	ValidityMonths int     `json:"validityMonths,omitempty"`
	ServicesNum    int     `json:"servicesNum,omitempty"`
	ServicesUnit   string  `json:"services,omitempty"`
	TimesNum       int     `json:"timesNum,omitempty"`
	TimesUnit      string  `json:"times,omitempty"`
}

// IsServiceCard reports whether the plan is a prepaid service bundle.
func (m Membership) IsServiceCard() bool {
	return m.ServicesNum > 0
}

// FindMembership looks a plan up by id.
func FindMembership(memberships []Membership, id int) (Membership, bool) {
	for _, m := range memberships {
		if m.ID == id {
			return m, true
		}
	}
	return Membership{}, false
}

// DefaultMemberships returns the seed plan catalog.
func DefaultMemberships() []Membership {
	return []Membership{
		{ID: GreenCardID, Name: "Green Card", Discount: 10, Price: 3000, ValidityMonths: 12},
		{ID: ServiceCardID, Name: "Service Card", ServicesNum: 6, ServicesUnit: "services", TimesNum: 12, TimesUnit: "times", Price: 5000},
	}
}

// MembershipOwnership is a card held by a customer.
type MembershipOwnership struct {
	MembershipID   int        `json:"membershipId"`
	MembershipName string     `json:"membershipName"`
	CardNumber     string     `json:"cardNumber,omitempty"`
	DateOfIssue    *time.Time `json:"dateOfIssue,omitempty"`
	ExpiryDate     *time.Time `json:"expiryDate,omitempty"`
}

// ActiveAt reports whether the card is valid at t. Cards stored without
// an expiry date never lapse. The expiry day itself still counts as
// valid.
func (o *MembershipOwnership) ActiveAt(t time.Time) bool {
	if o == nil {
		return false
	}
	if o.ExpiryDate == nil {
		return true
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return !o.ExpiryDate.Before(day)
}
