// services/pricing.go
package services

import (
	"github.com/Shivambansal96/salon-Billing/models"
)

// DiscountMode selects how the additional discount value is applied.
type DiscountMode string

const (
	DiscountFixed      DiscountMode = "fixed"
	DiscountPercentage DiscountMode = "percentage"
)

// Discount is the raw discount input. The value is stored as entered;
// a negative value produces a negative discount, i.e. a surcharge.
type Discount struct {
	Value float64      `json:"value"`
	Mode  DiscountMode `json:"mode"`
}

// Cart is the mutable billing state while a bill is being composed.
// Totals are recomputed from scratch on demand, so every mutation is
// immediately reflected in the next ComputeTotals call.
type Cart struct {
	Items            []models.LineItem
	MembershipActive bool
	Discount         Discount
	Purchase         *models.Membership
}

// AddItem appends a catalog service to the cart. The effective price is
// the member price iff the membership flag is currently active.
func (c *Cart) AddItem(svc models.CatalogService, gender string) models.LineItem {
	price := svc.RegularPrice
	if c.MembershipActive {
		price = svc.MemberPrice
	}
	item := models.LineItem{
		ServiceName:  svc.Service,
		Category:     svc.Category,
		RegularPrice: svc.RegularPrice,
		MemberPrice:  svc.MemberPrice,
		Price:        price,
		Gender:       gender,
	}
	c.Items = append(c.Items, item)
	return item
}

// RemoveItem drops the line item at index i. Out-of-range indexes are
// ignored.
func (c *Cart) RemoveItem(i int) {
	if i < 0 || i >= len(c.Items) {
		return
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}

// AssignStaff sets the staff member on the line item at index i.
func (c *Cart) AssignStaff(i int, staff models.Staff) {
	if i < 0 || i >= len(c.Items) {
		return
	}
	c.Items[i].StaffID = staff.ID
	c.Items[i].StaffName = staff.Name
}

// ToggleMembership flips the membership flag and reprices every line
// item already in the cart. Prices are never frozen at add time.
func (c *Cart) ToggleMembership() {
	c.MembershipActive = !c.MembershipActive
	c.repriceItems()
}

// SetMembership sets the membership flag to an explicit state,
// repricing the cart when the flag changes.
func (c *Cart) SetMembership(active bool) {
	if c.MembershipActive == active {
		return
	}
	c.MembershipActive = active
	c.repriceItems()
}

func (c *Cart) repriceItems() {
	for i := range c.Items {
		if c.MembershipActive {
			c.Items[i].Price = c.Items[i].MemberPrice
		} else {
			c.Items[i].Price = c.Items[i].RegularPrice
		}
	}
}

// SetDiscount stores the raw discount input. No validation: negative
// values pass through and surface as a surcharge in the totals.
func (c *Cart) SetDiscount(value float64, mode DiscountMode) {
	if mode != DiscountPercentage {
		mode = DiscountFixed
	}
	c.Discount = Discount{Value: value, Mode: mode}
}

// SelectPurchase chooses a membership to purchase on this bill, or
// clears the selection when m is nil.
func (c *Cart) SelectPurchase(m *models.Membership) {
	c.Purchase = m
}

// ComputeTotals derives the full totals breakdown from the current cart
// state. Pure and idempotent: same cart, same totals. Membership
// purchase cost is billed into the discountable subtotal. All values are
// plain float64 sums; rounding happens only at presentation time.
func (c *Cart) ComputeTotals() models.Totals {
	var servicesTotal float64
	for _, item := range c.Items {
		servicesTotal += item.Price
	}

	var membershipCost float64
	if c.Purchase != nil {
		membershipCost = c.Purchase.Price
	}

	subtotal := servicesTotal + membershipCost

	var discount float64
	if c.Discount.Mode == DiscountPercentage {
		discount = subtotal * c.Discount.Value / 100
	} else {
		discount = c.Discount.Value
	}

	var amountSaved float64
	if c.MembershipActive {
		for _, item := range c.Items {
			amountSaved += item.RegularPrice - item.MemberPrice
		}
	}

	return models.Totals{
		ServicesTotal:  servicesTotal,
		MembershipCost: membershipCost,
		Subtotal:       subtotal,
		AmountSaved:    amountSaved,
		Discount:       discount,
		Total:          subtotal - discount,
	}
}
