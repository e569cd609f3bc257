// controllers/customer.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Shivambansal96/salon-Billing/models"
	"github.com/Shivambansal96/salon-Billing/store"
	"github.com/Shivambansal96/salon-Billing/utils"
)

// CustomerController serves the customer ledger records.
type CustomerController struct {
	Docs store.Documents
}

// UsageCount is one bucket of the service-card usage aggregation.
type UsageCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CustomerDetail is the customer record together with the aggregates
// the usage-analytics views are built from.
type CustomerDetail struct {
	models.Customer
	ServiceUsage   []UsageCount `json:"serviceUsage"`
	CategoryUsage  []UsageCount `json:"categoryUsage"`
	MonthlyVisits  []UsageCount `json:"monthlyVisits"`
	TotalVisits    int          `json:"totalVisits"`
	MembershipName string       `json:"membershipName,omitempty"`
}

// GetCustomers lists customers, optionally filtered by a search term
// matching name, phone or date of birth.
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	keys, err := cc.Docs.List(c.Request.Context(), store.PrefixCustomer)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	search := strings.ToLower(c.Query("q"))
	customers := make([]models.Customer, 0, len(keys))
	for _, key := range keys {
		raw, err := cc.Docs.Get(c.Request.Context(), key)
		if err != nil {
			continue
		}
		cust, err := models.NormalizeCustomer(raw)
		if err != nil {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(cust.Name), search) &&
			!strings.Contains(cust.Phone, search) &&
			!strings.Contains(cust.DOB, search) {
			continue
		}
		customers = append(customers, cust)
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves one customer with the usage aggregates used by
// the detail views.
func (cc *CustomerController) GetCustomer(c *gin.Context) {
	key := c.Param("id")
	if !strings.HasPrefix(key, store.PrefixCustomer) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	raw, err := cc.Docs.Get(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	cust, err := models.NormalizeCustomer(raw)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Corrupt customer record")
		return
	}

	detail := CustomerDetail{
		Customer:      cust,
		ServiceUsage:  countBy(cust.ServiceCardUsages, func(u models.ServiceCardUsage) string { return u.Service }),
		CategoryUsage: countBy(cust.ServiceCardUsages, func(u models.ServiceCardUsage) string { return u.Category }),
		MonthlyVisits: cc.monthlyVisits(c, cust),
		TotalVisits:   len(cust.Visits),
	}
	if cust.MembershipOwned != nil {
		detail.MembershipName = cust.MembershipOwned.MembershipName
	}

	c.JSON(http.StatusOK, detail)
}

// monthlyVisits buckets the customer's linked invoices by month, oldest
// first, for the visit-trend view.
func (cc *CustomerController) monthlyVisits(c *gin.Context, cust models.Customer) []UsageCount {
	counts := make(map[string]int)
	var order []string
	for _, visitID := range cust.Visits {
		raw, err := cc.Docs.Get(c.Request.Context(), visitID)
		if err != nil {
			continue
		}
		inv, err := models.NormalizeInvoice(raw)
		if err != nil {
			continue
		}
		month := inv.Date.Format("Jan 2006")
		if _, seen := counts[month]; !seen {
			order = append(order, month)
		}
		counts[month]++
	}

	result := make([]UsageCount, 0, len(order))
	for _, month := range order {
		result = append(result, UsageCount{Name: month, Count: counts[month]})
	}
	return result
}

func countBy(usages []models.ServiceCardUsage, key func(models.ServiceCardUsage) string) []UsageCount {
	counts := make(map[string]int)
	var order []string
	for _, u := range usages {
		k := key(u)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	result := make([]UsageCount, 0, len(order))
	for _, k := range order {
		result = append(result, UsageCount{Name: k, Count: counts[k]})
	}
	return result
}
