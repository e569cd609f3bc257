// controllers/dashboard.go
package controllers

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/Shivambansal96/salon-Billing/models"
	"github.com/Shivambansal96/salon-Billing/store"
	"github.com/Shivambansal96/salon-Billing/utils"
)

const dashboardCacheTTL = 60 * time.Second

type DailySales struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type ServiceShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DashboardOverview is the summary block the dashboard page renders.
type DashboardOverview struct {
	TotalSales       float64        `json:"totalSales"`
	TransactionCount int            `json:"transactionCount"`
	TotalCustomers   int            `json:"totalCustomers"`
	ServicesProvided int            `json:"servicesProvided"`
	AvgBillValue     float64        `json:"avgBillValue"`
	DailySales       []DailySales   `json:"dailySales"`
	PopularServices  []ServiceShare `json:"popularServices"`
}

// DashboardController aggregates transactions into the overview,
// caching results in Redis when a client is configured.
type DashboardController struct {
	Docs  store.Documents
	Cache *redis.Client
}

// GetDashboardOverview computes the sales summary over an optional
// from/to date range.
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	from, to, err := parseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date filter, expected YYYY-MM-DD")
		return
	}

	cacheKey := "dashboard:" + c.Query("from") + ":" + c.Query("to")
	if dc.Cache != nil {
		if cached, err := dc.Cache.Get(c.Request.Context(), cacheKey).Bytes(); err == nil {
			var overview DashboardOverview
			if json.Unmarshal(cached, &overview) == nil {
				c.JSON(http.StatusOK, overview)
				return
			}
		}
	}

	overview, ok := dc.compute(c, from, to)
	if !ok {
		return
	}

	if dc.Cache != nil {
		if payload, err := json.Marshal(overview); err == nil {
			dc.Cache.Set(c.Request.Context(), cacheKey, payload, dashboardCacheTTL)
		}
	}
	c.JSON(http.StatusOK, overview)
}

func (dc *DashboardController) compute(c *gin.Context, from, to time.Time) (DashboardOverview, bool) {
	txKeys, err := dc.Docs.List(c.Request.Context(), store.PrefixTransaction)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return DashboardOverview{}, false
	}
	custKeys, err := dc.Docs.List(c.Request.Context(), store.PrefixCustomer)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return DashboardOverview{}, false
	}

	overview := DashboardOverview{TotalCustomers: len(custKeys)}

	dailyTotals := make(map[string]float64)
	var dailyOrder []string
	serviceCounts := make(map[string]int)

	for _, key := range txKeys {
		raw, err := dc.Docs.Get(c.Request.Context(), key)
		if err != nil {
			continue
		}
		inv, err := models.NormalizeInvoice(raw)
		if err != nil {
			continue
		}
		if !from.IsZero() && inv.Date.Before(from) {
			continue
		}
		if !to.IsZero() && inv.Date.After(to) {
			continue
		}

		overview.TotalSales += inv.Totals.Total
		overview.TransactionCount++
		overview.ServicesProvided += len(inv.Services)

		day := inv.Date.Format("2006-01-02")
		if _, seen := dailyTotals[day]; !seen {
			dailyOrder = append(dailyOrder, day)
		}
		dailyTotals[day] += inv.Totals.Total

		for _, s := range inv.Services {
			serviceCounts[s.ServiceName]++
		}
	}

	if overview.TransactionCount > 0 {
		overview.AvgBillValue = overview.TotalSales / float64(overview.TransactionCount)
	}

	sort.Strings(dailyOrder)
	if len(dailyOrder) > 7 {
		dailyOrder = dailyOrder[len(dailyOrder)-7:]
	}
	for _, day := range dailyOrder {
		overview.DailySales = append(overview.DailySales, DailySales{Date: day, Amount: dailyTotals[day]})
	}

	overview.PopularServices = topServices(serviceCounts, 5)
	return overview, true
}

func topServices(counts map[string]int, limit int) []ServiceShare {
	shares := make([]ServiceShare, 0, len(counts))
	for name, count := range counts {
		shares = append(shares, ServiceShare{Name: name, Value: count})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Value != shares[j].Value {
			return shares[i].Value > shares[j].Value
		}
		return shares[i].Name < shares[j].Name
	})
	if len(shares) > limit {
		shares = shares[:limit]
	}
	return shares
}
