// controllers/report.go
package controllers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shivambansal96/salon-Billing/models"
	"github.com/Shivambansal96/salon-Billing/store"
	"github.com/Shivambansal96/salon-Billing/utils"
)

// ReportController handles all reporting functions
type ReportController struct {
	Docs store.Documents
}

// AnalyticsSummary represents the Analytics data
type AnalyticsSummary struct {
	CurrentMonthRevenue   float64           `json:"currentMonthRevenue"`
	MonthGrowth           float64           `json:"monthGrowth"`
	CurrentQuarterRevenue float64           `json:"currentQuarterRevenue"`
	QuarterGrowth         float64           `json:"quarterGrowth"`
	CurrentYearRevenue    float64           `json:"currentYearRevenue"`
	YearGrowth            float64           `json:"yearGrowth"`
	TopServices           []ServiceSummary  `json:"topServices"`
	TopCustomers          []CustomerSummary `json:"topCustomers"`
	QuickStats            QuickStatistics   `json:"quickStats"`
}

type ServiceSummary struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type CustomerSummary struct {
	Name   string  `json:"name"`
	Visits int     `json:"visits"`
	Spent  float64 `json:"spent"`
}

type QuickStatistics struct {
	TotalCustomers   int     `json:"totalCustomers"`
	TotalInvoices    int     `json:"totalInvoices"`
	AvgMonthlyVisits float64 `json:"avgMonthlyVisits"`
	AvgOrderValue    float64 `json:"avgOrderValue"`
}

// GetReportAnalytics returns the complete analytics summary.
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	invoices, ok := rc.loadInvoices(c)
	if !ok {
		return
	}
	custKeys, err := rc.Docs.List(c.Request.Context(), store.PrefixCustomer)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	now := time.Now()
	currentYear, currentMonth, _ := now.Date()
	loc := now.Location()

	firstOfMonth := time.Date(currentYear, currentMonth, 1, 0, 0, 0, 0, loc)
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	currentMonthRevenue := revenueBetween(invoices, firstOfMonth, endOfDay(lastOfMonth))
	lastMonthRevenue := revenueBetween(invoices, firstOfMonth.AddDate(0, -1, 0), endOfDay(lastOfMonth.AddDate(0, -1, 0)))

	quarterStart := quarterStartOf(now)
	quarterEnd := quarterStart.AddDate(0, 3, -1)
	currentQuarterRevenue := revenueBetween(invoices, quarterStart, endOfDay(quarterEnd))
	lastQuarterRevenue := revenueBetween(invoices, quarterStart.AddDate(0, -3, 0), endOfDay(quarterEnd.AddDate(0, -3, 0)))

	currentYearRevenue := revenueBetween(invoices,
		time.Date(currentYear, 1, 1, 0, 0, 0, 0, loc),
		time.Date(currentYear, 12, 31, 23, 59, 59, 0, loc))
	lastYearRevenue := revenueBetween(invoices,
		time.Date(currentYear-1, 1, 1, 0, 0, 0, 0, loc),
		time.Date(currentYear-1, 12, 31, 23, 59, 59, 0, loc))

	summary := AnalyticsSummary{
		CurrentMonthRevenue:   currentMonthRevenue,
		MonthGrowth:           growthPercentage(currentMonthRevenue, lastMonthRevenue),
		CurrentQuarterRevenue: currentQuarterRevenue,
		QuarterGrowth:         growthPercentage(currentQuarterRevenue, lastQuarterRevenue),
		CurrentYearRevenue:    currentYearRevenue,
		YearGrowth:            growthPercentage(currentYearRevenue, lastYearRevenue),
		TopServices:           rc.topServices(invoices, firstOfMonth, endOfDay(lastOfMonth), 4),
		TopCustomers:          rc.topCustomers(invoices, firstOfMonth, endOfDay(lastOfMonth), 4),
		QuickStats:            rc.quickStatistics(invoices, len(custKeys)),
	}

	c.JSON(http.StatusOK, summary)
}

// Helper functions for reports

func (rc *ReportController) loadInvoices(c *gin.Context) ([]models.Invoice, bool) {
	keys, err := rc.Docs.List(c.Request.Context(), store.PrefixTransaction)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return nil, false
	}
	invoices := make([]models.Invoice, 0, len(keys))
	for _, key := range keys {
		raw, err := rc.Docs.Get(c.Request.Context(), key)
		if err != nil {
			continue
		}
		inv, err := models.NormalizeInvoice(raw)
		if err != nil {
			continue
		}
		invoices = append(invoices, inv)
	}
	return invoices, true
}

func revenueBetween(invoices []models.Invoice, start, end time.Time) float64 {
	var total float64
	for _, inv := range invoices {
		if inv.Date.Before(start) || inv.Date.After(end) {
			continue
		}
		total += inv.Totals.Total
	}
	return total
}

func quarterStartOf(date time.Time) time.Time {
	quarter := (int(date.Month())-1)/3 + 1
	startMonth := time.Month((quarter-1)*3 + 1)
	return time.Date(date.Year(), startMonth, 1, 0, 0, 0, 0, date.Location())
}

func endOfDay(t time.Time) time.Time {
	return utils.BeginningOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

func growthPercentage(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return ((current - previous) / previous) * 100
}

func (rc *ReportController) topServices(invoices []models.Invoice, start, end time.Time, limit int) []ServiceSummary {
	type bucket struct {
		count   int
		revenue float64
	}
	buckets := make(map[string]*bucket)
	for _, inv := range invoices {
		if inv.Date.Before(start) || inv.Date.After(end) {
			continue
		}
		for _, s := range inv.Services {
			b, ok := buckets[s.ServiceName]
			if !ok {
				b = &bucket{}
				buckets[s.ServiceName] = b
			}
			b.count++
			b.revenue += s.Price
		}
	}

	services := make([]ServiceSummary, 0, len(buckets))
	for name, b := range buckets {
		services = append(services, ServiceSummary{Name: name, Count: b.count, Revenue: b.revenue})
	}
	sort.Slice(services, func(i, j int) bool {
		if services[i].Revenue != services[j].Revenue {
			return services[i].Revenue > services[j].Revenue
		}
		return services[i].Name < services[j].Name
	})
	if len(services) > limit {
		services = services[:limit]
	}
	return services
}

func (rc *ReportController) topCustomers(invoices []models.Invoice, start, end time.Time, limit int) []CustomerSummary {
	type bucket struct {
		visits int
		spent  float64
	}
	buckets := make(map[string]*bucket)
	for _, inv := range invoices {
		if inv.Date.Before(start) || inv.Date.After(end) {
			continue
		}
		name := inv.CustomerName
		if name == "" {
			name = "Walk-in Customer"
		}
		b, ok := buckets[name]
		if !ok {
			b = &bucket{}
			buckets[name] = b
		}
		b.visits++
		b.spent += inv.Totals.Total
	}

	customers := make([]CustomerSummary, 0, len(buckets))
	for name, b := range buckets {
		customers = append(customers, CustomerSummary{Name: name, Visits: b.visits, Spent: b.spent})
	}
	sort.Slice(customers, func(i, j int) bool {
		if customers[i].Spent != customers[j].Spent {
			return customers[i].Spent > customers[j].Spent
		}
		return customers[i].Name < customers[j].Name
	})
	if len(customers) > limit {
		customers = customers[:limit]
	}
	return customers
}

func (rc *ReportController) quickStatistics(invoices []models.Invoice, totalCustomers int) QuickStatistics {
	stats := QuickStatistics{
		TotalCustomers: totalCustomers,
		TotalInvoices:  len(invoices),
	}

	monthly := make(map[string]int)
	var totalRevenue float64
	for _, inv := range invoices {
		monthly[inv.Date.Format("2006-01")]++
		totalRevenue += inv.Totals.Total
	}
	if len(monthly) > 0 {
		var visits int
		for _, v := range monthly {
			visits += v
		}
		stats.AvgMonthlyVisits = float64(visits) / float64(len(monthly))
	}
	if stats.TotalInvoices > 0 {
		stats.AvgOrderValue = totalRevenue / float64(stats.TotalInvoices)
	}
	return stats
}
