// controllers/transaction.go
package controllers

import (
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shivambansal96/salon-Billing/models"
	"github.com/Shivambansal96/salon-Billing/services"
	"github.com/Shivambansal96/salon-Billing/store"
	"github.com/Shivambansal96/salon-Billing/utils"
)

// TransactionController serves the persisted transaction history.
type TransactionController struct {
	Docs  store.Documents
	Share *services.ShareLinks
}

func (tc *TransactionController) loadAll(c *gin.Context) ([]models.Invoice, bool) {
	keys, err := tc.Docs.List(c.Request.Context(), store.PrefixTransaction)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return nil, false
	}

	invoices := make([]models.Invoice, 0, len(keys))
	for _, key := range keys {
		raw, err := tc.Docs.Get(c.Request.Context(), key)
		if err != nil {
			continue
		}
		inv, err := models.NormalizeInvoice(raw)
		if err != nil {
			continue
		}
		invoices = append(invoices, inv)
	}

	sort.Slice(invoices, func(i, j int) bool {
		return invoices[i].Date.After(invoices[j].Date)
	})
	return invoices, true
}

// GetTransactions lists transactions newest first, with optional search
// (customer name or phone) and date-range filters.
func (tc *TransactionController) GetTransactions(c *gin.Context) {
	invoices, ok := tc.loadAll(c)
	if !ok {
		return
	}

	search := strings.ToLower(c.Query("q"))
	from, to, err := parseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date filter, expected YYYY-MM-DD")
		return
	}

	filtered := invoices[:0]
	for _, inv := range invoices {
		if search != "" &&
			!strings.Contains(strings.ToLower(inv.CustomerName), search) &&
			!strings.Contains(inv.PhoneNumber, search) {
			continue
		}
		if !from.IsZero() && inv.Date.Before(from) {
			continue
		}
		if !to.IsZero() && inv.Date.After(to) {
			continue
		}
		filtered = append(filtered, inv)
	}

	c.JSON(http.StatusOK, filtered)
}

// GetTransaction retrieves one transaction by id.
func (tc *TransactionController) GetTransaction(c *gin.Context) {
	inv, ok := tc.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, inv)
}

// GetReceipt renders the printable 58mm receipt text for a transaction.
func (tc *TransactionController) GetReceipt(c *gin.Context) {
	inv, ok := tc.lookup(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(services.RenderReceiptText(inv)))
}

// GetShareLinks returns the hosted bill URL and the wa.me link for a
// transaction.
func (tc *TransactionController) GetShareLinks(c *gin.Context) {
	inv, ok := tc.lookup(c)
	if !ok {
		return
	}

	cust := models.Customer{Name: inv.CustomerName, Phone: inv.PhoneNumber}
	if raw, err := tc.Docs.Get(c.Request.Context(), inv.CustomerID); err == nil {
		if stored, err := models.NormalizeCustomer(raw); err == nil {
			cust = stored
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"billUrl":     tc.Share.BillURL(inv),
		"whatsappUrl": tc.Share.WhatsAppLink(cust, inv),
	})
}

// DeleteTransaction removes a transaction record. The customer ledger is
// left untouched: visit history and totalSpent only ever grow.
func (tc *TransactionController) DeleteTransaction(c *gin.Context) {
	key := c.Param("id")
	if !strings.HasPrefix(key, store.PrefixTransaction) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}
	if _, err := tc.Docs.Get(c.Request.Context(), key); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	if err := tc.Docs.Delete(c.Request.Context(), key); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

func (tc *TransactionController) lookup(c *gin.Context) (models.Invoice, bool) {
	key := c.Param("id")
	if !strings.HasPrefix(key, store.PrefixTransaction) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid transaction ID format")
		return models.Invoice{}, false
	}

	raw, err := tc.Docs.Get(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return models.Invoice{}, false
	}

	inv, err := models.NormalizeInvoice(raw)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Corrupt transaction record")
		return models.Invoice{}, false
	}
	return inv, true
}

// parseDateRange parses optional from/to filters; to is inclusive of
// the whole day.
func parseDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	var from, to time.Time
	if fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return from, to, err
		}
		from = parsed
	}
	if toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return from, to, err
		}
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}
