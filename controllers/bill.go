// controllers/bill.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shivambansal96/salon-Billing/models"
	"github.com/Shivambansal96/salon-Billing/services"
	"github.com/Shivambansal96/salon-Billing/store"
	"github.com/Shivambansal96/salon-Billing/utils"
)

// BillController renders the public hosted bill page that share links
// point at. It is the only unauthenticated surface besides health.
type BillController struct {
	Docs  store.Documents
	Share *services.ShareLinks
}

// GetBillPage renders the HTML bill for a transaction. When the record
// is not in the store, a signed d token carried on the link is used as
// a fallback so the page still renders.
func (bc *BillController) GetBillPage(c *gin.Context) {
	key := c.Param("id")

	inv, found, err := bc.resolveInvoice(c, key)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if !found {
		c.Data(http.StatusNotFound, "text/html; charset=utf-8",
			[]byte("<h3>Bill not found</h3><p>This bill may have been removed.</p>"))
		return
	}

	var cust *models.Customer
	if raw, err := bc.Docs.Get(c.Request.Context(), inv.CustomerID); err == nil {
		if stored, err := models.NormalizeCustomer(raw); err == nil {
			cust = &stored
		}
	}

	page, err := services.RenderInvoiceHTML(inv, cust)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to render bill")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func (bc *BillController) resolveInvoice(c *gin.Context, key string) (models.Invoice, bool, error) {
	raw, err := bc.Docs.Get(c.Request.Context(), key)
	if err == nil {
		inv, err := models.NormalizeInvoice(raw)
		if err != nil {
			return models.Invoice{}, false, err
		}
		return inv, true, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.Invoice{}, false, err
	}

	if token := c.Query("d"); token != "" {
		inv, err := bc.Share.DecodeInvoiceToken(token)
		if err == nil && inv.ID == key {
			return inv, true, nil
		}
	}
	return models.Invoice{}, false, nil
}
