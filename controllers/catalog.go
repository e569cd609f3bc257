// controllers/catalog.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shivambansal96/salon-Billing/models"
	"github.com/Shivambansal96/salon-Billing/store"
	"github.com/Shivambansal96/salon-Billing/utils"
)

// CatalogController serves the service catalog, staff roster and
// membership plans the billing screen is built from.
type CatalogController struct {
	Catalog models.Catalog
	Docs    store.Documents
}

// GetCatalog returns the full gender-keyed service price list.
func (cc *CatalogController) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Catalog)
}

// GetGenders lists the catalog sections.
func (cc *CatalogController) GetGenders(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Catalog.Genders())
}

// GetCategories lists the service categories for a gender.
func (cc *CatalogController) GetCategories(c *gin.Context) {
	gender := c.Param("gender")
	categories := cc.Catalog.Categories(gender)
	if categories == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Unknown catalog section: "+gender)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetServices lists the services for a gender and category.
func (cc *CatalogController) GetServices(c *gin.Context) {
	gender := c.Param("gender")
	if cc.Catalog.Categories(gender) == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Unknown catalog section: "+gender)
		return
	}
	c.JSON(http.StatusOK, cc.Catalog.ServicesByCategory(gender, c.Param("category")))
}

// GetStaff returns the staff roster from configuration.
func (cc *CatalogController) GetStaff(c *gin.Context) {
	var staff []models.Staff
	if err := store.GetJSON(c.Request.Context(), cc.Docs, store.KeyStaff, &staff); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load staff roster")
		return
	}
	c.JSON(http.StatusOK, staff)
}

// GetMemberships returns the membership plans from configuration.
func (cc *CatalogController) GetMemberships(c *gin.Context) {
	var memberships []models.Membership
	if err := store.GetJSON(c.Request.Context(), cc.Docs, store.KeyMemberships, &memberships); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load membership catalog")
		return
	}
	c.JSON(http.StatusOK, memberships)
}
