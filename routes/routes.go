package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/Shivambansal96/salon-Billing/config"
	"github.com/Shivambansal96/salon-Billing/controllers"
	"github.com/Shivambansal96/salon-Billing/models"
	"github.com/Shivambansal96/salon-Billing/services"
	"github.com/Shivambansal96/salon-Billing/store"
)

// Deps carries the shared dependencies the controllers are built from.
type Deps struct {
	Docs    store.Documents
	Cache   *redis.Client
	Catalog models.Catalog
	Ledger  *services.Ledger
	Share   *services.ShareLinks
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	billingController := controllers.BillingController{
		Ledger:  deps.Ledger,
		Catalog: deps.Catalog,
		Docs:    deps.Docs,
		Share:   deps.Share,
	}
	transactionController := controllers.TransactionController{Docs: deps.Docs, Share: deps.Share}
	customerController := controllers.CustomerController{Docs: deps.Docs}
	catalogController := controllers.CatalogController{Catalog: deps.Catalog, Docs: deps.Docs}
	dashboardController := controllers.DashboardController{Docs: deps.Docs, Cache: deps.Cache}
	reportController := controllers.ReportController{Docs: deps.Docs}
	billController := controllers.BillController{Docs: deps.Docs, Share: deps.Share}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public bill page the share links point at
	r.GET("/bill/:id", billController.GetBillPage)

	api := r.Group("/api")
	{
		// Billing routes
		bills := api.Group("/bills")
		{
			bills.POST("", billingController.CreateBill)
			bills.POST("/preview", billingController.PreviewBill)
		}

		// Transaction routes
		transactions := api.Group("/transactions")
		{
			transactions.GET("", transactionController.GetTransactions)
			transactions.GET("/:id", transactionController.GetTransaction)
			transactions.GET("/:id/receipt", transactionController.GetReceipt)
			transactions.GET("/:id/share", transactionController.GetShareLinks)
			transactions.DELETE("/:id", transactionController.DeleteTransaction)
		}

		// Customer routes
		customers := api.Group("/customers")
		{
			customers.GET("", customerController.GetCustomers)
			customers.GET("/:id", customerController.GetCustomer)
		}

		// Catalog routes
		catalog := api.Group("/catalog")
		{
			catalog.GET("", catalogController.GetCatalog)
			catalog.GET("/genders", catalogController.GetGenders)
			catalog.GET("/:gender/categories", catalogController.GetCategories)
			catalog.GET("/:gender/categories/:category/services", catalogController.GetServices)
		}
		api.GET("/staff", catalogController.GetStaff)
		api.GET("/memberships", catalogController.GetMemberships)

		// Reports routes
		api.GET("/reports", reportController.GetReportAnalytics)

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetDashboardOverview)
	}

	return r
}
