package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Shivambansal96/salon-Billing/config"
	"github.com/Shivambansal96/salon-Billing/models"
	"github.com/Shivambansal96/salon-Billing/routes"
	"github.com/Shivambansal96/salon-Billing/services"
	"github.com/Shivambansal96/salon-Billing/store"
)

func main() {
	cfg := config.Load()

	db, err := config.ConnectDB(cfg.DBURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	docs, err := store.NewPostgres(db)
	if err != nil {
		log.Fatalf("Failed to initialize document store: %v", err)
	}
	if err := store.SeedDefaults(context.Background(), docs); err != nil {
		log.Fatalf("Failed to seed configuration: %v", err)
	}

	cache, err := config.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Redis unavailable, dashboard caching disabled: %v", err)
		cache = nil
	}

	share := services.NewShareLinks(cfg.BillBaseURL, cfg.ShareTokenSecret, cfg.CountryCode)
	ledger := services.NewLedger(docs, cfg.StrictPhoneCheck)

	reminders := services.NewReminderService(docs, cfg)
	scheduler := reminders.StartScheduler()
	defer scheduler.Stop()

	r := routes.SetupRouter(routes.Deps{
		Docs:    docs,
		Cache:   cache,
		Catalog: models.DefaultCatalog(),
		Ledger:  ledger,
		Share:   share,
	})
	printRoutes(r)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
