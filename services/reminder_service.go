// services/reminder_service.go
package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/Shivambansal96/salon-Billing/config"
	"github.com/Shivambansal96/salon-Billing/models"
	"github.com/Shivambansal96/salon-Billing/store"
	"github.com/Shivambansal96/salon-Billing/utils"
)

// ReminderService sends birthday greetings to customers over WhatsApp
// and logs every attempt to the reminder_ namespace.
type ReminderService struct {
	docs        store.Documents
	client      *twilio.RestClient
	fromNumber  string
	countryCode string
}

func NewReminderService(docs store.Documents, cfg config.Config) *ReminderService {
	s := &ReminderService{
		docs:        docs,
		fromNumber:  cfg.Twilio.FromNumber,
		countryCode: cfg.CountryCode,
	}
	if cfg.Twilio.AccountSID != "" {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.Twilio.AccountSID,
			Password: cfg.Twilio.AuthToken,
		})
	}
	return s
}

// StartScheduler runs the birthday sweep every day at 9 AM.
func (s *ReminderService) StartScheduler() *cron.Cron {
	c := cron.New()
	c.AddFunc("0 9 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := s.SendBirthdayGreetings(ctx, time.Now()); err != nil {
			log.Printf("reminder sweep failed: %v", err)
		}
	})
	c.Start()
	log.Println("Reminder scheduler started")
	return c
}

// SendBirthdayGreetings finds customers whose date of birth falls on
// today and sends each one a greeting.
func (s *ReminderService) SendBirthdayGreetings(ctx context.Context, now time.Time) error {
	keys, err := s.docs.List(ctx, store.PrefixCustomer)
	if err != nil {
		return err
	}

	for _, key := range keys {
		raw, err := s.docs.Get(ctx, key)
		if err != nil {
			continue
		}
		cust, err := models.NormalizeCustomer(raw)
		if err != nil {
			continue
		}
		if cust.DOB == "" || cust.Phone == "" {
			continue
		}
		dob, err := time.Parse("2006-01-02", cust.DOB)
		if err != nil {
			continue
		}
		if !utils.SameMonthDay(dob, now) {
			continue
		}
		s.sendGreeting(ctx, cust, now)
	}
	return nil
}

func (s *ReminderService) sendGreeting(ctx context.Context, cust models.Customer, now time.Time) {
	message := fmt.Sprintf(
		"Happy Birthday, %s! Treat yourself to a fresh look today - warm wishes from Great Look Professional Unisex Studio.",
		cust.Name,
	)

	entry := models.ReminderLog{
		ID:         store.PrefixReminder + uuid.NewString(),
		CustomerID: cust.ID,
		Type:       "birthday",
		Message:    message,
		Channel:    "whatsapp",
		SentAt:     now,
	}

	if s.client == nil {
		entry.Status = "skipped"
		entry.ErrorMessage = "twilio not configured"
	} else if err := s.deliver(cust.Phone, message); err != nil {
		entry.Status = "failed"
		entry.ErrorMessage = err.Error()
		log.Printf("birthday greeting to %s failed: %v", cust.ID, err)
	} else {
		entry.Status = "sent"
	}

	if err := store.SetJSON(ctx, s.docs, entry.ID, entry); err != nil {
		log.Printf("failed to log reminder for %s: %v", cust.ID, err)
	}
}

func (s *ReminderService) deliver(phone, message string) error {
	to := utils.DigitsOnly(phone)
	if !strings.HasPrefix(to, s.countryCode) {
		to = s.countryCode + to
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo("whatsapp:+" + to)
	params.SetFrom("whatsapp:" + s.fromNumber)
	params.SetBody(message)

	_, err := s.client.Api.CreateMessage(params)
	return err
}
