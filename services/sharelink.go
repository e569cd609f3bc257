// services/sharelink.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Shivambansal96/salon-Billing/models"
	"github.com/Shivambansal96/salon-Billing/utils"
)

// ShareLinks builds outbound bill links: the hosted bill page URL, an
// optional signed token embedding the invoice for cross-device viewing
// without a server lookup, and the wa.me message link.
type ShareLinks struct {
	baseURL     string
	secret      []byte
	countryCode string
}

func NewShareLinks(baseURL, secret, countryCode string) *ShareLinks {
	return &ShareLinks{
		baseURL:     strings.TrimRight(baseURL, "/"),
		secret:      []byte(secret),
		countryCode: countryCode,
	}
}

// BillURL returns the public bill page URL for an invoice. When a
// signing secret is configured, the invoice JSON rides along in the d
// query parameter so the page renders even without store access.
func (s *ShareLinks) BillURL(inv models.Invoice) string {
	billURL := s.baseURL + "/bill/" + inv.ID
	if len(s.secret) == 0 {
		return billURL
	}
	token, err := s.signInvoice(inv)
	if err != nil {
		return billURL
	}
	return billURL + "?d=" + url.QueryEscape(token)
}

func (s *ShareLinks) signInvoice(inv models.Invoice) (string, error) {
	payload, err := json.Marshal(inv)
	if err != nil {
		return "", err
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": inv.ID,
		"inv": string(payload),
		"iat": inv.Date.Unix(),
	})
	return token.SignedString(s.secret)
}

// DecodeInvoiceToken verifies a share token and returns the embedded
// invoice.
func (s *ShareLinks) DecodeInvoiceToken(tokenString string) (models.Invoice, error) {
	if len(s.secret) == 0 {
		return models.Invoice{}, errors.New("share tokens are not configured")
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return models.Invoice{}, errors.New("invalid share token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Invoice{}, errors.New("invalid share token claims")
	}
	payload, _ := claims["inv"].(string)
	return models.NormalizeInvoice([]byte(payload))
}

// WhatsAppLink builds the wa.me link carrying the bill message for a
// customer. The phone is normalized to digits with the configured
// country code prefix.
func (s *ShareLinks) WhatsAppLink(cust models.Customer, inv models.Invoice) string {
	message := fmt.Sprintf(
		"Dear %s,\n\nHere is your invoice from *GREAT LOOK Professional Unisex Studio* for a total of *₹%.2f*.\n\nTo view your bill in detail, click here:\n%s/bill/%s\n\nThank you for your business!",
		cust.Name, inv.Totals.Total, s.baseURL, inv.ID,
	)

	phone := utils.DigitsOnly(cust.Phone)
	if phone != "" && !strings.HasPrefix(phone, s.countryCode) {
		phone = s.countryCode + phone
	}
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(message)
}
