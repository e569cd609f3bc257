// services/billrender.go
package services

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/Shivambansal96/salon-Billing/models"
)

const salonName = "GREAT LOOK PROFESSIONALS"

// RenderReceiptText produces the 58mm thermal-printer receipt for an
// invoice. Output depends only on the invoice, so the same record always
// prints the same bill.
func RenderReceiptText(inv models.Invoice) string {
	var b strings.Builder
	rule := strings.Repeat("=", 32) + "\n"
	thin := strings.Repeat("-", 32) + "\n"

	b.WriteString(rule)
	b.WriteString(" " + salonName + "\n")
	b.WriteString(rule)
	b.WriteString("Date: " + inv.Date.Format("02/01/2006, 3:04:05 pm") + "\n\n")

	name := inv.CustomerName
	if name == "" {
		name = "Walk-in Customer"
	}
	b.WriteString("Customer Name: " + name + "\n")
	if inv.Membership != "" {
		b.WriteString("Membership: " + inv.Membership + "\n")
	}

	b.WriteString("\n" + thin)
	b.WriteString("SERVICES                  Amount\n")
	b.WriteString(thin)
	for _, s := range inv.Services {
		b.WriteString(fmt.Sprintf("%s          Rs. %g\n", s.ServiceName, s.Price))
	}

	b.WriteString(rule)
	b.WriteString(fmt.Sprintf("Services Total:    Rs.%.2f\n", inv.Totals.ServicesTotal))
	b.WriteString(thin)
	if inv.Totals.MembershipCost > 0 && inv.PurchasedMembership != nil {
		b.WriteString(fmt.Sprintf("Membership (%s): Rs.%.2f\n", inv.PurchasedMembership.Name, inv.Totals.MembershipCost))
	}
	if inv.Totals.AmountSaved > 0 {
		b.WriteString(fmt.Sprintf("Amount Saved:      Rs.%.2f\n", inv.Totals.AmountSaved))
	}
	b.WriteString(fmt.Sprintf("Subtotal:          Rs.%.2f\n", inv.Totals.Subtotal))
	if inv.Totals.Discount > 0 {
		b.WriteString(fmt.Sprintf("Discount:          Rs.%.2f\n", inv.Totals.Discount))
	}
	b.WriteString(rule)
	b.WriteString(fmt.Sprintf("TOTAL:             Rs.%.2f\n", inv.Totals.Total))
	b.WriteString("Payment Mode:      " + inv.PaymentMode + "\n")
	b.WriteString(rule)
	b.WriteString("\n     Thank you for visiting!\n")
	b.WriteString("      Please come again!\n")
	b.WriteString(rule)
	return b.String()
}

var invoiceTmpl = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Bill - {{.Invoice.ID}}</title>
<style>
body { font-family: -apple-system, 'Segoe UI', Roboto, Arial, sans-serif; background: #f3f4f6; padding: 20px; }
.container { background: white; border-radius: 12px; max-width: 500px; margin: 0 auto; padding: 30px; box-shadow: 0 4px 12px rgba(0,0,0,0.1); }
.header { text-align: center; border-bottom: 2px solid #e5e7eb; padding-bottom: 20px; margin-bottom: 25px; }
.salon-name { font-size: 18px; font-weight: 700; color: #1f2937; }
.meta { display: flex; justify-content: space-between; font-size: 13px; color: #374151; margin-bottom: 20px; }
table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
th { text-align: left; background: #f3f4f6; padding: 8px; font-size: 12px; text-transform: uppercase; }
td { padding: 8px; border-bottom: 1px solid #e5e7eb; font-size: 13px; }
.right { text-align: right; }
.summary { font-size: 14px; text-align: right; margin-bottom: 6px; }
.savings { color: #0ea5e9; font-weight: 600; }
.purchase { color: #8b5cf6; font-weight: 600; }
.total { font-size: 18px; font-weight: 700; color: #10b981; text-align: right; margin-top: 10px; }
.membership { color: #10b981; font-weight: 600; }
</style>
</head>
<body>
<div class="container">
  <div class="header"><div class="salon-name">Great Look Professional Unisex Studio</div></div>
  <div class="meta">
    <span>Invoice No: <strong>{{.Invoice.ID}}</strong></span>
    <span>Date: <strong>{{.Invoice.Date.Format "02/01/2006, 3:04 pm"}}</strong></span>
  </div>
  <div class="meta">
    <span>Name: <strong>{{.CustomerName}}</strong></span>
    <span>Phone: <strong>{{.Phone}}</strong></span>
  </div>
  {{if .MembershipName}}<div class="summary membership">Membership: {{.MembershipName}}</div>{{end}}
  <table>
    <thead><tr><th>Service</th><th>Category</th><th>Staff</th><th class="right">Price</th></tr></thead>
    <tbody>
    {{range .Invoice.Services}}
      <tr><td>{{.ServiceName}}</td><td>{{.Category}}</td><td>{{.StaffName}}</td><td class="right">&#8377;{{money .Price}}</td></tr>
    {{end}}
    </tbody>
  </table>
  {{if .ShowPurchase}}<div class="summary purchase">Membership Purchase ({{.Invoice.PurchasedMembership.Name}}): &#8377;{{money .Invoice.Totals.MembershipCost}}</div>{{end}}
  {{if .ShowSavings}}<div class="summary savings">Membership Savings: &#8377;{{money .Invoice.Totals.AmountSaved}}</div>{{end}}
  <div class="summary">Payment Mode: {{.Invoice.PaymentMode}}</div>
  <div class="total">Total: &#8377;{{money .Invoice.Totals.Total}}</div>
</div>
</body>
</html>
`))

type invoicePage struct {
	Invoice        models.Invoice
	CustomerName   string
	Phone          string
	MembershipName string
	ShowPurchase   bool
	ShowSavings    bool
}

// RenderInvoiceHTML produces the self-contained shareable HTML bill for
// an invoice. The customer record is optional and only fills in display
// fields the invoice itself may lack.
func RenderInvoiceHTML(inv models.Invoice, cust *models.Customer) (string, error) {
	page := invoicePage{
		Invoice:      inv,
		CustomerName: inv.CustomerName,
		Phone:        inv.PhoneNumber,
		ShowPurchase: inv.Totals.MembershipCost > 0 && inv.PurchasedMembership != nil,
		ShowSavings:  inv.Totals.AmountSaved > 0,
	}
	if cust != nil {
		if cust.Name != "" {
			page.CustomerName = cust.Name
		}
		if cust.Phone != "" {
			page.Phone = cust.Phone
		}
	}
	if page.Phone == "" {
		page.Phone = "N/A"
	}
	switch {
	case inv.Membership != "":
		page.MembershipName = inv.Membership
	case cust != nil && cust.MembershipOwned != nil:
		page.MembershipName = cust.MembershipOwned.MembershipName
	}

	var b strings.Builder
	if err := invoiceTmpl.Execute(&b, page); err != nil {
		return "", err
	}
	return b.String(), nil
}
