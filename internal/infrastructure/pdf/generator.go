package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"rentora.backend/internal/domain/entities"
)

// Generator renders lease agreements and rent receipts as PDF documents.
type Generator struct{}

// NewGenerator creates a PDF generator
func NewGenerator() *Generator {
	return &Generator{}
}

// LeaseAgreement renders a lease agreement from lease, property and tenant data
func (g *Generator) LeaseAgreement(lease *entities.Lease, property *entities.Property, tenant *entities.User) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 12, "Lease Agreement", "", 1, "C", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 11)
	writeField(doc, "Agreement No", lease.ID.String())
	writeField(doc, "Property", fmt.Sprintf("%s, %s, %s", property.Title, property.Address, property.City))
	writeField(doc, "Tenant", fmt.Sprintf("%s <%s>", tenant.Name, tenant.Email))
	writeField(doc, "Start Date", lease.StartDate.Format("02 Jan 2006"))
	writeField(doc, "End Date", lease.EndDate.Format("02 Jan 2006"))
	writeField(doc, "Monthly Rent", formatAmount(lease.MonthlyRent))
	writeField(doc, "Deposit", formatAmount(property.Deposit))
	doc.Ln(6)

	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 8, "Terms and Conditions", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	terms := lease.Terms
	if terms == "" {
		terms = "Standard residential lease terms apply."
	}
	doc.MultiCell(0, 5, terms, "", "L", false)
	doc.Ln(10)

	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(90, 8, "_________________________", "", 0, "L", false, 0, "")
	doc.CellFormat(90, 8, "_________________________", "", 1, "R", false, 0, "")
	doc.CellFormat(90, 6, "Landlord", "", 0, "L", false, 0, "")
	doc.CellFormat(90, 6, "Tenant", "", 1, "R", false, 0, "")

	return output(doc)
}

// RentReceipt renders a receipt for a paid rent payment
func (g *Generator) RentReceipt(payment *entities.RentPayment, lease *entities.Lease, tenant *entities.User) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 12, "Rent Receipt", "", 1, "C", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 11)
	writeField(doc, "Receipt No", payment.ID.String())
	writeField(doc, "Lease No", lease.ID.String())
	writeField(doc, "Tenant", tenant.Name)
	writeField(doc, "Amount", formatAmount(payment.Amount))
	writeField(doc, "Due Date", payment.DueDate.Format("02 Jan 2006"))
	paidAt := time.Now()
	if payment.PaymentDate != nil {
		paidAt = *payment.PaymentDate
	}
	writeField(doc, "Paid On", paidAt.Format("02 Jan 2006"))
	writeField(doc, "Status", string(payment.Status))

	return output(doc)
}

func writeField(doc *gofpdf.Fpdf, label, value string) {
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(45, 7, label+":", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("BDT %.2f", amount)
}

func output(doc *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
