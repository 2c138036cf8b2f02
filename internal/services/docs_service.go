package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"villagestay/internal/domain"
	"villagestay/internal/domain/models"
	"villagestay/internal/repositories"
	"villagestay/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the downloadable invoice for a booking. The PDF
// is a pure view over the stored financial snapshot; nothing here ever
// re-derives an amount.
type DocsService struct {
	Ledger    repositories.BookingLedger
	Catalog   repositories.HomestayCatalog
	RequestID string
	Loader    func(ownerKey, ref string) (invoiceDocData, error)
}

type invoiceDocData struct {
	Ref           string
	GuestName     string
	GuestEmail    string
	GuestPhone    string
	HomestayTitle string
	Village       string
	State         string
	CheckIn       string
	CheckOut      string
	Nights        int
	Guests        int
	Breakdown     models.PriceBreakdown
	PaymentMethod string
	Status        string
}

func (s DocsService) GenerateInvoice(ownerKey, ref string) ([]byte, string, error) {
	data, err := s.loadInvoiceDocData(ownerKey, ref)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", "ref="+ref)
	return buildInvoicePDF(data)
}

func (s DocsService) loadInvoiceDocData(ownerKey, ref string) (invoiceDocData, error) {
	if s.Loader != nil {
		return s.Loader(ownerKey, ref)
	}
	b, err := s.Ledger.GetByRef(ownerKey, ref)
	if err != nil {
		return invoiceDocData{}, err
	}
	if b.Status == models.StatusPending {
		return invoiceDocData{}, domain.ValidationError{Field: "status", Msg: "invoice available after confirmation only"}
	}

	out := invoiceDocData{
		Ref:           b.Ref,
		GuestName:     strings.TrimSpace(b.GuestInfo.FirstName + " " + b.GuestInfo.LastName),
		GuestEmail:    b.GuestInfo.Email,
		GuestPhone:    b.GuestInfo.Phone,
		HomestayTitle: b.HomestayTitle,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Nights:        b.Nights,
		Guests:        b.Guests,
		Breakdown:     b.Breakdown,
		PaymentMethod: b.PaymentMethod,
		Status:        b.Status,
	}
	if stay, err := s.Catalog.GetByID(b.HomestayID); err == nil {
		out.Village = stay.Location.Village
		out.State = stay.Location.State
		if strings.TrimSpace(out.HomestayTitle) == "" {
			out.HomestayTitle = stay.Title
		}
	}
	return out, nil
}

func buildInvoicePDF(d invoiceDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "VILLAGESTAY INVOICE")
	pdf.Ln(12)

	invNo := "INV-" + safeFilenamePart(d.Ref)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : "+invNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date       : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Name  : %s", safe(d.GuestName, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Email : %s", safe(d.GuestEmail, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Phone : %s", safe(d.GuestPhone, "-")))
	pdf.Ln(10)

	stay := fmt.Sprintf("%s, %s (%s to %s, %d night(s), %d guest(s))",
		safe(d.HomestayTitle, "-"),
		safe(strings.TrimSuffix(d.Village+", "+d.State, ", "), "-"),
		safe(d.CheckIn, "-"), safe(d.CheckOut, "-"),
		d.Nights, d.Guests,
	)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Payment breakup:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "Stay: "+stay, "", "", false)
	pdf.Ln(2)

	bd := d.Breakdown
	line := func(label string, amount int64) {
		pdf.Cell(120, 6, label)
		pdf.Cell(0, 6, utils.FormatINR(amount))
		pdf.Ln(6)
	}
	line("Accommodation charges", bd.Subtotal)
	line("Service fees (5%)", bd.ServiceFee)
	if bd.DiscountAmount > 0 {
		line(fmt.Sprintf("Discount (%d%%)", bd.DiscountPercent), -bd.DiscountAmount)
	}
	line(fmt.Sprintf("GST @%d%%", domain.TaxPercent), bd.Tax)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(120, 8, "Grand total")
	pdf.Cell(0, 8, utils.FormatINR(bd.Total))
	pdf.Ln(12)

	if d.Status == models.StatusCancelled {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 7, "Status: CANCELLED")
		pdf.Ln(9)
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5,
		"Input tax credit of GST charged by the original service provider is available only against the invoice "+
			"issued by the respective service provider. VillageStay acts only as a facilitator for these services. "+
			"This is not a valid travel document.",
		"", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%s.pdf", safeFilenamePart(d.Ref))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
