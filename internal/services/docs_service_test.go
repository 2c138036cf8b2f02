package services

import (
	"bytes"
	"testing"

	"villagestay/internal/domain/models"
)

func TestDocsServiceGenerateInvoice(t *testing.T) {
	loader := func(ownerKey, ref string) (invoiceDocData, error) {
		return invoiceDocData{
			Ref:           ref,
			GuestName:     "Amit Singh",
			GuestEmail:    "amit@example.com",
			GuestPhone:    "+91 9876543210",
			HomestayTitle: "Green Valley Homestay",
			Village:       "Madikeri",
			State:         "Karnataka",
			CheckIn:       "2024-04-01",
			CheckOut:      "2024-04-03",
			Nights:        2,
			Guests:        2,
			Breakdown: models.PriceBreakdown{
				Subtotal:        5000,
				ServiceFee:      250,
				DiscountPercent: 10,
				DiscountAmount:  500,
				Tax:             600,
				Total:           5350,
			},
			PaymentMethod: models.MethodUPI,
			Status:        models.StatusConfirmed,
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateInvoice("guest-1", "VS1TEST")
	if err != nil {
		t.Fatalf("GenerateInvoice returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateInvoice returned empty data")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
}
