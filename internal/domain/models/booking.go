package models

import (
	"strings"
	"time"
)

// Booking status lifecycle: created as confirmed, may only move to cancelled.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Supported payment methods.
const (
	MethodUPI        = "upi"
	MethodCard       = "card"
	MethodNetBanking = "netbanking"
	MethodQR         = "qr"
)

// ValidPaymentMethod reports whether m is one of the supported methods.
func ValidPaymentMethod(m string) bool {
	switch strings.ToLower(strings.TrimSpace(m)) {
	case MethodUPI, MethodCard, MethodNetBanking, MethodQR:
		return true
	default:
		return false
	}
}

// GuestInfo holds the lead guest's contact details for a stay.
type GuestInfo struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"special_requests"`
}

// PriceBreakdown is an itemized stay price in whole rupees.
// Percentage lines are rounded half-up; Total is the sum of the
// rounded lines, so it never drifts from what is displayed.
type PriceBreakdown struct {
	Subtotal        int64 `json:"subtotal"`
	ServiceFee      int64 `json:"service_fee"`
	DiscountPercent int   `json:"discount_percent"`
	DiscountAmount  int64 `json:"discount_amount"`
	Tax             int64 `json:"tax"`
	Total           int64 `json:"total"`
}

// Payment is the gateway's result for a charge attempt.
type Payment struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
	Method    string `json:"method"`
	Amount    int64  `json:"amount"`
	Timestamp string `json:"timestamp"`
}

// Booking is the confirmed-reservation record. The financial snapshot
// (Breakdown) is frozen at confirmation and must never be recomputed.
type Booking struct {
	Ref           string         `json:"id"`
	OwnerKey      string         `json:"owner_key"`
	HomestayID    string         `json:"homestay_id"`
	HomestayTitle string         `json:"homestay_title"`
	CheckIn       string         `json:"check_in"`
	CheckOut      string         `json:"check_out"`
	Nights        int            `json:"nights"`
	Guests        int            `json:"guests"`
	GuestInfo     GuestInfo      `json:"guest_info"`
	Breakdown     PriceBreakdown `json:"breakdown"`
	PaymentID     string         `json:"payment_id"`
	PaymentMethod string         `json:"payment_method"`
	Status        string         `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
}
