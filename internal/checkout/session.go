// Package checkout drives the four-step booking wizard: guest info,
// summary, payment, confirmation. Transitions are strictly linear with
// limited backward navigation, and confirmation happens at most once
// per session.
package checkout

import (
	"context"
	"net/mail"
	"strings"
	"sync"
	"time"

	"villagestay/internal/domain"
	"villagestay/internal/domain/models"
	"villagestay/internal/utils"
)

// Step is the wizard position.
type Step int

const (
	StepGuestInfo Step = iota + 1
	StepSummary
	StepPayment
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepGuestInfo:
		return "guest_info"
	case StepSummary:
		return "summary"
	case StepPayment:
		return "payment"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

// Gateway charges the frozen total. Implemented by services.MockGateway
// in this deployment; a real processor would slot in behind the same
// contract.
type Gateway interface {
	Charge(ctx context.Context, amount int64, method string, metadata map[string]string) (models.Payment, error)
}

// Session is one checkout in flight. All methods are safe for the
// single browser tab's worth of sequential calls they receive, and the
// mutex keeps concurrent retries from double-charging.
type Session struct {
	ID       string
	OwnerKey string

	mu              sync.Mutex
	homestay        models.Homestay
	checkIn         time.Time
	checkOut        time.Time
	nights          int
	guests          int
	guestInfo       models.GuestInfo
	discountCode    string
	discountPercent int
	step            Step
	booking         *models.Booking
}

// NewSession validates the stay and opens a session at the guest-info
// step. A zero-night range is rejected here, never silently priced.
func NewSession(ownerKey string, stay models.Homestay, checkIn, checkOut time.Time, guests int) (*Session, error) {
	nights, err := domain.Nights(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if nights < 1 {
		return nil, domain.InvalidRangeError{
			CheckIn:  utils.FormatDate(checkIn),
			CheckOut: utils.FormatDate(checkOut),
			Msg:      "stay must be at least one night",
		}
	}
	if guests < 1 {
		return nil, domain.ValidationError{Field: "guests", Msg: "at least one guest required"}
	}
	if guests > stay.MaxGuests {
		return nil, domain.ValidationError{Field: "guests", Msg: "exceeds homestay capacity"}
	}
	return &Session{
		OwnerKey: ownerKey,
		homestay: stay,
		checkIn:  checkIn,
		checkOut: checkOut,
		nights:   nights,
		guests:   guests,
		step:     StepGuestInfo,
	}, nil
}

func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

func (s *Session) Homestay() models.Homestay {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.homestay
}

func (s *Session) Stay() (checkIn, checkOut time.Time, nights, guests int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkIn, s.checkOut, s.nights, s.guests
}

func (s *Session) GuestInfo() models.GuestInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guestInfo
}

func (s *Session) Discount() (code string, percent int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discountCode, s.discountPercent
}

// Booking returns the confirmed record, if the session reached
// confirmation.
func (s *Session) Booking() (models.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.booking == nil {
		return models.Booking{}, false
	}
	return *s.booking, true
}

// Breakdown recomputes the itemized price from the session's current
// dates, rate and discount. After confirmation it returns the frozen
// snapshot instead.
func (s *Session) Breakdown() (models.PriceBreakdown, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.breakdownLocked()
}

func (s *Session) breakdownLocked() (models.PriceBreakdown, error) {
	if s.booking != nil {
		return s.booking.Breakdown, nil
	}
	return domain.ComputeBreakdown(s.homestay.PerNight, s.nights, s.discountPercent)
}

// SubmitGuestInfo validates contact fields and moves GuestInfo -> Summary.
func (s *Session) SubmitGuestInfo(info models.GuestInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepGuestInfo {
		return domain.ValidationError{Field: "step", Msg: "guest info can only be submitted at the guest-info step"}
	}

	info.FirstName = utils.TrimOrEmpty(info.FirstName)
	info.LastName = utils.TrimOrEmpty(info.LastName)
	info.Email = utils.TrimOrEmpty(info.Email)
	info.Phone = utils.TrimOrEmpty(info.Phone)
	info.SpecialRequests = utils.NormalizeSpace(info.SpecialRequests)

	if info.FirstName == "" {
		return domain.ValidationError{Field: "first_name", Msg: "required"}
	}
	if info.LastName == "" {
		return domain.ValidationError{Field: "last_name", Msg: "required"}
	}
	if _, err := mail.ParseAddress(info.Email); err != nil {
		return domain.ValidationError{Field: "email", Msg: "invalid email address"}
	}
	if info.Phone == "" {
		return domain.ValidationError{Field: "phone", Msg: "required"}
	}

	s.guestInfo = info
	s.step = StepSummary
	return nil
}

// ApplyDiscount resolves a promo code at the summary step. A second
// valid code replaces the first; an unknown code leaves the previous
// discount untouched.
func (s *Session) ApplyDiscount(code string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepSummary {
		return 0, domain.ValidationError{Field: "step", Msg: "discount codes apply at the summary step"}
	}
	pct, err := domain.LookupDiscount(strings.TrimSpace(code))
	if err != nil {
		return 0, err
	}
	s.discountCode = strings.TrimSpace(code)
	s.discountPercent = pct
	return pct, nil
}

// Proceed moves Summary -> Payment, re-checking the stay guards.
func (s *Session) Proceed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepSummary {
		return domain.ValidationError{Field: "step", Msg: "can only proceed to payment from the summary step"}
	}
	if s.nights < 1 {
		return domain.InvalidRangeError{Msg: "stay must be at least one night"}
	}
	if s.guests > s.homestay.MaxGuests {
		return domain.ValidationError{Field: "guests", Msg: "exceeds homestay capacity"}
	}
	s.step = StepPayment
	return nil
}

// Back steps one position backward. Only Summary -> GuestInfo and
// Payment -> Summary are allowed; confirmation is terminal.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.step {
	case StepSummary:
		s.step = StepGuestInfo
		return nil
	case StepPayment:
		s.step = StepSummary
		return nil
	case StepConfirmation:
		return domain.ValidationError{Field: "step", Msg: "confirmed bookings cannot go back"}
	default:
		return domain.ValidationError{Field: "step", Msg: "nothing to go back to"}
	}
}

// Pay freezes the breakdown, dispatches the charge and, on success,
// builds the booking record and enters confirmation. A gateway failure
// keeps the session at the payment step; the caller may retry. Calling
// Pay on an already-confirmed session returns the existing record
// without charging again. The second return value reports whether this
// call confirmed the booking, so side effects (ledger append,
// notifications) run at most once.
func (s *Session) Pay(ctx context.Context, method string, gw Gateway) (models.Booking, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step == StepConfirmation && s.booking != nil {
		return *s.booking, false, nil
	}
	if s.step != StepPayment {
		return models.Booking{}, false, domain.ValidationError{Field: "step", Msg: "payment is only accepted at the payment step"}
	}
	method = strings.ToLower(strings.TrimSpace(method))
	if !models.ValidPaymentMethod(method) {
		return models.Booking{}, false, domain.ValidationError{Field: "payment_method", Msg: "unsupported payment method"}
	}

	// Freeze the amount before dispatching the charge.
	bd, err := s.breakdownLocked()
	if err != nil {
		return models.Booking{}, false, err
	}

	payment, err := gw.Charge(ctx, bd.Total, method, map[string]string{
		"homestay_id": s.homestay.ID,
		"check_in":    utils.FormatDate(s.checkIn),
		"check_out":   utils.FormatDate(s.checkOut),
		"guest_email": s.guestInfo.Email,
	})
	if err != nil {
		return models.Booking{}, false, domain.PaymentError{Err: err}
	}
	if payment.Status != "success" {
		return models.Booking{}, false, domain.PaymentError{Msg: "payment was not successful"}
	}

	b := BuildBooking(s.OwnerKey, s.homestay, s.checkIn, s.checkOut, s.nights, s.guests, s.guestInfo, bd, payment.PaymentID, method)
	s.booking = &b
	s.step = StepConfirmation
	return b, true, nil
}
