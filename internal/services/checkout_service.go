package services

import (
	"context"
	"strconv"

	"villagestay/internal/checkout"
	"villagestay/internal/domain"
	"villagestay/internal/domain/models"
	"villagestay/internal/repositories"
	"villagestay/internal/utils"
)

// CheckoutService wires the wizard to the catalog, the gateway and the
// durable ledger. Side effects of confirmation (ledger append,
// notifications) run here, exactly once per session.
type CheckoutService struct {
	Sessions  *checkout.Manager
	Catalog   repositories.HomestayCatalog
	Ledger    repositories.BookingLedger
	Gateway   checkout.Gateway
	Notifier  NotificationService
	RequestID string
}

// Start opens a checkout session for a stay.
func (s CheckoutService) Start(ownerKey, homestayID, checkIn, checkOut string, guests int) (*checkout.Session, error) {
	stay, err := s.Catalog.GetByID(homestayID)
	if err != nil {
		return nil, err
	}
	in, err := utils.ParseDate(checkIn)
	if err != nil {
		return nil, domain.ValidationError{Field: "check_in", Msg: "expected YYYY-MM-DD", Err: err}
	}
	out, err := utils.ParseDate(checkOut)
	if err != nil {
		return nil, domain.ValidationError{Field: "check_out", Msg: "expected YYYY-MM-DD", Err: err}
	}

	sess, err := checkout.NewSession(ownerKey, stay, in, out, guests)
	if err != nil {
		return nil, err
	}
	id := s.Sessions.Add(sess)
	utils.LogEvent(s.RequestID, "checkout", "start",
		"session="+id+" homestay="+homestayID+" guests="+strconv.Itoa(guests))
	return sess, nil
}

func (s CheckoutService) Get(ownerKey, sessionID string) (*checkout.Session, error) {
	return s.Sessions.Get(sessionID, ownerKey)
}

// Pay runs the charge for a session. When this call confirms the
// booking it appends the record to the ledger and dispatches the
// confirmation notifications; a replayed call does neither.
func (s CheckoutService) Pay(ctx context.Context, ownerKey, sessionID, method string) (models.Booking, error) {
	sess, err := s.Sessions.Get(sessionID, ownerKey)
	if err != nil {
		return models.Booking{}, err
	}

	booking, confirmedNow, err := sess.Pay(ctx, method, s.Gateway)
	if err != nil {
		utils.LogEvent(s.RequestID, "checkout", "pay", "session="+sessionID+" failed: "+err.Error())
		return models.Booking{}, err
	}
	if !confirmedNow {
		return booking, nil
	}

	if err := s.Ledger.Append(booking); err != nil {
		// The guest already paid; surface the record and log the gap.
		utils.LogEvent(s.RequestID, "checkout", "pay", "ledger append failed for "+booking.Ref+": "+err.Error())
	}

	notifier := s.Notifier
	notifier.RequestID = s.RequestID
	notifier.SendBookingConfirmation(booking)

	utils.LogEvent(s.RequestID, "checkout", "pay", "confirmed "+booking.Ref)
	return booking, nil
}
