package services

import (
	"villagestay/internal/domain/models"
	"villagestay/internal/repositories"
	"villagestay/internal/utils"
)

// BookingService reads and cancels records in the durable ledger.
type BookingService struct {
	Ledger    repositories.BookingLedger
	RequestID string
}

func (s BookingService) List(ownerKey string) ([]models.Booking, error) {
	return s.Ledger.List(ownerKey)
}

func (s BookingService) Get(ownerKey, ref string) (models.Booking, error) {
	return s.Ledger.GetByRef(ownerKey, ref)
}

// Cancel marks a booking cancelled. The financial snapshot is never
// touched; refund handling is outside this system.
func (s BookingService) Cancel(ownerKey, ref string) (models.Booking, error) {
	b, err := s.Ledger.Cancel(ownerKey, ref)
	if err != nil {
		return models.Booking{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "cancel", "ref="+ref)
	return b, nil
}
