package repositories

import (
	"encoding/json"
	"strings"

	"villagestay/internal/domain"
	"villagestay/internal/domain/models"
	"villagestay/internal/store"
)

// BookingLedger holds each owner's bookings as a JSON collection in the
// KV store, one entry per owner key. Records are append-only; the only
// permitted mutation is flipping status to cancelled.
type BookingLedger struct {
	Store store.KV
}

func (r BookingLedger) key(ownerKey string) string {
	return "villagestay:bookings:" + ownerKey
}

func (r BookingLedger) List(ownerKey string) ([]models.Booking, error) {
	if strings.TrimSpace(ownerKey) == "" {
		return nil, domain.ValidationError{Field: "owner_key", Msg: "required"}
	}
	raw, ok, err := r.Store.Get(r.key(ownerKey))
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	if !ok {
		return []models.Booking{}, nil
	}
	var out []models.Booking
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, domain.InternalError{Msg: "corrupt booking ledger", Err: err}
	}
	return out, nil
}

func (r BookingLedger) GetByRef(ownerKey, ref string) (models.Booking, error) {
	list, err := r.List(ownerKey)
	if err != nil {
		return models.Booking{}, err
	}
	for _, b := range list {
		if b.Ref == ref {
			return b, nil
		}
	}
	return models.Booking{}, domain.NotFoundError{Resource: "booking"}
}

// Append adds a new booking. A duplicate reference is a conflict; the
// ledger never overwrites an existing record.
func (r BookingLedger) Append(b models.Booking) error {
	list, err := r.List(b.OwnerKey)
	if err != nil {
		return err
	}
	for _, existing := range list {
		if existing.Ref == b.Ref {
			return domain.ConflictError{Resource: "booking", Msg: "reference already recorded"}
		}
	}
	return r.save(b.OwnerKey, append(list, b))
}

// Cancel flips status to cancelled and nothing else; the financial
// snapshot stays exactly as it was at confirmation. Cancelling an
// already-cancelled booking is a no-op.
func (r BookingLedger) Cancel(ownerKey, ref string) (models.Booking, error) {
	list, err := r.List(ownerKey)
	if err != nil {
		return models.Booking{}, err
	}
	for i, b := range list {
		if b.Ref != ref {
			continue
		}
		if b.Status == models.StatusCancelled {
			return b, nil
		}
		list[i].Status = models.StatusCancelled
		if err := r.save(ownerKey, list); err != nil {
			return models.Booking{}, err
		}
		return list[i], nil
	}
	return models.Booking{}, domain.NotFoundError{Resource: "booking"}
}

func (r BookingLedger) save(ownerKey string, list []models.Booking) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if err := r.Store.Set(r.key(ownerKey), string(raw)); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}
