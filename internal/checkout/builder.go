package checkout

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"villagestay/internal/domain/models"
	"villagestay/internal/utils"
)

const refAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewBookingRef generates a reference id such as VS1711015312045K3XQ9:
// VS prefix, unix millis, 5 random alphanumerics. Collisions within a
// process are negligible.
func NewBookingRef() string {
	var suffix strings.Builder
	for i := 0; i < 5; i++ {
		suffix.WriteByte(refAlphabet[rand.Intn(len(refAlphabet))])
	}
	return "VS" + strconv.FormatInt(time.Now().UnixMilli(), 10) + suffix.String()
}

// BuildBooking assembles the immutable confirmed-booking record from
// the frozen breakdown and a successful payment. Pure apart from the
// reference id and timestamp.
func BuildBooking(
	ownerKey string,
	stay models.Homestay,
	checkIn, checkOut time.Time,
	nights, guests int,
	info models.GuestInfo,
	breakdown models.PriceBreakdown,
	paymentID, method string,
) models.Booking {
	return models.Booking{
		Ref:           NewBookingRef(),
		OwnerKey:      ownerKey,
		HomestayID:    stay.ID,
		HomestayTitle: stay.Title,
		CheckIn:       utils.FormatDate(checkIn),
		CheckOut:      utils.FormatDate(checkOut),
		Nights:        nights,
		Guests:        guests,
		GuestInfo:     info,
		Breakdown:     breakdown,
		PaymentID:     paymentID,
		PaymentMethod: method,
		Status:        models.StatusConfirmed,
		CreatedAt:     utils.NowUTC(),
	}
}
