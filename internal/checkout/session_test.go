package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"villagestay/internal/domain"
	"villagestay/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStay = models.Homestay{
	ID:        "1",
	Title:     "Green Valley Homestay",
	PerNight:  2500,
	Currency:  "INR",
	MaxGuests: 4,
}

// stubGateway fails a configured number of charges before succeeding.
type stubGateway struct {
	failures int
	charges  int
}

func (g *stubGateway) Charge(ctx context.Context, amount int64, method string, metadata map[string]string) (models.Payment, error) {
	g.charges++
	if g.failures > 0 {
		g.failures--
		return models.Payment{}, errors.New("gateway declined")
	}
	return models.Payment{
		PaymentID: "pay_test",
		Status:    "success",
		Method:    method,
		Amount:    amount,
	}, nil
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func validGuestInfo() models.GuestInfo {
	return models.GuestInfo{
		FirstName: "Amit",
		LastName:  "Singh",
		Email:     "amit@example.com",
		Phone:     "+91 9876543210",
	}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession("guest-1", testStay, day("2024-04-01"), day("2024-04-03"), 2)
	require.NoError(t, err)
	return s
}

func TestNewSessionRejectsSameDayStay(t *testing.T) {
	_, err := NewSession("guest-1", testStay, day("2024-04-01"), day("2024-04-01"), 2)
	require.Error(t, err)
	assert.True(t, domain.IsInvalidRange(err), "expected InvalidRangeError, got %v", err)
}

func TestNewSessionRejectsOvercapacity(t *testing.T) {
	_, err := NewSession("guest-1", testStay, day("2024-04-01"), day("2024-04-03"), 9)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestGuestInfoGuardBlocksBadEmail(t *testing.T) {
	s := newTestSession(t)

	info := validGuestInfo()
	info.Email = ""
	err := s.SubmitGuestInfo(info)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, StepGuestInfo, s.Step(), "state must stay at guest info")

	info.Email = "not-an-email"
	err = s.SubmitGuestInfo(info)
	require.Error(t, err)
	assert.Equal(t, StepGuestInfo, s.Step())

	require.NoError(t, s.SubmitGuestInfo(validGuestInfo()))
	assert.Equal(t, StepSummary, s.Step())
}

func TestLinearFlowAndBackNavigation(t *testing.T) {
	s := newTestSession(t)

	// no skipping forward
	require.Error(t, s.Proceed())
	_, _, err := s.Pay(context.Background(), models.MethodUPI, &stubGateway{})
	require.Error(t, err)

	require.NoError(t, s.SubmitGuestInfo(validGuestInfo()))
	require.NoError(t, s.Proceed())
	assert.Equal(t, StepPayment, s.Step())

	// Payment -> Summary -> GuestInfo, then no further back
	require.NoError(t, s.Back())
	assert.Equal(t, StepSummary, s.Step())
	require.NoError(t, s.Back())
	assert.Equal(t, StepGuestInfo, s.Step())
	require.Error(t, s.Back())
}

func TestApplyDiscountAtSummaryOnly(t *testing.T) {
	s := newTestSession(t)

	_, err := s.ApplyDiscount("WELCOME10")
	require.Error(t, err, "discount must not apply before summary")

	require.NoError(t, s.SubmitGuestInfo(validGuestInfo()))

	pct, err := s.ApplyDiscount("WELCOME10")
	require.NoError(t, err)
	assert.Equal(t, 10, pct)

	bd, err := s.Breakdown()
	require.NoError(t, err)
	assert.Equal(t, int64(500), bd.DiscountAmount)
	assert.Equal(t, int64(5350), bd.Total)

	// unknown code is rejected and leaves the applied discount alone
	_, err = s.ApplyDiscount("SUMMER50")
	require.Error(t, err)
	assert.True(t, domain.IsDiscountNotFound(err))
	_, pct = s.Discount()
	assert.Equal(t, 10, pct)
}

func TestPaymentFailureIsRetryableAndConfirmsOnce(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SubmitGuestInfo(validGuestInfo()))
	require.NoError(t, s.Proceed())

	gw := &stubGateway{failures: 1}

	_, confirmed, err := s.Pay(context.Background(), models.MethodUPI, gw)
	require.Error(t, err)
	assert.True(t, domain.IsPayment(err))
	assert.False(t, confirmed)
	assert.Equal(t, StepPayment, s.Step(), "failed payment must keep session at payment")

	booking, confirmed, err := s.Pay(context.Background(), models.MethodUPI, gw)
	require.NoError(t, err)
	assert.True(t, confirmed)
	assert.Equal(t, StepConfirmation, s.Step())
	assert.Equal(t, models.StatusConfirmed, booking.Status)
	assert.Equal(t, int64(5850), booking.Breakdown.Total)
	assert.Equal(t, "pay_test", booking.PaymentID)

	// repeated Pay returns the same record without another charge
	again, confirmed, err := s.Pay(context.Background(), models.MethodUPI, gw)
	require.NoError(t, err)
	assert.False(t, confirmed, "second pay must not confirm again")
	assert.Equal(t, booking.Ref, again.Ref)
	assert.Equal(t, 2, gw.charges, "gateway must not be charged after confirmation")
}

func TestPayRejectsUnsupportedMethod(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SubmitGuestInfo(validGuestInfo()))
	require.NoError(t, s.Proceed())

	_, _, err := s.Pay(context.Background(), "cheque", &stubGateway{})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, StepPayment, s.Step())
}

func TestBreakdownFrozenAfterConfirmation(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SubmitGuestInfo(validGuestInfo()))
	require.NoError(t, s.Proceed())

	booking, _, err := s.Pay(context.Background(), models.MethodCard, &stubGateway{})
	require.NoError(t, err)

	bd, err := s.Breakdown()
	require.NoError(t, err)
	assert.Equal(t, booking.Breakdown, bd, "post-confirmation breakdown must be the frozen snapshot")
}

func TestManagerScopesSessionsToOwner(t *testing.T) {
	m := NewManager()
	s := newTestSession(t)
	id := m.Add(s)
	require.NotEmpty(t, id)

	got, err := m.Get(id, "guest-1")
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = m.Get(id, "guest-2")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))

	_, err = m.Get("missing", "guest-1")
	require.Error(t, err)
}

func TestBookingRefFormat(t *testing.T) {
	ref := NewBookingRef()
	assert.Regexp(t, `^VS\d+[A-Z0-9]{5}$`, ref)
	assert.NotEqual(t, ref, NewBookingRef())
}
