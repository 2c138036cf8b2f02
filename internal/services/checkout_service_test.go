package services

import (
	"context"
	"testing"

	"villagestay/internal/checkout"
	"villagestay/internal/domain"
	"villagestay/internal/domain/models"
	"villagestay/internal/repositories"
	"villagestay/internal/store"
)

type recordingEmail struct{ sent int }

func (r *recordingEmail) SendEmail(to, subject, body string) error {
	r.sent++
	return nil
}

type recordingSMS struct{ sent int }

func (r *recordingSMS) SendSMS(to, message string) error {
	r.sent++
	return nil
}

func newCheckoutService(gw *MockGateway, email *recordingEmail, sms *recordingSMS) CheckoutService {
	return CheckoutService{
		Sessions: checkout.NewManager(),
		Catalog:  repositories.HomestayCatalog{},
		Ledger:   repositories.BookingLedger{Store: store.NewMemory()},
		Gateway:  gw,
		Notifier: NotificationService{Email: email, SMS: sms},
	}
}

func walkToPayment(t *testing.T, svc CheckoutService) *checkout.Session {
	t.Helper()
	sess, err := svc.Start("guest-1", "1", "2024-04-01", "2024-04-03", 2)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	err = sess.SubmitGuestInfo(models.GuestInfo{
		FirstName: "Amit", LastName: "Singh",
		Email: "amit@example.com", Phone: "+91 9876543210",
	})
	if err != nil {
		t.Fatalf("guest info: %v", err)
	}
	if err := sess.Proceed(); err != nil {
		t.Fatalf("proceed: %v", err)
	}
	return sess
}

func TestCheckoutServiceStartRejectsSameDay(t *testing.T) {
	svc := newCheckoutService(&MockGateway{}, &recordingEmail{}, &recordingSMS{})
	_, err := svc.Start("guest-1", "1", "2024-04-01", "2024-04-01", 2)
	if !domain.IsInvalidRange(err) {
		t.Fatalf("expected InvalidRangeError, got %v", err)
	}
}

func TestCheckoutServiceStartRejectsUnknownHomestay(t *testing.T) {
	svc := newCheckoutService(&MockGateway{}, &recordingEmail{}, &recordingSMS{})
	_, err := svc.Start("guest-1", "42", "2024-04-01", "2024-04-03", 2)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCheckoutServicePayFailureThenSuccess(t *testing.T) {
	gw := &MockGateway{FailNext: true}
	email := &recordingEmail{}
	sms := &recordingSMS{}
	svc := newCheckoutService(gw, email, sms)

	sess := walkToPayment(t, svc)

	_, err := svc.Pay(context.Background(), "guest-1", sess.ID, models.MethodUPI)
	if !domain.IsPayment(err) {
		t.Fatalf("expected PaymentError, got %v", err)
	}
	if sess.Step() != checkout.StepPayment {
		t.Fatalf("failed payment moved session to %v", sess.Step())
	}
	if list, _ := svc.Ledger.List("guest-1"); len(list) != 0 {
		t.Fatalf("ledger has %d records after failed payment", len(list))
	}

	booking, err := svc.Pay(context.Background(), "guest-1", sess.ID, models.MethodUPI)
	if err != nil {
		t.Fatalf("retry pay: %v", err)
	}
	if booking.Status != models.StatusConfirmed {
		t.Fatalf("status = %q", booking.Status)
	}
	if booking.Breakdown.Total != 5850 {
		t.Fatalf("total = %d, want 5850", booking.Breakdown.Total)
	}

	list, err := svc.Ledger.List("guest-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("ledger has %d records, want exactly 1", len(list))
	}
	if email.sent != 1 || sms.sent != 1 {
		t.Fatalf("notifications email=%d sms=%d, want 1/1", email.sent, sms.sent)
	}

	// replaying pay must not duplicate the record or renotify
	again, err := svc.Pay(context.Background(), "guest-1", sess.ID, models.MethodUPI)
	if err != nil {
		t.Fatalf("replayed pay: %v", err)
	}
	if again.Ref != booking.Ref {
		t.Fatalf("replay returned different booking %s", again.Ref)
	}
	if list, _ := svc.Ledger.List("guest-1"); len(list) != 1 {
		t.Fatalf("replay duplicated ledger records: %d", len(list))
	}
	if email.sent != 1 || sms.sent != 1 {
		t.Fatalf("replay renotified: email=%d sms=%d", email.sent, sms.sent)
	}
}

func TestCheckoutServicePayWithDiscount(t *testing.T) {
	svc := newCheckoutService(&MockGateway{}, &recordingEmail{}, &recordingSMS{})

	sess, err := svc.Start("guest-1", "1", "2024-04-01", "2024-04-03", 2)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	err = sess.SubmitGuestInfo(models.GuestInfo{
		FirstName: "Amit", LastName: "Singh",
		Email: "amit@example.com", Phone: "+91 9876543210",
	})
	if err != nil {
		t.Fatalf("guest info: %v", err)
	}
	if _, err := sess.ApplyDiscount("WELCOME10"); err != nil {
		t.Fatalf("apply discount: %v", err)
	}
	if err := sess.Proceed(); err != nil {
		t.Fatalf("proceed: %v", err)
	}

	booking, err := svc.Pay(context.Background(), "guest-1", sess.ID, models.MethodCard)
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	if booking.Breakdown.DiscountAmount != 500 || booking.Breakdown.Total != 5350 {
		t.Fatalf("breakdown = %+v", booking.Breakdown)
	}
}

func TestHostServiceSubmitApplication(t *testing.T) {
	email := &recordingEmail{}
	svc := HostService{
		Store:    store.NewMemory(),
		Notifier: NotificationService{Email: email, SMS: &recordingSMS{}},
	}

	app, err := svc.SubmitApplication(models.HostApplication{
		Name:         "Priya Sharma",
		Email:        "priya@example.com",
		Phone:        "+91 9876543210",
		PropertyName: "Hilltop Heritage Home",
		PropertyType: "traditional-house",
		Village:      "Madikeri",
		State:        "Karnataka",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if app.ID == "" {
		t.Fatal("application id not assigned")
	}
	if email.sent != 1 {
		t.Fatalf("confirmation emails = %d, want 1", email.sent)
	}

	_, err = svc.SubmitApplication(models.HostApplication{Name: "X"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError for incomplete application, got %v", err)
	}
}
