package services

import (
	"fmt"

	"villagestay/internal/domain/models"
	"villagestay/internal/utils"
)

// EmailSender delivers one email. The default implementation only logs;
// a real provider (SES, SendGrid) would satisfy the same interface.
type EmailSender interface {
	SendEmail(to, subject, body string) error
}

// SMSSender delivers one text message.
type SMSSender interface {
	SendSMS(to, message string) error
}

type logEmailSender struct{ requestID string }

func (s logEmailSender) SendEmail(to, subject, body string) error {
	utils.LogEvent(s.requestID, "notify", "email", "to="+to+" subject="+subject)
	return nil
}

type logSMSSender struct{ requestID string }

func (s logSMSSender) SendSMS(to, message string) error {
	utils.LogEvent(s.requestID, "notify", "sms", "to="+to)
	return nil
}

// NotificationService sends booking and host-application confirmations.
// Delivery failures are logged and never propagate into the checkout
// flow; the booking stands regardless.
type NotificationService struct {
	Email     EmailSender
	SMS       SMSSender
	RequestID string
}

func (s NotificationService) email() EmailSender {
	if s.Email != nil {
		return s.Email
	}
	return logEmailSender{requestID: s.RequestID}
}

func (s NotificationService) sms() SMSSender {
	if s.SMS != nil {
		return s.SMS
	}
	return logSMSSender{requestID: s.RequestID}
}

// SendBookingConfirmation notifies the lead guest by email and SMS.
func (s NotificationService) SendBookingConfirmation(b models.Booking) {
	guestName := b.GuestInfo.FirstName + " " + b.GuestInfo.LastName
	subject := "Booking Confirmation - VillageStay"
	body := fmt.Sprintf(
		"Dear %s,\n\nYour booking at %s is confirmed.\nReference: %s\nCheck-in: %s\nCheck-out: %s\nTotal: %s\n\nVillageStay",
		guestName, b.HomestayTitle, b.Ref, b.CheckIn, b.CheckOut, utils.FormatINR(b.Breakdown.Total),
	)
	if err := s.email().SendEmail(b.GuestInfo.Email, subject, body); err != nil {
		utils.LogEvent(s.RequestID, "notify", "email", "booking confirmation failed: "+err.Error())
	}

	sms := fmt.Sprintf("VillageStay: Your booking at %s is confirmed! Reference: %s. Check-in: %s. Total: %s",
		b.HomestayTitle, b.Ref, b.CheckIn, utils.FormatINR(b.Breakdown.Total))
	if err := s.sms().SendSMS(b.GuestInfo.Phone, sms); err != nil {
		utils.LogEvent(s.RequestID, "notify", "sms", "booking confirmation failed: "+err.Error())
	}
}

// SendHostApplicationConfirmation acknowledges a become-a-host submission.
func (s NotificationService) SendHostApplicationConfirmation(app models.HostApplication) {
	subject := "Host Application Received - VillageStay"
	body := fmt.Sprintf(
		"Dear %s,\n\nThanks for applying to host %s in %s, %s. Our team will review your application and get back to you.\n\nVillageStay",
		app.Name, app.PropertyName, app.Village, app.State,
	)
	if err := s.email().SendEmail(app.Email, subject, body); err != nil {
		utils.LogEvent(s.RequestID, "notify", "email", "host application confirmation failed: "+err.Error())
	}
}
