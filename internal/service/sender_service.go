package service

import (
	"bytes"
	"doctorportal/internal/db"
	"doctorportal/internal/entities"
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"time"
)

// SenderService builds and dispatches booking notifications. Every send
// happens on its own goroutine and only logs on failure, so callers never
// wait on SendGrid or Twilio.
type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

func (s *SenderService) SendBookingConfirmation(booking db.Booking) {
	emailData := entities.BookingEmailData{
		PatientName: booking.PatientName,
		Treatment:   booking.Treatment,
		Date:        booking.Date,
		Slot:        booking.Slot,
		CurrentYear: time.Now().Year(),
	}

	subject := fmt.Sprintf("Your appointment for %s is booked on %s at %s", booking.Treatment, booking.Date, booking.Slot)
	plainTextBody := fmt.Sprintf(
		"Hello %s,\n\nYour appointment for %s is confirmed.\n"+
			"Looking forward to seeing you on %s at %s.\n\n"+
			"Doctor Portal",
		booking.PatientName, booking.Treatment, booking.Date, booking.Slot,
	)
	htmlBody := renderEmailTemplate("booking_email.html", emailData)

	go func(toEmail, toName string) {
		if err := SendEmailWithSendGrid(toEmail, toName, subject, plainTextBody, htmlBody); err != nil {
			log.Printf("WARNING (async): booking confirmation email for %s/%s failed: %v", booking.Treatment, booking.Date, err)
		}
	}(booking.Patient, booking.PatientName)

	if booking.Phone != "" {
		smsBody := fmt.Sprintf("Doctor Portal: your appointment for %s on %s at %s is booked. Details in your email.",
			booking.Treatment, booking.Date, booking.Slot)
		go func(phone string) {
			if err := SendSMS(phone, smsBody); err != nil {
				log.Printf("WARNING (async): booking confirmation SMS to %s failed: %v", phone, err)
			}
		}(booking.Phone)
	}
}

func (s *SenderService) SendPaymentConfirmation(appointment entities.BookingRequest) {
	emailData := entities.BookingEmailData{
		PatientName: appointment.PatientName,
		Treatment:   appointment.Treatment,
		Date:        appointment.Date,
		Slot:        appointment.Slot,
		CurrentYear: time.Now().Year(),
	}

	subject := fmt.Sprintf("We have received your payment for %s on %s at %s", appointment.Treatment, appointment.Date, appointment.Slot)
	plainTextBody := fmt.Sprintf(
		"Hello %s,\n\nThank you, we have received your payment for %s.\n"+
			"Looking forward to seeing you on %s at %s.\n\n"+
			"Doctor Portal",
		appointment.PatientName, appointment.Treatment, appointment.Date, appointment.Slot,
	)
	htmlBody := renderEmailTemplate("payment_email.html", emailData)

	go func(toEmail, toName string) {
		if err := SendEmailWithSendGrid(toEmail, toName, subject, plainTextBody, htmlBody); err != nil {
			log.Printf("WARNING (async): payment confirmation email for %s/%s failed: %v", appointment.Treatment, appointment.Date, err)
		}
	}(appointment.Patient, appointment.PatientName)

	if appointment.Phone != "" {
		smsBody := fmt.Sprintf("Doctor Portal: payment received for %s on %s at %s. Thank you.",
			appointment.Treatment, appointment.Date, appointment.Slot)
		go func(phone string) {
			if err := SendSMS(phone, smsBody); err != nil {
				log.Printf("WARNING (async): payment confirmation SMS to %s failed: %v", phone, err)
			}
		}(appointment.Phone)
	}
}

func renderEmailTemplate(name string, data entities.BookingEmailData) string {
	tmplPath := filepath.Join("internal", "templates", name)
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("WARNING: could not parse email template %s: %v", tmplPath, err)
		return ""
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Printf("WARNING: could not execute email template %s: %v", tmplPath, err)
		return ""
	}
	return buf.String()
}
