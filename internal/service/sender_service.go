package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"strings"
	"time"

	"partyrental/internal/entities"
)

type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

// SendBookingEmail composes and sends the booking notification email for a
// status change. The send itself runs in a goroutine; a failed notification
// never fails the booking.
func (s *SenderService) SendBookingEmail(booking entities.BookingResponse, status string) {
	var itemNames []string
	for _, item := range booking.Items {
		itemNames = append(itemNames, item.Name)
	}

	emailData := entities.BookingEmailData{
		CustomerName:          booking.CustomerName,
		OrderNumber:           booking.OrderNumber,
		ItemNames:             itemNames,
		DeliveryDateFormatted: booking.DeliveryDate.Format("02 Jan 2006"),
		PickupDateFormatted:   booking.PickupDate.Format("02 Jan 2006"),
		DeliveryAddress:       booking.DeliveryAddress,
		Status:                status,
		Language:              booking.Language,
		CurrentYear:           time.Now().UTC().Year(),
	}

	var emailSubject, plainTextBody string
	switch booking.Language {
	case "es":
		emailSubject = fmt.Sprintf("Tu reserva de Party Rental está %s - Orden: %s", status, emailData.OrderNumber)
		plainTextBody = fmt.Sprintf(
			"Hola %s,\n\nTu reserva está %s.\n\n"+
				"Detalles de la reserva:\n"+
				"Número de orden: %s\n"+
				"Artículos: %s\n"+
				"Entrega: %s\n"+
				"Retiro: %s\n"+
				"Dirección: %s\n\n"+
				"Gracias por elegir Party Rental.",
			emailData.CustomerName, status, emailData.OrderNumber, strings.Join(itemNames, ", "),
			emailData.DeliveryDateFormatted, emailData.PickupDateFormatted, emailData.DeliveryAddress,
		)
	default:
		emailSubject = fmt.Sprintf("Your Party Rental booking is %s - Order: %s", status, emailData.OrderNumber)
		plainTextBody = fmt.Sprintf(
			"Hello %s,\n\nYour booking is %s.\n\n"+
				"Booking Details:\n"+
				"Order Number: %s\n"+
				"Items: %s\n"+
				"Delivery: %s\n"+
				"Pickup: %s\n"+
				"Address: %s\n\n"+
				"Thank you for choosing Party Rental.",
			emailData.CustomerName, status, emailData.OrderNumber, strings.Join(itemNames, ", "),
			emailData.DeliveryDateFormatted, emailData.PickupDateFormatted, emailData.DeliveryAddress,
		)
	}

	var htmlBody string
	tmplPath := filepath.Join("internal", "templates", "booking_email.html")
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("ALERT: Could not parse HTML email template (%s): %v", tmplPath, err)
	} else {
		var htmlBodyBuffer bytes.Buffer
		if err := tmpl.Execute(&htmlBodyBuffer, emailData); err != nil {
			log.Printf("ALERT: Could not execute HTML email template for order %s: %v", emailData.OrderNumber, err)
		}
		htmlBody = htmlBodyBuffer.String()
	}
	if htmlBody == "" {
		htmlBody = plainTextBody
	}

	go func(toEmail, toName, subject, plainBody, htmlBodyContent string) {
		if errEmail := SendEmailWithSendGrid(toEmail, toName, subject, plainBody, htmlBodyContent); errEmail != nil {
			log.Printf("ALERT (async): Email send failed for order %s: %v", emailData.OrderNumber, errEmail)
		}
	}(booking.CustomerEmail, emailData.CustomerName, emailSubject, plainTextBody, htmlBody)
}

// SendBookingSMS sends the short status notification to the customer's
// phone.
func (s *SenderService) SendBookingSMS(booking entities.BookingResponse, status string) {
	var smsMessage string
	switch booking.Language {
	case "es":
		smsMessage = fmt.Sprintf("Party Rental: ¡Tu orden %s está %s!\nEntrega: %s.\nMás detalles en tu correo.",
			booking.OrderNumber, status, booking.DeliveryDate.Format("02/01"))
	default:
		smsMessage = fmt.Sprintf("Party Rental: Order %s is %s!\nDelivery: %s.\nMore details in your email.",
			booking.OrderNumber, status, booking.DeliveryDate.Format("02/01"))
	}

	go func(toNumber, body, orderNumber string) {
		if errSMS := SendSMS(toNumber, body); errSMS != nil {
			log.Printf("ALERT (async): SMS send failed for order %s to %s: %v", orderNumber, toNumber, errSMS)
		}
	}(booking.CustomerPhone, smsMessage, booking.OrderNumber)
}
