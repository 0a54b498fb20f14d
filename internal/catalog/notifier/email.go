package notifier

import (
	"fmt"

	"atlascars/pkg/logger"
	"atlascars/pkg/model"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// BookingNotifier sends booking acknowledgements to customers and a copy
// to the support inbox. Failures are logged, never surfaced to the caller;
// a booking must not fail because email delivery did.
type BookingNotifier interface {
	BookingReceived(booking *model.Booking, car *model.Car)
}

type emailNotifier struct {
	apiKey       string
	siteName     string
	senderEmail  string
	supportEmail string
	log          *logger.Logger
}

func NewEmailNotifier(apiKey, siteName, senderEmail, supportEmail string, log *logger.Logger) BookingNotifier {
	if apiKey == "" {
		log.Warn("SendGrid API key not set, booking emails disabled")
	}
	return &emailNotifier{
		apiKey:       apiKey,
		siteName:     siteName,
		senderEmail:  senderEmail,
		supportEmail: supportEmail,
		log:          log,
	}
}

func (n *emailNotifier) BookingReceived(booking *model.Booking, car *model.Car) {
	if n.apiKey == "" {
		return
	}

	subject := fmt.Sprintf("%s - booking request %s", n.siteName, booking.ID)
	body := n.renderBody(booking, car)

	n.send(booking.FullName, booking.Email, subject, body)
	n.send(n.siteName, n.supportEmail, subject, body)
}

func (n *emailNotifier) send(name, email, subject, body string) {
	if email == "" {
		return
	}

	from := mail.NewEmail(n.siteName, n.senderEmail)
	to := mail.NewEmail(name, email)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(n.apiKey)
	response, err := client.Send(message)
	if err != nil {
		n.log.Error("Failed to send booking email", "email", email, "error", err)
		return
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		n.log.Info("Booking email sent", "email", email, "status_code", response.StatusCode)
	} else {
		n.log.Warn("Booking email sent with non-2xx status",
			"email", email,
			"status_code", response.StatusCode,
			"body", response.Body,
		)
	}
}

func (n *emailNotifier) renderBody(booking *model.Booking, car *model.Car) string {
	return fmt.Sprintf(
		"Booking request received.\n\n"+
			"Reference: %s\n"+
			"Vehicle: %s (%d)\n"+
			"Pickup: %s\n"+
			"Return: %s\n"+
			"Location: %s\n"+
			"Status: %s\n\n"+
			"Our team will contact you shortly to confirm availability.",
		booking.ID,
		car.DisplayName(),
		car.Year,
		booking.PickupDate.Format("02/01/2006"),
		booking.ReturnDate.Format("02/01/2006"),
		booking.PickupLocation,
		booking.Status,
	)
}

// noopNotifier is used when email is disabled entirely (tests, local runs).
type noopNotifier struct{}

func NewNoopNotifier() BookingNotifier { return noopNotifier{} }

func (noopNotifier) BookingReceived(*model.Booking, *model.Car) {}
