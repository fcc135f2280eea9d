package utils

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"

	"github.com/wargital/api/config"
	"github.com/wargital/api/models"
)

// SendOrderConfirmation emails a checkout receipt. Best effort: a missing API
// key disables it and a delivery failure is only logged, never surfaced to the
// buyer.
func SendOrderConfirmation(toEmail string, order *models.Order) {
	if config.SendgridAPIKey == "" || toEmail == "" {
		return
	}

	restaurantName := "the restaurant"
	if order.Restaurant != nil {
		restaurantName = order.Restaurant.Name
	}

	html := fmt.Sprintf(
		"<strong>Terima kasih!</strong><br><br>Your order <strong>%s</strong> at %s has been placed.<br>Total: <strong>Rp%d</strong>",
		order.ID, restaurantName, order.Total,
	)

	from := mail.NewEmail("Wargital", config.EmailSender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, "Order Confirmation", to, html, html)

	client := sendgrid.NewSendClient(config.SendgridAPIKey)
	if _, err := client.Send(message); err != nil {
		logrus.Warnf("failed to send order confirmation for %s: %v", order.ID, err)
	}
}
