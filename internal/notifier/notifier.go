package notifier

import (
	"context"
	"fmt"

	"autocare/config"
	"autocare/infras/kafka"
	"autocare/infras/otel"
	bookingModel "autocare/internal/domains/booking/model"
	bookingDto "autocare/internal/domains/booking/model/dto"
	contactDto "autocare/internal/domains/contact/model/dto"
	"autocare/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"
)

// Notice is an outbound message rendered from a domain event.
type Notice struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers a rendered notice.
type Sender interface {
	Send(ctx context.Context, notice Notice) error
}

// LogSender writes notices to the application log.
type LogSender struct{}

func (LogSender) Send(_ context.Context, notice Notice) error {
	log.Info().
		Str("to", notice.To).
		Str("subject", notice.Subject).
		Str("body", notice.Body).
		Msg("Notification dispatched")

	return nil
}

type Notifier struct {
	kafka  kafka.Client
	sender Sender
	cfg    *config.Config
	otel   otel.Otel
}

func New(kafka kafka.Client, sender Sender, cfg *config.Config, otel otel.Otel) *Notifier {
	return &Notifier{
		kafka:  kafka,
		sender: sender,
		cfg:    cfg,
		otel:   otel,
	}
}

// Run consumes the booking and contact topics until ctx is cancelled.
func (n *Notifier) Run(ctx context.Context) {
	topics := map[string]func(kafkaGo.Message){
		n.cfg.Kafka.Topics.Booking: func(msg kafkaGo.Message) { n.HandleBooking(ctx, msg) },
		n.cfg.Kafka.Topics.Contact: func(msg kafkaGo.Message) { n.HandleContact(ctx, msg) },
	}

	var group errgroup.Group

	for topic, handler := range topics {
		group.Go(func() error {
			log.Info().Str("topic", topic).Msg("Notifier listening")
			n.kafka.Consume(ctx, n.cfg.Kafka.ConsumerGroup, topic, handler)

			return nil
		})
	}

	_ = group.Wait()
}

func (n *Notifier) HandleBooking(ctx context.Context, msg kafkaGo.Message) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notifier.HandleBooking")
	defer scope.End()

	event, err := kafka.Decode[kafka.Event[bookingDto.Event]](msg)
	if err != nil {
		scope.TraceError(err)

		return
	}

	notice, ok := BookingNotice(event)
	if !ok {
		log.Debug().Str("type", event.Type).Msg("No notice for booking event")

		return
	}

	n.send(ctx, scope, notice)
}

func (n *Notifier) HandleContact(ctx context.Context, msg kafkaGo.Message) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notifier.HandleContact")
	defer scope.End()

	event, err := kafka.Decode[kafka.Event[contactDto.Event]](msg)
	if err != nil {
		scope.TraceError(err)

		return
	}

	n.send(ctx, scope, ContactNotice(event, n.cfg.App.Name))
}

func (n *Notifier) send(ctx context.Context, scope otel.Scope, notice Notice) {
	if err := n.sender.Send(ctx, notice); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("to", notice.To).Msg("Failed to send notification")
	}
}

// BookingNotice renders the customer-facing message for a booking event. It reports false for
// events that need no message.
func BookingNotice(event kafka.Event[bookingDto.Event]) (Notice, bool) {
	booking := event.Payload

	service := booking.ServiceID
	if booking.ServiceName != nil && *booking.ServiceName != "" {
		service = *booking.ServiceName
	}

	switch event.Type {
	case constant.EventBookingCreated:
		return Notice{
			To:      booking.CustomerEmail,
			Subject: "We received your booking",
			Body: fmt.Sprintf("Hi %s, your %s booking on %s at %s is pending confirmation.",
				booking.CustomerName, service, booking.BookingDate, booking.BookingTime),
		}, true
	case constant.EventBookingStatusChanged:
		if booking.Status == booking.PreviousStatus {
			return Notice{}, false
		}

		return Notice{
			To:      booking.CustomerEmail,
			Subject: "Your booking is " + statusLabel(booking.Status),
			Body: fmt.Sprintf("Hi %s, your %s booking on %s at %s is now %s.",
				booking.CustomerName, service, booking.BookingDate, booking.BookingTime, statusLabel(booking.Status)),
		}, true
	default:
		return Notice{}, false
	}
}

// ContactNotice acknowledges a contact form submission.
func ContactNotice(event kafka.Event[contactDto.Event], appName string) Notice {
	contact := event.Payload

	if appName == "" {
		appName = "AutoCare"
	}

	return Notice{
		To:      contact.Email,
		Subject: "Re: " + contact.Subject,
		Body:    fmt.Sprintf("Hi %s, thanks for contacting %s. Our team will get back to you shortly.", contact.Name, appName),
	}
}

func statusLabel(status string) string {
	if status == bookingModel.StatusInProgress {
		return "in progress"
	}

	return status
}
