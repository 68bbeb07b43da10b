package consumer

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/Shopify/sarama"
	"github.com/acikkaynak/housing-api-go/listings"
	log "github.com/acikkaynak/housing-api-go/pkg/logger"
	"github.com/acikkaynak/housing-api-go/pkg/metrics"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const GroupName = "listings_notification_consumer"

var ErrMalformedEvent = errors.New("malformed listing event")

type Notifier interface {
	SendListingPublished(l listings.Listing) error
}

// Consumer represents a Sarama consumer group consumer. It also serves NATS
// subscriptions through HandleNATS.
type Consumer struct {
	Ready    chan bool
	topic    string
	notifier Notifier
}

// NewConsumer builds a consumer. A nil notifier means SMTP is not configured
// and events are only logged.
func NewConsumer(topic string, notifier Notifier) *Consumer {
	return &Consumer{
		Ready:    make(chan bool),
		topic:    topic,
		notifier: notifier,
	}
}

func (consumer *Consumer) Start(ctx context.Context, group sarama.ConsumerGroup) {
	go func() {
		for {
			if err := group.Consume(ctx, []string{consumer.topic}, consumer); err != nil {
				log.Logger().Error("Error from consumer:", zap.Error(err))
				if errors.Is(err, sarama.ErrClosedConsumerGroup) {
					return
				}
			}
			// check if context was cancelled, signaling that the consumer should stop
			if ctx.Err() != nil {
				return
			}
			consumer.Ready = make(chan bool)
		}
	}()
	<-consumer.Ready
	log.Logger().Info("Sarama consumer up and running!...")
}

// Setup is run at the beginning of a new session, before ConsumeClaim
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	// Mark the consumer as Ready
	close(consumer.Ready)
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim must start a consumer loop of ConsumerGroupClaim's Messages().
func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			consumer.process(session.Context(), message.Topic, message.Value)
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

func (consumer *Consumer) HandleNATS(msg *nats.Msg) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	consumer.process(ctx, msg.Subject, msg.Data)
}

func (consumer *Consumer) process(ctx context.Context, topic string, value []byte) {
	result := "sent"
	if err := consumer.Handle(ctx, value); err != nil {
		result = "failed"
		if errors.Is(err, ErrMalformedEvent) {
			result = "malformed"
		}
		log.Logger().Error("failed to handle listing event", zap.String("topic", topic), zap.Error(err))
	}
	metrics.ConsumedMessages.WithLabelValues(topic, result).Inc()
}

// Handle sends the "listing published" e-mail for one listing.created event.
// Events of other types, listings without an e-mail contact and a missing
// notifier are skipped without error.
func (consumer *Consumer) Handle(_ context.Context, value []byte) error {
	event, err := listings.UnmarshalEvent(value)
	if err != nil {
		return errors.Join(ErrMalformedEvent, err)
	}
	if event.Type != listings.EventListingCreated {
		log.Logger().Debug("skipping event", zap.String("type", event.Type))
		return nil
	}

	l := event.Listing
	contact := listings.MaskContact(l.Contact)
	if !isEmail(l.Contact) {
		log.Logger().Info("listing contact is not an e-mail address, skipping notification",
			zap.String("id", l.ID), zap.String("contact", contact))
		return nil
	}
	if consumer.notifier == nil {
		log.Logger().Info("smtp is not configured, skipping notification",
			zap.String("id", l.ID), zap.String("contact", contact))
		return nil
	}

	if err := consumer.notifier.SendListingPublished(l); err != nil {
		return err
	}

	log.Logger().Info("listing notification sent", zap.String("id", l.ID), zap.String("contact", contact))
	return nil
}

func isEmail(contact string) bool {
	contact = strings.TrimSpace(contact)
	addr, err := mail.ParseAddress(contact)
	return err == nil && addr.Address == contact
}
