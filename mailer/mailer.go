package mailer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/acikkaynak/housing-api-go/listings"
	"gopkg.in/gomail.v2"
)

type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPMailer struct {
	from   string
	sender Sender
}

func NewSMTPMailer(opts Options) *SMTPMailer {
	username := opts.Username
	if username == "" {
		username = opts.From
	}
	return &SMTPMailer{
		from:   opts.From,
		sender: gomail.NewDialer(opts.Host, opts.Port, username, opts.Password),
	}
}

func NewMailer(from string, sender Sender) *SMTPMailer {
	return &SMTPMailer{from: from, sender: sender}
}

func (m *SMTPMailer) SendListingPublished(l listings.Listing) error {
	msg := ListingPublishedMessage(m.from, l)
	if err := m.sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send listing e-mail: %w", err)
	}
	return nil
}

func ListingPublishedMessage(from string, l listings.Listing) *gomail.Message {
	var body strings.Builder
	body.WriteString("Your listing has been published.\n\n")
	body.WriteString("Address: " + l.Address + "\n")
	body.WriteString("Price: " + strconv.FormatFloat(l.Price, 'f', -1, 64) + " EUR / month\n")
	if l.RoomType != "" {
		body.WriteString("Room type: " + l.RoomType + "\n")
	}
	body.WriteString("Reference: " + l.ID + "\n")

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", l.Contact)
	m.SetHeader("Subject", "Your housing listing is online")
	m.SetBody("text/plain", body.String())
	return m
}
