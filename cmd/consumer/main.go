package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/acikkaynak/housing-api-go/broker"
	"github.com/acikkaynak/housing-api-go/config"
	"github.com/acikkaynak/housing-api-go/consumer"
	"github.com/acikkaynak/housing-api-go/mailer"
	log "github.com/acikkaynak/housing-api-go/pkg/logger"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad()

	http.HandleFunc("/healthcheck", func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(200)
	})

	http.Handle("/metrics", promhttp.Handler())

	go func() {
		if err := http.ListenAndServe(cfg.HTTP.Addr, nil); err != nil {
			fmt.Fprintf(os.Stderr, "server could not started or stopped: %s", err)
		}
	}()

	var notifier consumer.Notifier
	if cfg.SMTPEnabled() {
		notifier = mailer.NewSMTPMailer(mailer.Options{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.SenderEmail,
		})
	} else {
		log.Logger().Warn("SMTP_HOST or SMTP_SENDER_EMAIL not set, notifications are only logged")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := consumer.NewConsumer(cfg.Broker.Topic, notifier)

	var closeFn func() error
	switch cfg.Broker.Kind {
	case config.BrokerNATS:
		conn, err := nats.Connect(cfg.Broker.NATSURL, nats.Name(consumer.GroupName))
		if err != nil {
			log.Logger().Panic("failed to connect to nats", zap.Error(err))
		}
		if _, err := conn.QueueSubscribe(cfg.Broker.Topic, consumer.GroupName, c.HandleNATS); err != nil {
			log.Logger().Panic("failed to subscribe", zap.String("subject", cfg.Broker.Topic), zap.Error(err))
		}
		log.Logger().Info("nats consumer up and running!...", zap.String("subject", cfg.Broker.Topic))
		closeFn = conn.Drain
	default:
		client, err := broker.NewConsumerGroup(cfg.Brokers(), consumer.GroupName)
		if err != nil {
			log.Logger().Panic(err.Error())
		}
		c.Start(ctx, client)
		closeFn = client.Close
	}

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)
	healthy := true
	for healthy {
		select {
		case <-ctx.Done():
			log.Logger().Info("terminating: context cancelled")
			healthy = false
		case <-sigterm:
			log.Logger().Info("terminating: via signal")
			healthy = false
		}
	}

	cancel()
	if err := closeFn(); err != nil {
		log.Logger().Panic("Error closing client:", zap.Error(err))
	}
}
