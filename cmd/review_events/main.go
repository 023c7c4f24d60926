package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/config"
	adminEvents "github.com/zXpect/Panel-admln-ADS-backend/pkg/admin/events"
	"github.com/zXpect/Panel-admln-ADS-backend/pkg/events"
	pktNats "github.com/zXpect/Panel-admln-ADS-backend/pkg/nats"

	"github.com/fatih/color"
)

// review_events tails the document review events published on NATS.
func main() {
	durable := flag.String("durable", "", "durable consumer name; empty only shows new events")
	flag.Parse()

	cfg := config.Load()
	if cfg.Events.NatsURL == "" {
		color.Red("NATS_URL is not set")
		os.Exit(2)
	}

	sub, err := pktNats.NewSubscriber(cfg.Events.NatsURL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS Subscriber: %v", err)
	}
	defer sub.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sub.Subscribe(ctx, "*", *durable, printEvent); err != nil {
		log.Fatalf("Failed to subscribe: %v", err)
	}

	color.Cyan("📡 Listening for review events on %s", cfg.Events.NatsURL)
	<-ctx.Done()
}

func printEvent(ctx context.Context, event events.Event) error {
	e, ok := event.(events.BaseEvent)
	if !ok {
		return nil
	}

	when := e.Timestamp().Format("2006-01-02 15:04:05")
	worker := e.String("worker_id")
	doc := e.String("document_type")

	switch e.EventType() {
	case adminEvents.DocumentApproved:
		color.Green("%s ✔ approved %s of %s by %s", when, doc, worker, e.String("reviewer_id"))
	case adminEvents.DocumentRejected:
		color.Red("%s ✘ rejected %s of %s by %s: %s", when, doc, worker, e.String("reviewer_id"), e.String("reason"))
	case adminEvents.DocumentUploaded:
		color.Yellow("%s ⬆ uploaded %s of %s (%s)", when, doc, worker, e.String("file_name"))
	case adminEvents.DocumentDeleted:
		color.White("%s 🗑 deleted %s of %s", when, doc, worker)
	default:
		color.White("%s %s", when, e.EventType())
	}
	return nil
}
