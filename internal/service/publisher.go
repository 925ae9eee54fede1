// Package service holds side-effecting helpers shared by the handlers.
package service

import (
    "context"
    "encoding/json"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "go.uber.org/zap"

    "github.com/iliyamo/gig-booking-dashboard/internal/config"
    "github.com/iliyamo/gig-booking-dashboard/internal/queue"
)

const publishTimeout = 5 * time.Second

// Publisher sends DataChangedEvents to the changes queue.  When the
// broker cannot be reached the event is handed to the fallback instead,
// so caches still get dropped and the audit row still gets written.
type Publisher struct {
    cfg      config.QueueConfig
    log      *zap.Logger
    fallback func(context.Context, queue.DataChangedEvent) error
}

func NewPublisher(cfg config.QueueConfig, log *zap.Logger, fallback func(context.Context, queue.DataChangedEvent) error) *Publisher {
    return &Publisher{cfg: cfg, log: log.Named("changes-publisher"), fallback: fallback}
}

// Notify publishes ev in the background.  It never blocks the request
// and never reports failure to the caller.
func (p *Publisher) Notify(ev queue.DataChangedEvent) {
    if ev.ChangedAt.IsZero() {
        ev.ChangedAt = time.Now().UTC()
    }
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
        defer cancel()
        if err := p.Publish(ctx, ev); err != nil {
            p.log.Warn("publish failed", zap.String("resource", ev.Resource),
                zap.String("record_id", ev.RecordID), zap.Error(err))
            if p.fallback != nil {
                if err := p.fallback(ctx, ev); err != nil {
                    p.log.Error("fallback failed", zap.String("resource", ev.Resource), zap.Error(err))
                }
            }
        }
    }()
}

// Publish sends ev as a persistent JSON message on the default exchange.
func (p *Publisher) Publish(ctx context.Context, ev queue.DataChangedEvent) error {
    conn, err := amqp.DialConfig(p.cfg.URL, amqp.Config{
        Heartbeat: 10 * time.Second,
        Locale:    "en_US",
        Dial:      amqp.DefaultDial(2 * time.Second),
    })
    if err != nil {
        return err
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        return err
    }
    defer func() { _ = ch.Close() }()

    // Durable so messages survive broker restarts.
    if _, err := ch.QueueDeclare(p.cfg.Queue, true, false, false, false, nil); err != nil {
        return err
    }

    body, err := json.Marshal(ev)
    if err != nil {
        return err
    }
    return ch.PublishWithContext(ctx, "", p.cfg.Queue, false, false, amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        Timestamp:    ev.ChangedAt,
        Body:         body,
    })
}
