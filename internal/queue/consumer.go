package queue

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "go.uber.org/zap"

    "github.com/iliyamo/gig-booking-dashboard/internal/config"
    "github.com/iliyamo/gig-booking-dashboard/internal/model"
)

// Invalidator drops cached responses of a resource.
type Invalidator interface {
    Invalidate(ctx context.Context, resource string) (int64, error)
}

// AuditWriter appends audit_logs rows.
type AuditWriter interface {
    Insert(ctx context.Context, e model.AuditEntry) error
}

// Consumer reads DataChangedEvents from the changes queue.
type Consumer struct {
    cfg   config.QueueConfig
    cache Invalidator
    audit AuditWriter
    log   *zap.Logger
}

func NewConsumer(cfg config.QueueConfig, cache Invalidator, audit AuditWriter, log *zap.Logger) *Consumer {
    return &Consumer{cfg: cfg, cache: cache, audit: audit, log: log.Named("changes-consumer")}
}

// Run connects to RabbitMQ, declares the durable changes queue and
// consumes it until ctx is cancelled.  Dial failures and dropped
// connections are retried with exponential backoff capped at 30s.
func (c *Consumer) Run(ctx context.Context) error {
    backoff := time.Second
    for {
        conn, err := amqp.Dial(c.cfg.URL)
        if err != nil {
            c.log.Warn("dial broker failed", zap.Error(err), zap.Duration("retry_in", backoff))
            if !sleep(ctx, backoff) {
                return ctx.Err()
            }
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second

        err = c.consume(ctx, conn)
        _ = conn.Close()
        if ctx.Err() != nil {
            return ctx.Err()
        }
        c.log.Warn("consume loop ended; reconnecting", zap.Error(err))
        if !sleep(ctx, 2*time.Second) {
            return ctx.Err()
        }
    }
}

func sleep(ctx context.Context, d time.Duration) bool {
    t := time.NewTimer(d)
    defer t.Stop()
    select {
    case <-ctx.Done():
        return false
    case <-t.C:
        return true
    }
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(c.cfg.Prefetch, 0, false); err != nil {
        c.log.Warn("set QoS failed", zap.Error(err))
    }
    if _, err := ch.QueueDeclare(c.cfg.Queue, true, false, false, false, nil); err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }
    msgs, err := ch.Consume(c.cfg.Queue, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume: %w", err)
    }
    c.log.Info("consuming", zap.String("queue", c.cfg.Queue))

    for {
        select {
        case <-ctx.Done():
            return ctx.Err()
        case d, ok := <-msgs:
            if !ok {
                return errors.New("deliveries channel closed")
            }
            if err := c.Handle(ctx, d.Body); err != nil {
                c.log.Error("handle message failed", zap.Error(err), zap.ByteString("body", d.Body))
                _ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
                continue
            }
            _ = d.Ack(false)
        }
    }
}

// Handle decodes one message body and applies it.
func (c *Consumer) Handle(ctx context.Context, body []byte) error {
    var ev DataChangedEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    return c.Apply(ctx, ev)
}

// Apply drops the cache groups affected by ev and records it in
// audit_logs.  Cache errors are logged; a failed audit insert is
// returned.
func (c *Consumer) Apply(ctx context.Context, ev DataChangedEvent) error {
    table := ev.Table()
    if table == "" {
        return fmt.Errorf("unknown resource %q", ev.Resource)
    }
    for _, res := range Affected(ev.Resource) {
        n, err := c.cache.Invalidate(ctx, res)
        if err != nil {
            c.log.Warn("cache invalidation failed", zap.String("resource", res), zap.Error(err))
            continue
        }
        c.log.Debug("cache invalidated", zap.String("resource", res), zap.Int64("keys", n))
    }
    if ev.ChangedAt.IsZero() {
        ev.ChangedAt = time.Now().UTC()
    }
    if err := c.audit.Insert(ctx, model.AuditEntry{
        TableName: table,
        RecordID:  ev.RecordID,
        Action:    ev.Action,
        ChangedBy: ev.ActorID,
        ChangedAt: ev.ChangedAt,
    }); err != nil {
        return fmt.Errorf("audit insert: %w", err)
    }
    return nil
}
