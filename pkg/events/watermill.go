// Package events carries wardrobe change notifications between the API and the
// audit worker over Watermill.
//
// With STORAGE_DRIVER=postgres messages go through watermill-sql tables in the
// wardrobe database, so cmd/worker can consume them from another process. Every
// instance of a service joins the same consumer group. Any other driver uses an
// in-process gochannel, where a message published with no subscriber is lost.
//
// Handlers may run more than once for the same message and must tolerate it.
// The publisher's trace context travels in message metadata.
package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/ghuser/wardrobe/pkg/config"
	"github.com/ghuser/wardrobe/pkg/logger"
)

const (
	transportPostgres  = "postgres"
	transportGoChannel = "gochannel"

	channelBuffer    = 64
	errBuffer        = 100
	maxOpenConns     = 4
	drainTimeout     = 30 * time.Second
	consumerGroupFmt = "%s-consumer"
)

// Handler processes one message. A non-nil error triggers the retry policy.
type Handler func(context.Context, *message.Message) error

// EventBus publishes and consumes wardrobe messages on one transport.
type EventBus struct {
	pub    message.Publisher
	sub    message.Subscriber
	db     *sql.DB // owned by the bus, nil for gochannel
	retry  retryPolicy
	log    logger.Logger
	flight sync.WaitGroup
}

// NewEventBus picks the transport that matches where the wardrobe is stored.
func NewEventBus(cfg *config.Config, log logger.Logger) (*EventBus, error) {
	if cfg.StorageDriver != config.StoragePostgres {
		return NewInProcessEventBus(log), nil
	}
	return NewSQLEventBus(cfg, log)
}

// NewInProcessEventBus returns a bus local to this process.
func NewInProcessEventBus(log logger.Logger) *EventBus {
	ch := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: channelBuffer}, watermillLogger(log))
	return &EventBus{pub: ch, sub: ch, retry: defaultRetry, log: log}
}

// NewSQLEventBus stores messages in PostgreSQL at cfg.DatabaseURL. The
// watermill tables are created on first use.
func NewSQLEventBus(cfg *config.Config, log logger.Logger) (*EventBus, error) {
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("events: open db: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)

	wlog := watermillLogger(log)
	schema := watermillsql.DefaultPostgreSQLSchema{}

	pub, err := watermillsql.NewPublisher(db, watermillsql.PublisherConfig{
		SchemaAdapter:        schema,
		AutoInitializeSchema: true,
	}, wlog)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("events: new publisher: %w", err), db.Close())
	}

	sub, err := watermillsql.NewSubscriber(db, watermillsql.SubscriberConfig{
		SchemaAdapter:    schema,
		OffsetsAdapter:   watermillsql.DefaultPostgreSQLOffsetsAdapter{},
		InitializeSchema: true,
		ConsumerGroup:    fmt.Sprintf(consumerGroupFmt, cfg.ServiceName),
	}, wlog)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("events: new subscriber: %w", err), pub.Close(), db.Close())
	}

	return &EventBus{pub: pub, sub: sub, db: db, retry: defaultRetry, log: log}, nil
}

// Transport reports "postgres" or "gochannel".
func (b *EventBus) Transport() string {
	if b.db == nil {
		return transportGoChannel
	}
	return transportPostgres
}

// Publish stamps the caller's trace onto msgs and sends them to topic.
func (b *EventBus) Publish(ctx context.Context, topic string, msgs ...*message.Message) error {
	for _, msg := range msgs {
		injectTrace(ctx, msg)
	}
	if err := b.pub.Publish(topic, msgs...); err != nil { //nolint:contextcheck
		return fmt.Errorf("events: publish to %s: %w", topic, err)
	}
	return nil
}

// Subscribe runs handler for every message on topic until ctx is canceled or
// the bus is closed. A message is acked once handler succeeds. After the last
// failed attempt it is nacked and the error is sent on the returned channel,
// which the caller must drain. A full channel drops the error after logging it.
func (b *EventBus) Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error) {
	msgs, err := b.sub.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("events: subscribe to %s: %w", topic, err)
	}

	errCh := make(chan error, errBuffer)
	b.flight.Add(1)
	go func() {
		defer b.flight.Done()
		defer close(errCh)
		for msg := range msgs {
			b.consume(extractTrace(ctx, msg), topic, msg, handler, errCh)
		}
	}()
	return errCh, nil
}

func (b *EventBus) consume(ctx context.Context, topic string, msg *message.Message, handler Handler, errCh chan<- error) {
	err := b.retry.run(ctx, msg, handler, b.log)
	if err == nil {
		msg.Ack()
		return
	}
	msg.Nack()
	select {
	case errCh <- fmt.Errorf("%s: %w", topic, err):
	default:
		b.log.ErrorContext(ctx, "events: error channel full, dropping error",
			"topic", topic, "message_uuid", msg.UUID, "error", err)
	}
}

// Ping checks the database behind the postgres transport.
func (b *EventBus) Ping(ctx context.Context) error {
	if b.db == nil {
		return nil
	}
	if err := b.db.PingContext(ctx); err != nil {
		return fmt.Errorf("events: ping db: %w", err)
	}
	return nil
}

// Close stops consuming, waits up to 30s for running handlers, then releases
// the publisher and the database.
func (b *EventBus) Close() error {
	subErr := b.sub.Close()

	done := make(chan struct{})
	go func() {
		b.flight.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(drainTimeout):
		b.log.Error("events: handlers still running at shutdown", "timeout", drainTimeout)
	}

	// gochannel is both publisher and subscriber.
	var pubErr, dbErr error
	if b.db != nil {
		pubErr = b.pub.Close()
		dbErr = b.db.Close()
	}
	return errors.Join(wrapClose("subscriber", subErr), wrapClose("publisher", pubErr), wrapClose("db", dbErr))
}

func wrapClose(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("events: close %s: %w", what, err)
}

func injectTrace(ctx context.Context, msg *message.Message) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.MapCarrier(msg.Metadata))
}

func extractTrace(ctx context.Context, msg *message.Message) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, propagation.MapCarrier(msg.Metadata))
}

// watermillLogger routes watermill's own logs through logger.Logger.
func watermillLogger(log logger.Logger) watermill.LoggerAdapter {
	return &slogAdapter{log: log}
}

type slogAdapter struct{ log logger.Logger }

func (a *slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.log.Error(msg, append(fieldArgs(fields), "error", err)...)
}

func (a *slogAdapter) Info(msg string, fields watermill.LogFields) {
	a.log.Info(msg, fieldArgs(fields)...)
}

func (a *slogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldArgs(fields)...)
}

// Trace has no slog level of its own.
func (a *slogAdapter) Trace(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldArgs(fields)...)
}

func (a *slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &slogAdapter{log: a.log.With(fieldArgs(fields)...)}
}

func fieldArgs(fields watermill.LogFields) []any {
	args := make([]any, 0, 2*len(fields))
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}
