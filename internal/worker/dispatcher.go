package worker

import (
	"context"
	"time"

	"transactions-saga/internal/core/domain"
	"transactions-saga/internal/core/ports"
	"transactions-saga/pkg/apperror"

	"github.com/rs/zerolog"
)

// Dispatcher consumes the closure queue and runs a close-payment attempt for
// every ClosureRequested and ClosureError message.
type Dispatcher struct {
	consumer     ports.QueueConsumer
	closure      ports.ClosureService
	queue        string
	pollInterval time.Duration
	batchSize    int
	lease        time.Duration
	log          zerolog.Logger
}

type Options struct {
	Queue        string
	PollInterval time.Duration
	BatchSize    int
	// Lease is how long a received message stays invisible before it is
	// delivered again.
	Lease time.Duration
}

func NewDispatcher(consumer ports.QueueConsumer, closure ports.ClosureService, opts Options, log zerolog.Logger) *Dispatcher {
	if opts.PollInterval <= 0 {
		opts.PollInterval = time.Second
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 10
	}
	if opts.Lease <= 0 {
		opts.Lease = 30 * time.Second
	}
	return &Dispatcher{
		consumer:     consumer,
		closure:      closure,
		queue:        opts.Queue,
		pollInterval: opts.PollInterval,
		batchSize:    opts.BatchSize,
		lease:        opts.Lease,
		log:          log.With().Str("component", "closure_dispatcher").Str("queue", opts.Queue).Logger(),
	}
}

// Run polls until ctx is done.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	d.log.Info().Dur("poll_interval", d.pollInterval).Msg("Closure dispatcher started")
	for {
		select {
		case <-ctx.Done():
			d.log.Info().Msg("Closure dispatcher stopped")
			return
		case <-ticker.C:
			d.DispatchOnce(ctx)
		}
	}
}

// DispatchOnce handles one batch and returns the number of acknowledged messages.
// A message whose closure attempt fails stays in the queue and reappears
// once its lease runs out.
func (d *Dispatcher) DispatchOnce(ctx context.Context) int {
	messages, err := d.consumer.Receive(ctx, d.queue, d.batchSize, d.lease)
	if err != nil {
		d.log.Error().Err(err).Msg("Failed to receive closure messages")
		return 0
	}

	acked := 0
	for _, msg := range messages {
		if !d.handle(ctx, msg) {
			continue
		}
		if err := d.consumer.Delete(ctx, d.queue, msg.ID); err != nil {
			d.log.Error().Err(err).Str("message_id", msg.ID).Msg("Failed to acknowledge closure message")
			continue
		}
		acked++
	}
	return acked
}

// handle reports whether msg can be acknowledged.
func (d *Dispatcher) handle(ctx context.Context, msg ports.QueueMessage) bool {
	log := d.log.With().
		Str("message_id", msg.ID).
		Str("transaction_id", msg.Event.TransactionID.String()).
		Str("event_code", string(msg.Event.EventCode)).
		Int("delivery_count", msg.DeliveryCount).
		Logger()

	switch msg.Event.EventCode {
	case domain.EventCodeClosureRequested, domain.EventCodeClosureError:
	default:
		log.Warn().Msg("Discarding unexpected event on the closure queue")
		return true
	}

	event, err := d.closure.Close(ctx, msg.Event.TransactionID)
	switch {
	case err == nil:
		log.Info().Str("result", string(event.EventCode)).Msg("Closure message processed")
		return true
	case apperror.HasCode(err, apperror.CodeAlreadyProcessed), apperror.HasCode(err, apperror.CodeTransactionNotFound):
		log.Info().Err(err).Msg("Closure message no longer applicable")
		return true
	default:
		log.Error().Err(err).Msg("Closure attempt failed, message will be redelivered")
		return false
	}
}
