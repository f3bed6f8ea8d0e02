package otp

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/playmixer/unicredit/internal/core/marketplace"
	"go.uber.org/zap"
)

var ErrQueueFull = errors.New("otp delivery queue is full")

type message struct {
	phone string
	code  string
}

// Dispatcher hands codes to a pool of workers so the request path does not
// wait for delivery.
type Dispatcher struct {
	log      *zap.Logger
	delivery marketplace.Sender
	queue    chan message
	wg       *sync.WaitGroup
}

type option func(*Dispatcher)

func Logger(log *zap.Logger) option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// Delivery sets the sender the workers call. Codes are only logged by default.
func Delivery(sender marketplace.Sender) option {
	return func(d *Dispatcher) {
		if sender != nil {
			d.delivery = sender
		}
	}
}

func NewDispatcher(ctx context.Context, cfg *Config, options ...option) *Dispatcher {
	d := &Dispatcher{
		log:   zap.NewNop(),
		queue: make(chan message, max(cfg.QueueSize, 1)),
		wg:    &sync.WaitGroup{},
	}
	for _, opt := range options {
		opt(d)
	}
	if d.delivery == nil {
		d.delivery = &LogSender{log: d.log}
	}

	for i := 0; i < max(cfg.Workers, 1); i++ {
		d.wg.Add(1)
		go d.worker(ctx, i)
	}

	return d
}

// Send queues the code for delivery and never blocks.
func (d *Dispatcher) Send(_ context.Context, phone, code string) error {
	select {
	case d.queue <- message{phone: phone, code: code}:
		return nil
	default:
		return ErrQueueFull
	}
}

func (d *Dispatcher) worker(ctx context.Context, id int) {
	d.log.Debug("start gorutin otp worker", zap.Int("id", id))
	defer d.log.Debug("stopped gorutin otp worker", zap.Int("id", id))
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-d.queue:
			// delivery outlives the request that queued it
			if err := d.delivery.Send(context.WithoutCancel(ctx), msg.phone, msg.code); err != nil {
				d.log.Error("failed deliver otp", zap.String("phone", msg.phone), zap.Error(err))
			}
		}
	}
}

// Wait blocks until every worker has stopped.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// LogSender writes codes to the log instead of an SMS gateway.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, phone, code string) error {
	if s.log == nil {
		return fmt.Errorf("no logger for phone %s", phone)
	}
	s.log.Info("otp issued", zap.String("phone", phone), zap.String("code", code))
	return nil
}
