package notification

import (
	"context"
	"sync"
	"time"

	"github.com/akimovv/SessionBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Sink delivers one notification to a single destination.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, n *domain.BookingNotification) error
}

const (
	defaultQueueSize       = 256
	defaultWorkers         = 2
	defaultDeliveryTimeout = 15 * time.Second
)

// Dispatcher fans booking notifications out to its sinks from a pool of
// workers. Enqueueing never blocks the caller: when the queue is full the
// notification is dropped and counted. Delivery failures are logged and
// never reach the booking path.
type Dispatcher struct {
	sinks   []Sink
	queue   chan *domain.BookingNotification
	workers int
	timeout time.Duration
	logger  logger.Logger
	wg      sync.WaitGroup
	stop    sync.Once
}

func NewDispatcher(sinks []Sink, queueSize, workers int, logger logger.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	if workers <= 0 {
		workers = defaultWorkers
	}

	return &Dispatcher{
		sinks:   sinks,
		queue:   make(chan *domain.BookingNotification, queueSize),
		workers: workers,
		timeout: defaultDeliveryTimeout,
		logger:  logger,
	}
}

// Start launches the worker pool. Workers drain the queue until Stop closes
// it, so notifications enqueued during HTTP shutdown are still delivered.
func (d *Dispatcher) Start() {
	d.logger.Info("notification dispatcher started",
		logger.Int("workers", d.workers),
		logger.Int("queue_size", cap(d.queue)),
	)

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
}

// Stop closes the queue and waits for the workers to deliver what is left.
// Callers must stop producing first; the HTTP server is shut down before
// Stop is called.
func (d *Dispatcher) Stop() {
	d.stop.Do(func() { close(d.queue) })
	d.wg.Wait()
	d.logger.Info("notification dispatcher stopped")
}

func (d *Dispatcher) NotifyBookingCreated(_ context.Context, n *domain.BookingNotification) {
	n.Action = domain.BookingActionCreated
	d.enqueue(n)
}

func (d *Dispatcher) NotifyBookingReactivated(_ context.Context, n *domain.BookingNotification) {
	n.Action = domain.BookingActionReactivated
	d.enqueue(n)
}

func (d *Dispatcher) enqueue(n *domain.BookingNotification) {
	select {
	case d.queue <- n:
	default:
		droppedTotal.Inc()
		d.logger.Error("notification queue full, dropping",
			logger.Int64("booking_id", n.BookingID),
			logger.String("action", string(n.Action)),
		)
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	// добираем хвост очереди до закрытия канала
	for n := range d.queue {
		d.deliver(n)
	}
}

func (d *Dispatcher) deliver(n *domain.BookingNotification) {
	for _, sink := range d.sinks {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		err := sink.Deliver(ctx, n)
		cancel()

		if err != nil {
			deliveriesTotal.WithLabelValues(sink.Name(), "error").Inc()
			d.logger.Error("notification delivery failed",
				logger.String("sink", sink.Name()),
				logger.Int64("booking_id", n.BookingID),
				logger.String("action", string(n.Action)),
				logger.String("error", err.Error()),
			)
			continue
		}

		deliveriesTotal.WithLabelValues(sink.Name(), "ok").Inc()
		d.logger.Info("notification delivered",
			logger.String("sink", sink.Name()),
			logger.Int64("booking_id", n.BookingID),
			logger.String("action", string(n.Action)),
		)
	}
}
