package notification

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/akimovv/SessionBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testNotification() *domain.BookingNotification {
	return &domain.BookingNotification{
		BookingID: 42,
		User: domain.NotificationUser{
			ID:    7,
			Name:  "Alice",
			Email: "alice@example.com",
		},
		Event: domain.NotificationEvent{
			ID:        3,
			Title:     "Breathwork Intensive",
			StartDate: time.Date(2026, 9, 10, 18, 0, 0, 0, time.UTC),
		},
		FacilitatorID: 5,
		Action:        domain.BookingActionCreated,
	}
}

type recordingSink struct {
	mu       sync.Mutex
	got      []*domain.BookingNotification
	err      error
	notified chan struct{}
}

func newRecordingSink(err error) *recordingSink {
	return &recordingSink{err: err, notified: make(chan struct{}, 16)}
}

func (s *recordingSink) Name() string { return "recording" }

func (s *recordingSink) Deliver(_ context.Context, n *domain.BookingNotification) error {
	s.mu.Lock()
	s.got = append(s.got, n)
	s.mu.Unlock()
	s.notified <- struct{}{}
	return s.err
}

func (s *recordingSink) wait(t *testing.T) *domain.BookingNotification {
	t.Helper()
	select {
	case <-s.notified:
	case <-time.After(2 * time.Second):
		t.Fatal("sink was not called")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.got[len(s.got)-1]
}

func TestDispatcher_DeliversToSink(t *testing.T) {
	sink := newRecordingSink(nil)
	d := NewDispatcher([]Sink{sink}, 8, 1, newTestLogger(t))

	d.Start()

	d.NotifyBookingCreated(context.Background(), testNotification())

	got := sink.wait(t)
	assert.Equal(t, int64(42), got.BookingID)
	assert.Equal(t, domain.BookingActionCreated, got.Action)

	d.Stop()
}

func TestDispatcher_SetsReactivatedAction(t *testing.T) {
	sink := newRecordingSink(nil)
	d := NewDispatcher([]Sink{sink}, 8, 1, newTestLogger(t))

	d.Start()

	d.NotifyBookingReactivated(context.Background(), testNotification())

	got := sink.wait(t)
	assert.Equal(t, domain.BookingActionReactivated, got.Action)

	d.Stop()
}

func TestDispatcher_SinkErrorDoesNotStopOthers(t *testing.T) {
	failing := newRecordingSink(assert.AnError)
	ok := newRecordingSink(nil)
	d := NewDispatcher([]Sink{failing, ok}, 8, 1, newTestLogger(t))

	d.Start()

	d.NotifyBookingCreated(context.Background(), testNotification())

	failing.wait(t)
	ok.wait(t)

	d.Stop()
}

func TestDispatcher_StopDeliversPendingQueue(t *testing.T) {
	sink := newRecordingSink(nil)
	d := NewDispatcher([]Sink{sink}, 8, 1, newTestLogger(t))

	// заявки, принятые когда воркеры ещё не добрались до очереди
	for i := 0; i < 3; i++ {
		d.NotifyBookingCreated(context.Background(), testNotification())
	}

	d.Start()
	d.Stop()
	d.Stop() // повторный Stop безопасен

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Len(t, sink.got, 3)
}

func TestDispatcher_QueueFullDropsWithoutBlocking(t *testing.T) {
	sink := newRecordingSink(nil)
	// workers never started: очередь заполняется и переполняется
	d := NewDispatcher([]Sink{sink}, 2, 1, newTestLogger(t))

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			d.NotifyBookingCreated(context.Background(), testNotification())
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("enqueue blocked on full queue")
	}
}

func TestCRMClient_Deliver(t *testing.T) {
	var gotAuth string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/notify", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewCRMClient(srv.URL, "secret-token", 2*time.Second)

	err := c.Deliver(context.Background(), testNotification())
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Contains(t, string(gotBody), `"booking_id":42`)
	assert.Contains(t, string(gotBody), `"facilitator_id":5`)
	assert.Contains(t, string(gotBody), `"start_date":"2026-09-10T18:00:00Z"`)
	assert.Contains(t, string(gotBody), `"action":"created"`)
}

func TestCRMClient_Deliver_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewCRMClient(srv.URL, "wrong", 2*time.Second)

	err := c.Deliver(context.Background(), testNotification())
	assert.Error(t, err)
}

func TestCRMClient_Deliver_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewCRMClient(srv.URL, "secret", 50*time.Millisecond)

	err := c.Deliver(context.Background(), testNotification())
	assert.Error(t, err)
}

func TestCRMClient_Health(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewCRMClient(srv.URL, "secret", 2*time.Second)
	assert.NoError(t, c.Health(context.Background()))
}
