package history

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/StounhandJ/tiktok_downloader/internal/downloaders"
	"github.com/StounhandJ/tiktok_downloader/internal/utils"
	"github.com/sirupsen/logrus"
)

const (
	DefaultQueueSize = 256

	// время на одну запись в хранилище
	writeTimeout = 10 * time.Second
)

var ErrRecorderClosed = errors.New("history recorder is closed")

type event struct {
	name  string
	url   string
	apply func(ctx context.Context, store Store) error
	done  chan struct{} // только для Sync
}

// Recorder пишет историю асинхронно в одном воркере.
// Ошибки хранилища логируются и не доходят до вызывающего.
type Recorder struct {
	store  Store
	events chan event
	now    func() time.Time

	mu     sync.RWMutex
	closed bool

	stopped chan struct{}
}

func NewRecorder(store Store, queueSize int) *Recorder {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	r := &Recorder{
		store:   store,
		events:  make(chan event, queueSize),
		now:     func() time.Time { return time.Now().UTC() },
		stopped: make(chan struct{}),
	}

	go r.run()

	return r
}

func (r *Recorder) run() {
	defer close(r.stopped)

	for ev := range r.events {
		if ev.done != nil {
			close(ev.done)
			continue
		}

		r.apply(ev)
	}
}

func (r *Recorder) apply(ev event) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	defer func() {
		if rec := recover(); rec != nil {
			utils.Log.WithFields(logrus.Fields{"event": ev.name, "url": ev.url}).Errorf("history write panic: %v", rec)
		}
	}()

	if err := ev.apply(ctx, r.store); err != nil {
		utils.Log.WithFields(logrus.Fields{"event": ev.name, "url": ev.url}).WithError(err).Error("history write failed")
	}
}

// enqueue не блокирует: при полной очереди событие теряется
func (r *Recorder) enqueue(ev event) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		utils.Log.WithFields(logrus.Fields{"event": ev.name, "url": ev.url}).Warn("history recorder closed, event dropped")
		return
	}

	select {
	case r.events <- ev:
	default:
		utils.Log.WithFields(logrus.Fields{"event": ev.name, "url": ev.url}).Warn("history queue is full, event dropped")
	}
}

func (r *Recorder) RecordSubmission(url string) {
	at := r.now()
	req := &SubmittedRequest{
		URL:           url,
		Status:        StatusPending,
		SubmittedAt:   at,
		LastUpdatedAt: at,
	}

	r.enqueue(event{name: "submission", url: url, apply: func(ctx context.Context, store Store) error {
		return store.InsertSubmission(ctx, req)
	}})
}

func (r *Recorder) UpdateStatus(url string, status Status, errMessage string, details *Details) {
	update := StatusUpdate{
		Status:  status,
		Error:   errMessage,
		Details: details,
		At:      r.now(),
	}

	r.enqueue(event{name: "status:" + string(status), url: url, apply: func(ctx context.Context, store Store) error {
		return store.UpdateSubmissionStatus(ctx, url, update)
	}})
}

func (r *Recorder) UpsertVideo(video *downloaders.Video) {
	if video == nil || video.ID == "" {
		return
	}

	record := NewVideoRecord(video, r.now())

	r.enqueue(event{name: "video", url: video.ID, apply: func(ctx context.Context, store Store) error {
		return store.UpsertVideo(ctx, record)
	}})
}

func (r *Recorder) RecordBulkRequest(id string, urls []string) {
	req := NewBulkRequest(id, urls, r.now())

	r.enqueue(event{name: "bulk", url: id, apply: func(ctx context.Context, store Store) error {
		return store.InsertBulkRequest(ctx, req)
	}})
}

// Sync ждет, пока воркер применит все события, поставленные до вызова
func (r *Recorder) Sync(ctx context.Context) error {
	done := make(chan struct{})

	r.mu.RLock()
	if r.closed {
		r.mu.RUnlock()
		return ErrRecorderClosed
	}

	select {
	case r.events <- event{name: "sync", done: done}:
		r.mu.RUnlock()
	case <-ctx.Done():
		r.mu.RUnlock()
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close перестает принимать события и дожидается записи очереди
func (r *Recorder) Close(ctx context.Context) error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.events)
	}
	r.mu.Unlock()

	select {
	case <-r.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
