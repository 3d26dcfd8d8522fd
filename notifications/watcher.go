package notifications

import (
	"context"
	"time"

	"github.com/eapache/queue"
	"github.com/hashicorp/golang-lru/simplelru"
	"go.uber.org/zap"

	"github.com/amparo-care/amparo/screen"
)

const (
	// DefaultSeenCacheSize bounds how many delivered notification ids are
	// remembered across polls before the oldest are forgotten.
	DefaultSeenCacheSize = 1024

	DefaultInterval = 30 * time.Second
)

// Watcher polls a user's notifications and hands each unseen unread one to a
// sink, in arrival order. Deliveries are committed through the screen scope
// so results landing after the view is gone are dropped, and a failed poll
// leaves everything already shown untouched.
type Watcher struct {
	client   Client
	logger   *zap.SugaredLogger
	interval time.Duration
}

func NewWatcher(client Client, logger *zap.SugaredLogger) *Watcher {
	return &Watcher{
		client:   client,
		logger:   logger,
		interval: DefaultInterval,
	}
}

func (w *Watcher) WithInterval(interval time.Duration) *Watcher {
	if interval > 0 {
		w.interval = interval
	}
	return w
}

func (w *Watcher) Watch(ctx context.Context, scope *screen.Scope, userId string, sink func(Notification)) error {
	seen, err := simplelru.NewLRU(DefaultSeenCacheSize, nil)
	if err != nil {
		return err
	}
	pending := queue.New()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.poll(ctx, seen, pending, userId)
		w.drain(scope, pending, sink)

		if !scope.Active() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (w *Watcher) poll(ctx context.Context, seen *simplelru.LRU, pending *queue.Queue, userId string) {
	list, err := w.client.ListByUser(ctx, userId)
	if err != nil {
		w.logger.Errorw("notification poll failed", "userId", userId, "error", err)
		return
	}
	for _, n := range list {
		if n.Read || seen.Contains(n.ID) {
			continue
		}
		seen.Add(n.ID, struct{}{})
		pending.Add(n)
	}
}

func (w *Watcher) drain(scope *screen.Scope, pending *queue.Queue, sink func(Notification)) {
	for pending.Length() != 0 {
		n := pending.Remove().(Notification)
		if !scope.Commit(func() { sink(n) }) {
			return
		}
	}
}
