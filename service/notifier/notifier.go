package notifier

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain/notify"
)

var timeNow = time.Now

// NewNotification stamps a message with an id and the current time
func NewNotification(kind notify.Kind, message string) notify.Notification {
	return notify.Notification{
		Id:      uuid.NewString(),
		Kind:    kind,
		Message: message,
		At:      timeNow(),
	}
}

type logNotifier struct{}

// NewLogNotifier writes notifications to the context logger
func NewLogNotifier() notify.Notifier {
	return &logNotifier{}
}

func (n *logNotifier) Notify(c ctx.Ctx, kind notify.Kind, message string) {
	l := c.WithField("kind", kind)
	switch kind {
	case notify.KindError:
		l.Error(message)
	case notify.KindWarning:
		l.Warn(message)
	default:
		l.Info(message)
	}
}

type fanout struct {
	sinks []notify.Notifier
}

// NewFanout delivers every notification to all sinks in order
func NewFanout(sinks ...notify.Notifier) notify.Notifier {
	return &fanout{sinks: sinks}
}

func (f *fanout) Notify(c ctx.Ctx, kind notify.Kind, message string) {
	for _, s := range f.sinks {
		if s == nil {
			continue
		}
		s.Notify(c, kind, message)
	}
}

// Recorder keeps the latest notifications in memory
type Recorder struct {
	mu    sync.Mutex
	limit int
	items []notify.Notification
}

// NewRecorder keeps at most limit notifications, zero keeps everything
func NewRecorder(limit int) *Recorder {
	return &Recorder{limit: limit}
}

func (r *Recorder) Notify(c ctx.Ctx, kind notify.Kind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, NewNotification(kind, message))
	if r.limit > 0 && len(r.items) > r.limit {
		r.items = r.items[len(r.items)-r.limit:]
	}
}

// List returns the recorded notifications, oldest first
func (r *Recorder) List() []notify.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]notify.Notification, len(r.items))
	copy(res, r.items)
	return res
}

func (r *Recorder) Last() (notify.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return notify.Notification{}, false
	}
	return r.items[len(r.items)-1], true
}
