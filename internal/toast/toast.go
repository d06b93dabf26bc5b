package toast

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a message for styling.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Warning Kind = "warning"
	Info    Kind = "info"
)

// Position anchors a message on screen. The console renders a linear
// stack, but the anchor travels with the message for renderers that care.
type Position string

const (
	TopRight     Position = "top-right"
	TopLeft      Position = "top-left"
	TopCenter    Position = "top-center"
	BottomRight  Position = "bottom-right"
	BottomLeft   Position = "bottom-left"
	BottomCenter Position = "bottom-center"
)

// DefaultDuration applies when a call site passes 0.
const DefaultDuration = 4 * time.Second

// graceDelay is added to every duration before auto-dismiss, covering the
// exit animation window.
const graceDelay = 500 * time.Millisecond

// Message is one transient notification.
type Message struct {
	ID       string
	Kind     Kind
	Text     string
	Duration time.Duration
	Position Position
}

// Queue holds the active messages. Each message owns an independent
// dismissal timer; dismissing one never touches the others. Timers fire
// on their own goroutines, so the active set is mutex-guarded.
type Queue struct {
	mu     sync.Mutex
	active map[string]Message
	order  []string
	timers map[string]*time.Timer

	// OnShow and OnDismiss, when set, run synchronously after the
	// respective state change.
	OnShow    func(Message)
	OnDismiss func(Message)
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		active: make(map[string]Message),
		timers: make(map[string]*time.Timer),
	}
}

// Show adds a message and arms its auto-dismiss timer for
// duration + grace. Zero duration means DefaultDuration; empty position
// means top-right.
func (q *Queue) Show(text string, kind Kind, duration time.Duration, pos Position) Message {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if pos == "" {
		pos = TopRight
	}
	msg := Message{
		ID:       fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8]),
		Kind:     kind,
		Text:     text,
		Duration: duration,
		Position: pos,
	}

	q.mu.Lock()
	q.active[msg.ID] = msg
	q.order = append(q.order, msg.ID)
	q.timers[msg.ID] = time.AfterFunc(duration+graceDelay, func() {
		q.Dismiss(msg.ID)
	})
	show := q.OnShow
	q.mu.Unlock()

	if show != nil {
		show(msg)
	}
	return msg
}

// ShowSuccess shows a success message with the default duration.
func (q *Queue) ShowSuccess(text string) Message {
	return q.Show(text, Success, 0, "")
}

// ShowError shows an error message. Errors linger a bit longer.
func (q *Queue) ShowError(text string) Message {
	return q.Show(text, Error, 5*time.Second, "")
}

// ShowWarning shows a warning message.
func (q *Queue) ShowWarning(text string) Message {
	return q.Show(text, Warning, 0, "")
}

// ShowInfo shows an info message with a short duration.
func (q *Queue) ShowInfo(text string) Message {
	return q.Show(text, Info, 3*time.Second, "")
}

// Dismiss removes a message and cancels its timer. Dismissing an unknown
// or already-dismissed id is a no-op.
func (q *Queue) Dismiss(id string) {
	q.mu.Lock()
	msg, ok := q.active[id]
	if !ok {
		q.mu.Unlock()
		return
	}
	delete(q.active, id)
	for i, oid := range q.order {
		if oid == id {
			q.order = append(q.order[:i], q.order[i+1:]...)
			break
		}
	}
	if t, ok := q.timers[id]; ok {
		t.Stop()
		delete(q.timers, id)
	}
	dismiss := q.OnDismiss
	q.mu.Unlock()

	if dismiss != nil {
		dismiss(msg)
	}
}

// Active returns the visible messages in display order.
func (q *Queue) Active() []Message {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Message, 0, len(q.order))
	for _, id := range q.order {
		out = append(out, q.active[id])
	}
	return out
}

// Close cancels all pending timers without firing dismiss hooks.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for id, t := range q.timers {
		t.Stop()
		delete(q.timers, id)
	}
}
