package toast

import (
	"sync"
	"time"
)

// Notifier holds at most one transient message with a pending auto-dismiss.
// Showing a new message supersedes the previous one: the old timer is
// stopped and, even if it already fired, the sequence check keeps it from
// clearing the newer message.
type Notifier struct {
	mu    sync.Mutex
	ttl   time.Duration
	msg   string
	seq   uint64
	timer *time.Timer
}

func NewNotifier(ttl time.Duration) *Notifier {
	return &Notifier{ttl: ttl}
}

func (n *Notifier) Show(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seq++
	n.msg = msg
	if n.timer != nil {
		n.timer.Stop()
	}
	seq := n.seq
	n.timer = time.AfterFunc(n.ttl, func() { n.expire(seq) })
}

func (n *Notifier) expire(seq uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.seq == seq {
		n.msg = ""
	}
}

// Current returns the live message, or "" if none is showing.
func (n *Notifier) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.msg
}

// Dismiss clears the current message immediately (the UI close button).
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seq++
	n.msg = ""
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

// Close releases the pending timer. The notifier must not be used after.
func (n *Notifier) Close() {
	n.Dismiss()
}
