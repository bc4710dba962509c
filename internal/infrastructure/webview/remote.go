// Package webview provides port.WebView implementations that do not need a
// native browser widget.
package webview

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/bnema/formbridge/internal/application/port"
	"github.com/bnema/formbridge/internal/logging"
)

// ErrNoPage is returned by SetHash before any page was loaded.
var ErrNoPage = errors.New("no page loaded")

const subscriberBuffer = 16

// EventType tells a remote page what kind of navigation to perform.
type EventType string

const (
	EventLoad EventType = "load"
	EventHash EventType = "hash"
)

// Event is one navigation pushed to remote pages.
type Event struct {
	Seq  uint64    `json:"seq"`
	Type EventType `json:"type"`
	URL  string    `json:"url,omitempty"`
	Hash string    `json:"hash,omitempty"`
}

// Remote is a WebView whose page lives in an external browser. Navigations
// are fanned out to subscribers (the SSE endpoint). A new subscriber first
// receives the current page as a load event.
type Remote struct {
	baseCtx context.Context

	mu      sync.Mutex
	seq     uint64
	current string
	subs    map[int]chan Event
	nextSub int
}

// NewRemote creates a remote view with no page.
func NewRemote(ctx context.Context) *Remote {
	return &Remote{
		baseCtx: logging.WithComponent(ctx, "remote-webview"),
		subs:    make(map[int]chan Event),
	}
}

// LoadURL implements port.WebView.
func (r *Remote) LoadURL(_ context.Context, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = url
	r.publishLocked(Event{Type: EventLoad, URL: url})
	return nil
}

// SetHash implements port.WebView.
func (r *Remote) SetHash(_ context.Context, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == "" {
		return ErrNoPage
	}
	base, _, _ := strings.Cut(r.current, "#")
	if hash == "" {
		r.current = base
	} else {
		r.current = base + "#" + hash
	}
	r.publishLocked(Event{Type: EventHash, Hash: hash})
	return nil
}

// CurrentURL returns the full URL of the page, or "" before the first load.
func (r *Remote) CurrentURL() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Subscribe registers a listener. The returned cancel func must be called
// once the caller stops reading. A subscriber that falls too far behind is
// dropped and its channel closed.
func (r *Remote) Subscribe() (<-chan Event, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	id := r.nextSub
	r.nextSub++
	r.subs[id] = ch

	if r.current != "" {
		ch <- Event{Seq: r.seq, Type: EventLoad, URL: r.current}
	}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			if sub, ok := r.subs[id]; ok {
				delete(r.subs, id)
				close(sub)
			}
		})
	}
}

// Subscribers returns the number of connected subscribers.
func (r *Remote) Subscribers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

func (r *Remote) publishLocked(ev Event) {
	r.seq++
	ev.Seq = r.seq
	for id, ch := range r.subs {
		select {
		case ch <- ev:
		default:
			logging.FromContext(r.baseCtx).Warn().Int("subscriber", id).Msg("dropping slow webview subscriber")
			delete(r.subs, id)
			close(ch)
		}
	}
}

var _ port.WebView = (*Remote)(nil)
