// Package refresh carries the "something changed, re-query your list" signal
// between writers (services) and list views. Tokens are opaque; subscribers
// only compare them for change.
package refresh

import (
	"sync"

	"github.com/oklog/ulid/v2"
)

type Signal struct {
	mu   sync.Mutex
	subs map[chan string]struct{}
}

func NewSignal() *Signal {
	return &Signal{subs: make(map[chan string]struct{})}
}

// Subscribe returns a channel of refresh tokens and a cancel func. The
// channel holds only the latest token; a slow subscriber sees the most
// recent change, not every intermediate one.
func (s *Signal) Subscribe() (<-chan string, func()) {
	ch := make(chan string, 1)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		delete(s.subs, ch)
		s.mu.Unlock()
	}
	return ch, cancel
}

// Notify issues a fresh token and fans it out to all subscribers.
func (s *Signal) Notify() string {
	token := ulid.Make().String()
	s.mu.Lock()
	for ch := range s.subs {
		select {
		case ch <- token:
		default:
			// Replace the stale token with the newest one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- token:
			default:
			}
		}
	}
	s.mu.Unlock()
	return token
}
