// Package events provides the key bus hosts use to fan terminal key presses
// out to the widgets that asked for them, the terminal stand-in for window
// level keydown listeners.
package events

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tuikit/internal/logger"
)

// KeyHandler receives a key press and reports whether it acted on it.
type KeyHandler func(tea.KeyMsg) bool

// Subscription releases a listener. Unsubscribe is idempotent.
type Subscription interface {
	Unsubscribe()
}

// Stats counts lifetime subscriptions on a bus.
type Stats struct {
	Subscribed   int
	Unsubscribed int
}

// Active is the number of listeners currently registered.
func (s Stats) Active() int {
	return s.Subscribed - s.Unsubscribed
}

// KeyBus dispatches key presses to registered listeners in registration
// order. It is safe for concurrent use.
type KeyBus struct {
	mu      sync.RWMutex
	entries []subscriptionEntry
	nextID  int
	stats   Stats
	log     *logger.Logger
}

// NewKeyBus creates an empty bus. log may be nil.
func NewKeyBus(log *logger.Logger) *KeyBus {
	return &KeyBus{log: log.WithComponent("key_bus")}
}

// Subscribe registers handler under name, which is only used for logging.
func (b *KeyBus) Subscribe(name string, handler KeyHandler) Subscription {
	if b == nil || handler == nil {
		return noopSubscription{}
	}

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.entries = append(b.entries, subscriptionEntry{id: id, name: name, handler: handler})
	b.stats.Subscribed++
	b.mu.Unlock()

	b.log.WithFields(map[string]any{"listener": name, "id": id}).Debug("key listener added")

	sub := &subscription{}
	sub.cancel = func() {
		b.mu.Lock()
		for i, entry := range b.entries {
			if entry.id == id {
				b.entries = append(b.entries[:i], b.entries[i+1:]...)
				b.stats.Unsubscribed++
				break
			}
		}
		b.mu.Unlock()
		b.log.WithFields(map[string]any{"listener": name, "id": id}).Debug("key listener removed")
	}
	return sub
}

// Dispatch hands msg to every listener registered at call time and reports
// whether any of them handled it. Listeners may subscribe or unsubscribe
// while being dispatched to.
func (b *KeyBus) Dispatch(msg tea.KeyMsg) bool {
	if b == nil {
		return false
	}

	b.mu.RLock()
	entries := append([]subscriptionEntry(nil), b.entries...)
	b.mu.RUnlock()

	handled := false
	for _, entry := range entries {
		if entry.handler(msg) {
			handled = true
		}
	}
	return handled
}

// Len returns the number of active listeners.
func (b *KeyBus) Len() int {
	if b == nil {
		return 0
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// Stats returns lifetime subscription counters.
func (b *KeyBus) Stats() Stats {
	if b == nil {
		return Stats{}
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.stats
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	once   sync.Once
	cancel func()
}

func (s *subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}

type subscriptionEntry struct {
	id      int
	name    string
	handler KeyHandler
}
