package server

import (
	"encoding/json"
	"sync"

	"github.com/playperu/tycoon/internal/game"
)

// Broker fans game events out to SSE and WebSocket subscribers. It
// implements game.Notifier.
type Broker struct {
	mu   sync.RWMutex
	subs map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel that receives JSON-encoded game events.
func (b *Broker) Subscribe() chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *Broker) Unsubscribe(ch chan []byte) {
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
}

func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Notify publishes an event to every subscriber without blocking.
func (b *Broker) Notify(ev game.Event) {
	data, _ := json.Marshal(ev)
	b.mu.RLock()
	for ch := range b.subs {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}
