package resolver

import (
	"context"
	"sync"
)

// Broker fans order events out to subscription channels. Publish never
// blocks: a subscriber that stopped draining its buffer misses events
// rather than stalling mutations.
type Broker struct {
	mu   sync.Mutex
	subs map[int]chan interface{}
	next int
}

// NewBroker returns an empty Broker.
func NewBroker() *Broker {
	return &Broker{subs: make(map[int]chan interface{})}
}

// Subscribe registers a new subscriber. The channel is closed and the
// subscriber dropped when ctx is done.
func (b *Broker) Subscribe(ctx context.Context) <-chan interface{} {
	ch := make(chan interface{}, 16)

	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = ch
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
		close(ch)
	}()

	return ch
}

// Len reports the number of active subscribers.
func (b *Broker) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Publish delivers v to every current subscriber with buffer room.
func (b *Broker) Publish(v interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- v:
		default:
		}
	}
}
