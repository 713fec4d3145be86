package service

import "sync"

type observer struct {
	id uint64
	fn func()
}

// notifier keeps change observers in registration order and calls them
// synchronously, outside its lock.
type notifier struct {
	mu        sync.Mutex
	nextID    uint64
	observers []observer
}

func (n *notifier) subscribe(fn func()) (unsubscribe func()) {
	n.mu.Lock()
	n.nextID++
	id := n.nextID
	n.observers = append(n.observers, observer{id: id, fn: fn})
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { n.remove(id) })
	}
}

func (n *notifier) remove(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, o := range n.observers {
		if o.id == id {
			n.observers = append(n.observers[:i:i], n.observers[i+1:]...)
			return
		}
	}
}

func (n *notifier) notify() {
	n.mu.Lock()
	snapshot := make([]observer, len(n.observers))
	copy(snapshot, n.observers)
	n.mu.Unlock()

	for _, o := range snapshot {
		o.fn()
	}
}
