package services

import "sync"

// NotificationKind separates confirmations from failures.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notification is a user-facing message emitted by the services. Rendering
// is left to subscribers.
type Notification struct {
	Kind   NotificationKind
	Title  string
	Detail string
}

// Notifier is the fire-and-forget sink the services report to.
type Notifier interface {
	Notify(n Notification)
}

// Notifications fans notifications out to any number of subscribers.
type Notifications struct {
	b broadcaster[Notification]
}

func NewNotifications() *Notifications {
	return &Notifications{}
}

// Notify delivers n to the current subscribers.
func (n *Notifications) Notify(v Notification) {
	n.b.publish(v)
}

// Subscribe registers fn and returns a function that removes it.
func (n *Notifications) Subscribe(fn func(Notification)) (cancel func()) {
	return n.b.subscribe(fn)
}

type nopNotifier struct{}

func (nopNotifier) Notify(Notification) {}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// broadcaster delivers values synchronously, in subscription order. Handlers
// run outside the lock so they may subscribe or cancel from inside a callback.
type broadcaster[T any] struct {
	mu   sync.Mutex
	next int
	subs []subscriber[T]
}

func (b *broadcaster[T]) subscribe(fn func(T)) func() {
	b.mu.Lock()
	b.next++
	id := b.next
	b.subs = append(b.subs, subscriber[T]{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *broadcaster[T]) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

func (b *broadcaster[T]) publish(v T) {
	b.mu.Lock()
	subs := append([]subscriber[T](nil), b.subs...)
	b.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
}
