package nav

// ScrollBus fans scroll offsets out to its subscribers in registration order.
// It is not safe for concurrent use; the UI event loop is its only caller.
type ScrollBus struct {
	nextID    int
	listeners []scrollListener
}

type scrollListener struct {
	id int
	fn func(int)
}

// Subscribe registers fn and returns a function that removes it. Calling the
// returned function more than once is harmless.
func (b *ScrollBus) Subscribe(fn func(offsetY int)) func() {
	b.nextID++
	id := b.nextID
	b.listeners = append(b.listeners, scrollListener{id: id, fn: fn})
	return func() {
		for i, l := range b.listeners {
			if l.id == id {
				b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers offsetY to every subscriber.
func (b *ScrollBus) Publish(offsetY int) {
	for _, l := range b.listeners {
		l.fn(offsetY)
	}
}

// Len returns the number of registered listeners.
func (b *ScrollBus) Len() int {
	return len(b.listeners)
}
