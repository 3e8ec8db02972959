package viewport

import "sync"

// Handle identifies a registered handler so it can be removed.
type Handle uint64

type handlerEntry[T any] struct {
	handle Handle
	fn     func(T)
}

// EventHandlerList is an ordered list of handlers for one event kind.
// It is safe for concurrent use.
type EventHandlerList[T any] struct {
	mu       sync.Mutex
	next     Handle
	handlers []handlerEntry[T]
}

// Add appends fn and returns a handle for Remove. A nil fn is ignored and
// yields the zero handle.
func (l *EventHandlerList[T]) Add(fn func(T)) Handle {
	if fn == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next++
	l.handlers = append(l.handlers, handlerEntry[T]{handle: l.next, fn: fn})
	return l.next
}

// Remove unregisters the handler and reports whether it was present.
func (l *EventHandlerList[T]) Remove(h Handle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, e := range l.handlers {
		if e.handle == h {
			l.handlers = append(l.handlers[:i], l.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// Invoke calls every handler in registration order. Handlers added or
// removed during the call take effect on the next Invoke.
func (l *EventHandlerList[T]) Invoke(v T) {
	l.mu.Lock()
	handlers := make([]handlerEntry[T], len(l.handlers))
	copy(handlers, l.handlers)
	l.mu.Unlock()

	for _, e := range handlers {
		e.fn(v)
	}
}

// Len returns the number of registered handlers.
func (l *EventHandlerList[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.handlers)
}
