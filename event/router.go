package event

// Handler consumes one dispatched event
type Handler func(Event)

// Router fans queued events out to subscribed handlers.
// Subscribe during setup; Dispatch only from the frame loop goroutine
type Router struct {
	queue    *Queue
	handlers map[Type][]Handler
}

func NewRouter(queue *Queue) *Router {
	return &Router{
		queue:    queue,
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for one event type. Not safe to call
// concurrently with Dispatch
func (r *Router) Subscribe(t Type, h Handler) {
	r.handlers[t] = append(r.handlers[t], h)
}

// Dispatch drains the queue and invokes handlers in FIFO order.
// Returns the number of events dispatched
func (r *Router) Dispatch() int {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h(ev)
		}
	}
	return len(events)
}
