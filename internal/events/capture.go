package events

import "sync"

// Capture is a Sink that records emitted events, for use in tests
type Capture struct {
	mu     sync.Mutex
	events []Event
}

// NewCapture creates an empty capture sink
func NewCapture() *Capture {
	return &Capture{}
}

// Emit records the event
func (c *Capture) Emit(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

// Events returns a copy of everything emitted so far
func (c *Capture) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Last returns the most recent event, or a zero Event if none
func (c *Capture) Last() Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.events) == 0 {
		return Event{}
	}
	return c.events[len(c.events)-1]
}

// Types returns the emitted event types in order
func (c *Capture) Types() []Type {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Type, len(c.events))
	for i, e := range c.events {
		out[i] = e.Type
	}
	return out
}
