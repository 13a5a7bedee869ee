package game

// EventKind identifies the intent that changed the session.
type EventKind int

const (
	EventChoose EventKind = iota
	EventShuffle
	EventRefresh
)

func (k EventKind) String() string {
	switch k {
	case EventChoose:
		return "choose"
	case EventShuffle:
		return "shuffle"
	case EventRefresh:
		return "refresh"
	}
	return "unknown"
}

// Event is published after every intent, once the session state is final.
type Event struct {
	Kind     EventKind
	Score    int
	Delta    int
	Theme    string
	Complete bool
}

// Subscribe registers fn to be called synchronously after every intent.
// The returned function removes the subscription.
func (s *Session) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, observer{id: id, fn: fn})

	return func() {
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *Session) publish(kind EventKind, delta int) {
	ev := Event{
		Kind:     kind,
		Score:    s.Score(),
		Delta:    delta,
		Theme:    s.CurrentGame.Theme.Name(),
		Complete: s.IsComplete(),
	}
	// Copy so observers may unsubscribe while being notified.
	observers := append([]observer(nil), s.observers...)
	for _, o := range observers {
		o.fn(ev)
	}
}
