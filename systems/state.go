package systems

import (
	"maps"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// StateChange is published whenever a shared state key changes value.
type StateChange struct {
	Key   string
	Value int
}

var (
	TransientStateChanged = events.NewEventType[StateChange]()
	PermanentStateChanged = events.NewEventType[StateChange]()
)

// StateMap is a key/value store whose changes are broadcast on a donburi
// world. Missing keys read as 0.
type StateMap struct {
	world  donburi.World
	event  *events.EventType[StateChange]
	values map[string]int

	// OnChange runs after every change has been dispatched.
	OnChange func(values map[string]int)

	queue       []StateChange
	dispatching bool
}

func NewStateMap(world donburi.World, event *events.EventType[StateChange], initial map[string]int) *StateMap {
	values := make(map[string]int, len(initial))
	maps.Copy(values, initial)
	return &StateMap{world: world, event: event, values: values}
}

func (m *StateMap) Get(key string) int {
	return m.values[key]
}

// Set stores value under key and notifies subscribers synchronously. Setting a
// key to its current value does nothing. Changes made by a subscriber while
// another change is being dispatched are queued and delivered in order.
func (m *StateMap) Set(key string, value int) {
	if m.values[key] == value {
		return
	}
	m.values[key] = value
	m.queue = append(m.queue, StateChange{Key: key, Value: value})
	if m.dispatching {
		return
	}

	m.dispatching = true
	for len(m.queue) > 0 {
		change := m.queue[0]
		m.queue = m.queue[1:]
		m.event.Publish(m.world, change)
		m.event.ProcessEvents(m.world)
	}
	m.dispatching = false

	if m.OnChange != nil {
		m.OnChange(m.values)
	}
}

// Subscribe registers fn for every change on this map.
func (m *StateMap) Subscribe(fn func(StateChange)) {
	m.event.Subscribe(m.world, func(_ donburi.World, c StateChange) {
		fn(c)
	})
}

// Snapshot returns a copy of the stored values.
func (m *StateMap) Snapshot() map[string]int {
	return maps.Clone(m.values)
}
