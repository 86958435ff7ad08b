// Package fsm provides the finite-state machine used by players and enemies.
//
// A Machine owns a set of named states. Exactly one state is current; Change
// exits it and enters the target. An optional Guard validates every
// transition, and rejected transitions are silent no-ops.
package fsm

// StateName identifies a state within a machine
type StateName string

// None is the name reported before the first transition
const None StateName = ""

// Changer is the back-reference a state holds to its owning machine
type Changer interface {
	Change(name StateName, params any) bool
}

// State is a node of a Machine. I is the per-tick input type.
type State[I any] interface {
	Bind(name StateName, m Changer)
	Enter(params any)
	Update(dt float64, in I)
	Exit()
}

// Guard validates transitions. A nil Guard allows everything.
type Guard interface {
	CanTransition(from, to StateName) bool
}

// Base carries the name and machine binding. States embed it.
type Base struct {
	name    StateName
	machine Changer
}

// Bind records the state's name and owning machine
func (b *Base) Bind(name StateName, m Changer) {
	b.name = name
	b.machine = m
}

// Name returns the registered name
func (b *Base) Name() StateName {
	return b.name
}

// Change requests a transition on the owning machine
func (b *Base) Change(name StateName, params any) bool {
	if b.machine == nil {
		return false
	}
	return b.machine.Change(name, params)
}

// Machine is a guarded state machine
type Machine[I any] struct {
	states   map[StateName]State[I]
	guard    Guard
	current  StateName
	previous StateName
}

// New creates an empty machine. The caller must Change into an initial state
// before the first Update.
func New[I any](guard Guard) *Machine[I] {
	return &Machine[I]{
		states: make(map[StateName]State[I]),
		guard:  guard,
	}
}

// Add registers a state under name and binds it to the machine
func (m *Machine[I]) Add(name StateName, s State[I]) {
	s.Bind(name, m)
	m.states[name] = s
}

// CanTransition reports whether from -> to is allowed. The first transition
// (from == None) is always allowed.
func (m *Machine[I]) CanTransition(from, to StateName) bool {
	if from == None || m.guard == nil {
		return true
	}
	return m.guard.CanTransition(from, to)
}

// Change exits the current state and enters name. It returns false, leaving
// everything untouched, when name is unknown or the guard rejects it.
func (m *Machine[I]) Change(name StateName, params any) bool {
	next, ok := m.states[name]
	if !ok {
		return false
	}
	if !m.CanTransition(m.current, name) {
		return false
	}

	from := m.current
	if cur, ok := m.states[from]; ok {
		cur.Exit()
	}
	m.previous = from
	m.current = name
	// Enter may chain another Change; nothing below may touch m.current.
	next.Enter(params)
	return true
}

// Update delegates to the current state
func (m *Machine[I]) Update(dt float64, in I) {
	if cur, ok := m.states[m.current]; ok {
		cur.Update(dt, in)
	}
}

// Current returns the current state's name
func (m *Machine[I]) Current() StateName {
	return m.current
}

// Previous returns the state active before the last successful Change
func (m *Machine[I]) Previous() StateName {
	return m.previous
}

// Is reports whether the machine is currently in name
func (m *Machine[I]) Is(name StateName) bool {
	return m.current == name
}

// State returns the registered state instance for name
func (m *Machine[I]) State(name StateName) (State[I], bool) {
	s, ok := m.states[name]
	return s, ok
}

// Table is a Guard backed by an adjacency list. States missing from the
// table have no outbound edges.
type Table map[StateName][]StateName

// CanTransition implements Guard
func (t Table) CanTransition(from, to StateName) bool {
	for _, allowed := range t[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
