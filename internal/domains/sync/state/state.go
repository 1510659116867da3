// Package state defines the per-record synchronization state machine.
//
// Every booking row carries one of four codes describing its relationship to
// the remote service. Transitions are driven by a closed set of events; an
// event that has no transition from the current code leaves the code alone.
package state

type Code int

const (
	// New has never been accepted by the remote.
	New Code = iota
	// Synced has been accepted by the remote and has no local changes since.
	Synced
	// DirtyUpdate was accepted once but has local changes awaiting upload.
	DirtyUpdate
	// UpdateSynced had its latest local changes accepted by the remote.
	UpdateSynced
)

func (c Code) String() string {
	switch c {
	case New:
		return "new"
	case Synced:
		return "synced"
	case DirtyUpdate:
		return "dirty_update"
	case UpdateSynced:
		return "update_synced"
	default:
		return "unknown"
	}
}

// Pending reports whether the record still owes the remote an upload.
func (c Code) Pending() bool {
	return c == New || c == DirtyUpdate
}

type Event int

const (
	// CreateAccepted fires when the remote accepts the record for the first time.
	CreateAccepted Event = iota
	// LocalMutation fires when the terminal changes the record locally.
	LocalMutation
	// UpdateAccepted fires when the remote accepts a changed record.
	UpdateAccepted
	// ServerCompleted fires when reconciliation reports the remote closed the record.
	ServerCompleted
)

func (e Event) String() string {
	switch e {
	case CreateAccepted:
		return "create_accepted"
	case LocalMutation:
		return "local_mutation"
	case UpdateAccepted:
		return "update_accepted"
	case ServerCompleted:
		return "server_completed"
	default:
		return "unknown"
	}
}

type transition struct {
	from  Code
	event Event
}

var transitions = map[transition]Code{
	{New, CreateAccepted}:          Synced,
	{New, LocalMutation}:           New,
	{Synced, LocalMutation}:        DirtyUpdate,
	{Synced, ServerCompleted}:      UpdateSynced,
	{DirtyUpdate, UpdateAccepted}:  UpdateSynced,
	{DirtyUpdate, ServerCompleted}: UpdateSynced,
	{UpdateSynced, LocalMutation}:  DirtyUpdate,
}

// Next returns the code after applying the event. The second return reports
// whether the event actually moves the machine; callers treat false as a
// no-op, never an error, so replayed events stay harmless.
func Next(from Code, event Event) (Code, bool) {
	next, ok := transitions[transition{from: from, event: event}]
	if !ok {
		return from, false
	}

	return next, next != from
}

// Valid reports whether the code is one of the four known codes.
func Valid(c Code) bool {
	return c >= New && c <= UpdateSynced
}
