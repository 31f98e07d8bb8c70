package composer

// Reason tells what kind of change an Event reports.
type Reason uint8

const (
	// SequenceChanged: tokens, pending keys or the undo slot changed.
	SequenceChanged Reason = iota
	// SelectionChanged: the cursor moved.
	SelectionChanged
	// CandidatePageChanged: another candidate or symbol page is shown.
	CandidatePageChanged
	// FilterChanged: the candidate filter changed and paging restarted.
	FilterChanged
)

func (r Reason) String() string {
	switch r {
	case SequenceChanged:
		return "sequence"
	case SelectionChanged:
		return "selection"
	case CandidatePageChanged:
		return "page"
	case FilterChanged:
		return "filter"
	default:
		return "unknown"
	}
}

// Event is delivered to Config.OnEvent.
type Event struct {
	Reason   Reason
	Snapshot Snapshot
}

func (s *Session) emit(r Reason) {
	s.log.Debug("event", "reason", r, "version", s.list.Version())
	if s.cfg.OnEvent == nil {
		return
	}
	s.cfg.OnEvent(Event{Reason: r, Snapshot: s.Snapshot()})
}
