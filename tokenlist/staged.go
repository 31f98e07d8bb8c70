package tokenlist

type stageKind uint8

const (
	stageNone stageKind = iota
	stageDeleted
	stageCommitted
)

// staged is the one-level undo slot. The zero value is "nothing staged";
// the last destructive operation overwrites it.
type staged struct {
	kind     stageKind
	tokens   []*Token
	selected ID
	pending  *Token
}

func (l *List) stage(kind stageKind) staged {
	if kind == stageNone || l.IsEmpty() {
		return staged{}
	}
	return staged{
		kind:     kind,
		tokens:   cloneTokens(l.tokens),
		selected: l.cur.selected.id,
		pending:  l.cur.pending.clone(),
	}
}

// Reset clears the list down to a single gap. When cancelable is set and
// the list held content, CancelDelete can bring it back.
func (l *List) Reset(cancelable bool) {
	kind := stageNone
	if cancelable {
		kind = stageDeleted
	}
	l.staged = l.stage(kind)
	l.truncate()
}

// Commit returns the rendered text and resets the list. When revokable is
// set and the list held content, RevokeCommit can bring it back.
func (l *List) Commit(revokable bool, opt DisplayOption) string {
	text := l.Text(opt)

	kind := stageNone
	if revokable {
		kind = stageCommitted
	}
	l.staged = l.stage(kind)
	l.truncate()
	return text
}

func (l *List) CanRevokeCommit() bool { return l.staged.kind == stageCommitted }

func (l *List) CanCancelDelete() bool { return l.staged.kind == stageDeleted }

// RevokeCommit restores the content of the last revokable commit. The undo
// slot is kept, so repeating the call restores the same content again.
func (l *List) RevokeCommit() bool {
	if !l.CanRevokeCommit() {
		return false
	}
	l.restore(l.staged)
	return true
}

// CancelDelete restores the content of the last cancelable reset. The undo
// slot is kept, so repeating the call restores the same content again.
func (l *List) CancelDelete() bool {
	if !l.CanCancelDelete() {
		return false
	}
	l.restore(l.staged)
	return true
}

func (l *List) ClearCommitRevokes() {
	if l.CanRevokeCommit() {
		l.staged = staged{}
	}
}

func (l *List) ClearDeleteCancels() {
	if l.CanCancelDelete() {
		l.staged = staged{}
	}
}

func (l *List) restore(s staged) {
	l.tokens = cloneTokens(s.tokens)
	l.completions = nil
	l.restoreCursor(s.selected, s.pending)
	l.version++
}
