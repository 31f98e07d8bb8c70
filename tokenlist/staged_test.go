package tokenlist

import "testing"

type listState struct {
	layout  string
	pending string
	ids     []ID
}

func stateOf(l *List) listState {
	s := listState{layout: layout(l), pending: l.Pending().String()}
	for _, t := range l.Tokens() {
		s.ids = append(s.ids, t.ID())
	}
	return s
}

func (s listState) equal(o listState) bool {
	if s.layout != o.layout || s.pending != o.pending || len(s.ids) != len(o.ids) {
		return false
	}
	for i := range s.ids {
		if s.ids[i] != o.ids[i] {
			return false
		}
	}
	return true
}

func nihao(l *List) {
	typeWord(l, phonetic("你", "nǐ", "ni"))
	typeWord(l, phonetic("好", "hǎo", "hao"))
}

func TestList_Commit_RevokeRoundTrip(t *testing.T) {
	l := New()
	nihao(l)
	l.Select(1)
	before := stateOf(l)

	if got, want := l.Commit(true, DisplayOption{}), "你好"; got != want {
		t.Fatalf("commit=%q, want %q", got, want)
	}
	if !l.IsEmpty() || l.Len() != 1 {
		t.Fatalf("expected truncated list, got %q", layout(l))
	}
	if !l.CanRevokeCommit() {
		t.Fatalf("expected CanRevokeCommit=true")
	}
	if l.CanCancelDelete() {
		t.Fatalf("expected CanCancelDelete=false")
	}

	if ok := l.RevokeCommit(); !ok {
		t.Fatalf("expected RevokeCommit=true")
	}
	mustCheck(t, l)
	if got := stateOf(l); !got.equal(before) {
		t.Fatalf("state=%+v, want %+v", got, before)
	}

	// The slot survives a restore.
	l.DeleteSelected()
	if ok := l.RevokeCommit(); !ok {
		t.Fatalf("expected repeated RevokeCommit=true")
	}
	if got := stateOf(l); !got.equal(before) {
		t.Fatalf("state=%+v, want %+v", got, before)
	}

	l.ClearCommitRevokes()
	if l.CanRevokeCommit() {
		t.Fatalf("expected CanRevokeCommit=false after clear")
	}
	if ok := l.RevokeCommit(); ok {
		t.Fatalf("expected RevokeCommit=false after clear")
	}
}

func TestList_Reset_CancelRoundTrip(t *testing.T) {
	l := New()
	nihao(l)
	l.Pending().AppendKey(Alphabet("m"))
	before := stateOf(l)

	l.Reset(true)
	if !l.CanCancelDelete() {
		t.Fatalf("expected CanCancelDelete=true")
	}
	if l.CanRevokeCommit() {
		t.Fatalf("expected CanRevokeCommit=false")
	}
	if ok := l.RevokeCommit(); ok {
		t.Fatalf("expected RevokeCommit=false for a reset")
	}

	if ok := l.CancelDelete(); !ok {
		t.Fatalf("expected CancelDelete=true")
	}
	mustCheck(t, l)
	if got := stateOf(l); !got.equal(before) {
		t.Fatalf("state=%+v, want %+v", got, before)
	}

	l.ClearCommitRevokes()
	if !l.CanCancelDelete() {
		t.Fatalf("clearing revokes must not clear a delete")
	}
	l.ClearDeleteCancels()
	if l.CanCancelDelete() {
		t.Fatalf("expected CanCancelDelete=false after clear")
	}
}

func TestList_Staged_LastDestructiveOperationWins(t *testing.T) {
	l := New()
	nihao(l)
	l.Reset(true)

	typeKeys(l, AlphabetKeys("ok")...)
	if got, want := l.Commit(true, DisplayOption{}), "ok"; got != want {
		t.Fatalf("commit=%q, want %q", got, want)
	}
	if l.CanCancelDelete() {
		t.Fatalf("expected the commit to replace the staged delete")
	}

	l.RevokeCommit()
	if got, want := l.Text(DisplayOption{}), "ok"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestList_Staged_NotRecordedForEmptyList(t *testing.T) {
	l := New()
	nihao(l)
	l.Commit(true, DisplayOption{})

	if got := l.Commit(true, DisplayOption{}); got != "" {
		t.Fatalf("commit=%q, want empty", got)
	}
	if l.CanRevokeCommit() {
		t.Fatalf("expected empty commit to leave nothing to revoke")
	}

	l2 := New()
	typeKeys(l2, Alphabet("a"))
	l2.Reset(false)
	if l2.CanCancelDelete() {
		t.Fatalf("expected non-cancelable reset")
	}
}

func TestList_Restore_ClearsCompletions(t *testing.T) {
	l := New()
	nihao(l)
	l.SetPhraseCompletions([]Completion{{Words: nil}})
	l.Reset(true)
	if got := l.PhraseCompletions(); len(got) != 0 {
		t.Fatalf("completions=%v, want none after reset", got)
	}

	l.SetPhraseCompletions([]Completion{{Words: nil}})
	l.CancelDelete()
	if got := l.PhraseCompletions(); len(got) != 0 {
		t.Fatalf("completions=%v, want none after restore", got)
	}
}
