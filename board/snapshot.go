package board

// MakeSnapshot records the board's current position in its mutation log
// and returns an opaque token that Restore can later roll back to. Taking
// a snapshot is O(1); the cost of a round trip is proportional to the
// number of cell writes made since, not to the board's size, via the
// delta-log strategy.
//
// Snapshots follow a strict LIFO stack discipline: a caller that takes
// snapshot S1 and then S2 must Restore(S2) before Restore(S1). Violating
// this order is a programming error (ErrSnapshotMisuse), not a recoverable
// condition.
func (b *Board) MakeSnapshot() Snapshot {
	b.muCells.Lock()
	defer b.muCells.Unlock()

	snap := Snapshot{logLen: len(b.log), stackPos: len(b.snapStack)}
	b.snapStack = append(b.snapStack, snap.logLen)

	return snap
}

// Restore reverts the board's cell grid to the state it had when snap was
// taken, and pops snap off the stack. snap must be the most recent
// snapshot still on the stack; otherwise Restore returns ErrSnapshotMisuse
// and changes nothing.
//
// Complexity: O(k) where k is the number of cell writes since snap was
// taken.
func (b *Board) Restore(snap Snapshot) error {
	b.muCells.Lock()
	defer b.muCells.Unlock()

	if snap.stackPos != len(b.snapStack)-1 {
		return ErrSnapshotMisuse
	}

	for i := len(b.log) - 1; i >= snap.logLen; i-- {
		d := b.log[i]
		b.cells[d.p.Row][d.p.Col] = d.old
	}
	b.log = b.log[:snap.logLen]
	b.snapStack = b.snapStack[:snap.stackPos]

	return nil
}

// DropSnapshot discards snap without reverting any mutation, used when a
// probe or search branch succeeds and its speculative writes should be
// kept. Must also respect LIFO order.
func (b *Board) DropSnapshot(snap Snapshot) error {
	b.muCells.Lock()
	defer b.muCells.Unlock()

	if snap.stackPos != len(b.snapStack)-1 {
		return ErrSnapshotMisuse
	}
	b.snapStack = b.snapStack[:snap.stackPos]

	return nil
}
