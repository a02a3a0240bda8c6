package mvcc

// hasWriteConflict reports whether t and other wrote to any common key.
// Used by Snapshot and Serializable commit validation (spec §4.7).
func hasWriteConflict(t, other *Transaction) bool {
	return setsIntersect(t.writeSet, other.writeSet)
}

// hasReadWriteConflict reports whether t's write set intersects other's
// read set, or t's read set intersects other's write set. Used by
// Serializable commit validation only.
func hasReadWriteConflict(t, other *Transaction) bool {
	return setsIntersect(t.writeSet, other.readSet) || setsIntersect(t.readSet, other.writeSet)
}

func setsIntersect(a, b map[Key]struct{}) bool {
	// Scan the smaller set against the larger one's membership.
	if len(a) > len(b) {
		a, b = b, a
	}
	for k := range a {
		if _, ok := b[k]; ok {
			return true
		}
	}
	return false
}
