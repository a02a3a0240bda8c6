package mvcc

// VersionRecord is the unit of storage: a value tagged with the
// transaction that created it and, once superseded, the transaction
// that ended it.
type VersionRecord struct {
	Value Value
	// StartTxn is the creating transaction's id. Inclusive; never zero
	// for a record that has been appended to a chain.
	StartTxn TxnId
	// EndTxn is the deleter/overwriter's id, or invalidTxnId (0) while
	// the version is still live. Inclusive: the version is considered
	// dead starting from that transaction's observation.
	EndTxn TxnId
}

func (v *VersionRecord) isLive() bool {
	return v.EndTxn == invalidTxnId
}

// versionChain is the per-key ordered sequence of VersionRecords,
// append-only within a session. It is never re-ordered or compacted
// in scope of this engine (spec §3, §9 "No GC of dead versions").
type versionChain struct {
	records []*VersionRecord
}

func newVersionChain() *versionChain {
	return &versionChain{}
}

func (c *versionChain) append(r *VersionRecord) {
	c.records = append(c.records, r)
}

// reverse calls visit on each record from most-recently-appended to
// oldest, stopping as soon as visit returns false.
func (c *versionChain) reverse(visit func(*VersionRecord) bool) {
	for i := len(c.records) - 1; i >= 0; i-- {
		if !visit(c.records[i]) {
			return
		}
	}
}
