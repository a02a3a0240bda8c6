package mvcc

// isVisible is the visibility oracle: given a version record and the
// reading transaction, decide whether the record is visible to that
// transaction's reads. txnState looks up the terminal/in-progress
// state of an arbitrary transaction id from the database's
// transaction table.
//
// Two variants, selected by txn.isolation.usesSnapshot():
//
//   - Variant R (RepeatableRead, Snapshot, Serializable): a static
//     snapshot taken at begin — concurrentAtStart is consulted.
//   - Variant C (ReadCommitted): concurrentAtStart is ignored, so a
//     peer's commit becomes visible as soon as it happens, even in
//     the middle of this transaction.
//
// Variant C differs from Variant R in three places: rule 2 is
// skipped, rule 1 is skipped (a writer that began after this
// transaction is visible once it commits), and rule 5 hides a version
// whose deleter has committed whatever that deleter's id.
func isVisible(v *VersionRecord, txn *Transaction, txnState func(TxnId) TransactionState) bool {
	useSnapshot := txn.isolation.usesSnapshot()

	// Rule 1: future writer (snapshot isolation levels only).
	if useSnapshot && v.StartTxn > txn.id {
		return false
	}

	// Rule 2: writer was concurrent at begin (snapshot isolation levels only).
	if useSnapshot && txn.isConcurrentAtStartWith(v.StartTxn) {
		return false
	}

	// Rule 3: writer isn't this transaction and hasn't committed.
	if v.StartTxn != txn.id && txnState(v.StartTxn) != Committed {
		return false
	}

	// Rule 4: this transaction itself deleted/overwrote the version.
	if v.EndTxn == txn.id {
		return false
	}

	// Rule 5: already superseded by a committed deleter (pre-snapshot
	// only, for the snapshot isolation levels).
	if !v.isLive() &&
		(!useSnapshot || (v.EndTxn < txn.id && !txn.isConcurrentAtStartWith(v.EndTxn))) &&
		txnState(v.EndTxn) == Committed {
		return false
	}

	return true
}
