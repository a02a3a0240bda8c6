package mvcc

// Connection is a scoped handle onto exactly one transaction inside a
// Database. It carries no state of its own beyond the transaction id
// and whether Close has run; every read and write is a call through to
// the owning Database.
type Connection struct {
	db       *Database
	txnID    TxnId
	released bool
}

// Txn returns the bound transaction's immutable identity and current
// state. It does not expose the read/write sets themselves.
func (c *Connection) Txn() *Transaction {
	return c.db.mustTxn(c.txnID)
}

// Get returns the value of key visible to this connection's
// transaction, or (nil, false) if no visible version exists. Every
// call — hit or miss — adds key to the transaction's read set, since
// the absence of a visible version is itself read-dependent state
// (spec §4.3).
func (c *Connection) Get(key Key) (Value, bool) {
	txn := c.Txn()
	txn.recordRead(key)

	chain, ok := c.db.store[key]
	if !ok {
		return nil, false
	}

	var value Value
	found := false
	chain.reverse(func(r *VersionRecord) bool {
		if isVisible(r, txn, c.db.txnState) {
			value, found = r.Value, true
			return false
		}
		return true
	})
	return value, found
}

// Exists is Get without copying out the value, for callers that only
// need a visibility check (spec §4.9 in SPEC_FULL.md).
func (c *Connection) Exists(key Key) bool {
	txn := c.Txn()
	txn.recordRead(key)

	chain, ok := c.db.store[key]
	if !ok {
		return false
	}

	visible := false
	chain.reverse(func(r *VersionRecord) bool {
		if isVisible(r, txn, c.db.txnState) {
			visible = true
			return false
		}
		return true
	})
	return visible
}

// Set terminates every version currently visible to this transaction
// on key's chain (there is at most one under the invariants, but the
// scan is exhaustive per spec §4.4), then appends a new live version
// written by this transaction. Set does not touch the read set.
func (c *Connection) Set(key Key, value Value) {
	txn := c.Txn()

	chain, ok := c.db.store[key]
	if !ok {
		chain = newVersionChain()
		c.db.store[key] = chain
	}
	c.terminateVisible(chain, txn)

	txn.recordWrite(key)
	chain.append(&VersionRecord{Value: value, StartTxn: txn.id, EndTxn: invalidTxnId})

	if c.db.log != nil {
		c.db.log.Debug().Uint64("txn_id", uint64(txn.id)).Str("key", key).Msg("set")
	}
}

// Delete terminates every version visible to this transaction on
// key's chain and returns true, or returns false if key has never
// been written (spec §4.5 — absence of a chain, not absence of a
// visible version, is what Delete checks).
func (c *Connection) Delete(key Key) bool {
	chain, ok := c.db.store[key]
	if !ok {
		return false
	}

	txn := c.Txn()
	c.terminateVisible(chain, txn)
	txn.recordWrite(key)
	return true
}

func (c *Connection) terminateVisible(chain *versionChain, txn *Transaction) {
	for _, r := range chain.records {
		if isVisible(r, txn, c.db.txnState) {
			r.EndTxn = txn.id
		}
	}
}

// Commit validates and finalizes the transaction per spec §4.7. It
// returns true iff the transaction is now Committed. Calling Commit a
// second time on an already-terminal transaction is a no-op that
// returns false (spec §4.8).
func (c *Connection) Commit() bool {
	ok, _ := c.commit()
	return ok
}

// commit is Commit's internal implementation. It additionally surfaces
// ErrTerminalTransaction for white-box assertions; the public Commit
// keeps spec.md §6's exact bool signature and discards the error.
func (c *Connection) commit() (bool, error) {
	txn := c.Txn()
	if txn.state != InProgress {
		return false, ErrTerminalTransaction
	}

	switch txn.isolation {
	case ReadCommitted, RepeatableRead:
		txn.state = Committed
		c.logCommit(txn, true)
		return true, nil

	case Snapshot:
		for peerID := range txn.concurrentAtStart {
			peer := c.db.txns[peerID]
			if peer.state != Committed {
				continue
			}
			if hasWriteConflict(txn, peer) {
				txn.state = Aborted
				c.logCommit(txn, false)
				return false, nil
			}
		}
		txn.state = Committed
		c.logCommit(txn, true)
		return true, nil

	case Serializable:
		for peerID := range txn.concurrentAtStart {
			peer := c.db.txns[peerID]
			if hasWriteConflict(txn, peer) {
				txn.state = Aborted
				c.logCommit(txn, false)
				return false, nil
			}
			if hasReadWriteConflict(txn, peer) {
				// Commit refused; txn stays InProgress per spec §4.7 —
				// the caller retries or lets scope exit abort it.
				c.logCommit(txn, false)
				return false, nil
			}
		}
		txn.state = Committed
		c.logCommit(txn, true)
		return true, nil

	default:
		return false, nil
	}
}

func (c *Connection) logCommit(txn *Transaction, ok bool) {
	if c.db.log == nil {
		return
	}
	c.db.log.Debug().
		Uint64("txn_id", uint64(txn.id)).
		Str("isolation", txn.isolation.String()).
		Bool("committed", ok).
		Str("state", txn.state.String()).
		Msg("commit")
}

// Abort marks the transaction Aborted. A no-op if it's already
// terminal in either direction (spec §4.6, §4.8).
func (c *Connection) Abort() {
	_ = c.abort()
}

// abort is Abort's internal implementation, surfacing
// ErrTerminalTransaction for white-box assertions.
func (c *Connection) abort() error {
	txn := c.Txn()
	if txn.state != InProgress {
		return ErrTerminalTransaction
	}
	txn.state = Aborted
	if c.db.log != nil {
		c.db.log.Debug().Uint64("txn_id", uint64(txn.id)).Msg("abort")
	}
	return nil
}

// Close auto-aborts the connection's transaction if it's still
// InProgress. Safe to call more than once. Embedders are expected to
// `defer conn.Close()` immediately after Begin (spec §4.8).
func (c *Connection) Close() {
	if c.released {
		return
	}
	c.released = true
	c.Abort()
}
