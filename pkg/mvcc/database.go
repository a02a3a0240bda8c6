package mvcc

import "github.com/rs/zerolog"

// Database owns every transaction ever begun and every key's version
// chain. A Connection holds only a TxnId plus a borrow of the
// Database; all mutation happens through the database's tables, so a
// transaction's state stays reachable for visibility checks long
// after the Connection that created it has gone out of scope (see
// "transaction identity outliving the connection" in the design notes).
type Database struct {
	nextID TxnId
	txns   map[TxnId]*Transaction
	store  map[Key]*versionChain

	defaultIsolation IsolationLevel

	log *zerolog.Logger
}

// NewDatabase creates an empty database. The default isolation level
// is ReadCommitted unless overridden by SetIsolation or by passing a
// level explicitly to Begin.
func NewDatabase() *Database {
	return &Database{
		nextID:           1,
		txns:             make(map[TxnId]*Transaction),
		store:            make(map[Key]*versionChain),
		defaultIsolation: ReadCommitted,
	}
}

// WithLogger attaches a debug logger for begin, set, commit and abort
// events; visibility checks are not logged.
// Passing nil (the default) keeps the engine silent; this is purely
// observational and never changes engine semantics.
func (db *Database) WithLogger(l *zerolog.Logger) *Database {
	db.log = l
	return db
}

// SetIsolation changes the isolation level newly begun transactions
// receive when Begin is called without an explicit override.
func (db *Database) SetIsolation(level IsolationLevel) {
	db.defaultIsolation = level
}

// Begin allocates a new transaction id, captures its concurrent-at-start
// set, and returns a Connection bound to it. Isolation defaults to the
// database's configured default when no level is supplied.
func (db *Database) Begin(isolation ...IsolationLevel) *Connection {
	level := db.defaultIsolation
	if len(isolation) > 0 {
		level = isolation[0]
	}

	id := db.nextID
	db.nextID++

	concurrent := make(map[TxnId]struct{}, len(db.txns))
	for otherID, other := range db.txns {
		if other.state == InProgress {
			concurrent[otherID] = struct{}{}
		}
	}

	txn := newTransaction(id, level, concurrent)
	db.txns[id] = txn

	if db.log != nil {
		db.log.Debug().
			Uint64("txn_id", uint64(id)).
			Str("isolation", level.String()).
			Int("concurrent_at_start", len(concurrent)).
			Msg("begin transaction")
	}

	return &Connection{db: db, txnID: id}
}

func (db *Database) txnState(id TxnId) TransactionState {
	txn, ok := db.txns[id]
	if !ok {
		// No record of this transaction id at all; treat it as never
		// having committed. Cannot occur for ids produced by this
		// database's own Begin, since the table is never pruned.
		return Aborted
	}
	return txn.state
}

// Stats is a read-only snapshot of database-wide counters, for the CLI
// harness's `stats` verb and for tests. It copies out of the live
// tables rather than exposing them directly.
type Stats struct {
	InProgress int
	Committed  int
	Aborted    int
	Keys       int
	Versions   int
}

// Stats computes a fresh snapshot of the database's counters.
func (db *Database) Stats() Stats {
	var s Stats
	for _, txn := range db.txns {
		switch txn.state {
		case InProgress:
			s.InProgress++
		case Committed:
			s.Committed++
		case Aborted:
			s.Aborted++
		}
	}
	s.Keys = len(db.store)
	for _, chain := range db.store {
		s.Versions += len(chain.records)
	}
	return s
}

// KeyValue is one entry of a Snapshot dump.
type KeyValue struct {
	Key   Key
	Value Value
}

// Snapshot returns every key/value pair visible to conn's transaction,
// by applying the visibility oracle to each key's chain. It carries no
// ordering guarantee beyond Go's map iteration, and takes no range —
// spec's Non-goal on range predicates and phantoms stands.
func (db *Database) Snapshot(conn *Connection) []KeyValue {
	txn := db.mustTxn(conn.txnID)
	out := make([]KeyValue, 0, len(db.store))
	for key, chain := range db.store {
		chain.reverse(func(r *VersionRecord) bool {
			if isVisible(r, txn, db.txnState) {
				out = append(out, KeyValue{Key: key, Value: r.Value})
				return false
			}
			return true
		})
	}
	return out
}

func (db *Database) mustTxn(id TxnId) *Transaction {
	txn, ok := db.txns[id]
	if !ok {
		panic(ErrUnknownTransaction)
	}
	return txn
}
