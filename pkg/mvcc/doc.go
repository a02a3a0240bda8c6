// Package mvcc implements an in-memory, single-threaded multi-version
// concurrency control key-value engine with four isolation levels.
//
// # Overview
//
// A Database owns every transaction ever begun and every key's version
// chain. A Connection is a scoped handle onto exactly one transaction:
//
//	db := mvcc.NewDatabase()
//	conn := db.Begin(mvcc.Snapshot)
//	defer conn.Close() // auto-abort if still in progress
//
//	conn.Set("k", []byte("v"))
//	value, ok := conn.Get("k")
//
//	if !conn.Commit() {
//	    // refused or conflicted; conn.Txn().State() says which
//	}
//
// # Isolation levels
//
// ReadCommitted and RepeatableRead commit unconditionally; Snapshot
// aborts on write-write conflicts with transactions that were
// in-progress at this one's begin and have since committed;
// Serializable additionally refuses commit (without changing state)
// on read-write conflicts. See visibility.go and connection.go's
// Commit for the exact rules.
//
// # Concurrency model
//
// There is no locking anywhere in this package. Concurrency is
// simulated by opening multiple Connections and interleaving calls
// from a single goroutine; every exported method assumes it is the
// only call in flight.
package mvcc
