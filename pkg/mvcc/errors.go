package mvcc

import "errors"

// Sentinel errors for programmer-error conditions. The public Get/Set/
// Delete/Commit surface never returns these through its normal return
// values (see spec §7).
var (
	// ErrTerminalTransaction is returned by the internal commit and abort
	// helpers when called on a transaction that already reached
	// Committed or Aborted; the public Commit and Abort discard it.
	ErrTerminalTransaction = errors.New("mvcc: transaction already in a terminal state")

	// ErrUnknownTransaction is the value the database panics with when a
	// Connection's bound transaction id is not present in its
	// transaction table. A Connection returned by Begin never hits this,
	// since the table is never pruned.
	ErrUnknownTransaction = errors.New("mvcc: unknown transaction id")

	// ErrUnknownIsolationLevel is returned by ParseIsolationLevel for an
	// unrecognized isolation level name.
	ErrUnknownIsolationLevel = errors.New("mvcc: unknown isolation level")
)
