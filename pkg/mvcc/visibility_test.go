package mvcc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadYourOwnWrites covers spec §4.2's edge case: a transaction
// always observes its own pending writes (property 5 in §8).
func TestReadYourOwnWrites(t *testing.T) {
	db := NewDatabase()
	conn := db.Begin(RepeatableRead)

	_, ok := conn.Get("k")
	assert.False(t, ok)

	conn.Set("k", []byte("v1"))
	v, ok := conn.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v1", string(v))

	conn.Set("k", []byte("v2"))
	v, ok = conn.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v2", string(v))
}

// TestDeleteThenGetReturnsNone covers spec §8 property 7.
func TestDeleteThenGetReturnsNone(t *testing.T) {
	db := NewDatabase()
	conn := db.Begin()
	conn.Set("k", []byte("v"))

	ok := conn.Delete("k")
	assert.True(t, ok)

	_, found := conn.Get("k")
	assert.False(t, found)
}

// TestDeleteOnMissingKeyReturnsFalse covers spec §4.5.
func TestDeleteOnMissingKeyReturnsFalse(t *testing.T) {
	db := NewDatabase()
	conn := db.Begin()
	assert.False(t, conn.Delete("nope"))
}

// TestAbortedWritesNeverObserved covers spec §8 property 6.
func TestAbortedWritesNeverObserved(t *testing.T) {
	db := NewDatabase()

	writer := db.Begin()
	writer.Set("k", []byte("ghost"))
	writer.Abort()

	reader := db.Begin()
	_, ok := reader.Get("k")
	assert.False(t, ok)
}

// TestExistsAgreesWithGet covers SPEC_FULL.md §8 property 9.
func TestExistsAgreesWithGet(t *testing.T) {
	db := NewDatabase()

	setup := db.Begin()
	setup.Set("k", []byte("v"))
	require.True(t, setup.Commit())

	deleter := db.Begin()
	assert.True(t, deleter.Exists("k"))
	deleter.Delete("k")
	assert.False(t, deleter.Exists("k"))

	other := db.Begin(Snapshot)
	_, found := other.Get("k")
	assert.Equal(t, found, other.Exists("k"))
}

// TestRepeatableReadSnapshotStability covers spec §8 property 4 and S4.
func TestRepeatableReadSnapshotStability(t *testing.T) {
	db := NewDatabase()

	setup := db.Begin()
	setup.Set("k", []byte("val"))
	require.True(t, setup.Commit())

	t1 := db.Begin(RepeatableRead)
	t2 := db.Begin(RepeatableRead)

	t1.Set("k", []byte("t1"))
	v, ok := t2.Get("k")
	require.True(t, ok)
	assert.Equal(t, "val", string(v))

	t2.Set("k", []byte("t2"))
	v, ok = t1.Get("k")
	require.True(t, ok)
	assert.Equal(t, "t1", string(v))

	require.True(t, t1.Commit())
	fresh1 := db.Begin()
	v, ok = fresh1.Get("k")
	require.True(t, ok)
	assert.Equal(t, "t1", string(v))

	require.True(t, t2.Commit())
	fresh2 := db.Begin()
	v, ok = fresh2.Get("k")
	require.True(t, ok)
	assert.Equal(t, "t2", string(v))
}

// TestNeverObservesConcurrentAtStartWriter covers spec §8 property 4's
// "even if that transaction commits after T began" clause, for each
// snapshot-taking isolation level.
func TestNeverObservesConcurrentAtStartWriter(t *testing.T) {
	for _, level := range []IsolationLevel{RepeatableRead, Snapshot, Serializable} {
		level := level
		t.Run(level.String(), func(t *testing.T) {
			db := NewDatabase()
			reader := db.Begin(level)
			writer := db.Begin()

			writer.Set("k", []byte("late"))
			require.True(t, writer.Commit())

			_, ok := reader.Get("k")
			assert.False(t, ok, "reader must not see a writer that was concurrent at its own begin")
		})
	}
}
