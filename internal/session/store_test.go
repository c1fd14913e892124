// ABOUTME: Tests for the file-backed session store
// ABOUTME: Covers the complete-or-absent invariant and idempotent clear

package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstablishThenRead(t *testing.T) {
	store := NewFileStore(t.TempDir())

	err := store.Establish(Session{Token: "t1", Role: RoleAdmin, UserID: 7})
	require.NoError(t, err)

	got, ok := store.Read()
	require.True(t, ok)
	assert.Equal(t, "t1", got.Token)
	assert.Equal(t, RoleAdmin, got.Role)
	assert.Equal(t, 7, got.UserID)
	assert.Empty(t, got.Username)
}

func TestEstablishOverwritesPriorSession(t *testing.T) {
	store := NewFileStore(t.TempDir())

	require.NoError(t, store.Establish(Session{Token: "t1", Role: RoleUser, UserID: 1, Username: "alice"}))
	require.NoError(t, store.Establish(Session{Token: "t2", Role: RoleJudge, UserID: 2}))

	got, ok := store.Read()
	require.True(t, ok)
	assert.Equal(t, "t2", got.Token)
	assert.Equal(t, RoleJudge, got.Role)
	// Last login wins wholesale: no field from the prior session leaks through
	assert.Empty(t, got.Username)
}

func TestEstablishRejectsIncompleteSessions(t *testing.T) {
	store := NewFileStore(t.TempDir())

	incomplete := []Session{
		{},
		{Token: "t1"},
		{Token: "t1", Role: RoleUser},
		{Role: RoleUser, UserID: 3},
		{Token: "t1", Role: Role("superuser"), UserID: 3},
	}

	for _, s := range incomplete {
		assert.Error(t, store.Establish(s))
	}

	_, ok := store.Read()
	assert.False(t, ok, "no partial session may become readable")
}

func TestReadAbsentSession(t *testing.T) {
	store := NewFileStore(t.TempDir())

	got, ok := store.Read()
	assert.False(t, ok)
	assert.Equal(t, Session{}, got)
}

func TestReadIgnoresPartialFileContents(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	// A file written by hand with a token but no role must read as absent
	data, err := json.Marshal(map[string]string{"token": "t1"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), data, 0600))

	_, ok := store.Read()
	assert.False(t, ok)
}

func TestReadIgnoresCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("not json"), 0600))

	_, ok := store.Read()
	assert.False(t, ok)
}

func TestClearIsIdempotent(t *testing.T) {
	store := NewFileStore(t.TempDir())

	// Clearing before any session exists is a no-op, not an error
	require.NoError(t, store.Clear())

	require.NoError(t, store.Establish(Session{Token: "t1", Role: RoleUser, UserID: 1}))
	require.NoError(t, store.Clear())

	_, ok := store.Read()
	assert.False(t, ok)

	require.NoError(t, store.Clear())
}

func TestEstablishClearSequences(t *testing.T) {
	// For any sequence of establish/clear calls the store reads either a
	// complete session or nothing
	store := NewFileStore(t.TempDir())

	steps := []func() error{
		func() error { return store.Clear() },
		func() error { return store.Establish(Session{Token: "a", Role: RoleUser, UserID: 1}) },
		func() error {
			return store.Establish(Session{Token: "b", Role: RoleJudge, UserID: 2, Username: "amal"})
		},
		func() error { return store.Clear() },
		func() error { return store.Establish(Session{Token: "c", Role: RoleAdmin, UserID: 3}) },
	}

	for _, step := range steps {
		require.NoError(t, step())
		if got, ok := store.Read(); ok {
			assert.True(t, got.Complete())
		} else {
			assert.Equal(t, Session{}, got)
		}
	}
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"user", "judge", "admin"} {
		r, err := ParseRole(valid)
		require.NoError(t, err)
		assert.Equal(t, Role(valid), r)
	}

	for _, invalid := range []string{"", "User", "superadmin", "clerk"} {
		_, err := ParseRole(invalid)
		assert.Error(t, err, "role %q should be rejected", invalid)
	}
}

func TestDisplayNameFallback(t *testing.T) {
	assert.Equal(t, "User", Session{}.DisplayName())
	assert.Equal(t, "amal", Session{Username: "amal"}.DisplayName())
}
