package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(session string, created time.Time) Entry {
	return Entry{
		ID:        "id-" + session,
		SessionID: session,
		Goal:      "Primary goal: ship " + session,
		Messages:  4,
		Delivered: true,
		CreatedAt: created,
	}
}

func TestReadFileNotExist(t *testing.T) {
	j, err := ReadFile(filepath.Join(t.TempDir(), "journal.json"))
	require.NoError(t, err)
	assert.Empty(t, j.Entries)
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	j := &Journal{Entries: []Entry{entry("abc", now)}}
	require.NoError(t, j.WriteFile(path))

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "abc", got.Entries[0].SessionID)
	assert.True(t, got.Entries[0].Delivered)
	assert.Equal(t, now, got.Entries[0].CreatedAt)
}

func TestUpsertReplacesAndSorts(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	j := &Journal{}
	j.Upsert(entry("old", base))
	j.Upsert(entry("new", base.Add(time.Hour)))

	require.Len(t, j.Entries, 2)
	assert.Equal(t, "new", j.Entries[0].SessionID)

	replacement := entry("old", base.Add(2*time.Hour))
	replacement.Delivered = false
	j.Upsert(replacement)

	require.Len(t, j.Entries, 2)
	assert.Equal(t, "old", j.Entries[0].SessionID)
	assert.False(t, j.Entries[0].Delivered)
}

func TestWriteFileCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "journal.json")
	require.NoError(t, (&Journal{}).WriteFile(path))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestReadFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := ReadFile(path)
	assert.Error(t, err)
}
