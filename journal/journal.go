// Package journal keeps a local index of summarized sessions so past
// deliveries can be listed without querying the knowledge store.
package journal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Entry records one analyzed session and its delivery outcome.
type Entry struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Goal      string    `json:"goal,omitempty"`
	Messages  int       `json:"messages"`
	Delivered bool      `json:"delivered"`
	CreatedAt time.Time `json:"created_at"`
}

// Journal holds the list of session entries.
type Journal struct {
	Entries []Entry `json:"entries"`
}

// ReadFile reads a journal from disk. Returns an empty Journal if the file
// does not exist.
func ReadFile(path string) (*Journal, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Journal{}, nil
	}
	if err != nil {
		return nil, err
	}

	var j Journal
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, err
	}
	return &j, nil
}

// Upsert adds or replaces an entry matched by SessionID. After upserting,
// the entries are sorted newest-first by CreatedAt.
func (j *Journal) Upsert(entry Entry) {
	for i, e := range j.Entries {
		if e.SessionID == entry.SessionID {
			j.Entries[i] = entry
			j.sort()
			return
		}
	}
	j.Entries = append(j.Entries, entry)
	j.sort()
}

func (j *Journal) sort() {
	sort.Slice(j.Entries, func(a, b int) bool {
		return j.Entries[a].CreatedAt.After(j.Entries[b].CreatedAt)
	})
}

// WriteFile writes the journal to disk atomically using a temporary file and
// rename, which is safe against concurrent writers.
func (j *Journal) WriteFile(path string) error {
	data, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".journal-*.json")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, path)
}
