package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

// SnapshotStore keeps raw API response bodies on disk so repeat runs can be
// replayed without hitting the network. Derived output is never stored here;
// the pipeline always recomputes from the raw bodies.
type SnapshotStore struct {
	Root string // e.g. "data/snapshots"
}

func NewSnapshotStore(root string) *SnapshotStore {
	return &SnapshotStore{Root: root}
}

func (s *SnapshotStore) Path(rel string) string {
	return filepath.Join(s.Root, rel)
}

func (s *SnapshotStore) Exists(rel string) bool {
	_, err := os.Stat(s.Path(rel))
	return err == nil
}

// Write stores body under rel, pretty-printed when it parses as JSON so the
// snapshots stay readable during debugging.
func (s *SnapshotStore) Write(rel string, body []byte) error {
	path := s.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(body, &v); err == nil {
		buf := &bytes.Buffer{}
		enc := json.NewEncoder(buf)
		enc.SetIndent("", "  ")
		_ = enc.Encode(v)
		body = buf.Bytes()
	}

	return os.WriteFile(path, body, 0o644)
}

func (s *SnapshotStore) Read(rel string) ([]byte, error) {
	return os.ReadFile(s.Path(rel))
}
