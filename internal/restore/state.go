package restore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/joaompneves/nx-dotnet/internal/config"
)

// State records the restore-input digest observed at the last successful
// restore, keyed by absolute project root. Stored as JSON under the
// dotnetctl state directory.
type State struct {
	Entries map[string]string `json:"entries"`
}

func statePath() string {
	return filepath.Join(config.StateDir(), "restore.json")
}

// LoadState reads the recorded digests. Missing or corrupt state is treated
// as empty; the worst case is one redundant restore.
func LoadState() *State {
	s := &State{Entries: make(map[string]string)}
	b, err := os.ReadFile(statePath())
	if err != nil {
		return s
	}
	if err := json.Unmarshal(b, s); err != nil || s.Entries == nil {
		s.Entries = make(map[string]string)
	}
	return s
}

// Save persists the recorded digests.
func (s *State) Save() error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(statePath(), b, 0o644)
}

// Matches reports whether root's recorded digest equals digest.
func (s *State) Matches(root, digest string) bool {
	prev, ok := s.Entries[absPath(root)]
	return ok && prev == digest
}

// Record stores digest for root.
func (s *State) Record(root, digest string) {
	s.Entries[absPath(root)] = digest
}

func absPath(root string) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		return root
	}
	return abs
}
