// Package preview holds the single focused artifact shown in the
// inspection surface. It is a view over the ledger, never an owner: the
// surface keeps the live ledger pointer, so approval mutations are
// visible without refreshing.
package preview

import (
	"sync"

	"github.com/curricuforge/curricuforge/internal/content"
)

type Surface struct {
	mu      sync.RWMutex
	focused *content.Artifact
}

func NewSurface() *Surface {
	return &Surface{}
}

// Focus replaces the focused artifact.
func (s *Surface) Focus(a *content.Artifact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focused = a
}

// Clear dismisses the focused artifact. Runs on explicit dismissal and
// on logout.
func (s *Surface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focused = nil
}

// Current returns the focused artifact, or nil when nothing is focused.
func (s *Surface) Current() *content.Artifact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.focused
}
