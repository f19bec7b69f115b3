package content

import (
	"sync"

	"github.com/curricuforge/curricuforge/internal/approval"
)

// Ledger is the in-memory, process-lifetime collection of artifacts.
// Newest-first ordering is an observable contract. Artifacts are held by
// pointer so views over the ledger (dashboards, the preview surface) see
// status mutations without re-reading. Nothing is ever deleted.
type Ledger struct {
	mu    sync.RWMutex
	items []*Artifact
	byID  map[string]*Artifact
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		byID: make(map[string]*Artifact),
	}
}

// Insert prepends the artifact. The caller is responsible for stamping
// id, origin and initial status; the ledger only stores.
func (l *Ledger) Insert(a *Artifact) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append([]*Artifact{a}, l.items...)
	l.byID[a.ID] = a
}

// Get looks an artifact up by id.
func (l *Ledger) Get(id string) (*Artifact, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	a, ok := l.byID[id]
	return a, ok
}

// List returns the full authoritative set, newest first. The slice is a
// copy; the entries are the live records.
func (l *Ledger) List() []*Artifact {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Artifact, len(l.items))
	copy(out, l.items)
	return out
}

// Len reports how many artifacts the ledger holds.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// SetApproval overwrites the approval fields of the identified artifact
// in place and recomputes the published flag from the new status.
// ApprovedBy always records the latest actor, rejections included.
// Returns false when the id is unknown, leaving the ledger untouched.
func (l *Ledger) SetApproval(id string, status approval.Status, approvedBy, feedback string) (*Artifact, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.byID[id]
	if !ok {
		return nil, false
	}

	a.ApprovalStatus = status
	a.IsPublished = status.Published()
	a.ApprovedBy = approvedBy
	a.Feedback = feedback
	return a, true
}
