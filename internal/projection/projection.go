package projection

import (
	"sync"

	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/domain/model"
)

// Store is the in-memory projection of the remote collections. Only the
// sync engine mutates it; each field is owned by exactly one subscription,
// so a reader can observe a transiently inconsistent combination (e.g.
// resolved count ahead of the report list) and must tolerate it.
type Store struct {
	mu      sync.RWMutex
	reports []model.Report
	stats   model.Stats
	lastErr error
}

func New() *Store {
	return &Store{}
}

// ReplaceReports swaps in a full report list. Snapshots are full replaces,
// not diffs, and the total count always tracks the list length.
func (s *Store) ReplaceReports(reports []model.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = reports
	s.stats.TotalReports = len(reports)
}

func (s *Store) SetTotalUsers(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.TotalUsers = count
}

func (s *Store) SetResolvedReports(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.ResolvedReports = count
}

// SetErr records the engine-level error. The latest failure overwrites any
// previous one; there is no error history.
func (s *Store) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
}

func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *Store) Reports() []model.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Report, len(s.reports))
	copy(out, s.reports)
	return out
}

func (s *Store) Stats() model.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// CommunityChart recomputes the chart projection from the current report
// list. It holds no state of its own.
func (s *Store) CommunityChart() []model.ChartEntry {
	return CommunityChart(s.Reports())
}

// CommunityChart keeps one entry per Community report; entries sharing a
// name are not merged, each carries a constant weight of one.
func CommunityChart(reports []model.Report) []model.ChartEntry {
	entries := make([]model.ChartEntry, 0, len(reports))
	for _, r := range reports {
		if r.MatterType != "Community" {
			continue
		}
		entries = append(entries, model.ChartEntry{Name: r.Name, Reports: 1})
	}
	return entries
}
