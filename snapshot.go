package mmmratp

import (
	"sync"
	"time"
)

// SnapshotStore owns the previous/current snapshot pair. The two fetch
// categories rotate independently; a commit atomically promotes the
// current slot to previous and installs the new result, so readers never
// observe a partially replaced current. The initial state is empty in both
// categories.
type SnapshotStore struct {
	mu sync.RWMutex

	prevTimetables []StationTimetable
	curTimetables  []StationTimetable
	timetablesAt   time.Time

	prevTraffic []TrafficInfo
	curTraffic  []TrafficInfo
	trafficAt   time.Time
}

// NewSnapshotStore creates an empty store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// CommitTimetables rotates the timetable slots and installs result as the
// new current.
func (s *SnapshotStore) CommitTimetables(result []StationTimetable, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prevTimetables = s.curTimetables
	s.curTimetables = result
	s.timetablesAt = at
}

// CommitTraffic rotates the traffic slots and installs result as the new
// current.
func (s *SnapshotStore) CommitTraffic(result []TrafficInfo, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prevTraffic = s.curTraffic
	s.curTraffic = result
	s.trafficAt = at
}

// Current returns the latest committed results of both categories.
func (s *SnapshotStore) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Timetables: s.curTimetables, Traffic: s.curTraffic}
}

// CurrentTimetables returns the latest committed timetables.
func (s *SnapshotStore) CurrentTimetables() []StationTimetable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.curTimetables
}

// Previous returns what Current held before the last commit of each
// category.
func (s *SnapshotStore) Previous() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Timetables: s.prevTimetables, Traffic: s.prevTraffic}
}

// LastUpdated returns the commit time of each category; a zero time means
// that category has not committed yet.
func (s *SnapshotStore) LastUpdated() (timetables, traffic time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timetablesAt, s.trafficAt
}
