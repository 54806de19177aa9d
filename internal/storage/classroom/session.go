package classroom

import (
	"sort"
	"time"

	"github.com/113120067/immersive-viewer-antigrovity/internal/models"
)

// StartSession marks the student as learning from now. Starting while a
// session is already active silently restarts the clock; the previous
// unflushed time is discarded. That is the intended fire-and-forget
// behavior, not an omission.
func (s *Store) StartSession(code, name string) error {
	c, ok := s.get(code)
	if !ok {
		return ErrClassroomNotFound
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.findStudent(name)
	if st == nil {
		return ErrStudentNotFound
	}
	now := s.clock.Now()
	st.SessionStart = &now
	st.LastActive = now
	return nil
}

// EndSession flushes the active session into the student's total and
// returns the duration in whole seconds (truncated toward zero). Ending
// without an active session is ErrNoActiveSession, distinct from a real
// zero-second session.
func (s *Store) EndSession(code, name string) (int, error) {
	c, ok := s.get(code)
	if !ok {
		return 0, ErrClassroomNotFound
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.findStudent(name)
	if st == nil {
		return 0, ErrStudentNotFound
	}
	if st.SessionStart == nil {
		return 0, ErrNoActiveSession
	}

	now := s.clock.Now()
	duration := int(now.Sub(*st.SessionStart) / time.Second)
	st.TotalTime += duration
	st.SessionStart = nil
	st.LastActive = now
	return duration, nil
}

// Leaderboard ranks students by accumulated time, descending. Ranks are
// 1-based and contiguous: ties get consecutive ranks, never a shared
// one. Tie order falls out of the stable sort (join order) and is not a
// contract callers may rely on.
func (s *Store) Leaderboard(code string) ([]models.LeaderboardEntry, error) {
	c, ok := s.get(code)
	if !ok {
		return nil, ErrClassroomNotFound
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.leaderboardLocked(), nil
}

// StudentStatus derives the student's rank by recomputing the full
// leaderboard. Nothing is cached; classrooms hold tens of students.
func (s *Store) StudentStatus(code, name string) (*models.StudentStatus, error) {
	c, ok := s.get(code)
	if !ok {
		return nil, ErrClassroomNotFound
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.findStudent(name)
	if st == nil {
		return nil, ErrStudentNotFound
	}

	status := &models.StudentStatus{
		Name:          st.Name,
		TotalTime:     st.TotalTime,
		IsActive:      st.SessionStart != nil,
		TotalStudents: len(c.room.Students),
	}
	for _, entry := range c.leaderboardLocked() {
		if entry.Name == name {
			status.Rank = entry.Rank
			break
		}
	}
	return status, nil
}

func (c *classroom) leaderboardLocked() []models.LeaderboardEntry {
	students := append([]*models.Student(nil), c.room.Students...)
	sort.SliceStable(students, func(i, j int) bool {
		return students[i].TotalTime > students[j].TotalTime
	})

	entries := make([]models.LeaderboardEntry, len(students))
	for i, st := range students {
		entries[i] = models.LeaderboardEntry{
			Rank:         i + 1,
			Name:         st.Name,
			TotalTime:    st.TotalTime,
			TotalMinutes: st.TotalTime / 60,
			TotalSeconds: st.TotalTime % 60,
			IsActive:     st.SessionStart != nil,
			LastActive:   st.LastActive,
		}
	}
	return entries
}
