// Package classroom holds the in-memory classroom registry: join codes,
// student sessions, leaderboards and the word swap/remove machinery.
// Everything lives in process memory and disappears with it; a classroom
// is reachable for TTL after creation and then expires unconditionally.
package classroom

import (
	"errors"
	"math/rand"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/113120067/immersive-viewer-antigrovity/internal/models"
	"github.com/benbjohnson/clock"
)

const (
	// DefaultTTL matches the 24-hour lifetime of a classroom.
	DefaultTTL = 24 * time.Hour

	codeMin  = 1000
	codeSpan = 9000
)

var (
	ErrClassroomNotFound = errors.New("classroom not found")
	ErrStudentNotFound   = errors.New("student not found")
	ErrRequestNotFound   = errors.New("request not found")
	ErrNoActiveSession   = errors.New("no active session")
	ErrRequestProcessed  = errors.New("request already processed")
	ErrAlreadyVoted      = errors.New("already voted")
	ErrWordNotOwned      = errors.New("does not have that word")
)

// Store owns every live classroom, keyed by its 4-digit code.
// The registry map has its own lock; each classroom carries an
// exclusive-writer lock because swaps and vote execution touch
// several students atomically. Cross-classroom operations never
// coordinate.
type Store struct {
	mu    sync.RWMutex
	rooms map[string]*classroom

	clock clock.Clock
	ttl   time.Duration
}

// classroom bundles the live record with its remove-request table.
// reqOrder keeps insertion order for list views.
type classroom struct {
	mu       sync.Mutex
	room     *models.Classroom
	requests map[string]*removeRequest
	reqOrder []*removeRequest
}

// NewStore builds an empty registry. A nil clock means wall clock;
// tests pass clock.NewMock() and advance time instead of sleeping.
func NewStore(ttl time.Duration, clk clock.Clock) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Store{
		rooms: make(map[string]*classroom),
		clock: clk,
		ttl:   ttl,
	}
}

// CreateClassroom registers a classroom under a fresh code and schedules
// its expiry. The word list is copied; it is only ever used as the
// template handed to joining students.
func (s *Store) CreateClassroom(name string, words []string) *models.Classroom {
	list := append([]string(nil), words...)
	now := s.clock.Now()

	s.mu.Lock()
	code := s.generateCodeLocked()
	c := &classroom{
		room: &models.Classroom{
			Code:      code,
			Name:      name,
			Words:     list,
			WordCount: len(list),
			CreatedAt: now,
		},
		requests: make(map[string]*removeRequest),
	}
	s.rooms[code] = c
	snap := c.snapshotLocked()
	s.mu.Unlock()

	// Expiry is unconditional: the timer fires regardless of activity
	// and the code becomes free for reuse.
	s.clock.AfterFunc(s.ttl, func() { s.expire(code) })

	return snap
}

// generateCodeLocked draws 4-digit codes until one is free. The loop is
// deliberately unbounded; with 9000 codes termination is probabilistic,
// and an exhausted code space would spin here.
func (s *Store) generateCodeLocked() string {
	for {
		code := strconv.Itoa(codeMin + rand.Intn(codeSpan))
		if _, taken := s.rooms[code]; !taken {
			return code
		}
	}
}

func (s *Store) expire(code string) {
	s.mu.Lock()
	delete(s.rooms, code)
	s.mu.Unlock()
}

func (s *Store) get(code string) (*classroom, bool) {
	s.mu.RLock()
	c, ok := s.rooms[code]
	s.mu.RUnlock()
	return c, ok
}

// Classroom returns a snapshot of the classroom, or nil if the code is
// unknown or expired.
func (s *Store) Classroom(code string) *models.Classroom {
	c, ok := s.get(code)
	if !ok {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Codes lists the codes of all live classrooms, sorted.
func (s *Store) Codes() []string {
	s.mu.RLock()
	codes := make([]string, 0, len(s.rooms))
	for code := range s.rooms {
		codes = append(codes, code)
	}
	s.mu.RUnlock()
	sort.Strings(codes)
	return codes
}

// AddStudent joins a student to the classroom, seeding a personal copy
// of the word list. Re-joining under an existing name is a no-op and
// returns the classroom unchanged.
func (s *Store) AddStudent(code, name string) (*models.Classroom, error) {
	c, ok := s.get(code)
	if !ok {
		return nil, ErrClassroomNotFound
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.findStudent(name) == nil {
		c.room.Students = append(c.room.Students, &models.Student{
			Name:       name,
			LastActive: s.clock.Now(),
			Words:      append([]string(nil), c.room.Words...),
			WordStats:  make(map[string]*models.WordStat),
		})
	}
	return c.snapshotLocked(), nil
}

func (c *classroom) findStudent(name string) *models.Student {
	for _, st := range c.room.Students {
		if st.Name == name {
			return st
		}
	}
	return nil
}

func (c *classroom) snapshotLocked() *models.Classroom {
	snap := &models.Classroom{
		Code:      c.room.Code,
		Name:      c.room.Name,
		Words:     append([]string(nil), c.room.Words...),
		WordCount: c.room.WordCount,
		CreatedAt: c.room.CreatedAt,
		Students:  make([]*models.Student, 0, len(c.room.Students)),
	}
	for _, st := range c.room.Students {
		snap.Students = append(snap.Students, copyStudent(st))
	}
	return snap
}

func copyStudent(st *models.Student) *models.Student {
	cp := &models.Student{
		Name:       st.Name,
		TotalTime:  st.TotalTime,
		LastActive: st.LastActive,
		Words:      append([]string(nil), st.Words...),
		WordStats:  make(map[string]*models.WordStat, len(st.WordStats)),
	}
	if st.SessionStart != nil {
		t := *st.SessionStart
		cp.SessionStart = &t
	}
	for word, stat := range st.WordStats {
		cp.WordStats[word] = &models.WordStat{Correct: stat.Correct, Wrong: stat.Wrong}
	}
	return cp
}

func indexOf(words []string, word string) int {
	for i, w := range words {
		if w == word {
			return i
		}
	}
	return -1
}
