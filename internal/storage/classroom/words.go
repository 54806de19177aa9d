package classroom

import (
	"fmt"
	"time"

	"github.com/113120067/immersive-viewer-antigrovity/internal/models"
	"github.com/google/uuid"
)

type removeRequest struct {
	id            string
	targetStudent string
	word          string
	requestedBy   string
	votes         map[string]struct{}
	voteOrder     []string
	status        models.RemoveRequestStatus
	createdAt     time.Time
	executedAt    *time.Time
}

// SwapWords exchanges one word slot between two students' personal
// lists. Both ownership checks run before any mutation, so a failed
// swap leaves both lists untouched.
func (s *Store) SwapWords(code, studentA, wordA, studentB, wordB string) error {
	c, ok := s.get(code)
	if !ok {
		return ErrClassroomNotFound
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	a := c.findStudent(studentA)
	b := c.findStudent(studentB)
	if a == nil || b == nil {
		return ErrStudentNotFound
	}

	ai := indexOf(a.Words, wordA)
	bi := indexOf(b.Words, wordB)
	if ai < 0 {
		return fmt.Errorf("%s %w", studentA, ErrWordNotOwned)
	}
	if bi < 0 {
		return fmt.Errorf("%s %w", studentB, ErrWordNotOwned)
	}

	a.Words[ai], b.Words[bi] = wordB, wordA
	return nil
}

// RequestRemoveWord opens a remove-word vote. The requester counts as
// the first approval, so the request may execute immediately (a
// single-student classroom meets quorum on its own).
func (s *Store) RequestRemoveWord(code, targetStudent, word, requestedBy string) (string, error) {
	c, ok := s.get(code)
	if !ok {
		return "", ErrClassroomNotFound
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	target := c.findStudent(targetStudent)
	if target == nil {
		return "", ErrStudentNotFound
	}
	if indexOf(target.Words, word) < 0 {
		return "", fmt.Errorf("target student %w", ErrWordNotOwned)
	}

	req := &removeRequest{
		id:            uuid.NewString(),
		targetStudent: targetStudent,
		word:          word,
		requestedBy:   requestedBy,
		votes:         map[string]struct{}{requestedBy: {}},
		voteOrder:     []string{requestedBy},
		status:        models.RemoveRequestPending,
		createdAt:     s.clock.Now(),
	}
	c.requests[req.id] = req
	c.reqOrder = append(c.reqOrder, req)

	c.executeIfQuorum(req, s.clock.Now())
	return req.id, nil
}

// VoteRemoveRequest records one approval. Duplicate votes and votes on
// a settled request are rejected as errors, not ignored. Returns the
// voter list after the new vote.
func (s *Store) VoteRemoveRequest(code, requestID, voterName string) ([]string, error) {
	c, ok := s.get(code)
	if !ok {
		return nil, ErrClassroomNotFound
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	req, ok := c.requests[requestID]
	if !ok {
		return nil, ErrRequestNotFound
	}
	if req.status != models.RemoveRequestPending {
		return nil, ErrRequestProcessed
	}
	if _, voted := req.votes[voterName]; voted {
		return nil, ErrAlreadyVoted
	}

	req.votes[voterName] = struct{}{}
	req.voteOrder = append(req.voteOrder, voterName)

	c.executeIfQuorum(req, s.clock.Now())
	return append([]string(nil), req.voteOrder...), nil
}

// executeIfQuorum settles the request once a strict majority of the
// current roster has approved. Quorum is recomputed from the live
// student count on every attempt, never frozen at creation; a shrinking
// classroom can tip an old request over the line. Called with the
// classroom lock held, so the word-present check and the removal are
// atomic relative to every other operation on this classroom.
func (c *classroom) executeIfQuorum(req *removeRequest, now time.Time) bool {
	if req.status != models.RemoveRequestPending {
		return false
	}
	quorum := (len(c.room.Students) + 1) / 2
	if len(req.votes) < quorum {
		return false
	}

	target := c.findStudent(req.targetStudent)
	if target == nil {
		req.status = models.RemoveRequestFailed
		return false
	}
	idx := indexOf(target.Words, req.word)
	if idx < 0 {
		// Gone already: removed by an earlier request or swapped away.
		req.status = models.RemoveRequestFailed
		return false
	}

	target.Words = append(target.Words[:idx], target.Words[idx+1:]...)
	req.status = models.RemoveRequestExecuted
	req.executedAt = &now
	return true
}

// RemoveRequest returns a view of one request, or nil if the classroom
// or request is unknown.
func (s *Store) RemoveRequest(code, requestID string) *models.RemoveRequestView {
	c, ok := s.get(code)
	if !ok {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	req, ok := c.requests[requestID]
	if !ok {
		return nil
	}
	return req.view()
}

// RemoveRequests lists every request of the classroom in creation
// order. Unknown classrooms yield an empty list, not an error.
func (s *Store) RemoveRequests(code string) []models.RemoveRequestView {
	c, ok := s.get(code)
	if !ok {
		return []models.RemoveRequestView{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.RemoveRequestView, 0, len(c.reqOrder))
	for _, req := range c.reqOrder {
		out = append(out, *req.view())
	}
	return out
}

func (r *removeRequest) view() *models.RemoveRequestView {
	v := &models.RemoveRequestView{
		ID:            r.id,
		TargetStudent: r.targetStudent,
		Word:          r.word,
		RequestedBy:   r.requestedBy,
		Votes:         append([]string(nil), r.voteOrder...),
		Status:        r.status,
		CreatedAt:     r.createdAt,
	}
	if r.executedAt != nil {
		t := *r.executedAt
		v.ExecutedAt = &t
	}
	return v
}

// RecordPracticeResult bumps the correct or wrong counter for one of
// the student's own words and returns the updated pair.
func (s *Store) RecordPracticeResult(code, studentName, word string, correct bool) (*models.WordStat, error) {
	c, ok := s.get(code)
	if !ok {
		return nil, ErrClassroomNotFound
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.findStudent(studentName)
	if st == nil {
		return nil, ErrStudentNotFound
	}
	if indexOf(st.Words, word) < 0 {
		return nil, fmt.Errorf("student %w", ErrWordNotOwned)
	}

	stat, ok := st.WordStats[word]
	if !ok {
		stat = &models.WordStat{}
		st.WordStats[word] = stat
	}
	if correct {
		stat.Correct++
	} else {
		stat.Wrong++
	}
	st.LastActive = s.clock.Now()

	return &models.WordStat{Correct: stat.Correct, Wrong: stat.Wrong}, nil
}
