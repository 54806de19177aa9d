package classroom

import (
	"testing"

	"github.com/113120067/immersive-viewer-antigrovity/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupClassroom(t *testing.T, s *Store, students ...string) string {
	t.Helper()
	room := s.CreateClassroom("room", []string{"apple", "banana", "cherry"})
	for _, name := range students {
		_, err := s.AddStudent(room.Code, name)
		require.NoError(t, err)
	}
	return room.Code
}

func studentWords(t *testing.T, s *Store, code, name string) []string {
	t.Helper()
	room := s.Classroom(code)
	require.NotNil(t, room)
	for _, st := range room.Students {
		if st.Name == name {
			return st.Words
		}
	}
	t.Fatalf("student %s not found", name)
	return nil
}

func TestStore_SwapWords(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	code := setupClassroom(t, s, "alice", "bob")

	err := s.SwapWords(code, "alice", "apple", "bob", "cherry")
	require.NoError(t, err)

	// Exact slot substitution: positions are preserved.
	assert.Equal(t, []string{"cherry", "banana", "cherry"}, studentWords(t, s, code, "alice"))
	assert.Equal(t, []string{"apple", "banana", "apple"}, studentWords(t, s, code, "bob"))
}

func TestStore_SwapWords_Errors(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	code := setupClassroom(t, s, "alice", "bob")

	tests := []struct {
		name     string
		code     string
		studentA string
		wordA    string
		studentB string
		wordB    string
		wantErr  error
		wantMsg  string
	}{
		{
			name: "classroom missing",
			code: "0000", studentA: "alice", wordA: "apple", studentB: "bob", wordB: "banana",
			wantErr: ErrClassroomNotFound,
		},
		{
			name: "student missing",
			code: code, studentA: "alice", wordA: "apple", studentB: "ghost", wordB: "banana",
			wantErr: ErrStudentNotFound,
		},
		{
			name: "first side does not own the word",
			code: code, studentA: "alice", wordA: "dragonfruit", studentB: "bob", wordB: "banana",
			wantErr: ErrWordNotOwned,
			wantMsg: "alice does not have that word",
		},
		{
			name: "second side does not own the word",
			code: code, studentA: "alice", wordA: "apple", studentB: "bob", wordB: "dragonfruit",
			wantErr: ErrWordNotOwned,
			wantMsg: "bob does not have that word",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := s.SwapWords(tt.code, tt.studentA, tt.wordA, tt.studentB, tt.wordB)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}

			// A failed swap mutates nothing.
			assert.Equal(t, []string{"apple", "banana", "cherry"}, studentWords(t, s, code, "alice"))
			assert.Equal(t, []string{"apple", "banana", "cherry"}, studentWords(t, s, code, "bob"))
		})
	}
}

// Three students: quorum is 2, so a request sits pending on the
// requester's auto-vote and executes on the second approval.
func TestStore_RemoveVoting_QuorumScenario(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	code := setupClassroom(t, s, "s1", "s2", "s3")

	id, err := s.RequestRemoveWord(code, "s1", "apple", "s1")
	require.NoError(t, err)

	view := s.RemoveRequest(code, id)
	require.NotNil(t, view)
	assert.Equal(t, models.RemoveRequestPending, view.Status)
	assert.Equal(t, []string{"s1"}, view.Votes)
	assert.Nil(t, view.ExecutedAt)

	votes, err := s.VoteRemoveRequest(code, id, "s2")
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2"}, votes)

	view = s.RemoveRequest(code, id)
	assert.Equal(t, models.RemoveRequestExecuted, view.Status)
	require.NotNil(t, view.ExecutedAt)
	assert.Equal(t, []string{"banana", "cherry"}, studentWords(t, s, code, "s1"))

	// Settled requests reject further votes.
	_, err = s.VoteRemoveRequest(code, id, "s3")
	assert.ErrorIs(t, err, ErrRequestProcessed)

	// The word is gone, so a fresh request for it fails at creation.
	_, err = s.RequestRemoveWord(code, "s1", "apple", "s2")
	require.ErrorIs(t, err, ErrWordNotOwned)
	assert.Equal(t, "target student does not have that word", err.Error())
}

func TestStore_RemoveVoting_RequesterAloneMeetsQuorum(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	code := setupClassroom(t, s, "solo")

	id, err := s.RequestRemoveWord(code, "solo", "banana", "solo")
	require.NoError(t, err)

	view := s.RemoveRequest(code, id)
	assert.Equal(t, models.RemoveRequestExecuted, view.Status)
	assert.Equal(t, []string{"apple", "cherry"}, studentWords(t, s, code, "solo"))
}

func TestStore_RemoveVoting_DuplicateVoteRejected(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	code := setupClassroom(t, s, "s1", "s2", "s3", "s4", "s5")

	id, err := s.RequestRemoveWord(code, "s1", "apple", "s1")
	require.NoError(t, err)

	_, err = s.VoteRemoveRequest(code, id, "s1")
	assert.ErrorIs(t, err, ErrAlreadyVoted)

	_, err = s.VoteRemoveRequest(code, id, "s2")
	require.NoError(t, err)
	_, err = s.VoteRemoveRequest(code, id, "s2")
	assert.ErrorIs(t, err, ErrAlreadyVoted)

	view := s.RemoveRequest(code, id)
	assert.Equal(t, []string{"s1", "s2"}, view.Votes)
	assert.Equal(t, models.RemoveRequestPending, view.Status)
}

// Quorum is recomputed from the live roster: students joining after the
// request raise the bar.
func TestStore_RemoveVoting_QuorumTracksRoster(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	code := setupClassroom(t, s, "s1", "s2", "s3")

	id, err := s.RequestRemoveWord(code, "s1", "apple", "s1")
	require.NoError(t, err)

	for _, name := range []string{"s4", "s5"} {
		_, err := s.AddStudent(code, name)
		require.NoError(t, err)
	}

	// 5 students now: quorum 3, so a second vote is not enough.
	_, err = s.VoteRemoveRequest(code, id, "s2")
	require.NoError(t, err)
	assert.Equal(t, models.RemoveRequestPending, s.RemoveRequest(code, id).Status)

	_, err = s.VoteRemoveRequest(code, id, "s3")
	require.NoError(t, err)
	assert.Equal(t, models.RemoveRequestExecuted, s.RemoveRequest(code, id).Status)
}

// A second request racing for the same word fails at execution time:
// the vote lands, quorum is met, but the word is already gone.
func TestStore_RemoveVoting_WordGoneMeansFailed(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	code := setupClassroom(t, s, "s1", "s2", "s3")

	first, err := s.RequestRemoveWord(code, "s1", "apple", "s1")
	require.NoError(t, err)
	second, err := s.RequestRemoveWord(code, "s1", "apple", "s2")
	require.NoError(t, err)

	_, err = s.VoteRemoveRequest(code, first, "s2")
	require.NoError(t, err)
	require.Equal(t, models.RemoveRequestExecuted, s.RemoveRequest(code, first).Status)

	_, err = s.VoteRemoveRequest(code, second, "s3")
	require.NoError(t, err)

	view := s.RemoveRequest(code, second)
	assert.Equal(t, models.RemoveRequestFailed, view.Status)
	assert.Nil(t, view.ExecutedAt)

	// Only one occurrence was ever removed.
	assert.Equal(t, []string{"banana", "cherry"}, studentWords(t, s, code, "s1"))
}

func TestStore_RequestRemoveWord_Errors(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	code := setupClassroom(t, s, "s1", "s2")

	_, err := s.RequestRemoveWord("0000", "s1", "apple", "s1")
	assert.ErrorIs(t, err, ErrClassroomNotFound)

	_, err = s.RequestRemoveWord(code, "ghost", "apple", "s1")
	assert.ErrorIs(t, err, ErrStudentNotFound)

	_, err = s.RequestRemoveWord(code, "s1", "dragonfruit", "s1")
	assert.ErrorIs(t, err, ErrWordNotOwned)
}

func TestStore_VoteRemoveRequest_NotFound(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	code := setupClassroom(t, s, "s1", "s2")

	_, err := s.VoteRemoveRequest("0000", "nope", "s1")
	assert.ErrorIs(t, err, ErrClassroomNotFound)

	_, err = s.VoteRemoveRequest(code, "nope", "s1")
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestStore_RemoveRequests_Listing(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	code := setupClassroom(t, s, "s1", "s2", "s3")

	assert.Empty(t, s.RemoveRequests(code))
	assert.Empty(t, s.RemoveRequests("0000"), "unknown classrooms list empty, not error")

	first, err := s.RequestRemoveWord(code, "s1", "apple", "s1")
	require.NoError(t, err)
	second, err := s.RequestRemoveWord(code, "s2", "banana", "s2")
	require.NoError(t, err)

	views := s.RemoveRequests(code)
	require.Len(t, views, 2)
	assert.Equal(t, first, views[0].ID)
	assert.Equal(t, second, views[1].ID)
	assert.Equal(t, "apple", views[0].Word)
	assert.Equal(t, "s2", views[1].TargetStudent)

	assert.Nil(t, s.RemoveRequest(code, "nope"))
	assert.Nil(t, s.RemoveRequest("0000", first))
}

func TestStore_RecordPracticeResult(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	code := setupClassroom(t, s, "alice")

	for i := 0; i < 2; i++ {
		_, err := s.RecordPracticeResult(code, "alice", "apple", true)
		require.NoError(t, err)
	}
	stats, err := s.RecordPracticeResult(code, "alice", "apple", false)
	require.NoError(t, err)
	assert.Equal(t, &models.WordStat{Correct: 2, Wrong: 1}, stats)

	// Other words stay untouched.
	room := s.Classroom(code)
	require.Len(t, room.Students[0].WordStats, 1)
}

func TestStore_RecordPracticeResult_Errors(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	code := setupClassroom(t, s, "alice")

	_, err := s.RecordPracticeResult("0000", "alice", "apple", true)
	assert.ErrorIs(t, err, ErrClassroomNotFound)

	_, err = s.RecordPracticeResult(code, "ghost", "apple", true)
	assert.ErrorIs(t, err, ErrStudentNotFound)

	_, err = s.RecordPracticeResult(code, "alice", "dragonfruit", true)
	require.ErrorIs(t, err, ErrWordNotOwned)
	assert.Equal(t, "student does not have that word", err.Error())
}

// Practicing a word that was voted away is an ownership error again.
func TestStore_RecordPracticeResult_RemovedWord(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	code := setupClassroom(t, s, "alice", "bob")

	_, err := s.RequestRemoveWord(code, "alice", "apple", "alice")
	require.NoError(t, err)

	_, err = s.RecordPracticeResult(code, "alice", "apple", true)
	assert.ErrorIs(t, err, ErrWordNotOwned)

	_, err = s.RecordPracticeResult(code, "bob", "apple", true)
	assert.NoError(t, err, "bob still owns a personal copy")
}
