package classroom

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SessionRoundTrip(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore(t)
	room := s.CreateClassroom("room", []string{"apple"})
	_, err := s.AddStudent(room.Code, "alice")
	require.NoError(t, err)

	require.NoError(t, s.StartSession(room.Code, "alice"))

	got := s.Classroom(room.Code)
	require.NotNil(t, got.Students[0].SessionStart)

	mock.Add(95 * time.Second)
	duration, err := s.EndSession(room.Code, "alice")
	require.NoError(t, err)
	assert.Equal(t, 95, duration)

	got = s.Classroom(room.Code)
	assert.Equal(t, 95, got.Students[0].TotalTime)
	assert.Nil(t, got.Students[0].SessionStart)
}

func TestStore_EndSession_Errors(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	room := s.CreateClassroom("room", []string{"apple"})
	_, err := s.AddStudent(room.Code, "alice")
	require.NoError(t, err)

	tests := []struct {
		name    string
		code    string
		student string
		wantErr error
	}{
		{name: "classroom missing", code: "0000", student: "alice", wantErr: ErrClassroomNotFound},
		{name: "student missing", code: room.Code, student: "ghost", wantErr: ErrStudentNotFound},
		{name: "nothing to end", code: room.Code, student: "alice", wantErr: ErrNoActiveSession},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := s.EndSession(tt.code, tt.student)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStore_EndSession_SubSecondIsZero(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore(t)
	room := s.CreateClassroom("room", []string{"apple"})
	_, err := s.AddStudent(room.Code, "alice")
	require.NoError(t, err)

	require.NoError(t, s.StartSession(room.Code, "alice"))
	mock.Add(400 * time.Millisecond)

	duration, err := s.EndSession(room.Code, "alice")
	require.NoError(t, err)
	assert.Zero(t, duration)

	// Still cleared; a second end has nothing to flush.
	_, err = s.EndSession(room.Code, "alice")
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestStore_StartSession_RestartResetsClock(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore(t)
	room := s.CreateClassroom("room", []string{"apple"})
	_, err := s.AddStudent(room.Code, "alice")
	require.NoError(t, err)

	require.NoError(t, s.StartSession(room.Code, "alice"))
	mock.Add(time.Minute)

	// Second start discards the unflushed minute.
	require.NoError(t, s.StartSession(room.Code, "alice"))
	mock.Add(10 * time.Second)

	duration, err := s.EndSession(room.Code, "alice")
	require.NoError(t, err)
	assert.Equal(t, 10, duration)
}

func TestStore_StartSession_Errors(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	room := s.CreateClassroom("room", []string{"apple"})

	assert.ErrorIs(t, s.StartSession("0000", "alice"), ErrClassroomNotFound)
	assert.ErrorIs(t, s.StartSession(room.Code, "ghost"), ErrStudentNotFound)
}

func addStudentWithTime(t *testing.T, s *Store, mock interface{ Add(time.Duration) }, code, name string, seconds int) {
	t.Helper()
	_, err := s.AddStudent(code, name)
	require.NoError(t, err)
	if seconds == 0 {
		return
	}
	require.NoError(t, s.StartSession(code, name))
	mock.Add(time.Duration(seconds) * time.Second)
	_, err = s.EndSession(code, name)
	require.NoError(t, err)
}

func TestStore_Leaderboard(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore(t)
	room := s.CreateClassroom("room", []string{"apple"})

	addStudentWithTime(t, s, mock, room.Code, "alice", 125)
	addStudentWithTime(t, s, mock, room.Code, "bob", 200)
	addStudentWithTime(t, s, mock, room.Code, "carol", 65)
	require.NoError(t, s.StartSession(room.Code, "carol"))

	entries, err := s.Leaderboard(room.Code)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "bob", entries[0].Name)
	assert.Equal(t, "alice", entries[1].Name)
	assert.Equal(t, "carol", entries[2].Name)

	for i, entry := range entries {
		assert.Equal(t, i+1, entry.Rank, "ranks are 1-based and contiguous")
	}

	assert.Equal(t, 125, entries[1].TotalTime)
	assert.Equal(t, 2, entries[1].TotalMinutes)
	assert.Equal(t, 5, entries[1].TotalSeconds)

	assert.False(t, entries[0].IsActive)
	assert.True(t, entries[2].IsActive)
}

func TestStore_Leaderboard_TiesGetDistinctRanks(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore(t)
	room := s.CreateClassroom("room", []string{"apple"})

	addStudentWithTime(t, s, mock, room.Code, "alice", 60)
	addStudentWithTime(t, s, mock, room.Code, "bob", 60)

	entries, err := s.Leaderboard(room.Code)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 2, entries[1].Rank)
}

func TestStore_Leaderboard_NotFound(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	_, err := s.Leaderboard("0000")
	assert.ErrorIs(t, err, ErrClassroomNotFound)
}

func TestStore_StudentStatus(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore(t)
	room := s.CreateClassroom("room", []string{"apple"})

	addStudentWithTime(t, s, mock, room.Code, "alice", 10)
	addStudentWithTime(t, s, mock, room.Code, "bob", 300)

	status, err := s.StudentStatus(room.Code, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", status.Name)
	assert.Equal(t, 10, status.TotalTime)
	assert.Equal(t, 2, status.Rank)
	assert.Equal(t, 2, status.TotalStudents)
	assert.False(t, status.IsActive)

	_, err = s.StudentStatus(room.Code, "ghost")
	assert.ErrorIs(t, err, ErrStudentNotFound)
	_, err = s.StudentStatus("0000", "alice")
	assert.ErrorIs(t, err, ErrClassroomNotFound)
}
