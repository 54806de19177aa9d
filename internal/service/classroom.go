package service

import (
	"errors"
	"strings"

	"github.com/113120067/immersive-viewer-antigrovity/internal/models"
	"github.com/113120067/immersive-viewer-antigrovity/pkg/tokenize"
	"go.uber.org/zap"
)

var ErrNoWords = errors.New("no words found")

type ClassroomS struct {
	store ClassroomStoreI
	log   *zap.Logger
}

func NewClassroomService(store ClassroomStoreI, log *zap.Logger) *ClassroomS {
	return &ClassroomS{store: store, log: log}
}

// CreateClassroom registers a classroom from an explicit word list or,
// when none is given, from raw text run through the tokenizer.
func (c *ClassroomS) CreateClassroom(name string, words []string, text string) (*models.Classroom, error) {
	if len(words) == 0 {
		words = tokenize.Words(text)
	}
	if len(words) == 0 {
		return nil, ErrNoWords
	}

	room := c.store.CreateClassroom(name, words)
	c.log.Info("classroom created",
		zap.String("code", room.Code),
		zap.String("name", room.Name),
		zap.Int("wordCount", room.WordCount),
	)
	return room, nil
}

func (c *ClassroomS) Classroom(code string) *models.Classroom {
	return c.store.Classroom(code)
}

func (c *ClassroomS) Codes() []string {
	return c.store.Codes()
}

// Join adds the student (name trimmed) to the classroom. Joining twice
// under the same name is a no-op on the roster.
func (c *ClassroomS) Join(code, studentName string) (*models.Classroom, error) {
	room, err := c.store.AddStudent(code, strings.TrimSpace(studentName))
	if err != nil {
		return nil, err
	}
	c.log.Info("student joined",
		zap.String("code", code),
		zap.String("student", strings.TrimSpace(studentName)),
	)
	return room, nil
}

func (c *ClassroomS) StartSession(code, studentName string) error {
	return c.store.StartSession(code, studentName)
}

func (c *ClassroomS) EndSession(code, studentName string) (int, error) {
	duration, err := c.store.EndSession(code, studentName)
	if err != nil {
		return 0, err
	}
	c.log.Info("session ended",
		zap.String("code", code),
		zap.String("student", studentName),
		zap.Int("duration", duration),
	)
	return duration, nil
}

func (c *ClassroomS) Leaderboard(code string) ([]models.LeaderboardEntry, error) {
	return c.store.Leaderboard(code)
}

func (c *ClassroomS) StudentStatus(code, studentName string) (*models.StudentStatus, error) {
	return c.store.StudentStatus(code, studentName)
}

func (c *ClassroomS) SwapWords(code, studentA, wordA, studentB, wordB string) error {
	if err := c.store.SwapWords(code, studentA, wordA, studentB, wordB); err != nil {
		return err
	}
	c.log.Info("words swapped",
		zap.String("code", code),
		zap.String("studentA", studentA),
		zap.String("studentB", studentB),
	)
	return nil
}

func (c *ClassroomS) RequestRemoveWord(code, targetStudent, word, requestedBy string) (string, error) {
	id, err := c.store.RequestRemoveWord(code, targetStudent, word, requestedBy)
	if err != nil {
		return "", err
	}
	c.log.Info("remove request created",
		zap.String("code", code),
		zap.String("requestId", id),
		zap.String("target", targetStudent),
		zap.String("word", word),
	)
	return id, nil
}

func (c *ClassroomS) VoteRemoveRequest(code, requestID, voterName string) ([]string, error) {
	return c.store.VoteRemoveRequest(code, requestID, voterName)
}

func (c *ClassroomS) RemoveRequest(code, requestID string) *models.RemoveRequestView {
	return c.store.RemoveRequest(code, requestID)
}

func (c *ClassroomS) RemoveRequests(code string) []models.RemoveRequestView {
	return c.store.RemoveRequests(code)
}

func (c *ClassroomS) RecordPracticeResult(code, studentName, word string, correct bool) (*models.WordStat, error) {
	return c.store.RecordPracticeResult(code, studentName, word, correct)
}
