package service

import (
	"github.com/113120067/immersive-viewer-antigrovity/internal/models"
	"go.uber.org/zap"
)

// ClassroomStoreI is the in-memory registry the service operates on.
type ClassroomStoreI interface {
	CreateClassroom(name string, words []string) *models.Classroom
	Classroom(code string) *models.Classroom
	Codes() []string
	AddStudent(code, name string) (*models.Classroom, error)
	StartSession(code, name string) error
	EndSession(code, name string) (int, error)
	Leaderboard(code string) ([]models.LeaderboardEntry, error)
	StudentStatus(code, name string) (*models.StudentStatus, error)
	SwapWords(code, studentA, wordA, studentB, wordB string) error
	RequestRemoveWord(code, targetStudent, word, requestedBy string) (string, error)
	VoteRemoveRequest(code, requestID, voterName string) ([]string, error)
	RemoveRequest(code, requestID string) *models.RemoveRequestView
	RemoveRequests(code string) []models.RemoveRequestView
	RecordPracticeResult(code, studentName, word string, correct bool) (*models.WordStat, error)
}

type Service struct {
	*ClassroomS
}

func InitServices(store ClassroomStoreI, log *zap.Logger) *Service {
	return &Service{
		ClassroomS: NewClassroomService(store, log),
	}
}
