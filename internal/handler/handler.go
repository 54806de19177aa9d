// Package handler exposes the classroom store as a JSON API. Responses
// follow the {"success": true, ...} / {"success": false, "error": ...}
// convention; missing things are 404, invalid operations are 400.
package handler

import (
	"errors"
	"net/http"

	"github.com/113120067/immersive-viewer-antigrovity/internal/models"
	"github.com/113120067/immersive-viewer-antigrovity/internal/storage/classroom"
	"github.com/gin-gonic/gin"
)

// ClassroomServiceI is everything the HTTP layer needs from the service.
type ClassroomServiceI interface {
	CreateClassroom(name string, words []string, text string) (*models.Classroom, error)
	Classroom(code string) *models.Classroom
	Codes() []string
	Join(code, studentName string) (*models.Classroom, error)
	StartSession(code, studentName string) error
	EndSession(code, studentName string) (int, error)
	Leaderboard(code string) ([]models.LeaderboardEntry, error)
	StudentStatus(code, studentName string) (*models.StudentStatus, error)
	SwapWords(code, studentA, wordA, studentB, wordB string) error
	RequestRemoveWord(code, targetStudent, word, requestedBy string) (string, error)
	VoteRemoveRequest(code, requestID, voterName string) ([]string, error)
	RemoveRequest(code, requestID string) *models.RemoveRequestView
	RemoveRequests(code string) []models.RemoveRequestView
	RecordPracticeResult(code, studentName, word string, correct bool) (*models.WordStat, error)
}

type Handler struct {
	service ClassroomServiceI
}

func NewHandler(service ClassroomServiceI) *Handler {
	return &Handler{service: service}
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

type createClassroomRequest struct {
	ClassroomName string   `json:"classroomName"`
	Words         []string `json:"words"`
	Text          string   `json:"text"`
}

func (h *Handler) CreateClassroom(c *gin.Context) {
	var req createClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ClassroomName == "" {
		fail(c, http.StatusBadRequest, "classroom name is required")
		return
	}

	room, err := h.service.CreateClassroom(req.ClassroomName, req.Words, req.Text)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"code":      room.Code,
		"name":      room.Name,
		"wordCount": room.WordCount,
	})
}

type joinRequest struct {
	Code        string `json:"code"`
	StudentName string `json:"studentName"`
}

func (h *Handler) Join(c *gin.Context) {
	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == "" || req.StudentName == "" {
		fail(c, http.StatusBadRequest, "code and name are required")
		return
	}

	if _, err := h.service.Join(req.Code, req.StudentName); err != nil {
		fail(c, http.StatusNotFound, "classroom not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"code":        req.Code,
		"studentName": req.StudentName,
	})
}

func (h *Handler) GetClassroom(c *gin.Context) {
	room := h.service.Classroom(c.Param("code"))
	if room == nil {
		fail(c, http.StatusNotFound, "classroom not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "classroom": room})
}

func (h *Handler) ListCodes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "classrooms": h.service.Codes()})
}

type sessionRequest struct {
	Code        string `json:"code"`
	StudentName string `json:"studentName"`
}

func (h *Handler) StartSession(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.StartSession(req.Code, req.StudentName); err != nil {
		fail(c, http.StatusBadRequest, "failed to start session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) EndSession(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	duration, err := h.service.EndSession(req.Code, req.StudentName)
	if err != nil {
		fail(c, http.StatusBadRequest, "failed to end session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "duration": duration})
}

func (h *Handler) Leaderboard(c *gin.Context) {
	leaderboard, err := h.service.Leaderboard(c.Param("code"))
	if err != nil {
		fail(c, http.StatusNotFound, "classroom not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "leaderboard": leaderboard})
}

func (h *Handler) StudentStatus(c *gin.Context) {
	status, err := h.service.StudentStatus(c.Param("code"), c.Param("name"))
	if err != nil {
		fail(c, http.StatusNotFound, "student or classroom not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
}

type swapRequest struct {
	Code     string `json:"code"`
	StudentA string `json:"studentA"`
	WordA    string `json:"wordA"`
	StudentB string `json:"studentB"`
	WordB    string `json:"wordB"`
}

func (h *Handler) SwapWords(c *gin.Context) {
	var req swapRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.Code == "" || req.StudentA == "" || req.WordA == "" || req.StudentB == "" || req.WordB == "" {
		fail(c, http.StatusBadRequest, "missing parameters")
		return
	}

	if err := h.service.SwapWords(req.Code, req.StudentA, req.WordA, req.StudentB, req.WordB); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type removeRequestRequest struct {
	Code          string `json:"code"`
	TargetStudent string `json:"targetStudent"`
	Word          string `json:"word"`
	RequestedBy   string `json:"requestedBy"`
}

func (h *Handler) RequestRemoveWord(c *gin.Context) {
	var req removeRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.Code == "" || req.TargetStudent == "" || req.Word == "" || req.RequestedBy == "" {
		fail(c, http.StatusBadRequest, "missing parameters")
		return
	}

	id, err := h.service.RequestRemoveWord(req.Code, req.TargetStudent, req.Word, req.RequestedBy)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "requestId": id})
}

type voteRequest struct {
	Code      string `json:"code"`
	RequestID string `json:"requestId"`
	VoterName string `json:"voterName"`
}

func (h *Handler) VoteRemoveRequest(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.Code == "" || req.RequestID == "" || req.VoterName == "" {
		fail(c, http.StatusBadRequest, "missing parameters")
		return
	}

	if _, err := h.service.VoteRemoveRequest(req.Code, req.RequestID, req.VoterName); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, classroom.ErrClassroomNotFound) || errors.Is(err, classroom.ErrRequestNotFound) {
			status = http.StatusNotFound
		}
		fail(c, status, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"request": h.service.RemoveRequest(req.Code, req.RequestID),
	})
}

func (h *Handler) GetRemoveRequest(c *gin.Context) {
	view := h.service.RemoveRequest(c.Param("code"), c.Param("requestId"))
	if view == nil {
		fail(c, http.StatusNotFound, "request not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "request": view})
}

func (h *Handler) ListRemoveRequests(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"requests": h.service.RemoveRequests(c.Param("code")),
	})
}

type practiceRequest struct {
	Code        string `json:"code"`
	StudentName string `json:"studentName"`
	Word        string `json:"word"`
	Correct     *bool  `json:"correct"`
}

func (h *Handler) RecordPractice(c *gin.Context) {
	var req practiceRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.Code == "" || req.StudentName == "" || req.Word == "" || req.Correct == nil {
		fail(c, http.StatusBadRequest, "missing parameters")
		return
	}

	stats, err := h.service.RecordPracticeResult(req.Code, req.StudentName, req.Word, *req.Correct)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
