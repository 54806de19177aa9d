package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the classroom API. Paths mirror the public
// contract the web client polls against.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	root := r.Group("/classroom")
	{
		root.POST("/create", h.CreateClassroom)
		root.POST("/join", h.Join)
	}

	api := root.Group("/api")
	{
		api.GET("/classroom/:code", h.GetClassroom)
		api.GET("/classrooms", h.ListCodes)

		api.POST("/session/start", h.StartSession)
		api.POST("/session/end", h.EndSession)

		api.GET("/leaderboard/:code", h.Leaderboard)
		api.GET("/status/:code/:name", h.StudentStatus)

		api.POST("/word/swap", h.SwapWords)
		api.POST("/word/remove/request", h.RequestRemoveWord)
		api.POST("/word/remove/vote", h.VoteRemoveRequest)
		api.GET("/word/remove/list/:code", h.ListRemoveRequests)
		api.GET("/word/remove/:code/:requestId", h.GetRemoveRequest)

		api.POST("/word/practice", h.RecordPractice)
	}
}
