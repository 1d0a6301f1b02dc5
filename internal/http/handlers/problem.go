package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/grindlog/grindlog-backend/internal/http/response"
	"github.com/grindlog/grindlog-backend/internal/services"
	"github.com/grindlog/grindlog-backend/internal/types"
)

type ProblemHandler struct {
	problemService services.ProblemService
}

func NewProblemHandler(problemService services.ProblemService) *ProblemHandler {
	return &ProblemHandler{problemService: problemService}
}

func (ph *ProblemHandler) Save(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		Problem    string     `json:"problem"`
		Difficulty string     `json:"difficulty"`
		Mood       string     `json:"mood"`
		Status     []string   `json:"status"`
		Patterns   []string   `json:"patterns"`
		Notes      string     `json:"notes"`
		SolvedDate *time.Time `json:"solved_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	problem, err := ph.problemService.Save(c.Request.Context(), userID, services.SaveProblemInput{
		Problem:    req.Problem,
		Difficulty: types.Difficulty(req.Difficulty),
		Mood:       types.Mood(req.Mood),
		Status:     req.Status,
		Patterns:   req.Patterns,
		Notes:      req.Notes,
		SolvedDate: req.SolvedDate,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidProblem) {
			response.RespondError(c, http.StatusBadRequest, "invalid_problem", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "save_failed", err)
		return
	}
	response.RespondCreated(c, problem)
}

func (ph *ProblemHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	problems, err := ph.problemService.List(c.Request.Context(), userID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	response.RespondOK(c, problems)
}

func (ph *ProblemHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ph.problemService.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, services.ErrProblemNotFound) {
			response.RespondError(c, http.StatusNotFound, "problem_not_found", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// AIRecap returns the weekly summary for the authenticated user. AI
// availability never turns into an error here; only persistence does.
func (ph *ProblemHandler) AIRecap(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	recapText, err := ph.problemService.WeeklyRecap(c.Request.Context(), userID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "recap_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"recap": recapText})
}
