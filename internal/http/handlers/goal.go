package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grindlog/grindlog-backend/internal/http/response"
	"github.com/grindlog/grindlog-backend/internal/services"
	"github.com/grindlog/grindlog-backend/internal/types"
)

type GoalHandler struct {
	goalService services.GoalService
}

func NewGoalHandler(goalService services.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

func (gh *GoalHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		Title         string `json:"title"`
		TargetDate    string `json:"target_date"`
		ProblemCount  int    `json:"problem_count"`
		DailyTime     int    `json:"daily_time"`
		LearningStyle string `json:"learning_style"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	goal, err := gh.goalService.Create(c.Request.Context(), userID, services.CreateGoalInput{
		Title:         req.Title,
		TargetDate:    req.TargetDate,
		ProblemCount:  req.ProblemCount,
		DailyTime:     req.DailyTime,
		LearningStyle: types.LearningStyle(req.LearningStyle),
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidGoal) {
			response.RespondError(c, http.StatusBadRequest, "invalid_goal", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "goal_create_failed", err)
		return
	}
	response.RespondCreated(c, goal)
}

func (gh *GoalHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	goals, err := gh.goalService.List(c.Request.Context(), userID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	response.RespondOK(c, goals)
}

func (gh *GoalHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Progress         *int   `json:"progress"`
		MissedGoalReason string `json:"missed_goal_reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	goal, err := gh.goalService.Update(c.Request.Context(), userID, id, services.GoalUpdate{
		Progress:         req.Progress,
		MissedGoalReason: req.MissedGoalReason,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGoalNotFound):
			response.RespondError(c, http.StatusNotFound, "goal_not_found", err)
		case errors.Is(err, services.ErrInvalidGoal):
			response.RespondError(c, http.StatusBadRequest, "invalid_goal", err)
		default:
			response.RespondError(c, http.StatusInternalServerError, "goal_update_failed", err)
		}
		return
	}
	response.RespondOK(c, goal)
}

func (gh *GoalHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := gh.goalService.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, services.ErrGoalNotFound) {
			response.RespondError(c, http.StatusNotFound, "goal_not_found", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "goal_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
