package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grindlog/grindlog-backend/internal/http/response"
	"github.com/grindlog/grindlog-backend/internal/services"
)

type TodoHandler struct {
	todoService services.TodoService
}

func NewTodoHandler(todoService services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

func (th *TodoHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	todo, err := th.todoService.Create(c.Request.Context(), userID, req.Description)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "todo_create_failed", err)
		return
	}
	response.RespondCreated(c, todo)
}

func (th *TodoHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	todos, err := th.todoService.List(c.Request.Context(), userID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	response.RespondOK(c, todos)
}

func (th *TodoHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Completed bool `json:"completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	todo, err := th.todoService.SetCompleted(c.Request.Context(), userID, id, req.Completed)
	if err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			response.RespondError(c, http.StatusNotFound, "todo_not_found", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "todo_update_failed", err)
		return
	}
	response.RespondOK(c, todo)
}
