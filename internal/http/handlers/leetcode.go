package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grindlog/grindlog-backend/internal/http/response"
	"github.com/grindlog/grindlog-backend/internal/services"
)

type LeetcodeHandler struct {
	leetcodeService services.LeetcodeService
}

func NewLeetcodeHandler(leetcodeService services.LeetcodeService) *LeetcodeHandler {
	return &LeetcodeHandler{leetcodeService: leetcodeService}
}

func (lh *LeetcodeHandler) AIHelp(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	slug := c.Query("slug")
	language := c.Query("language")
	if slug == "" || language == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("slug and language are required"))
		return
	}
	result, err := lh.leetcodeService.GetHelp(c.Request.Context(), slug, language)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "ai_help_failed", err)
		return
	}
	response.RespondOK(c, result)
}
