package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/grindlog/grindlog-backend/internal/http/response"
	"github.com/grindlog/grindlog-backend/internal/requestdata"
)

// currentUserID pulls the authenticated user from the request context.
// It responds 401 and returns false when the auth middleware did not run.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("missing authenticated user"))
		return uuid.Nil, false
	}
	return rd.UserID, true
}

// pathID parses the :id route parameter, responding 400 on garbage.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid id %q", c.Param("id")))
		return uuid.Nil, false
	}
	return id, true
}
