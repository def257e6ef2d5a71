package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// errMissingIdentity guards handlers mounted behind RequireAuth against
// a misconfigured route that skipped the middleware
var errMissingIdentity = errors.New("no authenticated user on request")

// parseID parses a UUID path parameter, responding 400 on garbage
func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, http.StatusBadRequest, err, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
