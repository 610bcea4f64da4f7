// Package v1 implements the first version of the Pocketwise API.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/auth"
	ez_uuid "github.com/pocketwise/backend/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination contains metadata about list responses.
type Pagination struct {
	Count  int   `json:"count"`  // The amount of records returned in this response
	Offset uint  `json:"offset"` // The offset for the first record returned
	Limit  int   `json:"limit"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total"`  // The total number of resources matching the query
}

// currentUser returns the user the request is authenticated as, uuid.Nil
// when it is not authenticated.
func currentUser(c *gin.Context) uuid.UUID {
	return auth.UserID(c)
}
