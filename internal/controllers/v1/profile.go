package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketwise/backend/internal/httputil"
	"github.com/pocketwise/backend/internal/models"
)

// ProfileEditable represents all user configurable parameters
type ProfileEditable struct {
	FullName string `json:"fullName" example:"Jordan Baker"` // Display name of the user
	Currency string `json:"currency" example:"EUR"`          // 3-letter ISO 4217 code, display only
}

type ProfileResponse struct {
	Data  *models.Profile `json:"data"`  // Data for the profile
	Error *string         `json:"error"` // The error, if any occurred
}

// RegisterProfileRoutes registers the routes for the profile with
// the RouterGroup that is passed.
func RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsProfile)
	r.GET("", GetProfile)
	r.PATCH("", UpdateProfile)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profile
// @Success		204
// @Router			/v1/profile [options]
func OptionsProfile(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get profile
// @Description	Returns the profile of the authenticated user, creating it with defaults on first access
// @Tags			Profile
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		401	{object}	ProfileResponse
// @Failure		500	{object}	ProfileResponse
// @Router			/v1/profile [get]
func GetProfile(c *gin.Context) {
	profile, err := models.GetProfile(models.DB, currentUser(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{Data: &profile})
}

// @Summary		Update profile
// @Description	Updates the full name and currency of the authenticated user's profile
// @Tags			Profile
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		400	{object}	ProfileResponse
// @Failure		401	{object}	ProfileResponse
// @Failure		500	{object}	ProfileResponse
// @Param			profile	body	ProfileEditable	true	"Profile"
// @Router			/v1/profile [patch]
func UpdateProfile(c *gin.Context) {
	user := currentUser(c)

	current, err := models.GetProfile(models.DB, user)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &s})
		return
	}

	// Use the current values as defaults for fields the request omits
	editable := ProfileEditable{
		FullName: current.FullName,
		Currency: current.Currency,
	}
	if err := c.ShouldBindJSON(&editable); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ProfileResponse{Error: &s})
		return
	}

	profile, err := models.UpdateProfile(models.DB, user, editable.FullName, editable.Currency)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{Data: &profile})
}
