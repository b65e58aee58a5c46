// controller/access_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	stockroom_errors "github.com/stockroom-app/api/errors"
	"github.com/stockroom-app/api/model"
	"github.com/stockroom-app/api/service"
	"github.com/stockroom-app/api/util"
)

type AccessController struct {
	authzService service.IAuthorizationService
}

func NewAccessController(authzService service.IAuthorizationService) *AccessController {
	return &AccessController{
		authzService: authzService,
	}
}

// RegisterRoutes registers the access-check endpoint
func (ac *AccessController) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/access/check", ac.CheckAccess)
}

type accessCheckRequest struct {
	PrincipalID string           `json:"principal_id,omitempty"`
	ObjectType  model.ObjectType `json:"object_type" binding:"required"`
	ObjectID    string           `json:"object_id" binding:"required"`
	Action      model.Action     `json:"action" binding:"required"`
}

type accessCheckResponse struct {
	Allowed bool `json:"allowed"`
}

// CheckAccess answers whether a principal may perform an action on an
// object. The principal defaults to the caller; checking on behalf of
// another principal requires the global ADMIN role.
func (ac *AccessController) CheckAccess(c *gin.Context) {
	var req accessCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid access check request", err)
		return
	}

	actorID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", stockroom_errors.ErrUnauthorized)
		return
	}

	principalID := req.PrincipalID
	if principalID == "" {
		principalID = actorID
	}
	if principalID != actorID && util.GetGlobalRoleFromContext(c) != string(model.GlobalRoleAdmin) {
		util.RespondWithError(c, http.StatusForbidden, "Access denied", stockroom_errors.ErrAccessDenied)
		return
	}

	allowed, err := ac.authzService.CanAccess(c, principalID, req.ObjectType, req.ObjectID, req.Action)
	if err != nil {
		if stockroom_errors.IsValidationError(err) {
			util.RespondWithError(c, http.StatusBadRequest, err.Error(), err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to check access", err)
		}
		return
	}

	c.JSON(http.StatusOK, accessCheckResponse{Allowed: allowed})
}
