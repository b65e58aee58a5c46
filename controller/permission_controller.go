// controller/permission_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	stockroom_errors "github.com/stockroom-app/api/errors"
	"github.com/stockroom-app/api/model"
	"github.com/stockroom-app/api/service"
	"github.com/stockroom-app/api/util"
	helper_util "github.com/stockroom-app/api/util/helper"
)

type PermissionController struct {
	authzService service.IAuthorizationService
}

func NewPermissionController(authzService service.IAuthorizationService) *PermissionController {
	return &PermissionController{
		authzService: authzService,
	}
}

// RegisterRoutes registers the API routes for permission management
func (pc *PermissionController) RegisterRoutes(r *gin.RouterGroup) {
	permissions := r.Group("/permissions")
	{
		permissions.POST("", pc.Grant)
		permissions.DELETE("", pc.Revoke)
		permissions.GET("", pc.ListPermissions)
	}
	r.PUT("/objects/:type/:id/permissions", pc.ReplacePermissions)
}

// Grant endpoint. The caller must hold ADMIN on the target object.
func (pc *PermissionController) Grant(c *gin.Context) {
	var permission model.Permission
	if err := c.ShouldBindJSON(&permission); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid permission data", stockroom_errors.ErrInvalidPermissionData)
		return
	}
	actorID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", stockroom_errors.ErrUnauthorized)
		return
	}

	if !pc.requireObjectAdmin(c, actorID, permission.ObjectType, permission.ObjectID) {
		return
	}

	granted, err := pc.authzService.Grant(c, permission, actorID)
	if err != nil {
		pc.respondWithServiceError(c, err, "Failed to grant permission")
		return
	}

	c.JSON(http.StatusCreated, granted)
}

// Revoke endpoint. The natural key comes in the request body; a missing
// tuple is a 404, not a no-op.
func (pc *PermissionController) Revoke(c *gin.Context) {
	var key model.PermissionKey
	if err := c.ShouldBindJSON(&key); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid permission key", stockroom_errors.ErrInvalidPermissionData)
		return
	}
	actorID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", stockroom_errors.ErrUnauthorized)
		return
	}

	if !pc.requireObjectAdmin(c, actorID, key.ObjectType, key.ObjectID) {
		return
	}

	if err := pc.authzService.Revoke(c, key, actorID); err != nil {
		pc.respondWithServiceError(c, err, "Failed to revoke permission")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListPermissions endpoint. Object-scoped queries require ADMIN on the
// object; unscoped queries are restricted to global admins.
func (pc *PermissionController) ListPermissions(c *gin.Context) {
	var filter model.PermissionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid permission filter", stockroom_errors.ErrInvalidPermissionData)
		return
	}
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", stockroom_errors.ErrInvalidPagination)
		return
	}
	filter.Limit = limit
	filter.Offset = offset

	actorID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", stockroom_errors.ErrUnauthorized)
		return
	}

	if filter.ObjectType != "" && filter.ObjectID != "" {
		if !pc.requireObjectAdmin(c, actorID, filter.ObjectType, filter.ObjectID) {
			return
		}
	} else if util.GetGlobalRoleFromContext(c) != string(model.GlobalRoleAdmin) {
		util.RespondWithError(c, http.StatusForbidden, "Access denied", stockroom_errors.ErrAccessDenied)
		return
	}

	permissions, err := pc.authzService.GetPermissions(c, filter)
	if err != nil {
		pc.respondWithServiceError(c, err, "Failed to list permissions")
		return
	}

	c.JSON(http.StatusOK, permissions)
}

// ReplacePermissions endpoint swaps the full tuple set of one object.
func (pc *PermissionController) ReplacePermissions(c *gin.Context) {
	objectType := model.ObjectType(c.Param("type"))
	objectID := c.Param("id")

	var body struct {
		Grants []model.Permission `json:"grants"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid replacement grants", stockroom_errors.ErrInvalidPermissionData)
		return
	}
	actorID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", stockroom_errors.ErrUnauthorized)
		return
	}

	if !pc.requireObjectAdmin(c, actorID, objectType, objectID) {
		return
	}

	replaced, err := pc.authzService.ReplacePermissions(c, objectType, objectID, body.Grants, actorID)
	if err != nil {
		pc.respondWithServiceError(c, err, "Failed to replace permissions")
		return
	}

	c.JSON(http.StatusOK, replaced)
}

// requireObjectAdmin enforces the caller-side ADMIN check before any
// permission mutation. Writes the error response and returns false on deny.
func (pc *PermissionController) requireObjectAdmin(c *gin.Context, actorID string, objectType model.ObjectType, objectID string) bool {
	allowed, err := pc.authzService.CanAccess(c, actorID, objectType, objectID, model.ActionAdmin)
	if err != nil {
		pc.respondWithServiceError(c, err, "Failed to check access")
		return false
	}
	if !allowed {
		util.RespondWithError(c, http.StatusForbidden, "Access denied", stockroom_errors.ErrAccessDenied)
		return false
	}
	return true
}

func (pc *PermissionController) respondWithServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case stockroom_errors.IsValidationError(err):
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, stockroom_errors.ErrObjectNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Object not found", err)
	case errors.Is(err, stockroom_errors.ErrSubjectNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Subject not found", err)
	case errors.Is(err, stockroom_errors.ErrInvalidRole):
		util.RespondWithError(c, http.StatusBadRequest, "Invalid role", err)
	case errors.Is(err, stockroom_errors.ErrPermissionNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Permission not found", err)
	case errors.Is(err, stockroom_errors.ErrDatabaseOperation):
		util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, fallback, stockroom_errors.ErrInternalServer)
	}
}
