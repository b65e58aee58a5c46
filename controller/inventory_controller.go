// controller/inventory_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	stockroom_errors "github.com/stockroom-app/api/errors"
	"github.com/stockroom-app/api/model"
	"github.com/stockroom-app/api/service"
	"github.com/stockroom-app/api/util"
)

// inventoryRoutes maps URL groups onto object types. One handler set serves
// all three kinds of objects.
var inventoryRoutes = map[string]model.ObjectType{
	"/bins":       model.ObjectTypeBin,
	"/items":      model.ObjectTypeItem,
	"/categories": model.ObjectTypeCategory,
}

type InventoryController struct {
	inventoryService service.IInventoryService
}

func NewInventoryController(inventoryService service.IInventoryService) *InventoryController {
	return &InventoryController{
		inventoryService: inventoryService,
	}
}

// RegisterRoutes registers CRUD routes for bins, items and categories
func (ic *InventoryController) RegisterRoutes(r *gin.RouterGroup) {
	for path, objectType := range inventoryRoutes {
		group := r.Group(path)
		objectType := objectType
		group.POST("", func(c *gin.Context) { ic.CreateResource(c, objectType) })
		group.GET("/:id", func(c *gin.Context) { ic.GetResource(c, objectType) })
		group.PUT("/:id", func(c *gin.Context) { ic.UpdateResource(c, objectType) })
		group.DELETE("/:id", func(c *gin.Context) { ic.DeleteResource(c, objectType) })
	}
}

// CreateResource endpoint
func (ic *InventoryController) CreateResource(c *gin.Context, objectType model.ObjectType) {
	var resource model.Resource
	if err := c.ShouldBindJSON(&resource); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid resource data", stockroom_errors.ErrInvalidResourceData)
		return
	}
	resource.Type = objectType

	actorID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", stockroom_errors.ErrUnauthorized)
		return
	}

	created, err := ic.inventoryService.CreateResource(c, resource, actorID)
	if err != nil {
		ic.respondWithServiceError(c, err, "Failed to create resource")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetResource endpoint
func (ic *InventoryController) GetResource(c *gin.Context, objectType model.ObjectType) {
	resourceID := c.Param("id")
	actorID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", stockroom_errors.ErrUnauthorized)
		return
	}

	resource, err := ic.inventoryService.GetResource(c, objectType, resourceID, actorID)
	if err != nil {
		ic.respondWithServiceError(c, err, "Failed to retrieve resource")
		return
	}

	c.JSON(http.StatusOK, resource)
}

// UpdateResource endpoint
func (ic *InventoryController) UpdateResource(c *gin.Context, objectType model.ObjectType) {
	resourceID := c.Param("id")
	var resource model.Resource
	if err := c.ShouldBindJSON(&resource); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid resource data", stockroom_errors.ErrInvalidResourceData)
		return
	}
	resource.ID = resourceID
	resource.Type = objectType

	actorID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", stockroom_errors.ErrUnauthorized)
		return
	}

	updated, err := ic.inventoryService.UpdateResource(c, resource, actorID)
	if err != nil {
		ic.respondWithServiceError(c, err, "Failed to update resource")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteResource endpoint
func (ic *InventoryController) DeleteResource(c *gin.Context, objectType model.ObjectType) {
	resourceID := c.Param("id")
	actorID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", stockroom_errors.ErrUnauthorized)
		return
	}

	if err := ic.inventoryService.DeleteResource(c, objectType, resourceID, actorID); err != nil {
		ic.respondWithServiceError(c, err, "Failed to delete resource")
		return
	}

	c.Status(http.StatusNoContent)
}

func (ic *InventoryController) respondWithServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case stockroom_errors.IsValidationError(err) || errors.Is(err, stockroom_errors.ErrInvalidResourceData):
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, stockroom_errors.ErrAccessDenied):
		util.RespondWithError(c, http.StatusForbidden, "Access denied", err)
	case errors.Is(err, stockroom_errors.ErrObjectNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Resource not found", err)
	case errors.Is(err, stockroom_errors.ErrDatabaseOperation):
		util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, fallback, stockroom_errors.ErrInternalServer)
	}
}
