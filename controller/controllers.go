// controller/controllers.go
package controller

import "github.com/stockroom-app/api/service"

type Controllers struct {
	Access     *AccessController
	Permission *PermissionController
	Inventory  *InventoryController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Access:     NewAccessController(services.Authorization),
		Permission: NewPermissionController(services.Authorization),
		Inventory:  NewInventoryController(services.Inventory),
	}
}
