// service/services.go
package service

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/stockroom-app/api/audit"
	"github.com/stockroom-app/api/authz"
	"github.com/stockroom-app/api/dao"
	"github.com/stockroom-app/api/util"
)

type Services struct {
	Authorization IAuthorizationService
	Inventory     IInventoryService
}

func InitializeServices(
	driver neo4j.Driver,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	permissionDAO := dao.NewPermissionDAO(driver)
	userDAO := dao.NewUserDAO(driver)
	organizationDAO := dao.NewOrganizationDAO(driver)
	objectDAO := dao.NewObjectDAO(driver)

	engine := authz.NewEngine(permissionDAO, userDAO, organizationDAO, organizationDAO, objectDAO)

	authzService := NewAuthorizationService(engine, validationUtil, notificationSvc, eventBus, auditService)

	services := &Services{
		Authorization: authzService,
		Inventory: NewInventoryService(
			objectDAO,
			permissionDAO,
			authzService,
			validationUtil,
			cacheService,
			notificationSvc,
			eventBus,
		),
	}

	return services, nil
}
