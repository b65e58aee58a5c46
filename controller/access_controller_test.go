// controller/access_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/stockroom-app/api/controller"
	stockroom_errors "github.com/stockroom-app/api/errors"
	logger "github.com/stockroom-app/api/logging"
	"github.com/stockroom-app/api/model"
	mock_service "github.com/stockroom-app/api/test/service_mock"
)

func TestAccessController(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthzService := mock_service.NewMockIAuthorizationService(ctrl)
	accessController := controller.NewAccessController(mockAuthzService)
	router := setupRouter("u1", string(model.GlobalRoleUser))
	api := router.Group("/")
	accessController.RegisterRoutes(api)

	t.Run("CheckAccess_SelfCheck_Allowed", func(t *testing.T) {
		mockAuthzService.EXPECT().
			CanAccess(gomock.Any(), "u1", model.ObjectTypeBin, "bin-1", model.ActionRead).
			Return(true, nil)

		body := strings.NewReader(`{"object_type":"BIN","object_id":"bin-1","action":"READ"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/access/check", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]bool
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp["allowed"])
	})

	t.Run("CheckAccess_SelfCheck_Denied", func(t *testing.T) {
		mockAuthzService.EXPECT().
			CanAccess(gomock.Any(), "u1", model.ObjectTypeBin, "bin-1", model.ActionAdmin).
			Return(false, nil)

		body := strings.NewReader(`{"object_type":"BIN","object_id":"bin-1","action":"ADMIN"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/access/check", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]bool
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp["allowed"])
	})

	t.Run("CheckAccess_Failure_OnBehalfOfOtherUser", func(t *testing.T) {
		body := strings.NewReader(`{"principal_id":"u2","object_type":"BIN","object_id":"bin-1","action":"READ"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/access/check", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("CheckAccess_Failure_MissingFields", func(t *testing.T) {
		body := strings.NewReader(`{"object_type":"BIN"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/access/check", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("CheckAccess_Failure_InvalidEnum", func(t *testing.T) {
		mockAuthzService.EXPECT().
			CanAccess(gomock.Any(), "u1", model.ObjectType("SHELF"), "bin-1", model.ActionRead).
			Return(false, stockroom_errors.ErrInvalidObjectType)

		body := strings.NewReader(`{"object_type":"SHELF","object_id":"bin-1","action":"READ"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/access/check", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAccessControllerAsGlobalAdmin(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthzService := mock_service.NewMockIAuthorizationService(ctrl)
	accessController := controller.NewAccessController(mockAuthzService)
	router := setupRouter("root", string(model.GlobalRoleAdmin))
	api := router.Group("/")
	accessController.RegisterRoutes(api)

	t.Run("CheckAccess_OnBehalfOfOtherUser_Success", func(t *testing.T) {
		mockAuthzService.EXPECT().
			CanAccess(gomock.Any(), "u2", model.ObjectTypeItem, "item-1", model.ActionWrite).
			Return(true, nil)

		body := strings.NewReader(`{"principal_id":"u2","object_type":"ITEM","object_id":"item-1","action":"WRITE"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/access/check", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
