package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"business-manager-backend/internal/api/handlers"
	"business-manager-backend/internal/auth"
	"business-manager-backend/internal/database/models"
	apperrors "business-manager-backend/internal/errors"
	"business-manager-backend/internal/mocks"
	"business-manager-backend/internal/service"
	"business-manager-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockProjectServiceInterface
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *ProjectHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockProjectServiceInterface(suite.ctrl)

	handler := handlers.NewProjectHandler(suite.mockService)
	suite.router = gin.New()
	suite.router.Use(auth.LocalActor(testActor))
	projects := suite.router.Group("/projects")
	projects.POST("", handler.CreateProject)
	projects.GET("/:id", handler.GetProject)
	projects.DELETE("/:id", handler.DeleteProject)
	projects.GET("/:id/total", handler.GetProjectTotal)
	projects.GET("/:id/progress", handler.GetProjectProgress)
	projects.PUT("/:id/status", handler.UpdateProjectStatus)
	projects.POST("/:id/line-items", handler.AddLineItem)
	projects.DELETE("/:id/line-items/:itemId", handler.RemoveLineItem)
	suite.router.PUT("/project-services/:id/status", handler.UpdateProjectServiceStatus)
}

// TearDownTest cleans up after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectHandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleProject(id uint, status models.ProjectStatus) *service.ProjectResponse {
	return &service.ProjectResponse{
		Project: models.Project{
			BaseModel: models.BaseModel{ID: id},
			Name:      "Website relaunch",
			ClientID:  7,
			Status:    status,
			Budget:    1500,
			LineItems: []models.ProjectService{
				{BaseModel: models.BaseModel{ID: 21}, ProjectID: id, ServiceID: 1, Price: 1000, Quantity: 1, CompletionStatus: models.CompletionStatusCompleted},
				{BaseModel: models.BaseModel{ID: 22}, ProjectID: id, ServiceID: 2, Price: 500, Quantity: 1, CompletionStatus: models.CompletionStatusPending},
			},
		},
		Total:    1500,
		Progress: 50,
	}
}

// TestCreateProject tests the CreateProject handler
func (suite *ProjectHandlerTestSuite) TestCreateProject() {
	suite.T().Run("Invalid JSON", func(t *testing.T) {
		w := suite.do(http.MethodPost, "/projects", "invalid json")
		testutils.AssertErrorResponse(t, w, http.StatusBadRequest, apperrors.CodeValidation)
	})

	suite.T().Run("Created", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateProject(gomock.Any(), gomock.Any(), testActor).
			DoAndReturn(func(_ interface{}, req *service.CreateProjectRequest, _ string) (*service.ProjectResponse, error) {
				require.Equal(t, "Website relaunch", req.Name)
				require.Equal(t, uint(7), req.ClientID)
				require.Nil(t, req.Budget)
				require.Len(t, req.LineItems, 2)
				return sampleProject(5, models.ProjectStatusNotStarted), nil
			})

		w := suite.do(http.MethodPost, "/projects", `{"name":"Website relaunch","client_id":7,"line_items":[{"service_id":1,"quantity":1},{"service_id":2,"quantity":1}]}`)

		require.Equal(t, http.StatusCreated, w.Code)
		var data service.ProjectResponse
		testutils.ParseEnvelopeData(t, w, &data)
		assert.Equal(t, uint(5), data.ID)
		assert.Equal(t, 1500.0, data.Budget)
	})

	suite.T().Run("Validation", func(t *testing.T) {
		verr := &apperrors.ValidationError{}
		verr.Add("name", "is required")
		verr.Add("line_items[0].quantity", "must be at least 1")
		suite.mockService.EXPECT().CreateProject(gomock.Any(), gomock.Any(), testActor).Return(nil, verr)

		w := suite.do(http.MethodPost, "/projects", `{"client_id":7,"line_items":[{"service_id":1,"quantity":0}]}`)
		testutils.AssertErrorResponse(t, w, http.StatusBadRequest, apperrors.CodeValidation)
		assert.Contains(t, w.Body.String(), "line_items[0].quantity")
	})
}

// TestGetProject tests the GetProject handler
func (suite *ProjectHandlerTestSuite) TestGetProject() {
	suite.T().Run("Invalid ID", func(t *testing.T) {
		w := suite.do(http.MethodGet, "/projects/invalid-id", "")
		testutils.AssertErrorResponse(t, w, http.StatusBadRequest, apperrors.CodeValidation)
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().GetProject(gomock.Any(), uint(8)).Return(nil, apperrors.ErrProjectNotFound)
		w := suite.do(http.MethodGet, "/projects/8", "")
		testutils.AssertErrorResponse(t, w, http.StatusNotFound, apperrors.CodeNotFound)
	})

	suite.T().Run("Found", func(t *testing.T) {
		suite.mockService.EXPECT().GetProject(gomock.Any(), uint(5)).Return(sampleProject(5, models.ProjectStatusInProgress), nil)
		w := suite.do(http.MethodGet, "/projects/5", "")

		var data service.ProjectResponse
		testutils.ParseEnvelopeData(t, w, &data)
		assert.Equal(t, 50.0, data.Progress)
		assert.Equal(t, 1500.0, data.Total)
		assert.Len(t, data.LineItems, 2)
	})
}

// TestDeleteProject tests the DeleteProject handler
func (suite *ProjectHandlerTestSuite) TestDeleteProject() {
	suite.mockService.EXPECT().DeleteProject(gomock.Any(), uint(5)).Return(nil)
	suite.mockService.EXPECT().DeleteProject(gomock.Any(), uint(6)).Return(apperrors.ErrProjectNotFound)

	w := suite.do(http.MethodDelete, "/projects/5", "")
	var data map[string]interface{}
	testutils.ParseEnvelopeData(suite.T(), w, &data)
	suite.Equal(true, data["deleted"])

	w = suite.do(http.MethodDelete, "/projects/6", "")
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, apperrors.CodeNotFound)
}

// TestTotals tests the total and progress handlers
func (suite *ProjectHandlerTestSuite) TestTotals() {
	suite.mockService.EXPECT().CalculateProjectTotal(gomock.Any(), uint(5)).Return(1500.0, nil)
	suite.mockService.EXPECT().CalculateProjectProgress(gomock.Any(), uint(5)).Return(33.33, nil)

	w := suite.do(http.MethodGet, "/projects/5/total", "")
	var total map[string]float64
	testutils.ParseEnvelopeData(suite.T(), w, &total)
	suite.Equal(1500.0, total["total"])

	w = suite.do(http.MethodGet, "/projects/5/progress", "")
	var progress map[string]float64
	testutils.ParseEnvelopeData(suite.T(), w, &progress)
	suite.Equal(33.33, progress["progress"])
	suite.Equal(5.0, progress["id"])
}

// TestUpdateProjectStatus tests the UpdateProjectStatus handler
func (suite *ProjectHandlerTestSuite) TestUpdateProjectStatus() {
	suite.T().Run("Completed", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateProjectStatus(gomock.Any(), uint(5), "completed").
			Return(sampleProject(5, models.ProjectStatusCompleted), nil)

		w := suite.do(http.MethodPut, "/projects/5/status", `{"status":"completed"}`)
		var data service.ProjectResponse
		testutils.ParseEnvelopeData(t, w, &data)
		assert.Equal(t, models.ProjectStatusCompleted, data.Status)
	})

	suite.T().Run("Unknown status", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateProjectStatus(gomock.Any(), uint(5), "archived").
			Return(nil, apperrors.NewValidationError("status", "must be one of: not_started, in_progress, on_hold, completed, cancelled"))

		w := suite.do(http.MethodPut, "/projects/5/status", `{"status":"archived"}`)
		testutils.AssertErrorResponse(t, w, http.StatusBadRequest, apperrors.CodeValidation)
	})
}

// TestLineItems tests adding and removing project line items
func (suite *ProjectHandlerTestSuite) TestLineItems() {
	suite.mockService.EXPECT().
		AddLineItem(gomock.Any(), uint(5), gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uint, req *service.LineItemRequest) (*service.ProjectResponse, error) {
			suite.Equal(uint(2), req.ServiceID)
			suite.Require().NotNil(req.Price)
			suite.Equal(450.0, *req.Price)
			return sampleProject(5, models.ProjectStatusInProgress), nil
		})
	suite.mockService.EXPECT().
		RemoveLineItem(gomock.Any(), uint(5), uint(22)).
		Return(sampleProject(5, models.ProjectStatusInProgress), nil)

	w := suite.do(http.MethodPost, "/projects/5/line-items", `{"service_id":2,"price":450,"quantity":1}`)
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.do(http.MethodDelete, "/projects/5/line-items/22", "")
	suite.Equal(http.StatusOK, w.Code)
}

// TestUpdateProjectServiceStatus tests the line item status handler
func (suite *ProjectHandlerTestSuite) TestUpdateProjectServiceStatus() {
	suite.T().Run("Completed", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateProjectServiceStatus(gomock.Any(), uint(22), "completed").
			Return(&models.ProjectService{
				BaseModel:        models.BaseModel{ID: 22},
				ProjectID:        5,
				ServiceID:        2,
				Price:            500,
				Quantity:         1,
				CompletionStatus: models.CompletionStatusCompleted,
			}, nil)

		w := suite.do(http.MethodPut, "/project-services/22/status", `{"status":"completed"}`)
		var item models.ProjectService
		testutils.ParseEnvelopeData(t, w, &item)
		assert.Equal(t, models.CompletionStatusCompleted, item.CompletionStatus)
		assert.Equal(t, uint(5), item.ProjectID)
	})

	suite.T().Run("Missing item", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateProjectServiceStatus(gomock.Any(), uint(99), "completed").
			Return(nil, apperrors.ErrProjectServiceNotFound)

		w := suite.do(http.MethodPut, "/project-services/99/status", `{"status":"completed"}`)
		testutils.AssertErrorResponse(t, w, http.StatusNotFound, apperrors.CodeNotFound)
	})
}

// TestProjectHandlerTestSuite runs the test suite
func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
