package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"business-manager-backend/internal/api/handlers"
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

// GatewayHandlerTestSuite defines the test suite for GatewayHandler
type GatewayHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockGatewayServiceInterface
	router      *gin.Engine
}

func (suite *GatewayHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockGatewayServiceInterface(suite.ctrl)

	handler := handlers.NewGatewayHandler(suite.mockService)
	suite.router = gin.New()
	gateway := suite.router.Group("/gateway")
	gateway.POST("/query", handler.Query)
	gateway.POST("/count", handler.Count)
	gateway.POST("/create", handler.Create)
	gateway.POST("/update", handler.Update)
	gateway.POST("/delete", handler.Delete)
}

func (suite *GatewayHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GatewayHandlerTestSuite) post(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *GatewayHandlerTestSuite) TestQuery() {
	suite.mockService.EXPECT().
		Query(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *service.QueryRequest) (*service.QueryResponse, error) {
			suite.Equal("clients", req.Table)
			suite.Equal(2, req.Page)
			suite.Equal(10, req.Limit)
			suite.Require().NotNil(req.Search)
			suite.Equal("acme", req.Search.Term)
			suite.Equal([]string{"name"}, req.Search.Fields)
			suite.Require().NotNil(req.OrderBy)
			suite.Equal("name desc", *req.OrderBy)
			return &service.QueryResponse{
				Rows:  []map[string]interface{}{{"id": 11, "name": "Acme"}},
				Page:  2,
				Limit: 10,
			}, nil
		})

	w := suite.post("/gateway/query", `{"table":"clients","page":2,"limit":10,"search":{"fields":["name"],"term":"acme"},"orderBy":"name desc"}`)

	suite.Equal(http.StatusOK, w.Code)
	var data struct {
		Rows  []map[string]interface{} `json:"rows"`
		Page  int                      `json:"page"`
		Limit int                      `json:"limit"`
	}
	testutils.ParseEnvelopeData(suite.T(), w, &data)
	suite.Len(data.Rows, 1)
	suite.Equal("Acme", data.Rows[0]["name"])
	suite.Equal(2, data.Page)
}

func (suite *GatewayHandlerTestSuite) TestQueryInvalidJSON() {
	w := suite.post("/gateway/query", "invalid json")

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, apperrors.CodeValidation)
	var body handlers.ErrorResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Fields, 1)
	suite.Equal("body", body.Fields[0].Field)
}

func (suite *GatewayHandlerTestSuite) TestErrorMapping() {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"unknown entity", apperrors.NewUnknownEntityError("invoices"), http.StatusBadRequest, apperrors.CodeUnknownEntity},
		{"invalid conditions", apperrors.NewInvalidConditionsError("clients", "conditions must name only the primary key id"), http.StatusBadRequest, apperrors.CodeInvalidConditions},
		{"not found", apperrors.ErrRowNotFound, http.StatusNotFound, apperrors.CodeNotFound},
		{"store failure", apperrors.NewStoreError("update clients", errors.New("disk I/O error")), http.StatusInternalServerError, apperrors.CodeStore},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.mockService.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			w := suite.post("/gateway/update", `{"table":"clients","fields":{"name":"x"},"conditions":{"id":1}}`)

			testutils.AssertErrorResponse(t, w, tt.expectedStatus, tt.expectedCode)
		})
	}
}

func (suite *GatewayHandlerTestSuite) TestStoreErrorHidesCause() {
	suite.mockService.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewStoreError("count clients", errors.New("pq: password authentication failed")))

	w := suite.post("/gateway/count", `{"table":"clients"}`)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, apperrors.CodeStore)
	suite.NotContains(w.Body.String(), "password")
}

func (suite *GatewayHandlerTestSuite) TestValidationFields() {
	verr := &apperrors.ValidationError{}
	verr.Add("name", "is required")
	verr.Add("email", "must be a valid email address")
	suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, verr)

	w := suite.post("/gateway/create", `{"table":"clients","fields":{"email":"nope"}}`)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, apperrors.CodeValidation)
	var body handlers.ErrorResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal([]apperrors.FieldError{
		{Field: "name", Message: "is required"},
		{Field: "email", Message: "must be a valid email address"},
	}, body.Fields)
}

func (suite *GatewayHandlerTestSuite) TestCreate() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *service.CreateRequest) (interface{}, error) {
			suite.Equal("service_categories", req.Table)
			suite.Equal("Design", req.Fields["name"])
			return map[string]interface{}{"id": 4, "name": "Design"}, nil
		})

	w := suite.post("/gateway/create", `{"table":"service_categories","fields":{"name":"Design"}}`)

	suite.Equal(http.StatusCreated, w.Code)
	var row map[string]interface{}
	testutils.ParseEnvelopeData(suite.T(), w, &row)
	suite.Equal(float64(4), row["id"])
}

func (suite *GatewayHandlerTestSuite) TestCountAndDelete() {
	suite.mockService.EXPECT().Count(gomock.Any(), gomock.Any()).Return(&service.CountResponse{Total: 42}, nil)
	suite.mockService.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *service.DeleteRequest) (*service.DeleteResponse, error) {
			suite.Equal(float64(9), req.Conditions["id"])
			return &service.DeleteResponse{Deleted: true, RowsAffected: 1}, nil
		})

	w := suite.post("/gateway/count", `{"table":"clients","search":null}`)
	var count service.CountResponse
	testutils.ParseEnvelopeData(suite.T(), w, &count)
	suite.Equal(int64(42), count.Total)

	w = suite.post("/gateway/delete", `{"table":"clients","conditions":{"id":9}}`)
	var deleted service.DeleteResponse
	testutils.ParseEnvelopeData(suite.T(), w, &deleted)
	assert.True(suite.T(), deleted.Deleted)
	assert.Equal(suite.T(), int64(1), deleted.RowsAffected)
}

func TestGatewayHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GatewayHandlerTestSuite))
}
