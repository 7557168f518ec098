package service_test

import (
	"context"
	"errors"
	"testing"

	"business-manager-backend/internal/database/models"
	apperrors "business-manager-backend/internal/errors"
	"business-manager-backend/internal/mocks"
	"business-manager-backend/internal/repository"
	"business-manager-backend/internal/schema"
	"business-manager-backend/internal/service"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// FailureTestSuite drives the engines through store failures and lost races with mocked repositories
type FailureTestSuite struct {
	suite.Suite
	ctx          context.Context
	ctrl         *gomock.Controller
	mockGateway  *mocks.MockGatewayRepositoryInterface
	mockCatalog  *mocks.MockCatalogRepositoryInterface
	mockProposal *mocks.MockProposalRepositoryInterface
	mockProject  *mocks.MockProjectRepositoryInterface
	gateway      *service.GatewayService
	proposals    *service.ProposalService
	projects     *service.ProjectService
	hook         *logtest.Hook
}

// SetupTest sets up the test suite
func (suite *FailureTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGateway = mocks.NewMockGatewayRepositoryInterface(suite.ctrl)
	suite.mockCatalog = mocks.NewMockCatalogRepositoryInterface(suite.ctrl)
	suite.mockProposal = mocks.NewMockProposalRepositoryInterface(suite.ctrl)
	suite.mockProject = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.hook = logtest.NewGlobal()

	validator := service.NewValidator()
	suite.gateway = service.NewGatewayService(suite.mockGateway, schema.Default(), validator, 100)
	suite.proposals = service.NewProposalService(suite.mockProposal, suite.mockCatalog, validator)
	suite.projects = service.NewProjectService(suite.mockProject, suite.mockCatalog, validator)
	service.SetProposalClock(suite.proposals, clock)
}

// TearDownTest cleans up after each test
func (suite *FailureTestSuite) TearDownTest() {
	suite.ctrl.Finish()
	suite.hook.Reset()
}

func (suite *FailureTestSuite) acceptedProposal() *models.Proposal {
	p := &models.Proposal{ClientID: 7, Title: "Website relaunch", Status: models.ProposalStatusAccepted}
	p.ID = 3
	p.LineItems = []models.ProposalService{{ServiceID: 1, Price: 1000, Quantity: 2, Position: 1}}
	return p
}

// TestGatewayStoreFailureIsLogged tests that an unexpected store error is wrapped and logged
func (suite *FailureTestSuite) TestGatewayStoreFailureIsLogged() {
	suite.mockGateway.EXPECT().
		Find(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset")).
		Times(1)

	_, err := suite.gateway.Query(suite.ctx, &service.QueryRequest{Table: "clients", Page: 1, Limit: 100})

	suite.True(apperrors.IsStore(err))
	suite.Equal(apperrors.CodeStore, apperrors.Code(err))
	suite.Require().NotNil(suite.hook.LastEntry())
	suite.Equal(logrus.ErrorLevel, suite.hook.LastEntry().Level)
}

// TestGatewayConfiguredPageSize tests that the configured maximum page size is enforced
func (suite *FailureTestSuite) TestGatewayConfiguredPageSize() {
	_, err := suite.gateway.Query(suite.ctx, &service.QueryRequest{Table: "clients", Page: 1, Limit: 101})
	suite.Equal([]string{"limit"}, fieldNames(suite.T(), err))
}

// TestGatewayQueryPassesPaging tests the offset handed to the store
func (suite *FailureTestSuite) TestGatewayQueryPassesPaging() {
	rows := &[]models.Client{}
	suite.mockGateway.EXPECT().
		Find(gomock.Any(), gomock.Any(), repository.FindParams{Offset: 40, Limit: 20, OrderBy: "id"}).
		Return(rows, nil).
		Times(1)

	resp, err := suite.gateway.Query(suite.ctx, &service.QueryRequest{Table: "clients", Page: 3, Limit: 20})
	suite.Require().NoError(err)
	suite.Equal(3, resp.Page)
	suite.Equal(20, resp.Limit)
}

// TestStatusChangeLostRace tests a status change that found the row already moved on
func (suite *FailureTestSuite) TestStatusChangeLostRace() {
	sent := &models.Proposal{ClientID: 7, Status: models.ProposalStatusSent}
	sent.ID = 3
	rejected := &models.Proposal{ClientID: 7, Status: models.ProposalStatusRejected}
	rejected.ID = 3

	gomock.InOrder(
		suite.mockProposal.EXPECT().GetByID(gomock.Any(), uint(3)).Return(sent, nil),
		suite.mockProposal.EXPECT().
			UpdateStatus(gomock.Any(), uint(3), models.ProposalStatusSent, models.ProposalStatusAccepted).
			Return(int64(0), nil),
		suite.mockProposal.EXPECT().GetByID(gomock.Any(), uint(3)).Return(rejected, nil),
	)

	_, err := suite.proposals.UpdateProposalStatus(suite.ctx, 3, "accepted")

	var transition *apperrors.IllegalTransitionError
	suite.Require().True(errors.As(err, &transition))
	suite.Equal("rejected", transition.From)
}

// TestConversionLostRace tests that the loser of two concurrent conversions sees AlreadyConverted
func (suite *FailureTestSuite) TestConversionLostRace() {
	suite.mockProposal.EXPECT().GetByID(gomock.Any(), uint(3)).Return(suite.acceptedProposal(), nil)
	suite.mockCatalog.EXPECT().
		GetServicesByIDs(gomock.Any(), []uint{1}).
		Return([]models.Service{{Price: 1000, TimelineDays: 14}}, nil)
	suite.mockProposal.EXPECT().
		ConvertToProject(gomock.Any(), uint(3), gomock.Any()).
		Return(apperrors.NewAlreadyConvertedError(3))

	_, err := suite.proposals.ConvertToProject(suite.ctx, 3, nil, "user-1")

	suite.True(apperrors.IsAlreadyConverted(err))
}

// TestConversionBuildsProject tests the project handed to the store
func (suite *FailureTestSuite) TestConversionBuildsProject() {
	suite.mockProposal.EXPECT().GetByID(gomock.Any(), uint(3)).Return(suite.acceptedProposal(), nil)
	suite.mockCatalog.EXPECT().
		GetServicesByIDs(gomock.Any(), []uint{1}).
		Return([]models.Service{{Price: 1000, TimelineDays: 14}}, nil)
	suite.mockProposal.EXPECT().
		ConvertToProject(gomock.Any(), uint(3), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uint, project *models.Project) error {
			suite.Equal("Website relaunch", project.Name)
			suite.Equal(uint(7), project.ClientID)
			suite.Equal(2000.0, project.Budget)
			suite.Equal("2024-03-15", project.EstimatedEndDate.Format("2006-01-02"))
			suite.Equal("user-1", project.CreatedBy)
			suite.Require().Len(project.LineItems, 1)
			suite.Equal(models.CompletionStatusPending, project.LineItems[0].CompletionStatus)
			project.ID = 11
			return nil
		})

	resp, err := suite.proposals.ConvertToProject(suite.ctx, 3, nil, "user-1")

	suite.Require().NoError(err)
	suite.Equal(uint(11), resp.ID)
	suite.Equal(2000.0, resp.Total)
}

func (suite *FailureTestSuite) draftProposal() *models.Proposal {
	p := &models.Proposal{ClientID: 7, Title: "Website relaunch", Status: models.ProposalStatusDraft}
	p.ID = 3
	return p
}

// TestLineItemEditAfterConversion tests edits that pass the read but meet a proposal converted since
func (suite *FailureTestSuite) TestLineItemEditAfterConversion() {
	service1 := models.Service{Price: 1000, TimelineDays: 14}
	service1.ID = 1
	item := &models.ProposalService{ProposalID: 3, ServiceID: 1, Price: 1000, Quantity: 1}
	item.ID = 9

	suite.mockProposal.EXPECT().GetByID(gomock.Any(), uint(3)).Return(suite.draftProposal(), nil).Times(3)
	suite.mockCatalog.EXPECT().GetServicesByIDs(gomock.Any(), []uint{1}).Return([]models.Service{service1}, nil).Times(2)
	suite.mockProposal.EXPECT().GetLineItem(gomock.Any(), uint(9)).Return(item, nil).Times(2)
	suite.mockProposal.EXPECT().AddLineItem(gomock.Any(), gomock.Any()).Return(apperrors.NewAlreadyConvertedError(3))
	suite.mockProposal.EXPECT().UpdateLineItem(gomock.Any(), gomock.Any()).Return(apperrors.NewAlreadyConvertedError(3))
	suite.mockProposal.EXPECT().DeleteLineItem(gomock.Any(), uint(3), uint(9)).Return(apperrors.NewAlreadyConvertedError(3))

	_, err := suite.proposals.AddLineItem(suite.ctx, 3, &service.LineItemRequest{ServiceID: 1, Quantity: 1})
	suite.True(apperrors.IsAlreadyConverted(err), "add: %v", err)

	quantity := 2
	_, err = suite.proposals.UpdateLineItem(suite.ctx, 3, 9, &service.UpdateLineItemRequest{Quantity: &quantity})
	suite.True(apperrors.IsAlreadyConverted(err), "update: %v", err)

	_, err = suite.proposals.RemoveLineItem(suite.ctx, 3, 9)
	suite.True(apperrors.IsAlreadyConverted(err), "remove: %v", err)
}

// TestDeleteProposalLostRace tests deletes that find the proposal gone or converted since the read
func (suite *FailureTestSuite) TestDeleteProposalLostRace() {
	suite.mockProposal.EXPECT().GetByID(gomock.Any(), uint(3)).Return(suite.draftProposal(), nil).Times(3)
	gomock.InOrder(
		suite.mockProposal.EXPECT().Delete(gomock.Any(), uint(3)).Return(int64(0), gorm.ErrRecordNotFound),
		suite.mockProposal.EXPECT().Delete(gomock.Any(), uint(3)).Return(int64(0), nil),
		suite.mockProposal.EXPECT().Delete(gomock.Any(), uint(3)).Return(int64(0), apperrors.NewAlreadyConvertedError(3)),
	)

	err := suite.proposals.DeleteProposal(suite.ctx, 3)
	suite.True(errors.Is(err, apperrors.ErrProposalNotFound), "deleted elsewhere: %v", err)

	err = suite.proposals.DeleteProposal(suite.ctx, 3)
	suite.True(errors.Is(err, apperrors.ErrProposalNotFound), "no rows: %v", err)

	err = suite.proposals.DeleteProposal(suite.ctx, 3)
	suite.True(apperrors.IsAlreadyConverted(err), "converted: %v", err)
}

// TestProjectStatusLogsClosure tests that the status change log says whether the project was closed
func (suite *FailureTestSuite) TestProjectStatusLogsClosure() {
	for status, closed := range map[string]bool{"cancelled": true, "completed": true, "on_hold": false} {
		project := &models.Project{ClientID: 7, Name: "Website relaunch", Status: models.ProjectStatusInProgress}
		project.ID = 5
		suite.mockProject.EXPECT().GetByID(gomock.Any(), uint(5)).Return(project, nil)
		suite.mockProject.EXPECT().Update(gomock.Any(), project).Return(nil)

		_, err := suite.projects.UpdateProjectStatus(suite.ctx, 5, status)
		suite.Require().NoError(err)

		entry := suite.hook.LastEntry()
		suite.Require().NotNil(entry)
		suite.Equal("Project status changed", entry.Message)
		suite.Equal(closed, entry.Data["closed"], status)
	}
}

// TestProjectStoreFailure tests that a failed read surfaces as a store error
func (suite *FailureTestSuite) TestProjectStoreFailure() {
	suite.mockProject.EXPECT().GetByID(gomock.Any(), uint(5)).Return(nil, errors.New("timeout"))

	_, err := suite.projects.CalculateProjectProgress(suite.ctx, 5)
	suite.True(apperrors.IsStore(err))

	suite.mockProject.EXPECT().GetByID(gomock.Any(), uint(6)).Return(nil, gorm.ErrRecordNotFound)

	_, err = suite.projects.CalculateProjectTotal(suite.ctx, 6)
	suite.True(errors.Is(err, apperrors.ErrProjectNotFound))
}

// TestCatalogFailureDuringCreate tests that a failed client lookup aborts proposal creation
func (suite *FailureTestSuite) TestCatalogFailureDuringCreate() {
	suite.mockCatalog.EXPECT().GetClientByID(gomock.Any(), uint(7)).Return(nil, errors.New("timeout"))

	_, err := suite.proposals.CreateProposal(suite.ctx, &service.CreateProposalRequest{ClientID: 7}, "user-1")
	suite.True(apperrors.IsStore(err))
}

func TestFailureTestSuite(t *testing.T) {
	suite.Run(t, new(FailureTestSuite))
}
