package service_test

import (
	"context"
	"errors"
	"testing"

	"business-manager-backend/internal/database/models"
	apperrors "business-manager-backend/internal/errors"
	"business-manager-backend/internal/repository"
	"business-manager-backend/internal/service"
	"business-manager-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectServiceTestSuite runs the project engine against an in-memory store
type ProjectServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	db       *gorm.DB
	catalog  *testutils.Catalog
	projects *service.ProjectService
}

// SetupTest opens a fresh database and seeds the catalog
func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.catalog = testutils.SeedCatalog(suite.T(), suite.db)
	suite.projects = service.NewProjectService(
		repository.NewProjectRepository(suite.db),
		repository.NewCatalogRepository(suite.db),
		service.NewValidator(),
	)
	service.SetProjectClock(suite.projects, clock)
}

func (suite *ProjectServiceTestSuite) items(n int) []service.LineItemRequest {
	items := make([]service.LineItemRequest, n)
	for i := range items {
		items[i] = service.LineItemRequest{ServiceID: suite.catalog.Services[i%2].ID, Quantity: 1}
	}
	return items
}

func (suite *ProjectServiceTestSuite) create(items []service.LineItemRequest) *service.ProjectResponse {
	resp, err := suite.projects.CreateProject(suite.ctx, &service.CreateProjectRequest{
		Name:      "Intranet",
		ClientID:  suite.catalog.Client.ID,
		LineItems: items,
	}, "user-1")
	suite.Require().NoError(err)
	return resp
}

// TestCreateProjectDefaults tests the derived dates, budget and item status
func (suite *ProjectServiceTestSuite) TestCreateProjectDefaults() {
	resp := suite.create(suite.items(2))

	suite.NotZero(resp.ID)
	suite.Nil(resp.ProposalID)
	suite.Equal(models.ProjectStatusNotStarted, resp.Status)
	suite.Equal("2024-03-01", resp.StartDate.Format("2006-01-02"))
	suite.Equal("2024-03-31", resp.EstimatedEndDate.Format("2006-01-02"))
	suite.Equal(1500.0, resp.Budget)
	suite.Equal(1500.0, resp.Total)
	suite.Equal(0.0, resp.Progress)
	suite.Require().Len(resp.LineItems, 2)
	for i, item := range resp.LineItems {
		suite.Equal(i+1, item.Position)
		suite.Equal(models.CompletionStatusPending, item.CompletionStatus)
	}
}

// TestCreateProjectExplicitFields tests that supplied fields win over the defaults
func (suite *ProjectServiceTestSuite) TestCreateProjectExplicitFields() {
	resp, err := suite.projects.CreateProject(suite.ctx, &service.CreateProjectRequest{
		Name:             "Intranet",
		ClientID:         suite.catalog.Client.ID,
		Status:           "in_progress",
		StartDate:        "2024-06-01",
		EstimatedEndDate: "2024-09-30",
		Budget:           price(12000),
		LineItems:        suite.items(1),
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(models.ProjectStatusInProgress, resp.Status)
	suite.Equal("2024-06-01", resp.StartDate.Format("2006-01-02"))
	suite.Equal("2024-09-30", resp.EstimatedEndDate.Format("2006-01-02"))
	suite.Equal(12000.0, resp.Budget)
	suite.Equal(1000.0, resp.Total)
}

// TestCreateProjectValidation tests that every violated field is reported
func (suite *ProjectServiceTestSuite) TestCreateProjectValidation() {
	_, err := suite.projects.CreateProject(suite.ctx, &service.CreateProjectRequest{
		Name:             "",
		ClientID:         999,
		Status:           "finished",
		StartDate:        "2024-06-01",
		EstimatedEndDate: "2024-05-01",
		Budget:           price(-1),
		LineItems:        []service.LineItemRequest{{ServiceID: 999, Quantity: 1}},
	}, "user-1")

	suite.ElementsMatch([]string{
		"client_id",
		"name",
		"line_items[0].service_id",
		"status",
		"estimated_end_date",
		"budget",
	}, fieldNames(suite.T(), err))
}

// TestProgress tests the completed share of line items
func (suite *ProjectServiceTestSuite) TestProgress() {
	empty := suite.create(nil)
	progress, err := suite.projects.CalculateProjectProgress(suite.ctx, empty.ID)
	suite.Require().NoError(err)
	suite.Equal(0.0, progress)

	project := suite.create(suite.items(4))
	item, err := suite.projects.UpdateProjectServiceStatus(suite.ctx, project.LineItems[2].ID, "completed")
	suite.Require().NoError(err)
	suite.Equal(models.CompletionStatusCompleted, item.CompletionStatus)
	suite.Equal(project.ID, item.ProjectID)

	_, err = suite.projects.UpdateProjectServiceStatus(suite.ctx, project.LineItems[0].ID, "in_progress")
	suite.Require().NoError(err)

	progress, err = suite.projects.CalculateProjectProgress(suite.ctx, project.ID)
	suite.Require().NoError(err)
	suite.Equal(25.0, progress)

	resp, err := suite.projects.GetProject(suite.ctx, project.ID)
	suite.Require().NoError(err)
	suite.Equal(25.0, resp.Progress)
}

// TestUpdateProjectServiceStatusErrors tests invalid statuses and missing line items
func (suite *ProjectServiceTestSuite) TestUpdateProjectServiceStatusErrors() {
	project := suite.create(suite.items(1))

	_, err := suite.projects.UpdateProjectServiceStatus(suite.ctx, project.LineItems[0].ID, "done")
	suite.Equal([]string{"status"}, fieldNames(suite.T(), err))

	_, err = suite.projects.UpdateProjectServiceStatus(suite.ctx, 999, "completed")
	suite.True(errors.Is(err, apperrors.ErrProjectServiceNotFound))
}

// TestUpdateProjectStatus tests that any status may follow any other
func (suite *ProjectServiceTestSuite) TestUpdateProjectStatus() {
	project := suite.create(suite.items(1))

	resp, err := suite.projects.UpdateProjectStatus(suite.ctx, project.ID, "completed")
	suite.Require().NoError(err)
	suite.Equal(models.ProjectStatusCompleted, resp.Status)
	suite.Require().NotNil(resp.ActualEndDate)
	suite.Equal("2024-03-01", resp.ActualEndDate.Format("2006-01-02"))

	resp, err = suite.projects.UpdateProjectStatus(suite.ctx, project.ID, "not_started")
	suite.Require().NoError(err)
	suite.Equal(models.ProjectStatusNotStarted, resp.Status)

	resp, err = suite.projects.UpdateProjectStatus(suite.ctx, project.ID, "cancelled")
	suite.Require().NoError(err)
	suite.Equal(models.ProjectStatusCancelled, resp.Status)

	_, err = suite.projects.UpdateProjectStatus(suite.ctx, project.ID, "archived")
	suite.True(apperrors.IsValidation(err))

	_, err = suite.projects.UpdateProjectStatus(suite.ctx, 999, "on_hold")
	suite.True(errors.Is(err, apperrors.ErrProjectNotFound))
}

// TestLineItems tests adding and removing project line items
func (suite *ProjectServiceTestSuite) TestLineItems() {
	project := suite.create(suite.items(1))

	resp, err := suite.projects.AddLineItem(suite.ctx, project.ID, &service.LineItemRequest{
		ServiceID: suite.catalog.Services[1].ID,
		Price:     price(750),
		Quantity:  2,
	})
	suite.Require().NoError(err)
	suite.Require().Len(resp.LineItems, 2)
	suite.Equal(2, resp.LineItems[1].Position)
	suite.Equal(models.CompletionStatusPending, resp.LineItems[1].CompletionStatus)
	suite.Equal(2500.0, resp.Total)

	_, err = suite.projects.AddLineItem(suite.ctx, project.ID, &service.LineItemRequest{ServiceID: 999, Quantity: 1})
	suite.Equal([]string{"service_id"}, fieldNames(suite.T(), err))

	resp, err = suite.projects.RemoveLineItem(suite.ctx, project.ID, resp.LineItems[0].ID)
	suite.Require().NoError(err)
	suite.Len(resp.LineItems, 1)

	total, err := suite.projects.CalculateProjectTotal(suite.ctx, project.ID)
	suite.Require().NoError(err)
	suite.Equal(1500.0, total)

	other := suite.create(suite.items(1))
	_, err = suite.projects.RemoveLineItem(suite.ctx, other.ID, resp.LineItems[0].ID)
	suite.True(errors.Is(err, apperrors.ErrProjectServiceNotFound))
}

// TestDeleteProject tests that deleting a project removes its items and spares the proposal
func (suite *ProjectServiceTestSuite) TestDeleteProject() {
	f := testutils.NewFactorySet()
	proposal := f.Proposal.Create(suite.catalog.Client.ID)
	proposal.Status = models.ProposalStatusConverted
	suite.Require().NoError(suite.db.Create(proposal).Error)

	project := f.Project.Create(suite.catalog.Client.ID, f.Project.Item(suite.catalog.Services[0].ID, 1000, 1))
	project.ProposalID = &proposal.ID
	suite.Require().NoError(suite.db.Create(project).Error)

	suite.Require().NoError(suite.projects.DeleteProject(suite.ctx, project.ID))

	_, err := suite.projects.GetProject(suite.ctx, project.ID)
	suite.True(apperrors.IsNotFound(err))

	var items int64
	suite.Require().NoError(suite.db.Model(&models.ProjectService{}).Count(&items).Error)
	suite.Zero(items)

	var stored models.Proposal
	suite.Require().NoError(suite.db.First(&stored, proposal.ID).Error)
	suite.Equal(models.ProposalStatusConverted, stored.Status)

	err = suite.projects.DeleteProject(suite.ctx, project.ID)
	suite.True(errors.Is(err, apperrors.ErrProjectNotFound))
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
