//go:build integration

package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"business-manager-backend/internal/database/models"
	apperrors "business-manager-backend/internal/errors"
	"business-manager-backend/internal/schema"
	"business-manager-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PostgresRepositoryTestSuite runs the repositories against a real Postgres container
type PostgresRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	proposals     *ProposalRepository
	projects      *ProjectRepository
	gateway       *GatewayRepository
	factories     *testutils.FactorySet
	catalog       *testutils.Catalog
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *PostgresRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB

	suite.proposals = NewProposalRepository(db)
	suite.projects = NewProjectRepository(db)
	suite.gateway = NewGatewayRepository(db, schema.Default())
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *PostgresRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest truncates the tables and seeds the catalog
func (suite *PostgresRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.catalog = testutils.SeedCatalog(suite.T(), suite.baseTestSuite.DB)
}

// TearDownTest runs after each test
func (suite *PostgresRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PostgresRepositoryTestSuite) acceptedProposal() *models.Proposal {
	f := suite.factories.Proposal
	proposal := f.Create(suite.catalog.Client.ID,
		f.Item(suite.catalog.Services[0].ID, 1000, 2),
		f.Item(suite.catalog.Services[1].ID, 500, 1),
	)
	suite.Require().NoError(suite.proposals.Create(suite.ctx, proposal))
	for _, step := range [][2]models.ProposalStatus{
		{models.ProposalStatusDraft, models.ProposalStatusSent},
		{models.ProposalStatusSent, models.ProposalStatusAccepted},
	} {
		affected, err := suite.proposals.UpdateStatus(suite.ctx, proposal.ID, step[0], step[1])
		suite.Require().NoError(err)
		suite.Require().Equal(int64(1), affected)
	}
	return proposal
}

func (suite *PostgresRepositoryTestSuite) projectFor(proposal *models.Proposal) *models.Project {
	project := suite.factories.Project.Create(proposal.ClientID)
	for _, item := range proposal.LineItems {
		project.LineItems = append(project.LineItems, suite.factories.Project.Item(item.ServiceID, item.Price, item.Quantity))
	}
	return project
}

// TestCreateNumbersLineItems tests that line items keep their creation order
func (suite *PostgresRepositoryTestSuite) TestCreateNumbersLineItems() {
	proposal := suite.acceptedProposal()

	loaded, err := suite.proposals.GetByID(suite.ctx, proposal.ID)
	suite.Require().NoError(err)
	suite.Require().Len(loaded.LineItems, 2)
	suite.Equal(1, loaded.LineItems[0].Position)
	suite.Equal(2, loaded.LineItems[1].Position)
	suite.Equal(1000.0, loaded.LineItems[0].Price)

	item := suite.factories.Proposal.Item(suite.catalog.Services[1].ID, 250, 4)
	item.ProposalID = proposal.ID
	suite.NoError(suite.proposals.AddLineItem(suite.ctx, &item))
	suite.Equal(3, item.Position)
}

// TestUpdateStatusIsConditional tests that a stale expected status changes nothing
func (suite *PostgresRepositoryTestSuite) TestUpdateStatusIsConditional() {
	proposal := suite.acceptedProposal()

	affected, err := suite.proposals.UpdateStatus(suite.ctx, proposal.ID, models.ProposalStatusSent, models.ProposalStatusRejected)
	suite.NoError(err)
	suite.Zero(affected)

	loaded, err := suite.proposals.GetByID(suite.ctx, proposal.ID)
	suite.Require().NoError(err)
	suite.Equal(models.ProposalStatusAccepted, loaded.Status)
}

// TestConcurrentConversion tests that of several racing conversions exactly one commits
func (suite *PostgresRepositoryTestSuite) TestConcurrentConversion() {
	proposal := suite.acceptedProposal()

	const racers = 4
	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = suite.proposals.ConvertToProject(suite.ctx, proposal.ID, suite.projectFor(proposal))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		suite.True(apperrors.IsAlreadyConverted(err), "unexpected error: %v", err)
	}
	suite.Equal(1, succeeded)

	var projects, items int64
	db := suite.baseTestSuite.DB
	suite.NoError(db.Model(&models.Project{}).Where("proposal_id = ?", proposal.ID).Count(&projects).Error)
	suite.NoError(db.Model(&models.ProjectService{}).Count(&items).Error)
	suite.Equal(int64(1), projects)
	suite.Equal(int64(2), items)
}

// TestConversionRollsBack tests that a failed line item insert leaves the proposal accepted
func (suite *PostgresRepositoryTestSuite) TestConversionRollsBack() {
	proposal := suite.acceptedProposal()

	project := suite.projectFor(proposal)
	project.LineItems[1].ServiceID = 9999 // violates the services foreign key

	err := suite.proposals.ConvertToProject(suite.ctx, proposal.ID, project)
	suite.Error(err)

	loaded, err := suite.proposals.GetByID(suite.ctx, proposal.ID)
	suite.Require().NoError(err)
	suite.Equal(models.ProposalStatusAccepted, loaded.Status)

	var projects int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Project{}).Count(&projects).Error)
	suite.Zero(projects)
}

// TestProjectLineItemStatus tests completion updates and deletes
func (suite *PostgresRepositoryTestSuite) TestProjectLineItemStatus() {
	f := suite.factories.Project
	project := f.Create(suite.catalog.Client.ID,
		f.Item(suite.catalog.Services[0].ID, 1000, 1),
		f.Item(suite.catalog.Services[1].ID, 500, 1),
	)
	suite.Require().NoError(suite.projects.Create(suite.ctx, project))

	affected, err := suite.projects.SetLineItemStatus(suite.ctx, project.LineItems[0].ID, models.CompletionStatusCompleted)
	suite.NoError(err)
	suite.Equal(int64(1), affected)

	affected, err = suite.projects.SetLineItemStatus(suite.ctx, 9999, models.CompletionStatusCompleted)
	suite.NoError(err)
	suite.Zero(affected)

	loaded, err := suite.projects.GetByID(suite.ctx, project.ID)
	suite.Require().NoError(err)
	suite.Equal(models.CompletionStatusCompleted, loaded.LineItems[0].CompletionStatus)
	suite.Equal(models.CompletionStatusPending, loaded.LineItems[1].CompletionStatus)

	affected, err = suite.projects.Delete(suite.ctx, project.ID)
	suite.NoError(err)
	suite.Equal(int64(1), affected)
	_, err = suite.projects.GetByID(suite.ctx, project.ID)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

// TestGatewaySearchOnPostgres tests the ILIKE escape clause and non-ASCII case folding on Postgres
func (suite *PostgresRepositoryTestSuite) TestGatewaySearchOnPostgres() {
	for _, name := range []string{"50% Off_Shop", "Ærøskøbing Print"} {
		client := suite.factories.Client.WithName(suite.catalog.ClientType.ID, name)
		suite.Require().NoError(suite.baseTestSuite.DB.Create(client).Error)
	}
	clients, err := schema.Default().Lookup("clients")
	suite.Require().NoError(err)

	for term, expected := range map[string]int64{"%": 1, "off_": 1, "ROE": 3, "x_y": 0, "ÆRØ": 1, "øskø": 1} {
		total, err := suite.gateway.Count(suite.ctx, clients, &SearchFilter{Fields: []string{"name", "company"}, Term: term})
		suite.NoError(err)
		suite.Equal(expected, total, "term %q", term)
	}
}

func TestPostgresRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresRepositoryTestSuite))
}
