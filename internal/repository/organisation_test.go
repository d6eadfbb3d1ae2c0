//go:build integration
// +build integration

package repository

import (
	"testing"

	"food-donation-backend/internal/database/models"
	"food-donation-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganisationRepositoryTestSuite tests the OrganisationRepository against a real Postgres
type OrganisationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganisationRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OrganisationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewOrganisationRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganisationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganisationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganisationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createOwner persists a verified user to own test organisations
func (suite *OrganisationRepositoryTestSuite) createOwner() *models.User {
	user := suite.factories.User.Verified()
	suite.Require().NoError(suite.userRepo.Create(user))
	return user
}

// TestCreate tests creating a new organisation
func (suite *OrganisationRepositoryTestSuite) TestCreate() {
	owner := suite.createOwner()
	org := suite.factories.Organisation.WithUser(owner.ID)

	err := suite.repo.Create(org)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, org.ID)
	suite.NotZero(org.CreatedAt)
	suite.False(org.Active)
}

// TestGetByIDForUser tests retrieving an owned organisation
func (suite *OrganisationRepositoryTestSuite) TestGetByIDForUser() {
	owner := suite.createOwner()
	org := suite.factories.Organisation.WithUser(owner.ID)
	suite.NoError(suite.repo.Create(org))

	retrieved, err := suite.repo.GetByIDForUser(org.ID, owner.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(org.ID, retrieved.ID)
	suite.Equal(org.Name, retrieved.Name)
}

// TestGetByIDForUserWrongOwner tests that another user's organisation does not match
func (suite *OrganisationRepositoryTestSuite) TestGetByIDForUserWrongOwner() {
	owner := suite.createOwner()
	other := suite.createOwner()
	org := suite.factories.Organisation.WithUser(owner.ID)
	suite.NoError(suite.repo.Create(org))

	retrieved, err := suite.repo.GetByIDForUser(org.ID, other.ID)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(retrieved)
}

// TestGetByIDForUserNotFound tests retrieving a non-existent organisation
func (suite *OrganisationRepositoryTestSuite) TestGetByIDForUserNotFound() {
	owner := suite.createOwner()

	retrieved, err := suite.repo.GetByIDForUser(uuid.New(), owner.ID)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(retrieved)
}

// TestGetByUserID tests listing a user's organisations
func (suite *OrganisationRepositoryTestSuite) TestGetByUserID() {
	owner := suite.createOwner()
	other := suite.createOwner()

	org1 := suite.factories.Organisation.WithUser(owner.ID)
	org2 := suite.factories.Organisation.WithUser(owner.ID)
	org2.Name = "Second Food Bank"
	foreign := suite.factories.Organisation.WithUser(other.ID)

	suite.NoError(suite.repo.Create(org1))
	suite.NoError(suite.repo.Create(org2))
	suite.NoError(suite.repo.Create(foreign))

	orgs, err := suite.repo.GetByUserID(owner.ID)

	suite.NoError(err)
	suite.Len(orgs, 2)
	for _, org := range orgs {
		suite.Equal(owner.ID, org.UserID)
	}
}

// TestGetByUserIDEmpty tests listing for a user with no organisations
func (suite *OrganisationRepositoryTestSuite) TestGetByUserIDEmpty() {
	owner := suite.createOwner()

	orgs, err := suite.repo.GetByUserID(owner.ID)

	suite.NoError(err)
	suite.Len(orgs, 0)
}

// TestOrganisationRepositoryTestSuite runs the test suite
func TestOrganisationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganisationRepositoryTestSuite))
}
