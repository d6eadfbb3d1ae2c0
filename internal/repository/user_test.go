//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"

	"food-donation-backend/internal/database/models"
	apperrors "food-donation-backend/internal/errors"
	"food-donation-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository against a real Postgres
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.Create()

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
	suite.NotZero(user.CreatedAt)
}

// TestCreateDuplicateEmail tests that the unique index on email is enforced
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	user1 := suite.factories.User.WithEmail("dup@example.com")
	suite.NoError(suite.repo.Create(user1))

	user2 := suite.factories.User.WithEmail("dup@example.com")
	err := suite.repo.Create(user2)

	suite.ErrorIs(err, apperrors.ErrEmailTaken)
}

// TestCreateConcurrentSameEmail tests that two simultaneous registrations with
// the same address produce exactly one row; the loser surfaces the taken-email
// error rather than a second user.
func (suite *UserRepositoryTestSuite) TestCreateConcurrentSameEmail() {
	const attempts = 2
	start := make(chan struct{})
	errs := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		user := suite.factories.User.WithEmail("race@example.com")
		go func() {
			<-start
			errs <- suite.repo.Create(user)
		}()
	}
	close(start)

	var successes, taken int
	for i := 0; i < attempts; i++ {
		switch err := <-errs; {
		case err == nil:
			successes++
		case errors.Is(err, apperrors.ErrEmailTaken):
			taken++
		default:
			suite.FailNowf("unexpected create error", "%v", err)
		}
	}

	suite.Equal(1, successes)
	suite.Equal(1, taken)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.User{}).
		Where("email = ?", "race@example.com").
		Count(&count).Error)
	suite.Equal(int64(1), count)
}

// TestGetByID tests retrieving a user by ID
func (suite *UserRepositoryTestSuite) TestGetByID() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	retrieved, err := suite.repo.GetByID(user.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(user.ID, retrieved.ID)
	suite.Equal(user.Email, retrieved.Email)
}

// TestGetByIDNotFound tests retrieving a non-existent user
func (suite *UserRepositoryTestSuite) TestGetByIDNotFound() {
	user, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(user)
}

// TestGetByEmail tests retrieving a user by email
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.factories.User.WithEmail("lookup@example.com")
	suite.NoError(suite.repo.Create(user))

	retrieved, err := suite.repo.GetByEmail("lookup@example.com")

	suite.NoError(err)
	suite.Equal(user.ID, retrieved.ID)
}

// TestGetByEmailNotFound tests retrieving an unknown email
func (suite *UserRepositoryTestSuite) TestGetByEmailNotFound() {
	user, err := suite.repo.GetByEmail("nobody@example.com")

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(user)
}

// TestVerifyByToken tests the conditional verification update
func (suite *UserRepositoryTestSuite) TestVerifyByToken() {
	user := suite.factories.User.WithEmailToken("a-known-token")
	suite.NoError(suite.repo.Create(user))

	rows, err := suite.repo.VerifyByToken("a-known-token")

	suite.NoError(err)
	suite.Equal(int64(1), rows)

	retrieved, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.True(retrieved.IsVerified)
	suite.Equal("a-known-token", retrieved.EmailToken)
}

// TestVerifyByTokenRepeatable tests that re-using the link still matches
func (suite *UserRepositoryTestSuite) TestVerifyByTokenRepeatable() {
	user := suite.factories.User.WithEmailToken("repeat-token")
	suite.NoError(suite.repo.Create(user))

	rows, err := suite.repo.VerifyByToken("repeat-token")
	suite.NoError(err)
	suite.Equal(int64(1), rows)

	rows, err = suite.repo.VerifyByToken("repeat-token")
	suite.NoError(err)
	suite.Equal(int64(1), rows)
}

// TestVerifyByTokenUnknown tests that an unknown token affects no rows
func (suite *UserRepositoryTestSuite) TestVerifyByTokenUnknown() {
	user := suite.factories.User.WithEmailToken("real-token")
	suite.NoError(suite.repo.Create(user))

	rows, err := suite.repo.VerifyByToken("bogus-token")

	suite.NoError(err)
	suite.Equal(int64(0), rows)

	retrieved, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.False(retrieved.IsVerified)
}

// TestUpdate tests saving changes to a user
func (suite *UserRepositoryTestSuite) TestUpdate() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	user.EmailToken = "replacement-token"
	suite.NoError(suite.repo.Update(user))

	retrieved, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal("replacement-token", retrieved.EmailToken)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
