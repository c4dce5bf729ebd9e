//go:build integration
// +build integration

package repository

import (
	"testing"

	"brain-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factory       *testutils.UserFactory
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewUserFactory()
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
	user := suite.factory.WithUsername("alice")

	err := suite.repo.Create(user)
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
	suite.False(user.CreatedAt.IsZero())
}

// TestCreateDuplicateUsername tests that usernames are unique
func (suite *UserRepositoryTestSuite) TestCreateDuplicateUsername() {
	suite.Require().NoError(suite.repo.Create(suite.factory.WithUsername("alice")))

	err := suite.repo.Create(suite.factory.WithUsername("alice"))
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByUsername tests exact, case-sensitive username lookup
func (suite *UserRepositoryTestSuite) TestGetByUsername() {
	user := suite.factory.WithUsername("alice")
	suite.Require().NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByUsername("alice")
	suite.NoError(err)
	suite.Equal(user.ID, found.ID)
	suite.Equal(user.PasswordHash, found.PasswordHash)

	_, err = suite.repo.GetByUsername("ALICE")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByID tests retrieving a user by ID
func (suite *UserRepositoryTestSuite) TestGetByID() {
	user := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal(user.Username, found.Username)

	_, err = suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// Run the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
