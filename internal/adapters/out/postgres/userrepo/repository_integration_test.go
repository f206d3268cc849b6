package userrepo_test

import (
	"context"
	"testing"
	"time"

	"lytefood/internal/adapters/out/postgres/userrepo"
	"lytefood/internal/core/domain/model/user"
	"lytefood/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UserRepositoryIntegrationTestSuite exercises account persistence against a
// real PostgreSQL instance, including the unique email constraint and the
// reset token lifecycle.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	// TranslateError maps the unique violation to gorm.ErrDuplicatedKey,
	// which the repository classifies as a state conflict.
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&userrepo.UserDTO{},
		&userrepo.ResetTokenDTO{},
	))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE users, password_reset_tokens").Error)
	suite.repository = userrepo.NewGormUserRepository(suite.db)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) newUser(email string) *user.User {
	aggregate, err := user.NewUser(email, "$2a$10$hash", user.Profile{
		FirstName: "Awa",
		LastName:  "Sow",
	})
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_BindsGeneratedID() {
	ctx := context.Background()
	aggregate := suite.newUser("awa@example.com")

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))
	suite.Require().NotZero(aggregate.ID())

	loaded, err := suite.repository.GetByEmail(ctx, "awa@example.com")
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), loaded.ID())
	suite.True(loaded.IsActive())
	suite.False(loaded.IsAdmin())
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_ReturnsStateConflict() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newUser("dup@example.com")))

	err := suite.repository.Add(ctx, suite.newUser("dup@example.com"))
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrStateConflict)
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_PersistsRoleChanges() {
	ctx := context.Background()
	aggregate := suite.newUser("roles@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	aggregate.SetLivreur(true)
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsLivreur())
}

func (suite *UserRepositoryIntegrationTestSuite) TestReplaceResetToken_KeepsOneLiveCode() {
	ctx := context.Background()
	aggregate := suite.newUser("reset@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	now := time.Now().UTC()
	first, err := user.NewPasswordResetToken(aggregate.ID(), now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.ReplaceResetToken(ctx, first))

	second, err := user.NewPasswordResetToken(aggregate.ID(), now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.ReplaceResetToken(ctx, second))

	var count int64
	suite.Require().NoError(suite.db.Model(&userrepo.ResetTokenDTO{}).
		Where("user_id = ?", aggregate.ID()).Count(&count).Error)
	suite.Equal(int64(1), count)

	stored, err := suite.repository.GetResetToken(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(second.Code(), stored.Code())
}

func (suite *UserRepositoryIntegrationTestSuite) TestDeleteResetTokens_RemovesStoredCodes() {
	ctx := context.Background()
	aggregate := suite.newUser("cleanup@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	token, err := user.NewPasswordResetToken(aggregate.ID(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.ReplaceResetToken(ctx, token))

	suite.Require().NoError(suite.repository.DeleteResetTokens(ctx, aggregate.ID()))

	_, err = suite.repository.GetResetToken(ctx, aggregate.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
