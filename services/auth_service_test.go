package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/footyhub/footyhub/models"
	"github.com/footyhub/footyhub/repositories/mocks"
)

const testAddress = "203.0.113.7"

// AuthServiceTestSuite is a test suite for the AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	service         AuthService
	mockUserRepo    *mocks.MockUserRepository
	mockSessionRepo *mocks.MockSessionRepository
	recorder        *recorderStub
}

// SetupTest sets up the test suite before each test
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockUserRepo = mocks.NewMockUserRepository(suite.T())
	suite.mockSessionRepo = mocks.NewMockSessionRepository(suite.T())
	suite.recorder = &recorderStub{}

	suite.service = NewAuthService(
		suite.mockUserRepo,
		suite.mockSessionRepo,
		suite.recorder,
		bcrypt.MinCost,
	)
}

func (suite *AuthServiceTestSuite) storedUser(password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	suite.Require().NoError(err)
	return &models.User{ID: 42, Username: "alice", Email: "a@x.com", PasswordHash: string(hash)}
}

// TestLogin_MissingFields tests that empty credentials never reach the store
func (suite *AuthServiceTestSuite) TestLogin_MissingFields() {
	user, err := suite.service.Login(suite.ctx, testAddress, &models.LoginForm{Username: "alice"})

	assert.Nil(suite.T(), user)
	assert.ErrorIs(suite.T(), err, models.ErrValidation)
	assert.Empty(suite.T(), suite.recorder.all())
}

// TestLogin_UnknownUser tests that an unknown username fails and is audited without a user
func (suite *AuthServiceTestSuite) TestLogin_UnknownUser() {
	suite.mockUserRepo.EXPECT().GetByUsername(mock.Anything, "ghost").
		Return(nil, fmt.Errorf("user %q: %w", "ghost", models.ErrNotFound))

	user, err := suite.service.Login(suite.ctx, testAddress, &models.LoginForm{Username: "ghost", Password: "pw"})

	assert.Nil(suite.T(), user)
	assert.ErrorIs(suite.T(), err, ErrUserNotFound)
	assert.ErrorIs(suite.T(), err, models.ErrNotFound)

	entry := suite.recorder.last()
	assert.Equal(suite.T(), models.RequestLogin, entry.RequestType)
	assert.Equal(suite.T(), 401, entry.StatusCode)
	assert.Nil(suite.T(), entry.UserID)
	assert.Equal(suite.T(), "user does not exist", entry.ResponseData)
}

// TestLogin_WrongPassword tests that a bad password fails without binding the address
func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	stored := suite.storedUser("pw1")
	suite.mockUserRepo.EXPECT().GetByUsername(mock.Anything, "alice").Return(stored, nil)

	user, err := suite.service.Login(suite.ctx, testAddress, &models.LoginForm{Username: "alice", Password: "wrong"})

	assert.Nil(suite.T(), user)
	assert.ErrorIs(suite.T(), err, ErrInvalidCredential)
	assert.ErrorIs(suite.T(), err, models.ErrUnauthorized)
	assert.NotEqual(suite.T(), "wrong", stored.PasswordHash)
	assert.NotEqual(suite.T(), "pw1", stored.PasswordHash)

	entry := suite.recorder.last()
	assert.Equal(suite.T(), 401, entry.StatusCode)
	assert.Equal(suite.T(), int64(42), *entry.UserID)
	suite.mockSessionRepo.AssertNotCalled(suite.T(), "Bind", mock.Anything, mock.Anything, mock.Anything)
}

// TestLogin_Success tests that a good password binds the caller's address
func (suite *AuthServiceTestSuite) TestLogin_Success() {
	stored := suite.storedUser("pw1")
	suite.mockUserRepo.EXPECT().GetByUsername(mock.Anything, "alice").Return(stored, nil)
	suite.mockSessionRepo.EXPECT().Bind(mock.Anything, testAddress, int64(42)).Return(nil).Once()

	user, err := suite.service.Login(suite.ctx, testAddress, &models.LoginForm{Username: " alice ", Password: "pw1"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "alice", user.Username)

	entry := suite.recorder.last()
	assert.Equal(suite.T(), models.RequestLogin, entry.RequestType)
	assert.Equal(suite.T(), 200, entry.StatusCode)
}

// TestLogin_BindFailure tests that a session store failure surfaces
func (suite *AuthServiceTestSuite) TestLogin_BindFailure() {
	suite.mockUserRepo.EXPECT().GetByUsername(mock.Anything, "alice").Return(suite.storedUser("pw1"), nil)
	suite.mockSessionRepo.EXPECT().Bind(mock.Anything, testAddress, int64(42)).Return(errors.New("database is locked"))

	_, err := suite.service.Login(suite.ctx, testAddress, &models.LoginForm{Username: "alice", Password: "pw1"})

	assert.EqualError(suite.T(), err, "database is locked")
	assert.Empty(suite.T(), suite.recorder.all())
}

// TestSignup_UsernameTaken tests the duplicate username check
func (suite *AuthServiceTestSuite) TestSignup_UsernameTaken() {
	suite.mockUserRepo.EXPECT().GetByUsername(mock.Anything, "alice").Return(suite.storedUser("pw1"), nil)

	_, err := suite.service.Signup(suite.ctx, testAddress, &models.SignupForm{Username: "alice", Email: "a@x.com", Password: "pw2"})

	assert.ErrorIs(suite.T(), err, ErrUserAlreadyExists)
	assert.ErrorIs(suite.T(), err, models.ErrConflict)
}

// TestSignup_InsertRace tests that a unique violation on insert is reported as a taken username
func (suite *AuthServiceTestSuite) TestSignup_InsertRace() {
	suite.mockUserRepo.EXPECT().GetByUsername(mock.Anything, "alice").Return(nil, models.ErrNotFound)
	suite.mockUserRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.User")).
		Return(fmt.Errorf("username already exists: %w", models.ErrConflict))

	_, err := suite.service.Signup(suite.ctx, testAddress, &models.SignupForm{Username: "alice", Email: "a@x.com", Password: "pw1"})

	assert.ErrorIs(suite.T(), err, ErrUserAlreadyExists)
}

// TestSignup_Success tests that signup stores a hash and binds the address
func (suite *AuthServiceTestSuite) TestSignup_Success() {
	var created *models.User
	suite.mockUserRepo.EXPECT().GetByUsername(mock.Anything, "alice").Return(nil, models.ErrNotFound)
	suite.mockUserRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.User")).
		Run(func(ctx context.Context, user *models.User) {
			user.ID = 5
			created = user
		}).
		Return(nil)
	suite.mockSessionRepo.EXPECT().Bind(mock.Anything, testAddress, int64(5)).Return(nil)

	user, err := suite.service.Signup(suite.ctx, testAddress, &models.SignupForm{Username: "alice", Email: "a@x.com", Password: "pw1"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(5), user.ID)
	assert.False(suite.T(), created.IsAdmin)
	assert.NotEqual(suite.T(), "pw1", created.PasswordHash)
	assert.NoError(suite.T(), bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("pw1")))

	entry := suite.recorder.last()
	assert.Equal(suite.T(), models.RequestSignup, entry.RequestType)
	assert.Equal(suite.T(), 200, entry.StatusCode)
}

// TestSignup_InvalidEmail tests form validation
func (suite *AuthServiceTestSuite) TestSignup_InvalidEmail() {
	_, err := suite.service.Signup(suite.ctx, testAddress, &models.SignupForm{Username: "alice", Email: "nope", Password: "pw1"})

	var errs models.ValidationErrors
	suite.Require().True(errors.As(err, &errs))
	assert.Equal(suite.T(), "email", errs[0].Field)
}

// TestLogout tests that logout unbinds and audits without a user
func (suite *AuthServiceTestSuite) TestLogout() {
	suite.mockSessionRepo.EXPECT().Unbind(mock.Anything, testAddress).Return(nil)

	assert.NoError(suite.T(), suite.service.Logout(suite.ctx, testAddress))

	entry := suite.recorder.last()
	assert.Equal(suite.T(), models.RequestLogout, entry.RequestType)
	assert.Nil(suite.T(), entry.UserID)
}

// TestLoginExternal_FirstLogin tests that SSO creates the account on first use
func (suite *AuthServiceTestSuite) TestLoginExternal_FirstLogin() {
	suite.mockUserRepo.EXPECT().GetByUsername(mock.Anything, "carol").Return(nil, models.ErrNotFound)
	suite.mockUserRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.User")).
		Run(func(ctx context.Context, user *models.User) { user.ID = 9 }).
		Return(nil)
	suite.mockSessionRepo.EXPECT().Bind(mock.Anything, testAddress, int64(9)).Return(nil)

	user, err := suite.service.LoginExternal(suite.ctx, testAddress, "carol", "carol@example.com")

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "carol@example.com", user.Email)
	assert.NotEmpty(suite.T(), user.PasswordHash)
	assert.Equal(suite.T(), models.RequestSSOLogin, suite.recorder.last().RequestType)
}

// TestLoginExternal_ExistingUser tests that SSO reuses an existing account
func (suite *AuthServiceTestSuite) TestLoginExternal_ExistingUser() {
	suite.mockUserRepo.EXPECT().GetByUsername(mock.Anything, "alice").Return(suite.storedUser("pw1"), nil)
	suite.mockSessionRepo.EXPECT().Bind(mock.Anything, testAddress, int64(42)).Return(nil)

	user, err := suite.service.LoginExternal(suite.ctx, testAddress, "alice", "")

	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(42), user.ID)
}

// TestAuthServiceTestSuite runs the auth service test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
