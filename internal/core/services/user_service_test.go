package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/crypto_wallet_ledger/internal/apperrors"
	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/crypto_wallet_ledger/internal/core/services"
	"github.com/SscSPs/crypto_wallet_ledger/internal/dto"
	"github.com/SscSPs/crypto_wallet_ledger/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "alice" && !u.CreatedAt.IsZero()
	})).Return(&domain.User{UserID: 1, Username: "alice"}, nil).Once()

	user, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{Username: " alice "})

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal(int64(1), user.UserID)
	suite.Equal("alice", user.Username)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_InvalidUsername() {
	for _, name := range []string{"", "ab", "  x  ", strings.Repeat("u", 65), "日本", strings.Repeat("é", 65)} {
		user, err := suite.service.CreateUser(context.Background(), dto.CreateUserRequest{Username: name})
		suite.Nil(user)
		suite.ErrorIs(err, apperrors.ErrValidation, "username %q", name)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_MultiByteUsername() {
	ctx := context.Background()

	for _, name := range []string{"名前です", strings.Repeat("é", services.MaxUsernameLength)} {
		username := name
		suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
			return u.Username == username
		})).Return(&domain.User{UserID: 9, Username: username}, nil).Once()

		user, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{Username: name})

		suite.Require().NoError(err, "username %q", name)
		suite.Equal(username, user.Username)
	}
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_Duplicate() {
	ctx := context.Background()

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil, apperrors.ErrDuplicate).Once()

	user, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{Username: "alice"})

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByID() {
	ctx := context.Background()
	expected := &domain.User{UserID: 4, Username: "bob"}

	suite.mockRepo.On("FindUserByID", ctx, int64(4)).Return(expected, nil).Once()
	suite.mockRepo.On("FindUserByID", ctx, int64(5)).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, 4)
	suite.Require().NoError(err)
	suite.Equal(expected, user)

	user, err = suite.service.GetUserByID(ctx, 5)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestListUsers_FirstPageWithMore() {
	ctx := context.Background()
	page := []domain.User{{UserID: 1}, {UserID: 2}, {UserID: 3}}

	// limit+1 rows are requested to detect a following page.
	suite.mockRepo.On("FindUsers", ctx, int64(0), 3).Return(page, nil).Once()

	users, next, err := suite.service.ListUsers(ctx, dto.ListUsersParams{Limit: 2})

	suite.Require().NoError(err)
	suite.Len(users, 2)
	suite.Require().NotNil(next)
	lastID, err := pagination.DecodeIDToken(*next)
	suite.Require().NoError(err)
	suite.Equal(int64(2), lastID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestListUsers_LastPage() {
	ctx := context.Background()
	token := pagination.EncodeIDToken(2)

	suite.mockRepo.On("FindUsers", ctx, int64(2), 3).Return([]domain.User{{UserID: 3}}, nil).Once()

	users, next, err := suite.service.ListUsers(ctx, dto.ListUsersParams{Limit: 2, NextToken: token})

	suite.Require().NoError(err)
	suite.Len(users, 1)
	suite.Nil(next)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestListUsers_BadToken() {
	users, next, err := suite.service.ListUsers(context.Background(), dto.ListUsersParams{Limit: 2, NextToken: "%%%"})

	suite.Nil(users)
	suite.Nil(next)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestListUsers_RepoError() {
	ctx := context.Background()

	suite.mockRepo.On("FindUsers", ctx, int64(0), mock.Anything).Return(nil, assert.AnError).Once()

	users, _, err := suite.service.ListUsers(ctx, dto.ListUsersParams{})

	suite.Nil(users)
	suite.ErrorIs(err, assert.AnError)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
