package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/domain/model/user"
	"jobboard/internal/pkg/errs"
)

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand("newuser", "s3cret")
	require.NoError(t, err)

	var capturedAccount *user.User
	mockRepo := new(MockUserRepository)
	mockUoW := new(MockUserUoW)
	mockFactory := new(MockUserUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("UserRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.MatchedBy(func(u *user.User) bool {
			capturedAccount = u
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterUserCommandHandler(mockFactory, bcrypt.MinCost)

	// Act
	created, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotNil(t, capturedAccount)
	assert.Equal(t, "newuser", capturedAccount.Username())
	assert.False(t, capturedAccount.IsAdmin(), "registration must never grant admin")

	// The stored hash must verify against the original password.
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(capturedAccount.PasswordHash()), []byte("s3cret")))

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_DuplicateUsername(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand("taken", "s3cret")
	require.NoError(t, err)

	duplicate := errs.NewValueIsInvalidError("username")
	mockRepo := new(MockUserRepository)
	mockUoW := new(MockUserUoW)
	mockFactory := new(MockUserUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("UserRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*user.User")).Return(duplicate).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterUserCommandHandler(mockFactory, bcrypt.MinCost)

	// Act
	created, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Nil(t, created)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestNewRegisterUserCommand_RejectsShortPassword(t *testing.T) {
	// Act
	_, err := commands.NewRegisterUserCommand("newuser", "abcd")

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewRegisterUserCommand_RequiresUsername(t *testing.T) {
	// Act
	_, err := commands.NewRegisterUserCommand("", "s3cret")

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
