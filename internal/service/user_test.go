package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/motodeal/motodeal-server/internal/mocks"
	"github.com/motodeal/motodeal-server/internal/model"
	"github.com/motodeal/motodeal-server/internal/testutil"
	"github.com/motodeal/motodeal-server/internal/validation"
)

func TestUser_Create_Local(t *testing.T) {
	ctx := context.Background()
	store := &mocks.UserStore{}
	tokens := &mocks.TokenManager{}

	store.On("ExistsWithEmail", mock.Anything, "ann@x.com").Return(false, nil)
	store.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "ann@x.com" && u.Provider == model.ProviderLocal &&
			u.Role == DefaultRole && u.Salt != "" && u.DerivedKey != ""
	})).Return(model.User{ID: uuid.New(), Email: "ann@x.com"}, nil)

	s := NewUser(store, tokens, testutil.MakeNoopLogger())

	created, err := s.Create(ctx, CreateUserParams{Name: "Ann", Email: "Ann@X.com", Password: "pw123", Provider: model.ProviderLocal})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	store.AssertExpectations(t)
}

func TestUser_Create_EndToEndAuthenticate(t *testing.T) {
	ctx := context.Background()
	store := &mocks.UserStore{}
	tokens := &mocks.TokenManager{}

	var persisted model.User
	store.On("ExistsWithEmail", mock.Anything, "ann@x.com").Return(false, nil)
	store.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		persisted = args.Get(1).(model.User)
	}).Return(model.User{}, nil)

	s := NewUser(store, tokens, testutil.MakeNoopLogger())
	_, err := s.Create(ctx, CreateUserParams{Name: "Ann", Email: "ann@x.com", Password: "pw123", Provider: model.ProviderLocal})
	require.NoError(t, err)

	assert.True(t, persisted.Authenticate("pw123"))
	assert.False(t, persisted.Authenticate("wrong"))
}

func TestUser_Create_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := &mocks.UserStore{}
	tokens := &mocks.TokenManager{}

	// Stored as lower case; a case-variant duplicate must still collide.
	store.On("ExistsWithEmail", mock.Anything, "a@b.com").Return(true, nil)

	s := NewUser(store, tokens, testutil.MakeNoopLogger())

	_, err := s.Create(ctx, CreateUserParams{Name: "Ann", Email: "A@B.com", Password: "pw123"})
	require.Error(t, err)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{validation.ReasonEmailTaken}, verr.Reasons)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUser_Create_Federated(t *testing.T) {
	ctx := context.Background()
	store := &mocks.UserStore{}
	tokens := &mocks.TokenManager{}

	store.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Provider == model.ProviderGitHub && u.Email == "" && u.DerivedKey == ""
	})).Return(model.User{ID: uuid.New()}, nil)

	s := NewUser(store, tokens, testutil.MakeNoopLogger())

	_, err := s.Create(ctx, CreateUserParams{Name: "Bo", Provider: model.ProviderGitHub})
	require.NoError(t, err)
	store.AssertNotCalled(t, "ExistsWithEmail", mock.Anything, mock.Anything)
}

func TestUser_Create_ValidationAggregatesReasons(t *testing.T) {
	ctx := context.Background()
	store := &mocks.UserStore{}
	tokens := &mocks.TokenManager{}

	s := NewUser(store, tokens, testutil.MakeNoopLogger())

	_, err := s.Create(ctx, CreateUserParams{})
	require.Error(t, err)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		validation.ReasonNameBlank,
		validation.ReasonEmailBlank,
		validation.ReasonPasswordBlank,
	}, verr.Reasons)
}

func TestUser_Login_Success(t *testing.T) {
	ctx := context.Background()
	store := &mocks.UserStore{}
	tokens := &mocks.TokenManager{}

	user := model.User{ID: uuid.New(), Name: "Ann", Email: "ann@x.com", Provider: model.ProviderLocal, Role: "user"}
	require.NoError(t, user.SetSecret("pw123"))

	store.On("GetByEmail", mock.Anything, "ann@x.com").Return(user, nil)
	tokens.On("Generate", user.Token()).Return("signed", nil)

	s := NewUser(store, tokens, testutil.MakeNoopLogger())

	signed, got, err := s.Login(ctx, "Ann@X.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "signed", signed)
	assert.Equal(t, user.ID, got.ID)
}

func TestUser_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	store := &mocks.UserStore{}
	tokens := &mocks.TokenManager{}

	user := model.User{ID: uuid.New(), Email: "ann@x.com"}
	require.NoError(t, user.SetSecret("pw123"))
	store.On("GetByEmail", mock.Anything, "ann@x.com").Return(user, nil)

	s := NewUser(store, tokens, testutil.MakeNoopLogger())

	_, _, err := s.Login(ctx, "ann@x.com", "wrong")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "Generate", mock.Anything)
}

func TestUser_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	store := &mocks.UserStore{}
	tokens := &mocks.TokenManager{}

	store.On("GetByEmail", mock.Anything, "ghost@x.com").Return(model.User{}, model.ErrNotFound)

	s := NewUser(store, tokens, testutil.MakeNoopLogger())

	_, _, err := s.Login(ctx, "ghost@x.com", "pw123")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestUser_Login_FederatedUserNeverAuthenticates(t *testing.T) {
	ctx := context.Background()
	store := &mocks.UserStore{}
	tokens := &mocks.TokenManager{}

	user := model.User{ID: uuid.New(), Email: "bo@x.com", Provider: model.ProviderGitHub}
	store.On("GetByEmail", mock.Anything, "bo@x.com").Return(user, nil)

	s := NewUser(store, tokens, testutil.MakeNoopLogger())

	_, _, err := s.Login(ctx, "bo@x.com", "")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestUser_ChangePassword(t *testing.T) {
	ctx := context.Background()
	store := &mocks.UserStore{}
	tokens := &mocks.TokenManager{}

	user := model.User{ID: uuid.New(), Name: "Ann", Email: "ann@x.com", Provider: model.ProviderLocal, Role: "user"}
	require.NoError(t, user.SetSecret("old-pw"))
	oldSalt, oldKey := user.Salt, user.DerivedKey

	store.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	store.On("Update", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Salt != oldSalt && u.DerivedKey != oldKey
	})).Return(user, nil)

	s := NewUser(store, tokens, testutil.MakeNoopLogger())

	_, err := s.ChangePassword(ctx, user.ID, "new-pw")
	require.NoError(t, err)
	// Email unchanged, so the uniqueness collaborator is never consulted.
	store.AssertNotCalled(t, "ExistsWithEmail", mock.Anything, mock.Anything)
	store.AssertExpectations(t)
}

func TestUser_Update_EmailChangeChecked(t *testing.T) {
	ctx := context.Background()
	store := &mocks.UserStore{}
	tokens := &mocks.TokenManager{}

	user := model.User{ID: uuid.New(), Name: "Ann", Email: "ann@x.com", Provider: model.ProviderLocal, Role: "user"}
	require.NoError(t, user.SetSecret("pw123"))

	store.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	store.On("ExistsWithEmail", mock.Anything, "taken@x.com").Return(true, nil)

	s := NewUser(store, tokens, testutil.MakeNoopLogger())

	_, err := s.Update(ctx, user.ID, UpdateUserParams{Email: "Taken@X.com"})
	require.Error(t, err)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{validation.ReasonEmailTaken}, verr.Reasons)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUser_Delete(t *testing.T) {
	ctx := context.Background()
	store := &mocks.UserStore{}
	tokens := &mocks.TokenManager{}

	id := uuid.New()
	store.On("Delete", mock.Anything, id).Return(nil)

	s := NewUser(store, tokens, testutil.MakeNoopLogger())
	require.NoError(t, s.Delete(ctx, id))
}

func TestUser_Get_StoreFailure(t *testing.T) {
	ctx := context.Background()
	store := &mocks.UserStore{}
	tokens := &mocks.TokenManager{}

	id := uuid.New()
	store.On("GetByID", mock.Anything, id).Return(model.User{}, errors.New("boom"))

	s := NewUser(store, tokens, testutil.MakeNoopLogger())
	_, err := s.Get(ctx, id)
	require.Error(t, err)
}
