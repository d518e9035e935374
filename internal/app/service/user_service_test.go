package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tasktracker/internal/core/domain"
)

func newTestUserService(store *fakeStore) *UserService {
	return NewUserService(store, NewPasswordHasher(bcrypt.MinCost), nil)
}

func storedUsers(t *testing.T, store *fakeStore) []userRecord {
	t.Helper()
	payload, ok := store.value(UsersKey)
	require.True(t, ok)
	var users []userRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &users))
	return users
}

func TestUserService_SignupLoginLogout(t *testing.T) {
	store := newFakeStore()
	s := newTestUserService(store)
	ctx := context.Background()

	user, err := s.Signup(ctx, domain.SignupInput{Name: " Alice ", Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "Alice", user.Name)

	users := storedUsers(t, store)
	require.Len(t, users, 1)
	require.True(t, IsHashed(users[0].Password))
	require.NotEqual(t, "secret", users[0].Password)

	_, ok, err := s.CurrentUserID(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	loggedIn, err := s.Login(ctx, "ALICE@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, user.ID, loggedIn.ID)

	id, ok, err := s.CurrentUserID(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, user.ID, id)

	current, err := s.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", current.Email)

	require.NoError(t, s.Logout(ctx))
	_, err = s.Current(ctx)
	require.ErrorIs(t, err, domain.ErrNoSession)
}

func TestUserService_Signup_Rejects(t *testing.T) {
	store := newFakeStore()
	s := newTestUserService(store)
	ctx := context.Background()

	_, err := s.Signup(ctx, domain.SignupInput{Name: "Alice", Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)

	_, err = s.Signup(ctx, domain.SignupInput{Name: "Other Alice", Email: " Alice@Example.com ", Password: "x"})
	require.ErrorIs(t, err, domain.ErrEmailTaken)

	_, err = s.Signup(ctx, domain.SignupInput{Name: "  ", Email: "bob@example.com", Password: "x"})
	require.ErrorIs(t, err, domain.ErrInvalidUser)

	_, err = s.Signup(ctx, domain.SignupInput{Name: "Bob", Email: "bob@example.com"})
	require.ErrorIs(t, err, domain.ErrInvalidUser)

	require.Len(t, storedUsers(t, store), 1)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	s := newTestUserService(newFakeStore())
	ctx := context.Background()
	_, err := s.Signup(ctx, domain.SignupInput{Name: "Alice", Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)

	_, err = s.Login(ctx, "alice@example.com", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = s.Login(ctx, "nobody@example.com", "secret")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, ok, err := s.CurrentUserID(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestUserService_Login_UpgradesLegacyPassword(t *testing.T) {
	store := newFakeStore()
	store.put(UsersKey, `[{"id":1699999999999,"name":"Old","email":"old@example.com","password":"plain"}]`)
	s := newTestUserService(store)

	user, err := s.Login(context.Background(), "old@example.com", "plain")
	require.NoError(t, err)
	require.Equal(t, domain.UserID("1699999999999"), user.ID)

	users := storedUsers(t, store)
	require.True(t, IsHashed(users[0].Password))

	_, err = s.Login(context.Background(), "old@example.com", "plain")
	require.NoError(t, err)
}

func TestUserService_ChangePassword(t *testing.T) {
	s := newTestUserService(newFakeStore())
	ctx := context.Background()
	_, err := s.Signup(ctx, domain.SignupInput{Name: "Alice", Email: "alice@example.com", Password: "old"})
	require.NoError(t, err)

	require.ErrorIs(t, s.ChangePassword(ctx, "old", "new", "new"), domain.ErrNoSession)

	_, err = s.Login(ctx, "alice@example.com", "old")
	require.NoError(t, err)

	require.ErrorIs(t, s.ChangePassword(ctx, "wrong", "new", "new"), domain.ErrInvalidCredentials)
	require.ErrorIs(t, s.ChangePassword(ctx, "old", "new", "typo"), domain.ErrPasswordMismatch)
	require.ErrorIs(t, s.ChangePassword(ctx, "old", "", ""), domain.ErrInvalidUser)

	require.NoError(t, s.ChangePassword(ctx, "old", "new", "new"))

	_, err = s.Login(ctx, "alice@example.com", "old")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = s.Login(ctx, "alice@example.com", "new")
	require.NoError(t, err)
}

func TestUserService_CurrentUserID_Errors(t *testing.T) {
	store := newFakeStore()
	store.put(CurrentUserKey, `{broken`)
	s := newTestUserService(store)

	_, ok, err := s.CurrentUserID(context.Background())
	require.ErrorIs(t, err, domain.ErrParseFailed)
	require.False(t, ok)

	store.put(CurrentUserKey, `null`)
	_, ok, err = s.CurrentUserID(context.Background())
	require.NoError(t, err)
	require.False(t, ok)

	cause := errors.New("offline")
	store.getErr = cause
	_, _, err = s.CurrentUserID(context.Background())
	require.ErrorIs(t, err, domain.ErrReadFailed)
	require.ErrorIs(t, err, cause)
}

func TestUserService_RejectsPasswordsOverTheByteLimit(t *testing.T) {
	store := newFakeStore()
	s := newTestUserService(store)
	ctx := context.Background()
	tooLong := strings.Repeat("é", MaxPasswordBytes)

	_, err := s.Signup(ctx, domain.SignupInput{Name: "Alice", Email: "alice@example.com", Password: tooLong})
	require.ErrorIs(t, err, domain.ErrInvalidUser)
	_, found := store.value(UsersKey)
	require.False(t, found)

	_, err = s.Signup(ctx, domain.SignupInput{Name: "Alice", Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)
	_, err = s.Login(ctx, "alice@example.com", "secret")
	require.NoError(t, err)

	require.ErrorIs(t, s.ChangePassword(ctx, "secret", tooLong, tooLong), domain.ErrInvalidUser)
	_, err = s.Login(ctx, "alice@example.com", "secret")
	require.NoError(t, err)
}
