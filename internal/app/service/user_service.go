package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

type userRecord struct {
	ID       domain.UserID `json:"id"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Password string        `json:"password"`
}

// UserService backs the signup, login and settings flows and acts as the
// session context for everything else: the signed-in user is the record
// stored under "currentUser".
type UserService struct {
	store  ports.KVStore
	hasher *PasswordHasher
	logger *zap.Logger

	mu sync.Mutex
}

func NewUserService(store ports.KVStore, hasher *PasswordHasher, logger *zap.Logger) *UserService {
	if hasher == nil {
		hasher = NewPasswordHasher(DefaultBcryptCost)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{store: store, hasher: hasher, logger: logger}
}

func (s *UserService) Signup(ctx context.Context, input domain.SignupInput) (domain.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || !validPassword(input.Password) {
		return domain.User{}, domain.ErrInvalidUser
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsersLocked(ctx)
	if err != nil {
		return domain.User{}, err
	}
	for _, user := range users {
		if strings.EqualFold(strings.TrimSpace(user.Email), email) {
			return domain.User{}, domain.ErrEmailTaken
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return domain.User{}, err
	}
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.User{}, err
	}

	user := userRecord{ID: domain.UserID(id.String()), Name: name, Email: email, Password: hash}
	users = append(users, user)
	if err := s.saveJSONLocked(ctx, UsersKey, users); err != nil {
		return domain.User{}, err
	}

	s.logger.Info("user signed up", zap.String("user_id", string(user.ID)))
	return mapUserRecord(user), nil
}

// Login compares the credentials against the stored users and, on success,
// makes that user current.
func (s *UserService) Login(ctx context.Context, email, password string) (domain.User, error) {
	email = strings.TrimSpace(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsersLocked(ctx)
	if err != nil {
		return domain.User{}, err
	}

	for i, user := range users {
		if !strings.EqualFold(strings.TrimSpace(user.Email), email) {
			continue
		}
		ok, needsRehash := s.hasher.Verify(password, user.Password)
		if !ok {
			break
		}
		if needsRehash {
			users[i] = s.rehashLocked(ctx, users, i, password)
			user = users[i]
		}
		if err := s.saveJSONLocked(ctx, CurrentUserKey, user); err != nil {
			return domain.User{}, err
		}
		s.logger.Info("user logged in", zap.String("user_id", string(user.ID)))
		return mapUserRecord(user), nil
	}

	return domain.User{}, domain.ErrInvalidCredentials
}

// rehashLocked upgrades a plaintext record. Failing to do so does not fail the
// login; the record is simply left as it was.
func (s *UserService) rehashLocked(ctx context.Context, users []userRecord, i int, password string) userRecord {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Warn("failed to hash legacy password", zap.Error(err))
		return users[i]
	}

	upgraded := users[i]
	upgraded.Password = hash
	next := append([]userRecord(nil), users...)
	next[i] = upgraded
	if err := s.saveJSONLocked(ctx, UsersKey, next); err != nil {
		s.logger.Warn("failed to store upgraded password", zap.String("user_id", string(upgraded.ID)), zap.Error(err))
		return users[i]
	}
	return upgraded
}

func (s *UserService) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, CurrentUserKey); err != nil {
		return &domain.StoreError{Op: "write", Key: CurrentUserKey, Kind: domain.ErrWriteFailed, Err: err}
	}
	return nil
}

func (s *UserService) Current(ctx context.Context) (domain.User, error) {
	record, err := s.currentRecord(ctx)
	if err != nil {
		return domain.User{}, err
	}
	return mapUserRecord(record), nil
}

// CurrentUserID never reports a user when the session is missing or
// unreadable; an unreadable session is also returned as an error.
func (s *UserService) CurrentUserID(ctx context.Context) (domain.UserID, bool, error) {
	record, err := s.currentRecord(ctx)
	if errors.Is(err, domain.ErrNoSession) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return record.ID, true, nil
}

func (s *UserService) ChangePassword(ctx context.Context, current, next, confirm string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.currentRecord(ctx)
	if err != nil {
		return err
	}

	users, err := s.loadUsersLocked(ctx)
	if err != nil {
		return err
	}
	i := -1
	for j, user := range users {
		if user.ID == session.ID {
			i = j
			break
		}
	}
	if i < 0 {
		return domain.ErrNoSession
	}

	if ok, _ := s.hasher.Verify(current, users[i].Password); !ok {
		return domain.ErrInvalidCredentials
	}
	if !validPassword(next) {
		return domain.ErrInvalidUser
	}
	if next != confirm {
		return domain.ErrPasswordMismatch
	}

	hash, err := s.hasher.Hash(next)
	if err != nil {
		return err
	}
	users[i].Password = hash
	if err := s.saveJSONLocked(ctx, UsersKey, users); err != nil {
		return err
	}
	if err := s.saveJSONLocked(ctx, CurrentUserKey, users[i]); err != nil {
		return err
	}

	s.logger.Info("password changed", zap.String("user_id", string(users[i].ID)))
	return nil
}

func (s *UserService) currentRecord(ctx context.Context) (userRecord, error) {
	payload, found, err := s.store.Get(ctx, CurrentUserKey)
	if err != nil {
		return userRecord{}, &domain.StoreError{Op: "read", Key: CurrentUserKey, Kind: domain.ErrReadFailed, Err: err}
	}
	if !found || strings.TrimSpace(payload) == "" || strings.TrimSpace(payload) == "null" {
		return userRecord{}, domain.ErrNoSession
	}

	var record userRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return userRecord{}, &domain.StoreError{Op: "decode", Key: CurrentUserKey, Kind: domain.ErrParseFailed, Err: err}
	}
	if record.ID == "" {
		return userRecord{}, domain.ErrNoSession
	}
	return record, nil
}

func (s *UserService) loadUsersLocked(ctx context.Context) ([]userRecord, error) {
	payload, found, err := s.store.Get(ctx, UsersKey)
	if err != nil {
		return nil, &domain.StoreError{Op: "read", Key: UsersKey, Kind: domain.ErrReadFailed, Err: err}
	}
	if !found || strings.TrimSpace(payload) == "" {
		return make([]userRecord, 0), nil
	}

	var users []userRecord
	if err := json.Unmarshal([]byte(payload), &users); err != nil {
		return nil, &domain.StoreError{Op: "decode", Key: UsersKey, Kind: domain.ErrParseFailed, Err: err}
	}
	return users, nil
}

func (s *UserService) saveJSONLocked(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return &domain.StoreError{Op: "encode", Key: key, Kind: domain.ErrWriteFailed, Err: err}
	}
	if err := s.store.Set(ctx, key, string(payload)); err != nil {
		return &domain.StoreError{Op: "write", Key: key, Kind: domain.ErrWriteFailed, Err: err}
	}
	return nil
}

func mapUserRecord(record userRecord) domain.User {
	return domain.User{
		ID:       record.ID,
		Name:     record.Name,
		Email:    record.Email,
		Password: record.Password,
	}
}

var _ ports.UserService = (*UserService)(nil)
