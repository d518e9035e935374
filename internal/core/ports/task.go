package ports

import (
	"context"

	"tasktracker/internal/core/domain"
)

// KVStore is the durable key-value boundary. Get reports found=false for an
// absent key; that is not an error.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Pinger is implemented by stores that can report their health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SessionProvider supplies the id of the signed-in user, if any.
type SessionProvider interface {
	CurrentUserID(ctx context.Context) (domain.UserID, bool, error)
}

type TaskService interface {
	Hydrate(ctx context.Context) error
	List(ctx context.Context) []domain.Task
	Get(ctx context.Context, id domain.TaskID) (domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	Toggle(ctx context.Context, id domain.TaskID) (domain.Task, error)
	Update(ctx context.Context, id domain.TaskID, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, id domain.TaskID) error
}

type UserService interface {
	SessionProvider
	Signup(ctx context.Context, input domain.SignupInput) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (domain.User, error)
	ChangePassword(ctx context.Context, current, next, confirm string) error
}

type PreferenceService interface {
	Theme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, theme domain.Theme) error
}
