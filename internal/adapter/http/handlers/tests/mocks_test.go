package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	httpadapter "tasktracker/internal/adapter/http"
	"tasktracker/internal/adapter/http/handlers"
	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
	"tasktracker/pkg/translator"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) Hydrate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *taskServiceMock) List(ctx context.Context) []domain.Task {
	args := m.Called(ctx)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks
}

func (m *taskServiceMock) Get(ctx context.Context, id domain.TaskID) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Toggle(ctx context.Context, id domain.TaskID) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Update(ctx context.Context, id domain.TaskID, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Delete(ctx context.Context, id domain.TaskID) error {
	return m.Called(ctx, id).Error(0)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) CurrentUserID(ctx context.Context) (domain.UserID, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.UserID), args.Bool(1), args.Error(2)
}

func (m *userServiceMock) Signup(ctx context.Context, input domain.SignupInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) Login(ctx context.Context, email, password string) (domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *userServiceMock) Current(ctx context.Context) (domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) ChangePassword(ctx context.Context, current, next, confirm string) error {
	return m.Called(ctx, current, next, confirm).Error(0)
}

type preferenceServiceMock struct {
	mock.Mock
}

func (m *preferenceServiceMock) Theme(ctx context.Context) (domain.Theme, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Theme), args.Error(1)
}

func (m *preferenceServiceMock) SetTheme(ctx context.Context, theme domain.Theme) error {
	return m.Called(ctx, theme).Error(0)
}

type pingerMock struct {
	mock.Mock
}

func (m *pingerMock) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var (
	_ ports.TaskService       = (*taskServiceMock)(nil)
	_ ports.UserService       = (*userServiceMock)(nil)
	_ ports.PreferenceService = (*preferenceServiceMock)(nil)
	_ ports.Pinger            = (*pingerMock)(nil)
)

type testServer struct {
	router *gin.Engine
	tasks  *taskServiceMock
	users  *userServiceMock
	prefs  *preferenceServiceMock
	pinger *pingerMock
}

func newTestServer() *testServer {
	s := &testServer{
		router: gin.New(),
		tasks:  new(taskServiceMock),
		users:  new(userServiceMock),
		prefs:  new(preferenceServiceMock),
		pinger: new(pingerMock),
	}
	httpadapter.RegisterRoutes(s.router, s.users, httpadapter.Handlers{
		Health:      handlers.NewHealthHandler(s.pinger, "memory"),
		Tasks:       handlers.NewTaskHandler(s.tasks),
		Session:     handlers.NewSessionHandler(s.users),
		Preferences: handlers.NewPreferenceHandler(s.prefs),
	})
	return s
}

// signedInAs makes the session resolve to userID. An empty id means nobody
// is signed in.
func (s *testServer) signedInAs(userID domain.UserID) {
	s.users.On("CurrentUserID", mock.Anything).Return(userID, userID != "", nil).Maybe()
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	return s.doLang(method, target, body, translator.LanguageEn)
}

func (s *testServer) doLang(method, target, body, lang string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept-Language", lang)

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) assertExpectations(t mock.TestingT) {
	s.tasks.AssertExpectations(t)
	s.users.AssertExpectations(t)
	s.prefs.AssertExpectations(t)
	s.pinger.AssertExpectations(t)
}
