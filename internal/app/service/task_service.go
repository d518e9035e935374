package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

// TaskService owns the task collection. Every mutation holds mu until the
// whole collection has been written back, so the store always converges to
// memory before the next mutation starts.
type TaskService struct {
	store  ports.KVStore
	logger *zap.Logger
	now    func() time.Time
	newID  func() (domain.TaskID, error)

	mu    sync.Mutex
	tasks []domain.Task
}

func NewTaskService(store ports.KVStore, logger *zap.Logger) *TaskService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{
		store:  store,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  newTaskID,
		tasks:  make([]domain.Task, 0),
	}
}

func newTaskID() (domain.TaskID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return domain.TaskID(id.String()), nil
}

// Hydrate replaces the in-memory collection with the stored one. A missing key
// is an empty collection. A corrupt payload is set aside under "tasks.corrupt",
// the collection starts empty and an error wrapping ErrParseFailed is returned
// for the caller to report.
func (s *TaskService) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = make([]domain.Task, 0)

	payload, found, err := s.store.Get(ctx, TasksKey)
	if err != nil {
		return &domain.StoreError{Op: "read", Key: TasksKey, Kind: domain.ErrReadFailed, Err: err}
	}
	if !found || strings.TrimSpace(payload) == "" {
		s.logger.Info("no stored tasks, starting empty")
		return nil
	}

	tasks, err := decodeTasks(payload)
	if err != nil {
		s.logger.Warn("stored tasks are corrupt, starting empty", zap.Error(err))
		if setErr := s.store.Set(ctx, TasksKey+corruptSuffix, payload); setErr != nil {
			s.logger.Warn("failed to keep corrupt tasks payload", zap.Error(setErr))
		}
		return &domain.StoreError{Op: "decode", Key: TasksKey, Kind: domain.ErrParseFailed, Err: err}
	}

	s.tasks = tasks
	s.logger.Info("tasks hydrated", zap.Int("count", len(tasks)))
	return nil
}

// List returns a copy of the collection in insertion order.
func (s *TaskService) List(_ context.Context) []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task.Clone())
	}
	return tasks
}

func (s *TaskService) Get(_ context.Context, id domain.TaskID) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return s.tasks[i].Clone(), nil
}

// Create validates and appends a task. When persisting fails the task stays in
// memory and is returned together with an error wrapping ErrWriteFailed.
func (s *TaskService) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Task{}, domain.ErrEmptyTitle
	}
	if input.UserID == "" {
		return domain.Task{}, domain.ErrNoSession
	}

	priority, err := domain.ParsePriority(string(input.Priority))
	if err != nil {
		return domain.Task{}, err
	}
	status, err := domain.ParseTaskStatus(string(input.Status))
	if err != nil {
		return domain.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextIDLocked()
	if err != nil {
		return domain.Task{}, fmt.Errorf("generate task id: %w", err)
	}

	now := s.now()
	task := domain.Task{
		ID:          id,
		Title:       title,
		Description: input.Description,
		Priority:    priority,
		Status:      status,
		DueDate:     now,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		AssignedTo:  input.UserID,
		UserID:      input.UserID,
		TaskType:    input.TaskType,
		CreatedAt:   now,
		Image:       input.Image,
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}
	if input.AssignedTo != nil && *input.AssignedTo != "" {
		task.AssignedTo = *input.AssignedTo
	}
	task = task.Clone()

	s.tasks = append(s.tasks, task)
	s.logger.Debug("task created", zap.String("task_id", string(task.ID)), zap.String("user_id", string(task.UserID)))

	return task.Clone(), s.persistLocked(ctx)
}

// Toggle flips completion. Un-completing always lands on todo, even if the
// task was in progress before it was completed.
func (s *TaskService) Toggle(ctx context.Context, id domain.TaskID) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	if s.tasks[i].Completed() {
		s.tasks[i].Status = domain.TaskStatusTodo
	} else {
		s.tasks[i].Status = domain.TaskStatusCompleted
	}
	s.logger.Debug("task toggled", zap.String("task_id", string(id)), zap.String("status", string(s.tasks[i].Status)))

	return s.tasks[i].Clone(), s.persistLocked(ctx)
}

func (s *TaskService) Update(ctx context.Context, id domain.TaskID, input domain.UpdateTaskInput) (domain.Task, error) {
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return domain.Task{}, domain.ErrEmptyTitle
		}
		input.Title = &title
	}
	if input.Priority != nil {
		if _, err := domain.ParsePriority(string(*input.Priority)); err != nil {
			return domain.Task{}, err
		}
	}
	if input.Status != nil {
		if _, err := domain.ParseTaskStatus(string(*input.Status)); err != nil {
			return domain.Task{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	s.tasks[i] = input.Apply(s.tasks[i])
	s.logger.Debug("task updated", zap.String("task_id", string(id)))

	return s.tasks[i].Clone(), s.persistLocked(ctx)
}

// Delete removes a task. Deleting an unknown id is ErrTaskNotFound.
func (s *TaskService) Delete(ctx context.Context, id domain.TaskID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrTaskNotFound
	}

	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.logger.Debug("task deleted", zap.String("task_id", string(id)))

	return s.persistLocked(ctx)
}

func (s *TaskService) indexOf(id domain.TaskID) int {
	return slices.IndexFunc(s.tasks, func(t domain.Task) bool { return t.ID == id })
}

// nextIDLocked retries on the off chance a generated id collides with one
// already in the collection (e.g. imported legacy ids).
func (s *TaskService) nextIDLocked() (domain.TaskID, error) {
	for attempt := 0; attempt < 3; attempt++ {
		id, err := s.newID()
		if err != nil {
			return "", err
		}
		if s.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", errors.New("could not generate a unique id")
}

// persistLocked writes the whole collection under the tasks key. The
// in-memory state is never rolled back on failure.
func (s *TaskService) persistLocked(ctx context.Context) error {
	payload, err := encodeTasks(s.tasks)
	if err != nil {
		return &domain.StoreError{Op: "encode", Key: TasksKey, Kind: domain.ErrWriteFailed, Err: err}
	}

	if err := s.store.Set(ctx, TasksKey, payload); err != nil {
		s.logger.Error("failed to persist tasks", zap.Int("count", len(s.tasks)), zap.Error(err))
		return &domain.StoreError{Op: "write", Key: TasksKey, Kind: domain.ErrWriteFailed, Err: err}
	}
	return nil
}

var _ ports.TaskService = (*TaskService)(nil)
