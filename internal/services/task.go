package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/scott20050218/HA3/internal/logger"
	"github.com/scott20050218/HA3/internal/models"
)

var (
	// ErrTaskNotFound is returned when the referenced task id does not exist.
	ErrTaskNotFound = errors.New("task not found")
	// ErrEmptyTitle is returned when an update supplies an empty title.
	ErrEmptyTitle = errors.New("title cannot be empty")
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	List(ctx context.Context, status string) ([]models.TaskDB, error)
	GetByID(ctx context.Context, id int64) (*models.TaskDB, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	Save(ctx context.Context, title string) (*models.TaskDB, error)
	Update(ctx context.Context, id int64, title *string, completed *bool) (*models.TaskDB, error)
	Delete(ctx context.Context, id int64) (bool, error)
	DeleteCompleted(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// TaskListCacher caches task listings per status filter.
type TaskListCacher interface {
	Get(ctx context.Context, status string) ([]models.TaskDB, error)
	Set(ctx context.Context, status string, tasks []models.TaskDB) error
	Invalidate(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TaskService handles task operations, listing cache maintenance, and event
// publishing.
type TaskService struct {
	reader      TaskReader
	writer      TaskWriter
	cache       TaskListCacher
	kafkaWriter KafkaWriter
}

// NewTaskService creates a new TaskService. Cache and Kafka writer may be
// nil; both are best-effort side channels.
func NewTaskService(
	reader TaskReader,
	writer TaskWriter,
	cache TaskListCacher,
	kafkaWriter KafkaWriter,
) *TaskService {
	return &TaskService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a task lifecycle event to Kafka.
func (s *TaskService) publishEvent(ctx context.Context, event models.TaskEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal task event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.TaskID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish task event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("task event published", "event_id", event.EventID, "type", event.Type)
	}
}

// invalidateCache drops every cached listing. Failures are logged and
// swallowed; a stale entry expires with its TTL.
func (s *TaskService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate task list cache", "error", err)
	}
}

func newTaskEvent(eventType string, taskID, deleted int64) models.TaskEvent {
	return models.TaskEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		TaskID:    taskID,
		Deleted:   deleted,
		Timestamp: time.Now().Unix(),
	}
}

// List returns tasks matching the status filter, most recent first. Cached
// listings are served when present; cache failures fall through to the store.
func (s *TaskService) List(ctx context.Context, status string) ([]models.TaskDB, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, status)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	tasks, err := s.reader.List(ctx, status)
	if err != nil {
		logger.Log.Errorw("failed to list tasks", "status", status, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, status, tasks); err != nil {
			logger.Log.Errorw("failed to cache task list", "status", status, "error", err)
		}
	}

	return tasks, nil
}

// Create stores a new pending task and publishes a task.created event.
func (s *TaskService) Create(ctx context.Context, title string) (*models.TaskDB, error) {
	task, err := s.writer.Save(ctx, title)
	if err != nil {
		logger.Log.Errorw("failed to create task", "error", err)
		return nil, err
	}

	s.invalidateCache(ctx)
	s.publishEvent(ctx, newTaskEvent(models.EventTaskCreated, task.ID, 0))

	return task, nil
}

// Update applies a partial update to a task. An unknown id maps to
// ErrTaskNotFound even when the payload is invalid; a supplied empty title
// on an existing task maps to ErrEmptyTitle without touching the row.
func (s *TaskService) Update(ctx context.Context, id int64, title *string, completed *bool) (*models.TaskDB, error) {
	if title != nil && *title == "" {
		existing, err := s.reader.GetByID(ctx, id)
		if err != nil {
			logger.Log.Errorw("failed to get task", "id", id, "error", err)
			return nil, err
		}
		if existing == nil {
			return nil, ErrTaskNotFound
		}
		return nil, ErrEmptyTitle
	}

	task, err := s.writer.Update(ctx, id, title, completed)
	if err != nil {
		logger.Log.Errorw("failed to update task", "id", id, "error", err)
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	s.invalidateCache(ctx)
	s.publishEvent(ctx, newTaskEvent(models.EventTaskUpdated, task.ID, 0))

	return task, nil
}

// Delete removes a single task; an unknown id maps to ErrTaskNotFound.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete task", "id", id, "error", err)
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}

	s.invalidateCache(ctx)
	s.publishEvent(ctx, newTaskEvent(models.EventTaskDeleted, id, 0))

	return nil
}

// DeleteCompleted removes every completed task and returns the count removed.
func (s *TaskService) DeleteCompleted(ctx context.Context) (int64, error) {
	count, err := s.writer.DeleteCompleted(ctx)
	if err != nil {
		logger.Log.Errorw("failed to delete completed tasks", "error", err)
		return 0, err
	}

	s.invalidateCache(ctx)
	s.publishEvent(ctx, newTaskEvent(models.EventTaskCompletedCleared, 0, count))

	return count, nil
}

// DeleteAll removes every task and returns the count removed.
func (s *TaskService) DeleteAll(ctx context.Context) (int64, error) {
	count, err := s.writer.DeleteAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to delete all tasks", "error", err)
		return 0, err
	}

	s.invalidateCache(ctx)
	s.publishEvent(ctx, newTaskEvent(models.EventTaskCleared, 0, count))

	return count, nil
}
