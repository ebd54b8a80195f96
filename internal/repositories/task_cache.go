package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/scott20050218/HA3/internal/logger"
	"github.com/scott20050218/HA3/internal/models"
)

// TaskListCacheRepository caches task listings in Redis, one key per status
// filter. Every task mutation invalidates all three keys, so a populated key
// is at most one mutation behind plus the TTL.
type TaskListCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached listings
}

// NewTaskListCacheRepository creates a new repository instance with the given TTL.
func NewTaskListCacheRepository(client *redis.Client, expiration time.Duration) *TaskListCacheRepository {
	return &TaskListCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func taskListKey(status string) string {
	return fmt.Sprintf("task_list:%s", status)
}

// Get returns the cached listing for a status filter. A cache miss returns
// (nil, nil); an empty cached listing returns a non-nil empty slice.
func (r *TaskListCacheRepository) Get(ctx context.Context, status string) ([]models.TaskDB, error) {
	key := taskListKey(status)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("task list cache get",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	tasks := []models.TaskDB{}
	if err := json.Unmarshal([]byte(val), &tasks); err != nil {
		logger.Log.Errorw("task list cache unmarshal failed", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow("task list cache hit", "key", key, "count", len(tasks))

	return tasks, nil
}

// Set caches a listing for a status filter with the configured expiration.
func (r *TaskListCacheRepository) Set(ctx context.Context, status string, tasks []models.TaskDB) error {
	key := taskListKey(status)

	data, err := json.Marshal(tasks)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("task list cache set",
		"key", key,
		"count", len(tasks),
		"error", err,
	)

	return err
}

// Invalidate drops the cached listings for every status filter.
func (r *TaskListCacheRepository) Invalidate(ctx context.Context) error {
	keys := []string{
		taskListKey(models.StatusAll),
		taskListKey(models.StatusPending),
		taskListKey(models.StatusCompleted),
	}

	err := r.client.Del(ctx, keys...).Err()

	logger.Log.Infow("task list cache invalidate",
		"keys", keys,
		"error", err,
	)

	return err
}
