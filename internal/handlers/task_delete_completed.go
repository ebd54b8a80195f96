package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/scott20050218/HA3/internal/logger"
)

// CompletedTasksDeleter defines the interface for bulk-deleting completed tasks.
type CompletedTasksDeleter interface {
	DeleteCompleted(ctx context.Context) (int64, error)
}

// BulkDeleteResponse represents a successful bulk deletion
// swagger:model BulkDeleteResponse
type BulkDeleteResponse struct {
	// Always true on success
	// default: true
	Success bool `json:"success"`

	// Number of tasks removed
	// default: 3
	Deleted int64 `json:"deleted"`

	// Human-readable summary
	// default: Deleted 3 completed tasks
	Message string `json:"message"`
}

// NewDeleteCompletedTasksHandler returns an HTTP handler that removes every
// completed task. Admin only.
// @Summary Delete completed tasks
// @Description Removes all completed tasks and reports how many were removed
// @Tags tasks
// @Produce json
// @Success 200 {object} handlers.BulkDeleteResponse "Completed tasks deleted"
// @Failure 401 {object} handlers.TaskErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.TaskErrorResponse "Forbidden"
// @Router /tasks/completed [delete]
// @Security BearerAuth
func NewDeleteCompletedTasksHandler(svc CompletedTasksDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		deleted, err := svc.DeleteCompleted(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TaskErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BulkDeleteResponse{
			Success: true,
			Deleted: deleted,
			Message: fmt.Sprintf("Deleted %d completed tasks", deleted),
		})
	}
}
