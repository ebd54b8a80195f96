package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/scott20050218/HA3/internal/logger"
)

// AllTasksDeleter defines the interface for clearing the whole task list.
type AllTasksDeleter interface {
	DeleteAll(ctx context.Context) (int64, error)
}

// NewDeleteAllTasksHandler returns an HTTP handler that removes every task.
// Admin only.
// @Summary Delete all tasks
// @Description Removes every task and reports how many were removed
// @Tags tasks
// @Produce json
// @Success 200 {object} handlers.BulkDeleteResponse "All tasks deleted"
// @Failure 401 {object} handlers.TaskErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.TaskErrorResponse "Forbidden"
// @Router /tasks/all [delete]
// @Security BearerAuth
func NewDeleteAllTasksHandler(svc AllTasksDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		deleted, err := svc.DeleteAll(r.Context())
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
			Message: fmt.Sprintf("Cleared %d tasks", deleted),
		})
	}
}
