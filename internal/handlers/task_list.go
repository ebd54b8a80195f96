package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/scott20050218/HA3/internal/logger"
	"github.com/scott20050218/HA3/internal/models"
)

// TaskLister defines the interface that the task listing service must implement.
type TaskLister interface {
	List(ctx context.Context, status string) ([]models.TaskDB, error)
}

// TaskErrorResponse represents an error response for task operations
// swagger:model TaskErrorResponse
type TaskErrorResponse struct {
	// Error message
	// default: Task not found
	Error string `json:"error"`
}

// NewListTasksHandler returns an HTTP handler for listing tasks.
// @Summary List tasks
// @Description Returns tasks ordered by creation time descending, optionally filtered by completion status
// @Tags tasks
// @Produce json
// @Param status query string false "all | pending | completed" default(all)
// @Success 200 {array} models.TaskDB "Tasks"
// @Failure 400 {object} handlers.TaskErrorResponse "Invalid status filter"
// @Failure 401 {object} handlers.TaskErrorResponse "Unauthorized"
// @Router /tasks [get]
// @Security BearerAuth
func NewListTasksHandler(svc TaskLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		status, err := models.ParseStatusFilter(r.URL.Query().Get("status"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TaskErrorResponse{
				Error: "Status must be one of: all, pending, completed",
			})
			return
		}

		tasks, err := svc.List(r.Context(), status)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TaskErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(tasks)
	}
}
