package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/scott20050218/HA3/internal/logger"
	"github.com/scott20050218/HA3/internal/services"
)

// TaskDeleter defines the interface that the task deletion service must implement.
type TaskDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewDeleteTaskHandler returns an HTTP handler for deleting a single task.
// @Summary Delete a task
// @Description Deletes the task with the given id
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 204 "Task deleted"
// @Failure 400 {object} handlers.TaskErrorResponse "Invalid task id"
// @Failure 401 {object} handlers.TaskErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.TaskErrorResponse "Task not found"
// @Router /tasks/{id} [delete]
// @Security BearerAuth
func NewDeleteTaskHandler(svc TaskDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "taskID"), 10, 64)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TaskErrorResponse{
				Error: "invalid task id",
			})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case errors.Is(err, services.ErrTaskNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TaskErrorResponse{
					Error: "Task not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TaskErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
