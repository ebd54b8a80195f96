package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/scott20050218/HA3/internal/logger"
	"github.com/scott20050218/HA3/internal/models"
	"github.com/scott20050218/HA3/internal/services"
)

// TaskUpdater defines the interface that the task update service must implement.
type TaskUpdater interface {
	Update(ctx context.Context, id int64, title *string, completed *bool) (*models.TaskDB, error)
}

// UpdateTaskRequest represents the JSON body for a partial task update.
// Absent fields keep their stored value.
// swagger:model UpdateTaskRequest
type UpdateTaskRequest struct {
	// New title
	// default: Buy groceries
	Title *string `json:"title"`

	// New completion state
	// default: true
	Completed *bool `json:"completed"`
}

// NewUpdateTaskHandler returns an HTTP handler for partial task updates.
// @Summary Update a task
// @Description Updates title and/or completion state of a task. Omitted fields are unchanged.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param updateTaskRequest body handlers.UpdateTaskRequest true "Task update request"
// @Success 200 {object} models.TaskDB "Updated task"
// @Failure 400 {object} handlers.TaskErrorResponse "Invalid request"
// @Failure 401 {object} handlers.TaskErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.TaskErrorResponse "Task not found"
// @Failure 422 {object} handlers.TaskErrorResponse "Title cannot be empty"
// @Router /tasks/{id} [put]
// @Security BearerAuth
func NewUpdateTaskHandler(svc TaskUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id, err := strconv.ParseInt(chi.URLParam(r, "taskID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TaskErrorResponse{
				Error: "invalid task id",
			})
			return
		}

		var req UpdateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TaskErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if req.Title != nil && utf8.RuneCountInString(*req.Title) > 255 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TaskErrorResponse{
				Error: "Title must be at most 255 characters",
			})
			return
		}

		task, err := svc.Update(r.Context(), id, req.Title, req.Completed)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTaskNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TaskErrorResponse{
					Error: "Task not found",
				})
			case errors.Is(err, services.ErrEmptyTitle):
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(TaskErrorResponse{
					Error: "Title cannot be empty",
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(task)
	}
}
