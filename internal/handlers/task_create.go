package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"unicode/utf8"

	"github.com/scott20050218/HA3/internal/logger"
	"github.com/scott20050218/HA3/internal/models"
)

// TaskCreator defines the interface that the task creation service must implement.
type TaskCreator interface {
	Create(ctx context.Context, title string) (*models.TaskDB, error)
}

// CreateTaskRequest represents the JSON body for task creation
// swagger:model CreateTaskRequest
type CreateTaskRequest struct {
	// Task title
	// required: true
	// default: Buy groceries
	Title string `json:"title"`
}

// NewCreateTaskHandler returns an HTTP handler for task creation.
// @Summary Create a task
// @Description Creates a new pending task shared by all users
// @Tags tasks
// @Accept json
// @Produce json
// @Param createTaskRequest body handlers.CreateTaskRequest true "Task creation request"
// @Success 201 {object} models.TaskDB "Created task"
// @Failure 400 {object} handlers.TaskErrorResponse "Invalid request"
// @Failure 401 {object} handlers.TaskErrorResponse "Unauthorized"
// @Router /tasks [post]
// @Security BearerAuth
func NewCreateTaskHandler(svc TaskCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req CreateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TaskErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if req.Title == "" || utf8.RuneCountInString(req.Title) > 255 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TaskErrorResponse{
				Error: "Title must be between 1 and 255 characters",
			})
			return
		}

		task, err := svc.Create(r.Context(), req.Title)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TaskErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(task)
	}
}
