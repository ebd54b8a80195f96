package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/scott20050218/HA3/internal/models"
)

func TestListTasksHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tasks := []models.TaskDB{
		{ID: 2, Title: "Walk the dog", Completed: false, CreatedAt: now, UpdatedAt: now},
		{ID: 1, Title: "Buy groceries", Completed: true, CreatedAt: now.Add(-time.Hour), UpdatedAt: now},
	}

	tests := []struct {
		name         string
		query        string
		mockSetup    func(m *MockTaskLister)
		expectedCode int
		expectedLen  int
	}{
		{
			name:  "no filter defaults to all",
			query: "",
			mockSetup: func(m *MockTaskLister) {
				m.EXPECT().
					List(gomock.Any(), models.StatusAll).
					Return(tasks, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:  "pending filter",
			query: "?status=pending",
			mockSetup: func(m *MockTaskLister) {
				m.EXPECT().
					List(gomock.Any(), models.StatusPending).
					Return(tasks[:1], nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:  "completed filter",
			query: "?status=completed",
			mockSetup: func(m *MockTaskLister) {
				m.EXPECT().
					List(gomock.Any(), models.StatusCompleted).
					Return(tasks[1:], nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:  "empty result is an empty array",
			query: "?status=completed",
			mockSetup: func(m *MockTaskLister) {
				m.EXPECT().
					List(gomock.Any(), models.StatusCompleted).
					Return([]models.TaskDB{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name:         "invalid filter",
			query:        "?status=done",
			mockSetup:    func(m *MockTaskLister) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "internal server error",
			query: "",
			mockSetup: func(m *MockTaskLister) {
				m.EXPECT().
					List(gomock.Any(), models.StatusAll).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTaskLister(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewListTasksHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/tasks"+tt.query, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var got []models.TaskDB
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Len(t, got, tt.expectedLen)
			}
		})
	}
}

func TestListTasksHandler_InvalidFilterMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewListTasksHandler(NewMockTaskLister(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/tasks?status=bogus", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var got map[string]any
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "Status must be one of: all, pending, completed", got["error"])
}
