package models

// Task event types published to Kafka after successful mutations.
const (
	EventTaskCreated          = "task.created"
	EventTaskUpdated          = "task.updated"
	EventTaskDeleted          = "task.deleted"
	EventTaskCompletedCleared = "task.completed_cleared"
	EventTaskCleared          = "task.cleared"
)

// TaskEvent is the payload published to the task events topic.
type TaskEvent struct {
	EventID   string `json:"event_id"`           // Unique event identifier
	Type      string `json:"type"`               // One of the Event* constants
	TaskID    int64  `json:"task_id,omitempty"`  // Affected task, zero for bulk events
	Deleted   int64  `json:"deleted,omitempty"`  // Rows removed, bulk events only
	Timestamp int64  `json:"timestamp"`          // Unix seconds
}
