package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
	PriorityUrgent TaskPriority = "URGENT"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Task struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title       string              `bson:"title" json:"title"`
	Description string              `bson:"description" json:"description"`
	Status      TaskStatus          `bson:"status" json:"status"`
	Priority    TaskPriority        `bson:"priority" json:"priority"`
	ProjectID   primitive.ObjectID  `bson:"projectId" json:"project_id"`
	AssigneeID  *primitive.ObjectID `bson:"assigneeId,omitempty" json:"assignee_id,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updated_at"`
}

// OptionalObjectID distinguishes an absent JSON field from an explicit null:
// absent leaves the stored value untouched, null clears it.
type OptionalObjectID struct {
	Set   bool
	Value *primitive.ObjectID
}

func (o *OptionalObjectID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var id primitive.ObjectID
	if err := id.UnmarshalJSON(data); err != nil {
		return err
	}
	o.Value = &id
	return nil
}

// TaskUpdate carries a partial update; fields not provided are left untouched.
type TaskUpdate struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Status      *TaskStatus      `json:"status"`
	Priority    *TaskPriority    `json:"priority"`
	AssigneeID  OptionalObjectID `json:"assignee_id"`
}

func (u TaskUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil && u.Priority == nil && !u.AssigneeID.Set
}
