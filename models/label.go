package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Label struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Color     string             `bson:"color" json:"color"` // hex color code
	ProjectID primitive.ObjectID `bson:"projectId" json:"project_id"`
}

// TaskLabel links a task to a label. The (task, label) pair is unique.
type TaskLabel struct {
	TaskID  primitive.ObjectID `bson:"taskId" json:"task_id"`
	LabelID primitive.ObjectID `bson:"labelId" json:"label_id"`
}
