package entity

import "time"

// LogCollection is the collection holding activity logs.
const LogCollection = "logs"

// LogInput is one learner interaction with an activity as reported by the client.
type LogInput struct {
	UserID         string    `json:"user_id" bson:"user_id" validate:"required,min=1,max=50"`
	ActivityID     string    `json:"activity_id" bson:"activity_id" validate:"required,min=1,max=50"`
	Type           string    `json:"type" bson:"type" validate:"required,min=1,max=50"`
	Value          *string   `json:"value" bson:"value"`
	StartTime      time.Time `json:"start_time" bson:"start_time" validate:"required"`
	CompletionTime time.Time `json:"completion_time" bson:"completion_time" validate:"required"`
	BuildVersion   *string   `json:"build_version" bson:"build_version"`
}

// Log is the stored shape of a log.
type Log struct {
	ID       ID `json:"id" bson:"_id,omitempty" validate:"required"`
	LogInput `bson:",inline"`
}

// NewLog builds the stored shape from input.
func NewLog(in *LogInput) *Log {
	return &Log{LogInput: *in}
}
