package entity

import "time"

// EngagementCollection is the collection holding engagement records.
const EngagementCollection = "engagements"

// EngagementInput scores how a learner engaged with one activity.
type EngagementInput struct {
	LearnerID      string    `json:"learner_id" bson:"learner_id" validate:"required,min=1,max=50"`
	ActivityID     string    `json:"activity_id" bson:"activity_id" validate:"required,min=1,max=50"`
	Type           string    `json:"type" bson:"type" validate:"required,min=1,max=50"`
	Value          *float64  `json:"value" bson:"value" validate:"required"`
	StartDate      time.Time `json:"start_date" bson:"start_date" validate:"required"`
	CompletionDate time.Time `json:"completion_date" bson:"completion_date" validate:"required"`
}

// Engagement is the stored shape of an engagement record.
type Engagement struct {
	ID              ID `json:"id" bson:"_id,omitempty" validate:"required"`
	EngagementInput `bson:",inline"`
}

// NewEngagement builds the stored shape from input.
func NewEngagement(in *EngagementInput) *Engagement {
	return &Engagement{EngagementInput: *in}
}
