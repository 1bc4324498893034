package entity

// LearnerCollection is the collection holding learner profiles.
const LearnerCollection = "learners"

// LearnerInput is the onboarding profile of a learner.
type LearnerInput struct {
	Gender         Gender   `json:"gender" bson:"gender" validate:"required,oneof=male female"`
	Language       Language `json:"language" bson:"language" validate:"required,oneof=ru en"`
	PriorKnowledge string   `json:"prior_knowledge" bson:"prior_knowledge" validate:"required,min=1,max=100"`
	Goal           string   `json:"goal" bson:"goal" validate:"required,min=1,max=100"`
}

// Learner is the stored shape of a learner profile.
type Learner struct {
	ID           ID `json:"id" bson:"_id,omitempty" validate:"required"`
	LearnerInput `bson:",inline"`
}

// NewLearner builds the stored shape from input.
func NewLearner(in *LearnerInput) *Learner {
	return &Learner{LearnerInput: *in}
}
