package entity

// ActivityCollection is the collection holding the activity catalogue.
const ActivityCollection = "activities"

// ActivityInput is a catalogue entry; lessons nest their steps through Items.
type ActivityInput struct {
	Type  string          `json:"type" bson:"type" validate:"required,min=1,max=50"`
	Title string          `json:"title" bson:"title" validate:"required,min=1,max=100"`
	Items []ActivityInput `json:"items" bson:"items" validate:"omitempty,dive"`
}

// Activity is the stored shape of an activity.
type Activity struct {
	ID            ID `json:"id" bson:"_id,omitempty" validate:"required"`
	ActivityInput `bson:",inline"`
}

// NewActivity builds the stored shape from input.
func NewActivity(in *ActivityInput) *Activity {
	return &Activity{ActivityInput: *in}
}

