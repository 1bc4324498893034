// Package entity contains the core business objects of the project.
package entity

// UserCollection is the collection holding user documents.
const UserCollection = "users"

// Gender of a user or learner.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Language is the interface language chosen by the user.
type Language string

const (
	LanguageRussian Language = "ru"
	LanguageEnglish Language = "en"
)

// RecommendationMethod selects how the next activity is recommended.
type RecommendationMethod string

const (
	RecommendationFixed               RecommendationMethod = "fixed"
	RecommendationKnowledgeBased      RecommendationMethod = "kb"
	RecommendationCollaborativeFilter RecommendationMethod = "cf"
)

// UserInput is the client-supplied shape of a user. Identity is never taken from input.
type UserInput struct {
	TelegramID             *int64                `json:"tg_id" bson:"tg_id,omitempty" validate:"omitempty,gt=0"`                                  // Secondary numeric identity.
	Name                   string                `json:"name" bson:"name" validate:"required,min=1,max=50"`                                        // Display name.
	Gender                 *Gender               `json:"gender" bson:"gender" validate:"omitempty,oneof=male female"`                              // Optional.
	Language               *Language             `json:"language" bson:"language" validate:"omitempty,oneof=ru en"`                                // Optional.
	RecommendationMethod   *RecommendationMethod `json:"recommendation_method" bson:"recommendation_method" validate:"omitempty,oneof=fixed kb cf"` // Optional.
	LaunchCount            int                   `json:"launch_count" bson:"launch_count"`                                                          // Defaults to 0.
	CurrentBundleVersion   *int                  `json:"current_bundle_version" bson:"current_bundle_version"`                                      // Optional.
	BundleVersionAtInstall *int                  `json:"bundle_version_at_install" bson:"bundle_version_at_install"`                                // Optional.
	Conversations          []Conversation        `json:"conversations" bson:"conversations" validate:"dive"`                                        // Owned, in arrival order.
}

// User is the stored shape of a user: identity present, defaults materialized.
type User struct {
	ID        ID `json:"id" bson:"_id,omitempty" validate:"required"`
	UserInput `bson:",inline"`
}

// NewUser builds the stored shape from input, materializing defaults.
// The identity stays unassigned until the store generates it.
func NewUser(in *UserInput) *User {
	u := &User{UserInput: *in}
	u.Conversations = make([]Conversation, len(in.Conversations))
	copy(u.Conversations, in.Conversations)
	for i := range u.Conversations {
		u.Conversations[i].normalize()
	}

	return u
}
