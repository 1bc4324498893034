package schema

// identity maps the wire key "_id" onto the internal identity field "id".
var identity = NewFieldMap(Alias{External: "_id", Internal: "id"})

var (
	Message = &Schema{
		Name:   "message",
		Fields: NewFieldMap(),
	}

	Conversation = &Schema{
		Name:   "conversation",
		Fields: NewFieldMap(),
		Defaults: map[string]func() any{
			"user_id":  null,
			"messages": emptyList,
		},
		Children: map[string]*Schema{
			"messages": Message,
		},
	}

	User = &Schema{
		Name:   "user",
		Fields: identity,
		Defaults: map[string]func() any{
			"tg_id":                     null,
			"gender":                    null,
			"language":                  null,
			"recommendation_method":     null,
			"launch_count":              zero,
			"current_bundle_version":    null,
			"bundle_version_at_install": null,
			"conversations":             emptyList,
		},
		Children: map[string]*Schema{
			"conversations": Conversation,
		},
	}

	Log = &Schema{
		Name:   "log",
		Fields: identity,
		Defaults: map[string]func() any{
			"value":         null,
			"build_version": null,
		},
		Strict: true,
	}

	Activity = newActivity()

	Learner = &Schema{
		Name:   "learner",
		Fields: identity,
	}

	Engagement = &Schema{
		Name:   "engagement",
		Fields: identity,
	}
)

// newActivity builds the activity schema; items recurse into itself.
func newActivity() *Schema {
	s := &Schema{
		Name:   "activity",
		Fields: identity,
		Defaults: map[string]func() any{
			"items": null,
		},
	}
	s.Children = map[string]*Schema{"items": s}

	return s
}
