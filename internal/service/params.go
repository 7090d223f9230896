package service

// RegisterInput is the validated registration payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// ProfileInput carries a partial profile update. Nil fields were absent from
// the request and must leave the stored value untouched.
type ProfileInput struct {
	Handle         *string
	Company        *string
	Website        *string
	Location       *string
	Status         *string
	Bio            *string
	GithubUsername *string
	Skills         *string // comma-separated, split and trimmed on save

	Youtube   *string
	Twitter   *string
	Facebook  *string
	Linkedin  *string
	Instagram *string
}

// ExperienceInput is the validated payload for a new work-history entry.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}
