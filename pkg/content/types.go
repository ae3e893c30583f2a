package content

// Document represents the complete résumé content file.
type Document struct {
	Name        string       `json:"name"`
	ContactInfo ContactInfo  `json:"contact_info"`
	Summary     []TaggedText `json:"summary"`
	Skills      []TaggedText `json:"skills"`
	Experience  []Job        `json:"experience"`
	Education   string       `json:"education"`
	Languages   string       `json:"languages"`
}

// ContactInfo represents the header contact details.
type ContactInfo struct {
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
	GitHubURL   string `json:"github_url,omitempty"`
}

// TaggedText is a piece of prose shown only to the listed audiences.
// An empty TargetAudiences list marks the item as universal.
type TaggedText struct {
	Text            string   `json:"text"`
	TargetAudiences []string `json:"target_audiences,omitempty"`
}

// Universal reports whether the item is shown to every audience.
func (t TaggedText) Universal() (universal bool) {
	universal = len(t.TargetAudiences) == 0
	return universal
}

// Job represents a single position in the experience section.
type Job struct {
	Title   string       `json:"title"`
	Company string       `json:"company"`
	Dates   string       `json:"dates"`
	Intro   string       `json:"intro,omitempty"`
	Bullets []TaggedText `json:"bullets"`
}

// LoadResult describes the outcome of Load.
type LoadResult struct {
	Document Document
	Path     string
	Created  bool // true when the seed document was written to Path
}
