package model

// Label is a project-scoped marker attachable to terms and translations.
type Label struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Color string `json:"color"`
}

// Tag has the same shape as Label but lives in its own taxonomy.
type Tag struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Color string `json:"color"`
}

// Term is a source string owned by exactly one project.
type Term struct {
	ID      string  `json:"id"`
	Value   string  `json:"value"`
	Context string  `json:"context,omitempty"`
	Labels  []Label `json:"labels"`
	Tags    []Tag   `json:"tags,omitempty"`
}

// Locale is globally known and not project scoped.
type Locale struct {
	Code     string `json:"code"`
	Language string `json:"language"`
	Region   string `json:"region"`
}

// ProjectLocale is a locale enabled for a project.
type ProjectLocale struct {
	ID     string    `json:"id"`
	Locale Locale    `json:"locale"`
	Stats  *Progress `json:"stats,omitempty"`
}

// Translation is the value of a term in one locale, keyed by (LocaleCode, TermID).
type Translation struct {
	TermID     string  `json:"termId"`
	LocaleCode string  `json:"localeCode,omitempty"`
	Value      string  `json:"value"`
	Labels     []Label `json:"labels"`
	Tags       []Tag   `json:"tags,omitempty"`
}

// Key returns the label's identity.
func (l Label) Key() string { return l.ID }

// Key returns the tag's identity.
func (t Tag) Key() string { return t.ID }
