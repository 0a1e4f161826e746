package translation

import "github.com/rpggio/termstate/internal/model"

// State is the translation store's data. KnownLocales is global and survives
// project switches; everything else belongs to the current project.
type State struct {
	KnownLocales    []model.Locale                 `json:"knownLocales"`
	ProjectLocales  []model.ProjectLocale          `json:"projectLocales"`
	Translations    map[string][]model.Translation `json:"translations"`
	ReferenceLocale string                         `json:"referenceLocale,omitempty"`
}

func defaults() State {
	return State{
		KnownLocales:   []model.Locale{},
		ProjectLocales: []model.ProjectLocale{},
		Translations:   map[string][]model.Translation{},
	}
}

// withLocale returns a copy of m where code maps to list.
func withLocale(m map[string][]model.Translation, code string, list []model.Translation) map[string][]model.Translation {
	out := make(map[string][]model.Translation, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out[code] = list
	return out
}

// withoutLocale returns a copy of m without code.
func withoutLocale(m map[string][]model.Translation, code string) map[string][]model.Translation {
	out := make(map[string][]model.Translation, len(m))
	for k, v := range m {
		if k != code {
			out[k] = v
		}
	}
	return out
}
