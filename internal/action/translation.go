package action

// GetKnownLocales loads the global locale catalog.
type GetKnownLocales struct{}

func (GetKnownLocales) Type() string { return "[Translations] Get known locales" }
func (GetKnownLocales) isAction()    {}

type GetProjectLocales struct {
	ProjectID string
}

func (GetProjectLocales) Type() string { return "[Translations] Get project locales" }
func (GetProjectLocales) isAction()    {}

type AddProjectLocale struct {
	ProjectID  string
	LocaleCode string
}

func (AddProjectLocale) Type() string { return "[Translations] Add project locale" }
func (AddProjectLocale) isAction()    {}

type DeleteProjectLocale struct {
	ProjectID  string
	LocaleCode string
}

func (DeleteProjectLocale) Type() string { return "[Translations] Delete project locale" }
func (DeleteProjectLocale) isAction()    {}

type GetTranslations struct {
	ProjectID  string
	LocaleCode string
}

func (GetTranslations) Type() string { return "[Translations] Get" }
func (GetTranslations) isAction()    {}

type UpdateTranslation struct {
	ProjectID  string
	LocaleCode string
	TermID     string
	Value      string
}

func (UpdateTranslation) Type() string { return "[Translations] Update" }
func (UpdateTranslation) isAction()    {}

// SelectReferenceLocale picks the locale shown next to the working locale and
// remembers the choice for the project.
type SelectReferenceLocale struct {
	ProjectID  string
	LocaleCode string
}

func (SelectReferenceLocale) Type() string { return "[Translations] Select reference locale" }
func (SelectReferenceLocale) isAction()    {}

// LoadReferenceLocale restores the remembered reference locale of a project.
type LoadReferenceLocale struct {
	ProjectID string
}

func (LoadReferenceLocale) Type() string { return "[Translations] Load reference locale" }
func (LoadReferenceLocale) isAction()    {}

type ClearReferenceLocale struct {
	ProjectID string
}

func (ClearReferenceLocale) Type() string { return "[Translations] Clear reference locale" }
func (ClearReferenceLocale) isAction()    {}
