// Package view merges terms with their translations in a working locale and
// an optional reference locale. Build is pure; Live keeps a Build result
// current as the term and translation stores change.
package view

import (
	"strings"

	"github.com/rpggio/termstate/internal/domain/taxonomy"
	"github.com/rpggio/termstate/internal/model"
)

// Row is one line of the translation editor.
type Row struct {
	Term     model.Term `json:"term"`
	Value    string     `json:"value"`
	ValueRef string     `json:"valueRef"`
}

// Options narrow the rows.
type Options struct {
	// FilterUntranslated keeps only rows without a value.
	FilterUntranslated bool
	// Search keeps rows whose term value, context or translation contains
	// it, ignoring case.
	Search string
	// LabelIDs keeps rows whose term or translation carries one of them.
	LabelIDs []string
}

// Build returns one row per term, in term order. Missing translations read
// as "". A reference locale equal to the main locale is ignored.
func Build(translations map[string][]model.Translation, terms []model.Term, mainLocale, refLocale string, opts Options) []Row {
	if refLocale == mainLocale {
		refLocale = ""
	}
	main := index(translations, mainLocale)
	ref := index(translations, refLocale)
	search := strings.ToLower(strings.TrimSpace(opts.Search))

	rows := make([]Row, 0, len(terms))
	for _, t := range terms {
		tr := main[t.ID]
		row := Row{Term: t, Value: tr.Value}
		if refLocale != "" {
			row.ValueRef = ref[t.ID].Value
		}

		if opts.FilterUntranslated && row.Value != "" {
			continue
		}
		if search != "" && !matches(search, t.Value, t.Context, row.Value) {
			continue
		}
		if len(opts.LabelIDs) > 0 && !labeled(opts.LabelIDs, t.Labels, tr.Labels) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func index(translations map[string][]model.Translation, locale string) map[string]model.Translation {
	if locale == "" {
		return nil
	}
	list := translations[locale]
	out := make(map[string]model.Translation, len(list))
	for _, tr := range list {
		out[tr.TermID] = tr
	}
	return out
}

func matches(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func labeled(ids []string, sets ...[]model.Label) bool {
	for _, id := range ids {
		for _, set := range sets {
			if taxonomy.Has(set, id) {
				return true
			}
		}
	}
	return false
}
