package testserver

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rpggio/termstate/internal/model"
)

// markerSet describes where one taxonomy lives in a project.
type markerSet[T interface{ Key() string }] struct {
	items       func(*projectData) *[]T
	ofTerm      func(*model.Term) *[]T
	ofTranslate func(*model.Translation) *[]T
	build       func(id, value, color string) T
}

var labelSet = markerSet[model.Label]{
	items:       func(p *projectData) *[]model.Label { return &p.labels },
	ofTerm:      func(t *model.Term) *[]model.Label { return &t.Labels },
	ofTranslate: func(t *model.Translation) *[]model.Label { return &t.Labels },
	build: func(id, value, color string) model.Label {
		return model.Label{ID: id, Value: value, Color: color}
	},
}

var tagSet = markerSet[model.Tag]{
	items:       func(p *projectData) *[]model.Tag { return &p.tags },
	ofTerm:      func(t *model.Term) *[]model.Tag { return &t.Tags },
	ofTranslate: func(t *model.Translation) *[]model.Tag { return &t.Tags },
	build: func(id, value, color string) model.Tag {
		return model.Tag{ID: id, Value: value, Color: color}
	},
}

func markerRoutes[T interface{ Key() string }](ts *TestServer, mux chi.Router, kind string, set markerSet[T]) {
	base := "/projects/{pid}/" + kind

	find := func(r *http.Request, p *projectData) (int, error) {
		i := slices.IndexFunc(*set.items(p), func(m T) bool { return m.Key() == chi.URLParam(r, "mid") })
		if i < 0 {
			return -1, errNotFound
		}
		return i, nil
	}
	// each rewrites the marker lists of every term and translation.
	each := func(p *projectData, fn func(list []T) []T) {
		for i := range p.terms {
			list := set.ofTerm(&p.terms[i])
			*list = fn(*list)
		}
		for _, byTerm := range p.translations {
			for termID, tr := range byTerm {
				list := set.ofTranslate(&tr)
				*list = fn(*list)
				byTerm[termID] = tr
			}
		}
	}
	without := func(id string) func([]T) []T {
		return func(list []T) []T {
			return slices.DeleteFunc(list, func(m T) bool { return m.Key() == id })
		}
	}

	ts.handle(mux, "GET "+base, false, ts.inProject(func(_ *http.Request, _ *account, p *projectData) (any, error) {
		return nonNil(*set.items(p)), nil
	}))

	ts.handle(mux, "POST "+base, false, ts.inProject(func(r *http.Request, _ *account, p *projectData) (any, error) {
		var in struct {
			Value string `json:"value"`
			Color string `json:"color"`
		}
		if err := decode(r, &in); err != nil {
			return nil, err
		}
		m := set.build(uuid.NewString(), in.Value, in.Color)
		*set.items(p) = append(*set.items(p), m)
		return m, nil
	}))

	ts.handle(mux, "PATCH "+base+"/{mid}", false, ts.inProject(func(r *http.Request, _ *account, p *projectData) (any, error) {
		i, err := find(r, p)
		if err != nil {
			return nil, err
		}
		var in struct {
			Value string `json:"value"`
			Color string `json:"color"`
		}
		if err := decode(r, &in); err != nil {
			return nil, err
		}
		id := chi.URLParam(r, "mid")
		m := set.build(id, in.Value, in.Color)
		(*set.items(p))[i] = m
		each(p, func(list []T) []T {
			for j := range list {
				if list[j].Key() == id {
					list[j] = m
				}
			}
			return list
		})
		return m, nil
	}))

	ts.handle(mux, "DELETE "+base+"/{mid}", false, ts.inProject(func(r *http.Request, _ *account, p *projectData) (any, error) {
		if _, err := find(r, p); err != nil {
			return nil, err
		}
		id := chi.URLParam(r, "mid")
		*set.items(p) = without(id)(*set.items(p))
		each(p, without(id))
		return nil, nil
	}))

	attach := func(r *http.Request, p *projectData, on bool) error {
		i, err := find(r, p)
		if err != nil {
			return err
		}
		m := (*set.items(p))[i]

		var list *[]T
		if code := chi.URLParam(r, "code"); code != "" {
			byTerm, ok := p.translations[code]
			if !ok {
				return errNotFound
			}
			termID := chi.URLParam(r, "tid")
			tr, ok := byTerm[termID]
			if !ok {
				tr = model.Translation{TermID: termID, LocaleCode: code}
			}
			list = set.ofTranslate(&tr)
			defer func() { byTerm[termID] = tr }()
		} else {
			j := slices.IndexFunc(p.terms, func(t model.Term) bool { return t.ID == chi.URLParam(r, "tid") })
			if j < 0 {
				return errNotFound
			}
			list = set.ofTerm(&p.terms[j])
		}

		*list = without(m.Key())(*list)
		if on {
			*list = append(*list, m)
		}
		return nil
	}
	for _, route := range []string{base + "/{mid}/terms/{tid}", base + "/{mid}/terms/{tid}/translations/{code}"} {
		ts.handle(mux, "POST "+route, false, ts.inProject(func(r *http.Request, _ *account, p *projectData) (any, error) {
			return nil, attach(r, p, true)
		}))
		ts.handle(mux, "DELETE "+route, false, ts.inProject(func(r *http.Request, _ *account, p *projectData) (any, error) {
			return nil, attach(r, p, false)
		}))
	}
}
