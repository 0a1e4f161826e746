package view_test

import (
	"context"
	"sync"
	"testing"

	"github.com/rpggio/termstate/internal/action"
	"github.com/rpggio/termstate/internal/dispatch"
	"github.com/rpggio/termstate/internal/domain/term"
	"github.com/rpggio/termstate/internal/domain/translation"
	"github.com/rpggio/termstate/internal/model"
	"github.com/rpggio/termstate/internal/prefs"
	"github.com/rpggio/termstate/internal/remote/mocks"
	"github.com/rpggio/termstate/internal/state"
	"github.com/rpggio/termstate/internal/view"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	termA = model.Term{ID: "t1", Value: "greeting", Context: "home page"}
	termB = model.Term{ID: "t2", Value: "farewell", Labels: []model.Label{{ID: "l1"}}}
)

func values(rows []view.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Value
	}
	return out
}

func TestBuild_NoTranslationsYieldsEmptyValues(t *testing.T) {
	rows := view.Build(nil, []model.Term{termA, termB}, "en", "", view.Options{})

	require.Len(t, rows, 2)
	require.Equal(t, []string{"", ""}, values(rows))
	require.Equal(t, "t1", rows[0].Term.ID)
	require.Equal(t, "t2", rows[1].Term.ID)
}

func TestBuild_FilterUntranslated(t *testing.T) {
	trs := map[string][]model.Translation{"en": {{TermID: "t1", Value: "hi"}}}
	terms := []model.Term{termA, termB}

	all := view.Build(trs, terms, "en", "", view.Options{})
	require.Equal(t, []string{"hi", ""}, values(all))

	filtered := view.Build(trs, terms, "en", "", view.Options{FilterUntranslated: true})
	require.Len(t, filtered, 1)
	require.Equal(t, "t2", filtered[0].Term.ID)
	require.Subset(t, all, filtered)
}

func TestBuild_ReferenceLocale(t *testing.T) {
	trs := map[string][]model.Translation{
		"en": {{TermID: "t1", Value: "hi"}},
		"fr": {{TermID: "t1", Value: "salut"}, {TermID: "t2", Value: "au revoir"}},
	}
	terms := []model.Term{termA, termB}

	rows := view.Build(trs, terms, "en", "fr", view.Options{})
	require.Equal(t, "salut", rows[0].ValueRef)
	require.Equal(t, "au revoir", rows[1].ValueRef)

	same := view.Build(trs, terms, "fr", "fr", view.Options{})
	require.Equal(t, view.Build(trs, terms, "fr", "", view.Options{}), same)
	require.Empty(t, same[0].ValueRef)
}

func TestBuild_SearchAndLabels(t *testing.T) {
	trs := map[string][]model.Translation{"en": {{TermID: "t1", Value: "Hello"}}}
	terms := []model.Term{termA, termB}

	tests := []struct {
		name string
		opts view.Options
		want []string
	}{
		{"term value", view.Options{Search: "FARE"}, []string{"t2"}},
		{"context", view.Options{Search: "home"}, []string{"t1"}},
		{"translation", view.Options{Search: "hello"}, []string{"t1"}},
		{"no match", view.Options{Search: "zzz"}, []string{}},
		{"label on term", view.Options{LabelIDs: []string{"l1"}}, []string{"t2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := view.Build(trs, terms, "en", "", tt.opts)
			ids := make([]string, 0, len(rows))
			for _, r := range rows {
				ids = append(ids, r.Term.ID)
			}
			require.Equal(t, tt.want, ids)
		})
	}
}

func TestBuild_LabelOnTranslation(t *testing.T) {
	trs := map[string][]model.Translation{"en": {{TermID: "t1", Value: "hi", Labels: []model.Label{{ID: "l2"}}}}}

	rows := view.Build(trs, []model.Term{termA, termB}, "en", "", view.Options{LabelIDs: []string{"l2"}})
	require.Len(t, rows, 1)
	require.Equal(t, "t1", rows[0].Term.ID)
}

func TestLive_FollowsStores(t *testing.T) {
	ctx := context.Background()
	termAPI := &mocks.TermAPI{}
	trAPI := &mocks.TranslationAPI{}
	terms := term.NewStore(termAPI, nil)
	translations := translation.NewStore(trAPI, prefs.NewMemory(), nil)
	d := dispatch.New(nil)
	d.Register(terms, translations)

	var (
		mu    sync.Mutex
		calls int
	)
	live := view.NewLive(terms, translations, "en", view.Options{}, func([]view.Row) {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	defer live.Close()
	require.Empty(t, live.Rows())

	termAPI.On("ListTerms", mock.Anything, "p1").Return([]model.Term{termA, termB}, nil)
	trAPI.On("ListTranslations", mock.Anything, "p1", "en").Return([]model.Translation{{TermID: "t1", Value: "hi"}}, nil)
	trAPI.On("ListTranslations", mock.Anything, "p1", "fr").Return([]model.Translation{{TermID: "t2", Value: "adieu"}}, nil)

	require.NoError(t, d.Submit(ctx, action.GetTerms{ProjectID: "p1"}))
	require.NoError(t, d.Submit(ctx, action.GetTranslations{ProjectID: "p1", LocaleCode: "en"}))
	require.Equal(t, []string{"hi", ""}, values(live.Rows()))

	require.NoError(t, d.Submit(ctx, action.SelectReferenceLocale{ProjectID: "p1", LocaleCode: "fr"}))
	require.Equal(t, "adieu", live.Rows()[1].ValueRef)

	live.SetOptions(view.Options{FilterUntranslated: true})
	require.Len(t, live.Rows(), 1)

	require.NoError(t, d.Submit(ctx, action.ClearCurrentProject{}))
	require.Empty(t, live.Rows())

	mu.Lock()
	defer mu.Unlock()
	require.Greater(t, calls, 1)
}

func TestLive_ConcurrentChangesSettleOnNewest(t *testing.T) {
	terms := state.New(func() term.State { return term.State{} })
	translations := state.New(func() translation.State { return translation.State{} })

	var (
		mu   sync.Mutex
		last []view.Row
	)
	live := view.NewLive(terms, translations, "en", view.Options{}, func(rows []view.Row) {
		mu.Lock()
		last = rows
		mu.Unlock()
	})
	defer live.Close()

	const writers, perWriter = 8, 25
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				terms.Mutate(func(st *term.State) {
					st.Terms = append(st.Terms[:len(st.Terms):len(st.Terms)], model.Term{ID: "t"})
				})
			}
		}()
	}
	wg.Wait()

	require.Len(t, live.Rows(), writers*perWriter)
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, last, writers*perWriter)
}
