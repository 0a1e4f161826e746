package label_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/rpggio/termstate/internal/action"
	"github.com/rpggio/termstate/internal/dispatch"
	"github.com/rpggio/termstate/internal/domain/label"
	"github.com/rpggio/termstate/internal/model"
	"github.com/rpggio/termstate/internal/remote"
	"github.com/rpggio/termstate/internal/remote/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cascades struct {
	mu  sync.Mutex
	got []action.Action
}

func (c *cascades) Handle(_ context.Context, a action.Action) (dispatch.Reaction, bool) {
	switch a.(type) {
	case action.LabelUpdated, action.LabelRemoved:
		c.mu.Lock()
		c.got = append(c.got, a)
		c.mu.Unlock()
		return dispatch.Done, true
	}
	return dispatch.Done, false
}

func setup(t *testing.T) (*mocks.TaxonomyAPI[model.Label], *label.Store, *cascades, *dispatch.Dispatcher) {
	t.Helper()
	api := &mocks.TaxonomyAPI[model.Label]{}
	store := label.NewStore(api, nil)
	c := &cascades{}
	d := dispatch.New(nil)
	d.Register(store, c)
	return api, store, c, d
}

func TestCreateUpdateRemoveRoundTrip(t *testing.T) {
	api, store, c, d := setup(t)
	ctx := context.Background()
	created := model.Label{ID: "l1", Value: "urgent", Color: "red"}
	renamed := model.Label{ID: "l1", Value: "blocker", Color: "red"}
	api.On("Create", mock.Anything, "p1", "urgent", "red").Return(&created, nil)
	api.On("Update", mock.Anything, "p1", renamed).Return(&renamed, nil)
	api.On("Remove", mock.Anything, "p1", "l1").Return(nil)

	require.NoError(t, d.Submit(ctx, action.CreateLabel{ProjectID: "p1", Value: "urgent", Color: "red"}))
	require.Equal(t, []model.Label{created}, store.Snapshot().Data.Items)

	require.NoError(t, d.Submit(ctx, action.UpdateLabel{ProjectID: "p1", Label: renamed}))
	require.Equal(t, []model.Label{renamed}, store.Snapshot().Data.Items)

	require.NoError(t, d.Submit(ctx, action.RemoveLabel{ProjectID: "p1", LabelID: "l1"}))
	snap := store.Snapshot()
	require.Empty(t, snap.Data.Items)
	require.Empty(t, snap.ErrorMessage)

	require.Equal(t, []action.Action{
		action.LabelUpdated{Label: renamed},
		action.LabelRemoved{LabelID: "l1"},
	}, c.got)
}

func TestCreateDuplicate(t *testing.T) {
	api, store, _, d := setup(t)
	api.On("Create", mock.Anything, "p1", "urgent", "").Return(nil, &remote.Error{
		Status: http.StatusConflict, Code: remote.CodeAlreadyExists,
	})

	require.Error(t, d.Submit(context.Background(), action.CreateLabel{ProjectID: "p1", Value: "urgent"}))
	require.Equal(t, "A label with this value already exists.", store.Snapshot().ErrorMessage)
	require.False(t, store.Snapshot().IsLoading)
}

func TestRemoveFailureDoesNotCascade(t *testing.T) {
	api, _, c, d := setup(t)
	api.On("Remove", mock.Anything, "p1", "l1").Return(&remote.Error{Status: http.StatusForbidden})

	require.Error(t, d.Submit(context.Background(), action.RemoveLabel{ProjectID: "p1", LabelID: "l1"}))
	require.Empty(t, c.got)
}

func TestAttachDetachCallRemote(t *testing.T) {
	api, store, _, d := setup(t)
	ctx := context.Background()
	l := model.Label{ID: "l1"}
	api.On("AttachTerm", mock.Anything, "p1", "l1", "t1").Return(nil)
	api.On("DetachTerm", mock.Anything, "p1", "l1", "t1").Return(nil)
	api.On("AttachTranslation", mock.Anything, "p1", "l1", "t1", "fr").Return(nil)
	api.On("DetachTranslation", mock.Anything, "p1", "l1", "t1", "fr").Return(nil)

	require.NoError(t, d.Submit(ctx, action.LabelTerm{ProjectID: "p1", Label: l, TermID: "t1"}))
	require.NoError(t, d.Submit(ctx, action.UnlabelTerm{ProjectID: "p1", Label: l, TermID: "t1"}))
	require.NoError(t, d.Submit(ctx, action.LabelTranslation{ProjectID: "p1", Label: l, TermID: "t1", LocaleCode: "fr"}))
	require.NoError(t, d.Submit(ctx, action.UnlabelTranslation{ProjectID: "p1", Label: l, TermID: "t1", LocaleCode: "fr"}))

	api.AssertExpectations(t)
	require.False(t, store.Snapshot().IsLoading)
}

func TestIgnoresTagActions(t *testing.T) {
	api, _, _, d := setup(t)

	require.NoError(t, d.Submit(context.Background(), action.TagTerm{ProjectID: "p1", Tag: model.Tag{ID: "g1"}, TermID: "t1"}))
	api.AssertNotCalled(t, "AttachTerm", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTeardownAndClearMessages(t *testing.T) {
	api, store, _, d := setup(t)
	ctx := context.Background()
	fresh := store.Snapshot()
	api.On("List", mock.Anything, "p1").Return([]model.Label{{ID: "l1"}}, nil)
	require.NoError(t, d.Submit(ctx, action.GetLabels{ProjectID: "p1"}))
	require.Error(t, d.Submit(ctx, action.CreateLabel{ProjectID: "p1"}))

	require.NoError(t, d.Submit(ctx, action.ClearMessages{Scope: action.ScopeLabels}))
	once := store.Snapshot()
	require.Empty(t, once.ErrorMessage)
	require.NoError(t, d.Submit(ctx, action.ClearMessages{Scope: action.ScopeLabels}))
	require.Equal(t, once, store.Snapshot())

	require.NoError(t, d.Submit(ctx, action.SetCurrentProject{ProjectID: "p2"}))
	require.Equal(t, fresh, store.Snapshot())
}
