package tag_test

import (
	"context"
	"testing"

	"github.com/rpggio/termstate/internal/action"
	"github.com/rpggio/termstate/internal/dispatch"
	"github.com/rpggio/termstate/internal/domain/tag"
	"github.com/rpggio/termstate/internal/model"
	"github.com/rpggio/termstate/internal/remote/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTagRoundTrip(t *testing.T) {
	api := &mocks.TaxonomyAPI[model.Tag]{}
	store := tag.NewStore(api, nil)
	d := dispatch.New(nil)
	d.Register(store)
	ctx := context.Background()

	created := model.Tag{ID: "g1", Value: "mobile"}
	renamed := model.Tag{ID: "g1", Value: "ios"}
	api.On("List", mock.Anything, "p1").Return([]model.Tag{}, nil)
	api.On("Create", mock.Anything, "p1", "mobile", "").Return(&created, nil)
	api.On("Update", mock.Anything, "p1", renamed).Return(&renamed, nil)
	api.On("Remove", mock.Anything, "p1", "g1").Return(nil)

	require.NoError(t, d.Submit(ctx, action.GetTags{ProjectID: "p1"}))
	require.NoError(t, d.Submit(ctx, action.CreateTag{ProjectID: "p1", Value: "mobile"}))
	require.NoError(t, d.Submit(ctx, action.UpdateTag{ProjectID: "p1", Tag: renamed}))
	require.Equal(t, "ios", store.Snapshot().Data.Items[0].Value)
	require.NoError(t, d.Submit(ctx, action.RemoveTag{ProjectID: "p1", TagID: "g1"}))

	snap := store.Snapshot()
	require.Empty(t, snap.Data.Items)
	require.Empty(t, snap.ErrorMessage)
}

func TestTagStoreIgnoresLabels(t *testing.T) {
	api := &mocks.TaxonomyAPI[model.Tag]{}
	d := dispatch.New(nil)
	d.Register(tag.NewStore(api, nil))

	require.NoError(t, d.Submit(context.Background(), action.GetLabels{ProjectID: "p1"}))
	api.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}
