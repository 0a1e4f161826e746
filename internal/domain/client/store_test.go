package client_test

import (
	"context"
	"testing"

	"github.com/rpggio/termstate/internal/action"
	"github.com/rpggio/termstate/internal/dispatch"
	"github.com/rpggio/termstate/internal/domain/client"
	"github.com/rpggio/termstate/internal/model"
	"github.com/rpggio/termstate/internal/remote/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*mocks.ClientAPI, *client.Store, *dispatch.Dispatcher) {
	t.Helper()
	api := &mocks.ClientAPI{}
	store := client.NewStore(api, nil)
	d := dispatch.New(nil)
	d.Register(store)
	return api, store, d
}

func TestClientLifecycle(t *testing.T) {
	api, store, d := setup(t)
	ctx := context.Background()
	api.On("CreateClient", mock.Anything, "p1", "ci", model.RoleEditor).
		Return(&model.ProjectClient{ID: "c1", Name: "ci", Role: model.RoleEditor, Secret: "s3cret"}, nil)
	api.On("UpdateClient", mock.Anything, "p1", "c1", "ci-bot", model.RoleViewer).
		Return(&model.ProjectClient{ID: "c1", Name: "ci-bot", Role: model.RoleViewer}, nil)
	api.On("RegenerateClientSecret", mock.Anything, "p1", "c1").
		Return(&model.ProjectClient{ID: "c1", Name: "ci-bot", Role: model.RoleViewer, Secret: "fresh"}, nil)
	api.On("RemoveClient", mock.Anything, "p1", "c1").Return(nil)

	require.NoError(t, d.Submit(ctx, action.CreateClient{ProjectID: "p1", Name: "ci", Role: model.RoleEditor}))
	require.Equal(t, "s3cret", store.Snapshot().Data.Clients[0].Secret)

	require.NoError(t, d.Submit(ctx, action.UpdateClient{ProjectID: "p1", ClientID: "c1", Name: "ci-bot", Role: model.RoleViewer}))
	c := store.Snapshot().Data.Clients[0]
	require.Equal(t, "ci-bot", c.Name)
	require.Equal(t, "s3cret", c.Secret)

	require.NoError(t, d.Submit(ctx, action.RegenerateClientSecret{ProjectID: "p1", ClientID: "c1"}))
	require.Equal(t, "fresh", store.Snapshot().Data.Clients[0].Secret)

	require.NoError(t, d.Submit(ctx, action.RemoveClient{ProjectID: "p1", ClientID: "c1"}))
	snap := store.Snapshot()
	require.Empty(t, snap.Data.Clients)
	require.Empty(t, snap.ErrorMessage)
}

func TestClientValidationAndClearMessages(t *testing.T) {
	api, store, d := setup(t)
	ctx := context.Background()

	require.ErrorIs(t, d.Submit(ctx, action.CreateClient{ProjectID: "p1", Role: model.RoleAdmin}), client.ErrInvalidInput)
	require.NotEmpty(t, store.Snapshot().ErrorMessage)
	api.AssertNotCalled(t, "CreateClient", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	require.NoError(t, d.Submit(ctx, action.ClearMessages{Scope: action.ScopeInvites}))
	require.NotEmpty(t, store.Snapshot().ErrorMessage)
	require.NoError(t, d.Submit(ctx, action.ClearMessages{}))
	require.Empty(t, store.Snapshot().ErrorMessage)
}

func TestClientTeardownOnLogout(t *testing.T) {
	api, store, d := setup(t)
	ctx := context.Background()
	fresh := store.Snapshot()
	api.On("ListClients", mock.Anything, "p1").Return([]model.ProjectClient{{ID: "c1"}}, nil)
	require.NoError(t, d.Submit(ctx, action.GetClients{ProjectID: "p1"}))

	require.NoError(t, d.Submit(ctx, action.Logout{Reason: action.ReasonExpired}))
	require.Equal(t, fresh, store.Snapshot())
}
