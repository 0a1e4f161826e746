package invite_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/rpggio/termstate/internal/action"
	"github.com/rpggio/termstate/internal/dispatch"
	"github.com/rpggio/termstate/internal/domain/invite"
	"github.com/rpggio/termstate/internal/model"
	"github.com/rpggio/termstate/internal/remote"
	"github.com/rpggio/termstate/internal/remote/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*mocks.InviteAPI, *invite.Store, *dispatch.Dispatcher) {
	t.Helper()
	api := &mocks.InviteAPI{}
	store := invite.NewStore(api, nil)
	d := dispatch.New(nil)
	d.Register(store)
	return api, store, d
}

func TestInviteRoundTrip(t *testing.T) {
	api, store, d := setup(t)
	ctx := context.Background()
	api.On("CreateInvite", mock.Anything, "p1", "bob@example.com", model.RoleEditor).
		Return(&model.ProjectInvite{ID: "i1", Email: "bob@example.com", Role: model.RoleEditor}, nil)
	api.On("UpdateInvite", mock.Anything, "p1", "i1", model.RoleAdmin).
		Return(&model.ProjectInvite{ID: "i1", Email: "bob@example.com", Role: model.RoleAdmin}, nil)
	api.On("RemoveInvite", mock.Anything, "p1", "i1").Return(nil)

	require.NoError(t, d.Submit(ctx, action.CreateInvite{ProjectID: "p1", Email: "bob@example.com", Role: model.RoleEditor}))
	require.Len(t, store.Snapshot().Data.Invites, 1)

	require.NoError(t, d.Submit(ctx, action.UpdateInvite{ProjectID: "p1", InviteID: "i1", Role: model.RoleAdmin}))
	require.Equal(t, model.RoleAdmin, store.Snapshot().Data.Invites[0].Role)

	require.NoError(t, d.Submit(ctx, action.RemoveInvite{ProjectID: "p1", InviteID: "i1"}))
	snap := store.Snapshot()
	require.Empty(t, snap.Data.Invites)
	require.Empty(t, snap.ErrorMessage)
}

func TestInviteUnknownUser(t *testing.T) {
	api, store, d := setup(t)
	api.On("CreateInvite", mock.Anything, "p1", "nobody@example.com", model.RoleViewer).
		Return(nil, &remote.Error{Status: http.StatusNotFound})

	err := d.Submit(context.Background(), action.CreateInvite{ProjectID: "p1", Email: "nobody@example.com", Role: model.RoleViewer})
	require.Error(t, err)
	require.Equal(t, "There is no user to invite with this email.", store.Snapshot().ErrorMessage)
	require.False(t, store.Snapshot().IsLoading)
}

func TestInviteValidation(t *testing.T) {
	api, store, d := setup(t)

	err := d.Submit(context.Background(), action.CreateInvite{ProjectID: "p1", Email: "bob@example.com", Role: "root"})
	require.ErrorIs(t, err, invite.ErrInvalidInput)
	require.NotEmpty(t, store.Snapshot().ErrorMessage)
	api.AssertNotCalled(t, "CreateInvite", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInviteTeardown(t *testing.T) {
	api, store, d := setup(t)
	ctx := context.Background()
	fresh := store.Snapshot()
	api.On("ListInvites", mock.Anything, "p1").Return([]model.ProjectInvite{{ID: "i1"}}, nil)
	require.NoError(t, d.Submit(ctx, action.GetInvites{ProjectID: "p1"}))
	require.Len(t, store.Snapshot().Data.Invites, 1)

	require.NoError(t, d.Submit(ctx, action.ClearCurrentProject{}))
	require.Equal(t, fresh, store.Snapshot())
}
