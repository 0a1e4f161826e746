package nav_test

import (
	"context"
	"testing"

	"github.com/rpggio/termstate/internal/action"
	"github.com/rpggio/termstate/internal/dispatch"
	"github.com/rpggio/termstate/internal/nav"
	"github.com/stretchr/testify/require"
)

func TestHandler_ForwardsNavigation(t *testing.T) {
	rec := nav.NewRecorder()
	d := dispatch.New(nil)
	d.Register(nav.NewHandler(rec, nil))
	ctx := context.Background()

	require.NoError(t, d.Submit(ctx, action.Navigate{Target: nav.NotFound}))
	require.NoError(t, d.Submit(ctx, action.OpenExternal{URL: "https://accounts.example.com/authorize"}))

	require.Equal(t, []string{nav.NotFound, "https://accounts.example.com/authorize"}, rec.History())
	require.Equal(t, "https://accounts.example.com/authorize", rec.Last())
}

func TestHandler_IgnoresOtherActions(t *testing.T) {
	_, ok := nav.NewHandler(nil, nil).Handle(context.Background(), action.GetProjects{})
	require.False(t, ok)
}
