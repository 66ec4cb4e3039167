package mode

import (
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabdo/internal/storage"
	"tabdo/internal/task"
)

func newController(t *testing.T, titles ...string) (*Controller, *task.Store) {
	t.Helper()
	store := task.NewStore(storage.NewAdapter(storage.NewMemory(), log.DefaultLogger), log.DefaultLogger)
	for _, title := range titles {
		_, ok := store.Create(title)
		require.True(t, ok)
	}
	return NewController(store, log.DefaultLogger), store
}

func TestController_TapInNormalToggles(t *testing.T) {
	c, store := newController(t, "Buy milk", "Walk dog")

	action, err := c.Tap(2)
	require.NoError(t, err)
	assert.Equal(t, Toggled, action)
	assert.Len(t, store.List(), 2)
	assert.Equal(t, task.StatusDone, store.List()[1].Status)
}

func TestController_TapInRemovalModeRemoves(t *testing.T) {
	c, store := newController(t, "Buy milk", "Walk dog")

	require.NoError(t, c.EnableRemoval())
	assert.Equal(t, RemovalMode, c.State())

	action, err := c.Tap(2)
	require.NoError(t, err)
	assert.Equal(t, Removed, action)
	assert.Equal(t, []task.Task{{ID: 1, Title: "Buy milk", Status: task.StatusOpen}}, store.List())
}

func TestController_TapUnknownID(t *testing.T) {
	c, _ := newController(t, "a")

	_, err := c.Tap(9)
	assert.ErrorIs(t, err, task.ErrNotFound)

	require.NoError(t, c.EnableRemoval())
	_, err = c.Tap(9)
	assert.ErrorIs(t, err, task.ErrNotFound)
}

func TestController_CancelClear(t *testing.T) {
	c, store := newController(t, "a", "b")
	require.NoError(t, c.EnableRemoval())

	require.NoError(t, c.RequestClear())
	assert.Equal(t, ConfirmingClear, c.State())
	require.NoError(t, c.CancelClear())

	assert.Equal(t, RemovalMode, c.State())
	assert.Len(t, store.List(), 2)
}

func TestController_ConfirmClear(t *testing.T) {
	c, store := newController(t, "a", "b")
	require.NoError(t, c.EnableRemoval())
	require.NoError(t, c.RequestClear())

	require.NoError(t, c.ConfirmClear())

	assert.Equal(t, Normal, c.State())
	assert.Empty(t, store.List())
	created, ok := store.Create("c")
	require.True(t, ok)
	assert.Equal(t, 3, created.ID)
}

func TestController_ClearOnlyThroughConfirm(t *testing.T) {
	c, store := newController(t, "a")

	assert.ErrorIs(t, c.RequestClear(), ErrInvalidTransition)
	assert.ErrorIs(t, c.ConfirmClear(), ErrInvalidTransition)
	assert.Equal(t, Normal, c.State())

	require.NoError(t, c.EnableRemoval())
	assert.ErrorIs(t, c.ConfirmClear(), ErrInvalidTransition)
	assert.ErrorIs(t, c.CancelClear(), ErrInvalidTransition)
	assert.Equal(t, RemovalMode, c.State())

	assert.Len(t, store.List(), 1)
}

func TestController_DialogIsModal(t *testing.T) {
	c, store := newController(t, "a")
	require.NoError(t, c.EnableRemoval())
	require.NoError(t, c.RequestClear())

	_, err := c.Tap(1)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, c.EnableRemoval(), ErrInvalidTransition)
	assert.ErrorIs(t, c.DisableRemoval(), ErrInvalidTransition)
	assert.ErrorIs(t, c.RequestClear(), ErrInvalidTransition)

	assert.Equal(t, ConfirmingClear, c.State())
	assert.Len(t, store.List(), 1)
}

func TestController_IdempotentToggles(t *testing.T) {
	c, _ := newController(t)

	require.NoError(t, c.DisableRemoval())
	assert.Equal(t, Normal, c.State())
	assert.True(t, c.CanCreate())

	require.NoError(t, c.EnableRemoval())
	require.NoError(t, c.EnableRemoval())
	assert.Equal(t, RemovalMode, c.State())
	assert.False(t, c.CanCreate())

	require.NoError(t, c.DisableRemoval())
	assert.Equal(t, Normal, c.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Normal", Normal.String())
	assert.Equal(t, "RemovalMode", RemovalMode.String())
	assert.Equal(t, "ConfirmingClear", ConfirmingClear.String())
	assert.Equal(t, "State(9)", State(9).String())
}
