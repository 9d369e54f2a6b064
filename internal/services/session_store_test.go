package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourapi/internal/domain"
	"tourapi/internal/wizard"
)

func newTestController() *wizard.Controller {
	steps := []wizard.Step{{Name: "only"}}
	return wizard.New(steps, nil, nil)
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store := NewSessionStore(time.Minute)
	id := store.Create(FlowInquiry, newTestController())

	ctrl, flow, err := store.Get(id)
	require.NoError(t, err)
	assert.NotNil(t, ctrl)
	assert.Equal(t, FlowInquiry, flow)

	store.Delete(id)
	_, _, err = store.Get(id)
	assert.True(t, domain.IsNotFound(err))
}

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore(time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }

	id := store.Create(FlowPlanner, newTestController())

	now = now.Add(2 * time.Minute)
	_, _, err := store.Get(id)
	assert.True(t, domain.IsNotFound(err))
}

func TestSessionStoreGetRenewsDeadline(t *testing.T) {
	store := NewSessionStore(time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }

	id := store.Create(FlowPlanner, newTestController())

	now = now.Add(45 * time.Second)
	_, _, err := store.Get(id)
	require.NoError(t, err)

	// would have expired from creation; the Get above renewed it
	now = now.Add(45 * time.Second)
	_, _, err = store.Get(id)
	assert.NoError(t, err)
}

func TestSearchGenerationSupersedesOlderLookups(t *testing.T) {
	store := NewSessionStore(time.Minute)
	id := store.Create(FlowPlanner, newTestController())

	gen1, err := store.NextSearchGeneration(id)
	require.NoError(t, err)
	gen2, err := store.NextSearchGeneration(id)
	require.NoError(t, err)
	require.Greater(t, gen2, gen1)

	assert.False(t, store.SearchGenerationCurrent(id, gen1))
	assert.True(t, store.SearchGenerationCurrent(id, gen2))
}

func TestSessionStoreSweepEvictsExpired(t *testing.T) {
	store := NewSessionStore(time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }

	id := store.Create(FlowBooking, newTestController())
	now = now.Add(2 * time.Minute)
	store.sweep()

	store.mu.Lock()
	_, ok := store.sessions[id]
	store.mu.Unlock()
	assert.False(t, ok)
}
