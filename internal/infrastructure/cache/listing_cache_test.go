package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zemuria/ops-console/internal/infrastructure/external/engine"
)

func TestListingCacheRoundTrip(t *testing.T) {
	c := NewListingCache(zap.NewNop())

	_, ok := c.GetUserOptions()
	assert.False(t, ok, "empty cache must miss")

	users := []engine.Option{{Value: "u1", Label: "alice@zemuria.com"}}
	plans := []engine.Option{{Value: "p1", Label: "Pro Monthly"}}
	c.SetUserOptions(users)
	c.SetPlanOptions(plans)

	got, ok := c.GetUserOptions()
	require.True(t, ok)
	assert.Equal(t, users, got)

	gotPlans, ok := c.GetPlanOptions()
	require.True(t, ok)
	assert.Equal(t, plans, gotPlans)
}

func TestListingCacheInvalidate(t *testing.T) {
	c := NewListingCache(zap.NewNop())

	c.SetUserOptions([]engine.Option{{Value: "u1", Label: "alice@zemuria.com"}})
	c.SetAdminLogs([]engine.AdminLogEntry{{Actor: "ops@zemuria.com", Action: "ADD_USER_ACCESS"}})

	c.Invalidate()

	_, ok := c.GetUserOptions()
	assert.False(t, ok)
	_, ok = c.GetAdminLogs()
	assert.False(t, ok)
}
