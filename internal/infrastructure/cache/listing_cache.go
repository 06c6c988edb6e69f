package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/zemuria/ops-console/internal/infrastructure/external/engine"
)

// Cache key constants
const (
	KeyUserOptions = "listing:options:users"
	KeyPlanOptions = "listing:options:plans"
	KeyAdminLogs   = "listing:admin:logs"
)

// TTL constants
const (
	TTLOptions   = 5 * time.Minute
	TTLAdminLogs = 1 * time.Minute
)

// ListingCache keeps the slow admin listings (user/plan option sets and
// the audit log) in process memory so repeated page loads don't hammer
// the backend. A successful override invalidates everything, since both
// the logs and the affected user's entries go stale at once.
type ListingCache struct {
	store  *gocache.Cache
	logger *zap.Logger
}

// NewListingCache creates a new listing cache
func NewListingCache(logger *zap.Logger) *ListingCache {
	return &ListingCache{
		store:  gocache.New(TTLOptions, 10*time.Minute),
		logger: logger,
	}
}

// SetUserOptions stores the user option set
func (c *ListingCache) SetUserOptions(options []engine.Option) {
	c.store.Set(KeyUserOptions, options, TTLOptions)
	c.logger.Debug("Cached user options", zap.Int("count", len(options)))
}

// GetUserOptions retrieves the cached user option set
func (c *ListingCache) GetUserOptions() ([]engine.Option, bool) {
	v, ok := c.store.Get(KeyUserOptions)
	if !ok {
		return nil, false
	}
	options, ok := v.([]engine.Option)
	return options, ok
}

// SetPlanOptions stores the plan option set
func (c *ListingCache) SetPlanOptions(options []engine.Option) {
	c.store.Set(KeyPlanOptions, options, TTLOptions)
	c.logger.Debug("Cached plan options", zap.Int("count", len(options)))
}

// GetPlanOptions retrieves the cached plan option set
func (c *ListingCache) GetPlanOptions() ([]engine.Option, bool) {
	v, ok := c.store.Get(KeyPlanOptions)
	if !ok {
		return nil, false
	}
	options, ok := v.([]engine.Option)
	return options, ok
}

// SetAdminLogs stores the audit log listing
func (c *ListingCache) SetAdminLogs(logs []engine.AdminLogEntry) {
	c.store.Set(KeyAdminLogs, logs, TTLAdminLogs)
	c.logger.Debug("Cached admin logs", zap.Int("count", len(logs)))
}

// GetAdminLogs retrieves the cached audit log listing
func (c *ListingCache) GetAdminLogs() ([]engine.AdminLogEntry, bool) {
	v, ok := c.store.Get(KeyAdminLogs)
	if !ok {
		return nil, false
	}
	logs, ok := v.([]engine.AdminLogEntry)
	return logs, ok
}

// Invalidate drops every cached listing
func (c *ListingCache) Invalidate() {
	c.store.Flush()
	c.logger.Debug("Invalidated listing cache")
}
