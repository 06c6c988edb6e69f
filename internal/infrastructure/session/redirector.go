package session

import "sync/atomic"

// Redirector records that the console must send the operator back to the
// login view. The HTTP client raises it when the backend signals session
// expiry; the next guarded request consumes it.
type Redirector struct {
	pending atomic.Bool
	total   atomic.Int64
}

// NewRedirector creates a new redirector
func NewRedirector() *Redirector {
	return &Redirector{}
}

// Trigger marks a pending redirect to the login view
func (r *Redirector) Trigger() {
	r.pending.Store(true)
	r.total.Add(1)
}

// Consume reports and clears a pending redirect
func (r *Redirector) Consume() bool {
	return r.pending.Swap(false)
}

// Count returns how many times a redirect was triggered
func (r *Redirector) Count() int64 {
	return r.total.Load()
}
