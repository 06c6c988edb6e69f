package command_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zemuria/ops-console/internal/application/command"
	"github.com/zemuria/ops-console/internal/application/dto"
	"github.com/zemuria/ops-console/internal/domain/entity"
	domainErrors "github.com/zemuria/ops-console/internal/domain/errors"
	"github.com/zemuria/ops-console/internal/infrastructure/cache"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

type stubSubmitter struct {
	mu       sync.Mutex
	calls    int
	combined int
	lastReq  *entity.OverrideRequest
	err      error
	block    chan struct{}
}

func (s *stubSubmitter) AddUserAccess(ctx context.Context, req *entity.OverrideRequest) error {
	return s.record(req, false)
}

func (s *stubSubmitter) GrantCombinedAccess(ctx context.Context, req *entity.OverrideRequest) error {
	return s.record(req, true)
}

func (s *stubSubmitter) record(req *entity.OverrideRequest, combined bool) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if combined {
		s.combined++
	}
	s.lastReq = req
	return s.err
}

func validDraft() *entity.OverrideRequest {
	draft := entity.NewOverrideDraft()
	draft.User = "alice@zemuria.com"
	draft.Plan = "pro-monthly"
	return draft
}

func newCommand(backend *stubSubmitter) (*command.GrantAccessCommand, *cache.ListingCache) {
	listings := cache.NewListingCache(zap.NewNop())
	return command.NewGrantAccessCommand(backend, listings, zap.NewNop()), listings
}

func TestGrantAccessCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("successful grant invalidates listings", func(t *testing.T) {
		backend := &stubSubmitter{}
		cmd, listings := newCommand(backend)
		listings.SetUserOptions(nil)

		result, err := cmd.Execute(ctx, validDraft(), false)
		require.NoError(t, err)
		assert.Contains(t, result.TransactionID, "MAN-")
		assert.Equal(t, 1, backend.calls)
		assert.Zero(t, backend.combined)

		_, ok := listings.GetUserOptions()
		assert.False(t, ok, "listings must be dropped after a grant")

		state, lastErr := cmd.State()
		assert.Equal(t, command.StateSucceeded, state)
		assert.Empty(t, lastErr)
	})

	t.Run("combined grant uses the combined endpoint", func(t *testing.T) {
		backend := &stubSubmitter{}
		cmd, _ := newCommand(backend)

		_, err := cmd.Execute(ctx, validDraft(), true)
		require.NoError(t, err)
		assert.Equal(t, 1, backend.combined)
	})

	t.Run("each attempt mints a fresh transaction id", func(t *testing.T) {
		backend := &stubSubmitter{}
		cmd, _ := newCommand(backend)

		draft := validDraft()
		formID := draft.TransactionID

		first, err := cmd.Execute(ctx, draft, false)
		require.NoError(t, err)
		second, err := cmd.Execute(ctx, validDraft(), false)
		require.NoError(t, err)

		assert.NotEqual(t, formID, first.TransactionID)
		assert.NotEqual(t, first.TransactionID, second.TransactionID)
	})

	t.Run("validation failure never reaches the backend", func(t *testing.T) {
		backend := &stubSubmitter{}
		cmd, _ := newCommand(backend)

		tests := []struct {
			name   string
			mutate func(r *entity.OverrideRequest)
		}{
			{"missing user", func(r *entity.OverrideRequest) { r.User = "" }},
			{"missing plan", func(r *entity.OverrideRequest) { r.Plan = "" }},
			{"unknown gateway", func(r *entity.OverrideRequest) { r.Gateway = "PAYPAL" }},
			{"unknown currency", func(r *entity.OverrideRequest) { r.Currency = "EUR" }},
			{"negative amount", func(r *entity.OverrideRequest) { r.TotalAmount = decimal.NewFromInt(-5) }},
			{"unparseable start", func(r *entity.OverrideRequest) { r.StartDate = "tomorrow" }},
			{"start equals end", func(r *entity.OverrideRequest) { r.EndDate = r.StartDate }},
			{"start after end", func(r *entity.OverrideRequest) {
				r.StartDate = "2026-09-30T12:00"
				r.EndDate = "2026-09-01T12:00"
			}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				draft := validDraft()
				tt.mutate(draft)

				_, err := cmd.Execute(ctx, draft, false)
				require.Error(t, err)

				var vErr *domainErrors.ValidationError
				assert.True(t, errors.As(err, &vErr), "want a validation error, got %v", err)
			})
		}

		assert.Zero(t, backend.calls, "invalid requests must not hit the network")
	})

	t.Run("backend failure preserves the failure message", func(t *testing.T) {
		backend := &stubSubmitter{err: errors.New("plan does not exist")}
		cmd, _ := newCommand(backend)

		_, err := cmd.Execute(ctx, validDraft(), false)
		require.Error(t, err)

		state, lastErr := cmd.State()
		assert.Equal(t, command.StateFailed, state)
		assert.Equal(t, "plan does not exist", lastErr)
	})

	t.Run("second submission is rejected while one is in flight", func(t *testing.T) {
		backend := &stubSubmitter{block: make(chan struct{})}
		cmd, _ := newCommand(backend)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = cmd.Execute(ctx, validDraft(), false)
		}()

		// Wait until the first submission holds the slot
		require.Eventually(t, func() bool {
			state, _ := cmd.State()
			return state == command.StateSubmitting
		}, waitFor, tick)

		_, err := cmd.Execute(ctx, validDraft(), false)
		assert.ErrorIs(t, err, domainErrors.ErrSubmissionInFlight)
		assert.Equal(t, 0, backend.calls)

		close(backend.block)
		wg.Wait()
		assert.Equal(t, 1, backend.calls)
	})
}

func TestLoginCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts company addresses", func(t *testing.T) {
		auth := &stubAuthenticator{}
		cmd := command.NewLoginCommand(auth, zap.NewNop())

		resp, err := cmd.Execute(ctx, &dto.LoginRequest{Email: "Ops@Zemuria.com", Password: "correct-horse"})
		require.NoError(t, err)
		assert.Equal(t, "ops@zemuria.com", resp.Email)
		assert.Equal(t, 1, auth.calls)
	})

	t.Run("rejects outside domains without calling upstream", func(t *testing.T) {
		auth := &stubAuthenticator{}
		cmd := command.NewLoginCommand(auth, zap.NewNop())

		_, err := cmd.Execute(ctx, &dto.LoginRequest{Email: "ops@gmail.com", Password: "correct-horse"})
		require.Error(t, err)
		assert.Zero(t, auth.calls)
	})

	t.Run("rejects short passwords without calling upstream", func(t *testing.T) {
		auth := &stubAuthenticator{}
		cmd := command.NewLoginCommand(auth, zap.NewNop())

		_, err := cmd.Execute(ctx, &dto.LoginRequest{Email: "ops@zemuria.com", Password: "abc"})
		require.Error(t, err)
		assert.Zero(t, auth.calls)
	})

	t.Run("four characters is the shortest accepted password", func(t *testing.T) {
		auth := &stubAuthenticator{}
		cmd := command.NewLoginCommand(auth, zap.NewNop())

		_, err := cmd.Execute(ctx, &dto.LoginRequest{Email: "ops@zemuria.com", Password: "pin1"})
		require.NoError(t, err)
		assert.Equal(t, 1, auth.calls)
	})

	t.Run("upstream rejection is passed through", func(t *testing.T) {
		auth := &stubAuthenticator{err: domainErrors.ErrInvalidCredentials}
		cmd := command.NewLoginCommand(auth, zap.NewNop())

		_, err := cmd.Execute(ctx, &dto.LoginRequest{Email: "ops@zemuria.com", Password: "correct-horse"})
		assert.ErrorIs(t, err, domainErrors.ErrInvalidCredentials)
	})
}

type stubAuthenticator struct {
	calls int
	err   error
}

func (s *stubAuthenticator) Login(ctx context.Context, email, password string) error {
	s.calls++
	return s.err
}
