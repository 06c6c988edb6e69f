package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zemuria/ops-console/internal/domain/valueobject"
)

func TestNewStaffEmail(t *testing.T) {
	t.Run("normalizes company addresses", func(t *testing.T) {
		email, err := valueobject.NewStaffEmail("  Ops@Zemuria.COM ")
		require.NoError(t, err)
		assert.Equal(t, "ops@zemuria.com", email.String())
	})

	t.Run("accepts both company domains", func(t *testing.T) {
		for _, addr := range []string{"a@zemuria.com", "b@senatio.com"} {
			_, err := valueobject.NewStaffEmail(addr)
			assert.NoError(t, err, addr)
		}
	})

	t.Run("rejects outside domains", func(t *testing.T) {
		_, err := valueobject.NewStaffEmail("ops@gmail.com")
		assert.ErrorIs(t, err, valueobject.ErrNotCompanyEmail)
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, addr := range []string{"", "not-an-email", "@zemuria.com", "ops@"} {
			_, err := valueobject.NewStaffEmail(addr)
			assert.ErrorIs(t, err, valueobject.ErrInvalidEmailFormat, addr)
		}
	})
}

func TestParsePeriod(t *testing.T) {
	for _, p := range []string{"daily", "weekly", "monthly", "total"} {
		parsed, err := valueobject.ParsePeriod(p)
		require.NoError(t, err)
		assert.Equal(t, p, parsed.String())
	}

	_, err := valueobject.ParsePeriod("quarterly")
	assert.Error(t, err)
}

func TestParseGateway(t *testing.T) {
	parsed, err := valueobject.ParseGateway("stripe")
	require.NoError(t, err)
	assert.Equal(t, valueobject.GatewayStripe, parsed)

	_, err = valueobject.ParseGateway("PAYPAL")
	assert.Error(t, err)
}

func TestParseCurrency(t *testing.T) {
	parsed, err := valueobject.ParseCurrency("inr")
	require.NoError(t, err)
	assert.Equal(t, valueobject.CurrencyINR, parsed)

	_, err = valueobject.ParseCurrency("EUR")
	assert.Error(t, err)
}
