package valueobject

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrNotCompanyEmail    = errors.New("not a company email address")
)

// company domains whose staff may hold console sessions
var staffDomains = []string{"zemuria.com", "senatio.com"}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// StaffEmail is a normalized company email address. Only addresses on the
// company domains are accepted; anything else never reaches the backend.
type StaffEmail struct {
	value string
}

// NewStaffEmail creates a StaffEmail, lowercasing and trimming the input
func NewStaffEmail(email string) (*StaffEmail, error) {
	normalized := strings.TrimSpace(strings.ToLower(email))
	if !emailRegex.MatchString(normalized) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEmailFormat, email)
	}

	domain := normalized[strings.LastIndex(normalized, "@")+1:]
	for _, allowed := range staffDomains {
		if domain == allowed {
			return &StaffEmail{value: normalized}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotCompanyEmail, domain)
}

// String returns the normalized address
func (e *StaffEmail) String() string {
	return e.value
}
