package valueobject

import (
	"fmt"
	"strings"
)

// Gateway identifies an external payment processor
type Gateway string

const (
	GatewayStripe   Gateway = "STRIPE"
	GatewayRazorpay Gateway = "RAZORPAY"
	GatewayGoogle   Gateway = "GOOGLE"
	GatewayApple    Gateway = "APPLE"
)

// AllGateways lists every gateway the backend reports, in card order
func AllGateways() []Gateway {
	return []Gateway{GatewayStripe, GatewayRazorpay, GatewayGoogle, GatewayApple}
}

// ParseGateway parses a gateway name, tolerating source casing
func ParseGateway(s string) (Gateway, error) {
	g := Gateway(strings.ToUpper(strings.TrimSpace(s)))
	if !g.IsValid() {
		return "", fmt.Errorf("invalid gateway: %q", s)
	}
	return g, nil
}

// IsValid returns true if the gateway is a known processor
func (g Gateway) IsValid() bool {
	switch g {
	case GatewayStripe, GatewayRazorpay, GatewayGoogle, GatewayApple:
		return true
	}
	return false
}

// String returns the gateway name
func (g Gateway) String() string {
	return string(g)
}
