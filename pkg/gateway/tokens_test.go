package gateway_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/storekit/pkg/gateway"
)

func TestTokenShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value    string
		isMethod bool
		isIntent bool
	}{
		{"pm_1NVChw2eZvKYlo2CHxiM5E2N", true, false},
		{"src_1MvoiM2eZvKYlo2CGLXK8WsM", true, false},
		{"pi_3NVChw2eZvKYlo2C1bJZGPZx", false, true},
		{"ch_3NVChw2eZvKYlo2C1bJZGPZx", false, false},
		{"pm_", false, false},
		{"pi_", false, false},
		{"", false, false},
		{"bank-transfer", false, false},
		{"pm_abc def", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.isMethod, gateway.IsPaymentMethodToken(tt.value), "method token shape")
			assert.Equal(t, tt.isIntent, gateway.IsPaymentIntentID(tt.value), "intent id shape")
		})
	}
}
