package confirmation_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/storekit/pkg/gateway"
	"github.com/dmitrymomot/storekit/pkg/mailer"
)

// MockGatewayClient is a mock implementation of gateway.Client.
type MockGatewayClient struct {
	mock.Mock
}

func (m *MockGatewayClient) FetchIntent(ctx context.Context, id string) (*gateway.Intent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Intent), args.Error(1)
}

func (m *MockGatewayClient) FetchPaymentMethod(ctx context.Context, token string) (*gateway.PaymentMethod, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.PaymentMethod), args.Error(1)
}

// MockSender is a mock implementation of mailer.Sender.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg mailer.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// discardLogger keeps test output clean.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
