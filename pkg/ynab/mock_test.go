package ynab

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/stretchr/testify/mock"
)

// MockTransport is a testify mock for the Transport interface. A string in
// the first return slot is unmarshaled into the result argument, standing in
// for the unwrapped data envelope.
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Do(ctx context.Context, method, path string, query url.Values, body, result interface{}) error {
	args := m.Called(ctx, method, path, query, body, result)

	// If mock provides result data, unmarshal it
	if args.Get(0) != nil {
		resultJSON := args.Get(0).(string)
		if err := json.Unmarshal([]byte(resultJSON), result); err != nil {
			return err
		}
	}

	return args.Error(1)
}

func (m *MockTransport) SetToken(token string) {
	m.Called(token)
}

// newTestClient wires a client directly onto a mock transport
func newTestClient(transport *MockTransport) *Client {
	client := &Client{
		transport: transport,
		options:   &ClientOptions{},
		baseURL:   "https://api.test.com",
	}
	client.initServices()
	return client
}
