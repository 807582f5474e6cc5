package ynab

import (
	"context"

	"github.com/pkg/errors"
)

// userService implements the UserService interface
type userService struct {
	client *Client
}

// Get retrieves the authenticated user
func (s *userService) Get(ctx context.Context) (*User, error) {
	var result struct {
		User *User `json:"user"`
	}

	if err := s.client.do(ctx, "GET", "/user", nil, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	if result.User == nil {
		return nil, ErrNotFound
	}

	return result.User, nil
}
