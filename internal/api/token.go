package api

import (
	"context"
	"fmt"
	"net/url"
)

// GetTokenStatus reads the current token bucket state. The call costs no
// tokens and carries no marketplace scope.
func (c *Client) GetTokenStatus(ctx context.Context) (*TokenStatus, error) {
	query := url.Values{}
	query.Set("key", c.accessKey)

	var status TokenStatus
	if err := c.get(ctx, "/token", query, &status); err != nil {
		return nil, fmt.Errorf("get token status: %w", err)
	}

	return &status, nil
}

// TokensLeft fetches the current bucket level.
func (c *Client) TokensLeft(ctx context.Context) (int, error) {
	status, err := c.GetTokenStatus(ctx)
	if err != nil {
		return 0, err
	}
	return status.TokensLeft, nil
}
