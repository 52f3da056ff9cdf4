package api

import (
	"context"
	"fmt"
	"strconv"
)

// GetBestSellers fetches the best sellers ASIN list of one category.
func (c *Client) GetBestSellers(ctx context.Context, categoryID int64, opts BestSellersOptions) (*BestSellersList, error) {
	query := c.baseQuery(opts.Domain)
	query.Set("category", strconv.FormatInt(categoryID, 10))

	var resp BestSellersResponse
	if err := c.get(ctx, "/bestsellers", query, &resp); err != nil {
		return nil, fmt.Errorf("get best sellers: %w", err)
	}

	return &resp.BestSellersList, nil
}
