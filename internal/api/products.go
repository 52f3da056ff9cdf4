package api

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// GetProducts fetches up to 100 product records in one call. Argument
// limits are checked before any network traffic.
func (c *Client) GetProducts(ctx context.Context, asins []string, opts ProductsOptions) ([]Product, error) {
	if len(asins) == 0 {
		return nil, &ValidationError{Param: "asin", Reason: "at least one ASIN is required"}
	}
	if len(asins) > 100 {
		return nil, &ValidationError{Param: "asin", Reason: "at most 100 ASINs per request"}
	}
	if opts.Offers != 0 && (opts.Offers < 20 || opts.Offers > 100) {
		return nil, &ValidationError{Param: "offers", Reason: "must be between 20 and 100"}
	}

	query := c.baseQuery(opts.Domain)
	query.Set("asin", strings.Join(asins, ","))
	query.Set("history", flag(opts.History))
	query.Set("rating", flag(opts.Rating))
	if opts.Update != nil {
		query.Set("update", strconv.Itoa(*opts.Update))
	}
	if opts.Stats != 0 {
		query.Set("stats", strconv.Itoa(opts.Stats))
	}
	if opts.Offers != 0 {
		query.Set("offers", strconv.Itoa(opts.Offers))
	}

	var resp ProductsResponse
	if err := c.get(ctx, "/product", query, &resp); err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}

	return resp.Products, nil
}
