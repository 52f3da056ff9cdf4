package api

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// GetSellers fetches merchant records by seller id, keyed by id in the
// result.
func (c *Client) GetSellers(ctx context.Context, sellerIDs []string, opts SellersOptions) (map[string]Seller, error) {
	if len(sellerIDs) == 0 {
		return nil, &ValidationError{Param: "seller", Reason: "at least one seller id is required"}
	}
	if opts.Storefront && len(sellerIDs) > 1 {
		return nil, &ValidationError{Param: "seller", Reason: "storefront requests allow a single seller id"}
	}

	query := c.baseQuery(opts.Domain)
	query.Set("seller", strings.Join(sellerIDs, ","))
	query.Set("storefront", flag(opts.Storefront))
	if opts.Update != nil {
		query.Set("update", strconv.Itoa(*opts.Update))
	}

	var resp SellersResponse
	if err := c.get(ctx, "/seller", query, &resp); err != nil {
		return nil, fmt.Errorf("get sellers: %w", err)
	}

	return resp.Sellers, nil
}
