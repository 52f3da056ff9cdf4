package api

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// GetCategories looks up category nodes by id, at most 10 per call. With
// opts.Parents the response also maps every node up to the tree root.
func (c *Client) GetCategories(ctx context.Context, categoryIDs []int64, opts CategoriesOptions) (*CategoriesResponse, error) {
	if len(categoryIDs) == 0 {
		return nil, &ValidationError{Param: "category", Reason: "at least one category id is required"}
	}
	if len(categoryIDs) > 10 {
		return nil, &ValidationError{Param: "category", Reason: "at most 10 category ids per request"}
	}

	ids := make([]string, len(categoryIDs))
	for i, id := range categoryIDs {
		ids[i] = strconv.FormatInt(id, 10)
	}

	query := c.baseQuery(opts.Domain)
	query.Set("category", strings.Join(ids, ","))
	if opts.Parents {
		query.Set("parents", "1")
	}

	var resp CategoriesResponse
	if err := c.get(ctx, "/category/", query, &resp); err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}

	return &resp, nil
}
