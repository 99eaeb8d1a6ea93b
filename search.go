package lolz

import (
	"context"

	"github.com/jamesprial/go-lolz-api-wrapper/internal"
	"github.com/jamesprial/go-lolz-api-wrapper/pkg/types"
)

// Search runs a full text search over threads and posts.
func (c *Client) Search(ctx context.Context, query string, opts *types.SearchRequest) (types.Response, error) {
	if opts == nil {
		opts = &types.SearchRequest{}
	}
	params := internal.NewParams().
		Set("q", query).
		Opt("tag", opts.Tag).
		Opt("forum_id", opts.ForumID).
		Opt("user_id", opts.UserID).
		Opt("page", opts.Page).
		Opt("limit", opts.Limit)
	return c.call(ctx, epSearch, params)
}

// SearchTagged finds content carrying tag, or any of opts.Tags.
func (c *Client) SearchTagged(ctx context.Context, tag string, opts *types.TaggedSearchRequest) (types.Response, error) {
	if opts == nil {
		opts = &types.TaggedSearchRequest{}
	}
	params := internal.NewParams().
		Set("tag", tag).
		Opt("tags", opts.Tags).
		Opt("page", opts.Page).
		Opt("limit", opts.Limit)
	return c.call(ctx, epSearchTagged, params)
}
