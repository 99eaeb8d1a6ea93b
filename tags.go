package lolz

import (
	"context"

	"github.com/jamesprial/go-lolz-api-wrapper/internal"
	"github.com/jamesprial/go-lolz-api-wrapper/pkg/types"
)

// GetPopularTags lists the most used tags.
func (c *Client) GetPopularTags(ctx context.Context) (types.Response, error) {
	return c.call(ctx, epPopularTags, nil)
}

// GetTags lists every tag.
func (c *Client) GetTags(ctx context.Context) (types.Response, error) {
	return c.call(ctx, epTags, nil)
}

// GetTagged lists the content carrying a tag.
func (c *Client) GetTagged(ctx context.Context, tagID int, opts *types.PageRequest) (types.Response, error) {
	return c.call(ctx, epTagged, pageParams(opts), tagID)
}

// FindTags looks up tags by prefix.
func (c *Client) FindTags(ctx context.Context, tag string) (types.Response, error) {
	return c.call(ctx, epFindTags, internal.NewParams().Set("tag", tag))
}
