package lolz

import (
	"context"

	"github.com/jamesprial/go-lolz-api-wrapper/internal"
	"github.com/jamesprial/go-lolz-api-wrapper/pkg/types"
)

// GetCategories lists the forum categories.
func (c *Client) GetCategories(ctx context.Context, opts *types.CategoriesRequest) (types.Response, error) {
	return c.call(ctx, epCategories, nodeListParams(opts))
}

// GetCategory returns one category.
func (c *Client) GetCategory(ctx context.Context, categoryID int) (types.Response, error) {
	return c.call(ctx, epCategory, nil, categoryID)
}

// GetForums lists forums, optionally below a parent category or forum.
func (c *Client) GetForums(ctx context.Context, opts *types.ForumsRequest) (types.Response, error) {
	return c.call(ctx, epForums, nodeListParams(opts))
}

func nodeListParams(opts *types.CategoriesRequest) *internal.Params {
	if opts == nil {
		opts = &types.CategoriesRequest{}
	}
	return internal.NewParams().
		Opt("parent_category_id", opts.ParentCategoryID).
		Opt("parent_forum_id", opts.ParentForumID).
		Opt("order", opts.Order)
}

// GetForum returns one forum.
func (c *Client) GetForum(ctx context.Context, forumID int) (types.Response, error) {
	return c.call(ctx, epForum, nil, forumID)
}

// GetForumFollowers lists the users following a forum.
func (c *Client) GetForumFollowers(ctx context.Context, forumID int) (types.Response, error) {
	return c.call(ctx, epForumFollowers, nil, forumID)
}

// FollowForum subscribes the current user to a forum.
func (c *Client) FollowForum(ctx context.Context, forumID int, opts *types.FollowForumRequest) (types.Response, error) {
	if opts == nil {
		opts = &types.FollowForumRequest{}
	}
	params := internal.NewParams().
		Opt("post", opts.Post).
		Opt("alert", opts.Alert).
		Opt("email", opts.Email)
	return c.call(ctx, epFollowForum, params, forumID)
}

// UnfollowForum removes the current user's forum subscription.
func (c *Client) UnfollowForum(ctx context.Context, forumID int) (types.Response, error) {
	return c.call(ctx, epUnfollowForum, nil, forumID)
}

// GetFollowedForums lists forums followed by the current user. With total
// set, only the count is returned.
func (c *Client) GetFollowedForums(ctx context.Context, total bool) (types.Response, error) {
	return c.call(ctx, epFollowedForums, internal.NewParams().Opt("total", total))
}

// GetPages lists the static pages.
func (c *Client) GetPages(ctx context.Context, opts *types.PagesRequest) (types.Response, error) {
	if opts == nil {
		opts = &types.PagesRequest{}
	}
	params := internal.NewParams().
		Opt("parent_page_id", opts.ParentPageID).
		Opt("order", opts.Order)
	return c.call(ctx, epPages, params)
}

// GetPage returns one static page.
func (c *Client) GetPage(ctx context.Context, pageID int) (types.Response, error) {
	return c.call(ctx, epPage, nil, pageID)
}

// GetNavigation returns the navigation tree, optionally below parent.
func (c *Client) GetNavigation(ctx context.Context, parent int) (types.Response, error) {
	return c.call(ctx, epNavigation, internal.NewParams().Opt("parent", parent))
}

// GetThreadNavigation returns the breadcrumb elements of a thread.
func (c *Client) GetThreadNavigation(ctx context.Context, threadID int) (types.Response, error) {
	return c.call(ctx, epThreadNavigation, nil, threadID)
}
