package lolz

import (
	"context"

	"github.com/jamesprial/go-lolz-api-wrapper/internal"
	"github.com/jamesprial/go-lolz-api-wrapper/pkg/types"
)

// GetPosts lists posts, usually of one thread.
func (c *Client) GetPosts(ctx context.Context, opts *types.PostsRequest) (types.Response, error) {
	if opts == nil {
		opts = &types.PostsRequest{}
	}
	params := internal.NewParams().
		Opt("thread_id", opts.ThreadID).
		Opt("page_of_post_id", opts.PageOfPostID).
		Opt("post_ids", opts.PostIDs).
		Opt("page", opts.Page).
		Opt("limit", opts.Limit).
		Opt("order", opts.Order)
	return c.call(ctx, epPosts, params)
}

// CreatePost replies to a thread.
func (c *Client) CreatePost(ctx context.Context, req *types.CreatePostRequest) (types.Response, error) {
	if req == nil {
		req = &types.CreatePostRequest{}
	}
	params := internal.NewParams().
		Set("thread_id", req.ThreadID).
		Opt("quote_post_id", req.QuotePostID).
		Opt("post_body", req.PostBody)
	return c.call(ctx, epCreatePost, params)
}

// UploadPostAttachment uploads a file for a new or existing post.
func (c *Client) UploadPostAttachment(ctx context.Context, file types.File, opts *types.PostAttachmentRequest) (types.Response, error) {
	if opts == nil {
		opts = &types.PostAttachmentRequest{}
	}
	params := internal.NewParams().
		Opt("thread_id", opts.ThreadID).
		Opt("post_id", opts.PostID).
		Opt("attachment_hash", opts.AttachmentHash).
		File("file", file)
	return c.call(ctx, epUploadPostAttachment, params)
}

// GetPost returns one post.
func (c *Client) GetPost(ctx context.Context, postID int) (types.Response, error) {
	return c.call(ctx, epPost, nil, postID)
}

// EditPost replaces the body of a post. The thread fields of req only apply
// to the first post of a thread.
func (c *Client) EditPost(ctx context.Context, postID int, req *types.EditPostRequest) (types.Response, error) {
	if req == nil {
		req = &types.EditPostRequest{}
	}
	params := internal.NewParams().
		Set("post_body", req.PostBody).
		Opt("thread_title", req.ThreadTitle).
		Opt("thread_prefix_id", req.ThreadPrefixID).
		Opt("thread_tags", req.ThreadTags).
		Opt("thread_node_id", req.ThreadNodeID)
	return c.call(ctx, epEditPost, params, postID)
}

// DeletePost removes a post.
func (c *Client) DeletePost(ctx context.Context, postID int, reason string) (types.Response, error) {
	return c.call(ctx, epDeletePost, internal.NewParams().Opt("reason", reason), postID)
}

// GetPostAttachments lists the attachments of a post.
func (c *Client) GetPostAttachments(ctx context.Context, postID int) (types.Response, error) {
	return c.call(ctx, epPostAttachments, nil, postID)
}

// GetPostAttachment downloads an attachment. The body is the file itself,
// optionally resized according to opts.
func (c *Client) GetPostAttachment(ctx context.Context, postID, attachmentID int, opts *types.AttachmentRequest) (*types.Binary, error) {
	return c.callBinary(ctx, epPostAttachment, attachmentParams(opts), postID, attachmentID)
}

func attachmentParams(opts *types.AttachmentRequest) *internal.Params {
	if opts == nil {
		opts = &types.AttachmentRequest{}
	}
	return internal.NewParams().
		Opt("max_width", opts.MaxWidth).
		Opt("max_height", opts.MaxHeight).
		Opt("keep_ratio", opts.KeepRatio)
}

// DeletePostAttachment removes an attachment from a post.
func (c *Client) DeletePostAttachment(ctx context.Context, postID, attachmentID int, opts *types.DeletePostAttachmentRequest) (types.Response, error) {
	if opts == nil {
		opts = &types.DeletePostAttachmentRequest{}
	}
	params := internal.NewParams().
		Opt("thread_id", opts.ThreadID).
		Opt("attachment_hash", opts.AttachmentHash)
	return c.call(ctx, epDeletePostAttachment, params, postID, attachmentID)
}

// GetPostLikes lists the users who liked a post.
func (c *Client) GetPostLikes(ctx context.Context, postID int, opts *types.PageRequest) (types.Response, error) {
	return c.call(ctx, epPostLikes, pageParams(opts), postID)
}

// LikePost likes a post.
func (c *Client) LikePost(ctx context.Context, postID int) (types.Response, error) {
	return c.call(ctx, epLikePost, nil, postID)
}

// UnlikePost removes the current user's like.
func (c *Client) UnlikePost(ctx context.Context, postID int) (types.Response, error) {
	return c.call(ctx, epUnlikePost, nil, postID)
}

// ReportPost reports a post to the moderators.
func (c *Client) ReportPost(ctx context.Context, postID int, message string) (types.Response, error) {
	return c.call(ctx, epReportPost, internal.NewParams().Set("message", message), postID)
}

// GetPostComments lists comments on a post. before is a unix timestamp; only
// comments older than it are returned.
func (c *Client) GetPostComments(ctx context.Context, postID int, before int64) (types.Response, error) {
	return c.call(ctx, epPostComments, internal.NewParams().Opt("before", before), postID)
}

// CreatePostComment comments on a post.
func (c *Client) CreatePostComment(ctx context.Context, postID int, commentBody string) (types.Response, error) {
	return c.call(ctx, epCreatePostComment, internal.NewParams().Set("comment_body", commentBody), postID)
}

func pageParams(opts *types.PageRequest) *internal.Params {
	if opts == nil {
		opts = &types.PageRequest{}
	}
	return internal.NewParams().
		Opt("page", opts.Page).
		Opt("limit", opts.Limit)
}
