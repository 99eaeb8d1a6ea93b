package lolz

import (
	"context"

	"github.com/jamesprial/go-lolz-api-wrapper/internal"
	"github.com/jamesprial/go-lolz-api-wrapper/pkg/types"
)

// GetThreads lists threads matching opts.
func (c *Client) GetThreads(ctx context.Context, opts *types.ThreadsRequest) (types.Response, error) {
	if opts == nil {
		opts = &types.ThreadsRequest{}
	}
	params := internal.NewParams().
		Opt("forum_id", opts.ForumID).
		Opt("thread_ids", opts.ThreadIDs).
		Opt("creator_user_id", opts.CreatorUserID).
		Opt("sticky", opts.Sticky).
		Opt("thread_prefix_id", opts.ThreadPrefixID).
		Opt("thread_tag_id", opts.ThreadTagID).
		Opt("page", opts.Page).
		Opt("limit", opts.Limit).
		Opt("order", opts.Order).
		Opt("thread_create_date", opts.ThreadCreateDate).
		Opt("thread_update_date", opts.ThreadUpdateDate)
	return c.call(ctx, epThreads, params)
}

// CreateThread opens a new thread. ForumID, ThreadTitle and PostBody are
// always sent.
func (c *Client) CreateThread(ctx context.Context, req *types.CreateThreadRequest) (types.Response, error) {
	if req == nil {
		req = &types.CreateThreadRequest{}
	}
	params := internal.NewParams().
		Set("forum_id", req.ForumID).
		Set("thread_title", req.ThreadTitle).
		Set("post_body", req.PostBody).
		Opt("thread_prefix_id", req.ThreadPrefixID).
		Opt("thread_tags", req.ThreadTags)
	return c.call(ctx, epCreateThread, params)
}

// UploadThreadAttachment uploads a file for a thread that is not posted yet.
// Attachments sharing attachmentHash are bound to the thread on creation.
func (c *Client) UploadThreadAttachment(ctx context.Context, forumID int, file types.File, attachmentHash string) (types.Response, error) {
	params := internal.NewParams().
		Set("forum_id", forumID).
		Opt("attachment_hash", attachmentHash).
		File("file", file)
	return c.call(ctx, epUploadThreadAttachment, params)
}

// DeleteThreadAttachment removes an attachment uploaded with UploadThreadAttachment.
func (c *Client) DeleteThreadAttachment(ctx context.Context, forumID, attachmentID int, attachmentHash string) (types.Response, error) {
	params := internal.NewParams().
		Set("forum_id", forumID).
		Set("attachment_id", attachmentID).
		Opt("attachment_hash", attachmentHash)
	return c.call(ctx, epDeleteThreadAttachment, params)
}

// GetThread returns one thread.
func (c *Client) GetThread(ctx context.Context, threadID int) (types.Response, error) {
	return c.call(ctx, epThread, nil, threadID)
}

// DeleteThread removes a thread.
func (c *Client) DeleteThread(ctx context.Context, threadID int, reason string) (types.Response, error) {
	return c.call(ctx, epDeleteThread, internal.NewParams().Opt("reason", reason), threadID)
}

// GetThreadFollowers lists the users following a thread.
func (c *Client) GetThreadFollowers(ctx context.Context, threadID int) (types.Response, error) {
	return c.call(ctx, epThreadFollowers, nil, threadID)
}

// FollowThread subscribes the current user to a thread, optionally by e-mail.
func (c *Client) FollowThread(ctx context.Context, threadID int, email bool) (types.Response, error) {
	return c.call(ctx, epFollowThread, internal.NewParams().Opt("email", email), threadID)
}

// UnfollowThread removes the current user's thread subscription.
func (c *Client) UnfollowThread(ctx context.Context, threadID int) (types.Response, error) {
	return c.call(ctx, epUnfollowThread, nil, threadID)
}

// GetFollowedThreads lists threads followed by the current user.
func (c *Client) GetFollowedThreads(ctx context.Context, total bool) (types.Response, error) {
	return c.call(ctx, epFollowedThreads, internal.NewParams().Opt("total", total))
}

// GetThreadPoll returns the poll attached to a thread.
func (c *Client) GetThreadPoll(ctx context.Context, threadID int) (types.Response, error) {
	return c.call(ctx, epThreadPoll, nil, threadID)
}

// VoteThreadPoll votes in a thread poll. Use responseID for single choice
// polls and responseIDs for multiple choice polls.
func (c *Client) VoteThreadPoll(ctx context.Context, threadID, responseID int, responseIDs []int) (types.Response, error) {
	params := internal.NewParams().
		Opt("response_id", responseID).
		Opt("response_ids", responseIDs)
	return c.call(ctx, epVoteThreadPoll, params, threadID)
}

// GetNewThreads lists threads the current user has not read.
func (c *Client) GetNewThreads(ctx context.Context, opts *types.NewThreadsRequest) (types.Response, error) {
	if opts == nil {
		opts = &types.NewThreadsRequest{}
	}
	params := internal.NewParams().
		Opt("limit", opts.Limit).
		Opt("forum_id", opts.ForumID).
		Opt("data_limit", opts.DataLimit)
	return c.call(ctx, epNewThreads, params)
}

// GetRecentThreads lists recently active threads.
func (c *Client) GetRecentThreads(ctx context.Context, opts *types.RecentThreadsRequest) (types.Response, error) {
	if opts == nil {
		opts = &types.RecentThreadsRequest{}
	}
	params := internal.NewParams().
		Opt("days", opts.Days).
		Opt("limit", opts.Limit).
		Opt("forum_id", opts.ForumID).
		Opt("data_limit", opts.DataLimit)
	return c.call(ctx, epRecentThreads, params)
}
