package lolz

import (
	"context"

	"github.com/jamesprial/go-lolz-api-wrapper/internal"
	"github.com/jamesprial/go-lolz-api-wrapper/pkg/types"
)

func (c *Client) GetProfilePost(ctx context.Context, profilePostID int) (types.Response, error) {
	return c.call(ctx, epProfilePost, nil, profilePostID)
}

func (c *Client) EditProfilePost(ctx context.Context, profilePostID int, postBody string) (types.Response, error) {
	return c.call(ctx, epEditProfilePost, internal.NewParams().Set("post_body", postBody), profilePostID)
}

func (c *Client) DeleteProfilePost(ctx context.Context, profilePostID int, reason string) (types.Response, error) {
	return c.call(ctx, epDeleteProfilePost, internal.NewParams().Opt("reason", reason), profilePostID)
}

func (c *Client) GetProfilePostLikes(ctx context.Context, profilePostID int) (types.Response, error) {
	return c.call(ctx, epProfilePostLikes, nil, profilePostID)
}

func (c *Client) LikeProfilePost(ctx context.Context, profilePostID int) (types.Response, error) {
	return c.call(ctx, epLikeProfilePost, nil, profilePostID)
}

func (c *Client) UnlikeProfilePost(ctx context.Context, profilePostID int) (types.Response, error) {
	return c.call(ctx, epUnlikeProfilePost, nil, profilePostID)
}

// GetProfilePostComments lists comments on a profile post older than before
// (a unix timestamp, 0 for the newest).
func (c *Client) GetProfilePostComments(ctx context.Context, profilePostID int, before int64) (types.Response, error) {
	return c.call(ctx, epProfilePostComments, internal.NewParams().Opt("before", before), profilePostID)
}

func (c *Client) CreateProfilePostComment(ctx context.Context, profilePostID int, commentBody string) (types.Response, error) {
	return c.call(ctx, epCreateProfilePostComment, internal.NewParams().Set("comment_body", commentBody), profilePostID)
}

func (c *Client) GetProfilePostComment(ctx context.Context, profilePostID, commentID int) (types.Response, error) {
	return c.call(ctx, epProfilePostComment, nil, profilePostID, commentID)
}

func (c *Client) DeleteProfilePostComment(ctx context.Context, profilePostID, commentID int) (types.Response, error) {
	return c.call(ctx, epDeleteProfilePostComment, nil, profilePostID, commentID)
}

func (c *Client) ReportProfilePost(ctx context.Context, profilePostID int, message string) (types.Response, error) {
	return c.call(ctx, epReportProfilePost, internal.NewParams().Set("message", message), profilePostID)
}
