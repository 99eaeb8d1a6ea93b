package lolz

import (
	"context"

	"github.com/jamesprial/go-lolz-api-wrapper/internal"
	pkgerrs "github.com/jamesprial/go-lolz-api-wrapper/pkg/errors"
	"github.com/jamesprial/go-lolz-api-wrapper/pkg/types"
)

// GetUsers lists registered users.
func (c *Client) GetUsers(ctx context.Context, opts *types.PageRequest) (types.Response, error) {
	return c.call(ctx, epUsers, pageParams(opts))
}

// CreateUser registers a new account.
func (c *Client) CreateUser(ctx context.Context, req *types.CreateUserRequest) (types.Response, error) {
	if req == nil {
		req = &types.CreateUserRequest{}
	}
	params := internal.NewParams().
		Opt("user_email", req.UserEmail).
		Opt("username", req.Username).
		Opt("password", req.Password).
		Opt("password_algo", req.PasswordAlgo).
		Opt("user_dob_day", req.UserDobDay).
		Opt("user_dob_month", req.UserDobMonth).
		Opt("user_dob_year", req.UserDobYear).
		Opt("fields", req.Fields).
		Opt("client_id", req.ClientID).
		Opt("extra_data", req.ExtraData).
		Opt("extra_timestamp", req.ExtraTimestamp)
	return c.call(ctx, epCreateUser, params)
}

// GetUserFields lists the custom profile fields.
func (c *Client) GetUserFields(ctx context.Context) (types.Response, error) {
	return c.call(ctx, epUserFields, nil)
}

// FindUsers filters users by username or e-mail.
func (c *Client) FindUsers(ctx context.Context, username, email string) (types.Response, error) {
	params := internal.NewParams().
		Opt("username", username).
		Opt("user_email", email)
	return c.call(ctx, epFindUsers, params)
}

// GetUser returns one user, addressed by numeric id or by profile short
// link. The id wins when both are given.
func (c *Client) GetUser(ctx context.Context, userID int, shortLink string) (types.Response, error) {
	switch {
	case userID != 0:
		return c.call(ctx, epUser, nil, userID)
	case shortLink != "":
		return c.call(ctx, epUser, nil, shortLink)
	default:
		return nil, &pkgerrs.ConfigError{Field: "user_id", Message: "either a user id or a short link is required"}
	}
}

// EditUser updates a user's profile or credentials.
func (c *Client) EditUser(ctx context.Context, userID int, req *types.EditUserRequest) (types.Response, error) {
	if req == nil {
		req = &types.EditUserRequest{}
	}
	params := internal.NewParams().
		Opt("password", req.Password).
		Opt("password_old", req.PasswordOld).
		Opt("password_algo", req.PasswordAlgo).
		Opt("user_email", req.UserEmail).
		Opt("username", req.Username).
		Opt("user_title", req.UserTitle).
		Opt("primary_group_id", req.PrimaryGroupID).
		Opt("secondary_group_ids", req.SecondaryGroupIDs).
		Opt("user_dob_day", req.UserDobDay).
		Opt("user_dob_month", req.UserDobMonth).
		Opt("user_dob_year", req.UserDobYear).
		Opt("fields", req.Fields)
	return c.call(ctx, epEditUser, params, userID)
}

// ResetPassword asks the forum to e-mail a password reset link.
func (c *Client) ResetPassword(ctx context.Context, oauthToken string, opts *types.PasswordResetRequest) (types.Response, error) {
	if opts == nil {
		opts = &types.PasswordResetRequest{}
	}
	params := internal.NewParams().
		Set("oauth_token", oauthToken).
		Opt("username", opts.Username).
		Opt("email", opts.Email)
	return c.call(ctx, epResetPassword, params)
}

// UploadAvatar replaces a user's avatar.
func (c *Client) UploadAvatar(ctx context.Context, userID int, avatar types.File) (types.Response, error) {
	return c.call(ctx, epUploadAvatar, internal.NewParams().File("avatar", avatar), userID)
}

// DeleteAvatar removes a user's avatar.
func (c *Client) DeleteAvatar(ctx context.Context, userID int) (types.Response, error) {
	return c.call(ctx, epDeleteAvatar, nil, userID)
}

// GetUserFollowers lists a user's followers.
func (c *Client) GetUserFollowers(ctx context.Context, userID int, opts *types.FollowListRequest) (types.Response, error) {
	return c.call(ctx, epUserFollowers, followListParams(opts), userID)
}

// FollowUser follows a user.
func (c *Client) FollowUser(ctx context.Context, userID int) (types.Response, error) {
	return c.call(ctx, epFollowUser, nil, userID)
}

// UnfollowUser stops following a user.
func (c *Client) UnfollowUser(ctx context.Context, userID int) (types.Response, error) {
	return c.call(ctx, epUnfollowUser, nil, userID)
}

// GetUserFollowings lists the users a user follows.
func (c *Client) GetUserFollowings(ctx context.Context, userID int, opts *types.FollowListRequest) (types.Response, error) {
	return c.call(ctx, epUserFollowings, followListParams(opts), userID)
}

func followListParams(opts *types.FollowListRequest) *internal.Params {
	if opts == nil {
		opts = &types.FollowListRequest{}
	}
	return internal.NewParams().
		Opt("order", opts.Order).
		Opt("page", opts.Page).
		Opt("limit", opts.Limit)
}

// GetIgnoredUsers lists the users ignored by the current user.
func (c *Client) GetIgnoredUsers(ctx context.Context, total bool) (types.Response, error) {
	return c.call(ctx, epIgnoredUsers, internal.NewParams().Opt("total", total))
}

// IgnoreUser ignores a user.
func (c *Client) IgnoreUser(ctx context.Context, userID int) (types.Response, error) {
	return c.call(ctx, epIgnoreUser, nil, userID)
}

// UnignoreUser stops ignoring a user.
func (c *Client) UnignoreUser(ctx context.Context, userID int) (types.Response, error) {
	return c.call(ctx, epUnignoreUser, nil, userID)
}

// GetGroups lists every user group.
func (c *Client) GetGroups(ctx context.Context) (types.Response, error) {
	return c.call(ctx, epGroups, nil)
}

// GetUserGroups lists the groups of one user.
func (c *Client) GetUserGroups(ctx context.Context, userID int) (types.Response, error) {
	return c.call(ctx, epUserGroups, nil, userID)
}

// GetUserTimeline lists the content created by a user.
func (c *Client) GetUserTimeline(ctx context.Context, userID int, opts *types.PageRequest) (types.Response, error) {
	return c.call(ctx, epUserTimeline, pageParams(opts), userID)
}

// CreateProfilePost writes on a user's timeline. With status set on the
// current user's own timeline the post also becomes their status.
func (c *Client) CreateProfilePost(ctx context.Context, userID int, postBody string, status bool) (types.Response, error) {
	params := internal.NewParams().
		Set("post_body", postBody).
		Opt("status", status)
	return c.call(ctx, epCreateProfilePost, params, userID)
}
