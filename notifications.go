package lolz

import (
	"context"

	"github.com/jamesprial/go-lolz-api-wrapper/internal"
	"github.com/jamesprial/go-lolz-api-wrapper/pkg/types"
)

// GetNotifications lists the current user's notifications.
func (c *Client) GetNotifications(ctx context.Context) (types.Response, error) {
	return c.call(ctx, epNotifications, nil)
}

// GetNotificationContent returns the content a notification points at.
func (c *Client) GetNotificationContent(ctx context.Context, notificationID int) (types.Response, error) {
	return c.call(ctx, epNotificationContent, nil, notificationID)
}

// SendCustomAlert sends a custom alert to a user, addressed by id or username.
func (c *Client) SendCustomAlert(ctx context.Context, req *types.CustomAlertRequest) (types.Response, error) {
	if req == nil {
		req = &types.CustomAlertRequest{}
	}
	params := internal.NewParams().
		Opt("user_id", req.UserID).
		Opt("username", req.Username).
		Opt("message", req.Message).
		Opt("message_html", req.MessageHTML).
		Opt("notification_type", req.NotificationType).
		Opt("extra_data", req.ExtraData)
	return c.call(ctx, epCustomAlert, params)
}

// ReadNotifications marks one notification as read, or all of them when
// notificationID is 0.
func (c *Client) ReadNotifications(ctx context.Context, notificationID int) (types.Response, error) {
	return c.call(ctx, epReadNotifications, internal.NewParams().Opt("notification_id", notificationID))
}
