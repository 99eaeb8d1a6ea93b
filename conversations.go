package lolz

import (
	"context"

	"github.com/jamesprial/go-lolz-api-wrapper/internal"
	"github.com/jamesprial/go-lolz-api-wrapper/pkg/types"
)

// GetConversations lists the current user's conversations.
func (c *Client) GetConversations(ctx context.Context, opts *types.PageRequest) (types.Response, error) {
	return c.call(ctx, epConversations, pageParams(opts))
}

// GetConversation returns one conversation.
func (c *Client) GetConversation(ctx context.Context, conversationID int) (types.Response, error) {
	return c.call(ctx, epConversation, nil, conversationID)
}

// DeleteConversation leaves a conversation.
func (c *Client) DeleteConversation(ctx context.Context, conversationID int) (types.Response, error) {
	return c.call(ctx, epDeleteConversation, nil, conversationID)
}

// UploadConversationAttachment uploads a file for a conversation that is
// not started yet.
func (c *Client) UploadConversationAttachment(ctx context.Context, file types.File, attachmentHash string) (types.Response, error) {
	params := internal.NewParams().
		Opt("attachment_hash", attachmentHash).
		File("file", file)
	return c.call(ctx, epUploadConversationAttachment, params)
}

// DeleteConversationAttachment removes an attachment uploaded with
// UploadConversationAttachment.
func (c *Client) DeleteConversationAttachment(ctx context.Context, attachmentID int, attachmentHash string) (types.Response, error) {
	params := internal.NewParams().
		Set("attachment_id", attachmentID).
		Opt("attachment_hash", attachmentHash)
	return c.call(ctx, epDeleteConversationAttachment, params)
}

// GetConversationMessages lists the messages of a conversation.
func (c *Client) GetConversationMessages(ctx context.Context, conversationID int, opts *types.MessagesRequest) (types.Response, error) {
	if opts == nil {
		opts = &types.MessagesRequest{}
	}
	params := internal.NewParams().
		Set("conversation_id", conversationID).
		Opt("page", opts.Page).
		Opt("limit", opts.Limit).
		Opt("order", opts.Order).
		Opt("before", opts.Before).
		Opt("after", opts.After)
	return c.call(ctx, epMessages, params)
}

// CreateConversationMessage replies to a conversation.
func (c *Client) CreateConversationMessage(ctx context.Context, conversationID int, messageBody string) (types.Response, error) {
	params := internal.NewParams().
		Set("conversation_id", conversationID).
		Set("message_body", messageBody)
	return c.call(ctx, epCreateMessage, params)
}

// UploadMessageAttachment uploads a file for a new or existing message.
func (c *Client) UploadMessageAttachment(ctx context.Context, file types.File, opts *types.MessageAttachmentRequest) (types.Response, error) {
	if opts == nil {
		opts = &types.MessageAttachmentRequest{}
	}
	params := internal.NewParams().
		Opt("conversation_id", opts.ConversationID).
		Opt("message_id", opts.MessageID).
		Opt("attachment_hash", opts.AttachmentHash).
		File("file", file)
	return c.call(ctx, epUploadMessageAttachment, params)
}

// GetConversationMessage returns one message.
func (c *Client) GetConversationMessage(ctx context.Context, messageID int) (types.Response, error) {
	return c.call(ctx, epMessage, nil, messageID)
}

// EditConversationMessage replaces the body of a message.
func (c *Client) EditConversationMessage(ctx context.Context, messageID int, messageBody string) (types.Response, error) {
	return c.call(ctx, epEditMessage, internal.NewParams().Set("message_body", messageBody), messageID)
}

// DeleteConversationMessage removes a message.
func (c *Client) DeleteConversationMessage(ctx context.Context, messageID int) (types.Response, error) {
	return c.call(ctx, epDeleteMessage, nil, messageID)
}

// GetMessageAttachments lists the attachments of a message.
func (c *Client) GetMessageAttachments(ctx context.Context, messageID int) (types.Response, error) {
	return c.call(ctx, epMessageAttachments, nil, messageID)
}

// GetMessageAttachment downloads a message attachment.
func (c *Client) GetMessageAttachment(ctx context.Context, messageID, attachmentID int, opts *types.AttachmentRequest) (*types.Binary, error) {
	return c.callBinary(ctx, epMessageAttachment, attachmentParams(opts), messageID, attachmentID)
}

// DeleteMessageAttachment removes an attachment from a message.
func (c *Client) DeleteMessageAttachment(ctx context.Context, messageID, attachmentID int, opts *types.DeleteMessageAttachmentRequest) (types.Response, error) {
	if opts == nil {
		opts = &types.DeleteMessageAttachmentRequest{}
	}
	params := internal.NewParams().
		Opt("conversation_id", opts.ConversationID).
		Opt("attachment_hash", opts.AttachmentHash)
	return c.call(ctx, epDeleteMessageAttachment, params, messageID, attachmentID)
}

// ReportConversationMessage reports a message to the moderators.
func (c *Client) ReportConversationMessage(ctx context.Context, messageID int, message string) (types.Response, error) {
	return c.call(ctx, epReportMessage, internal.NewParams().Set("message", message), messageID)
}
