// Package types holds the request and response shapes used by the Lolz API wrapper.
//
// Request structs carry the optional parameters of an endpoint. A zero field
// is treated as "not provided" and is left out of the outgoing request, so
// page 0, limit 0, false and "" can never be sent explicitly.
package types

import (
	"encoding/json"
	"io"
)

// Response is a decoded JSON response body. Entities are defined by the
// forum server and are passed through untouched; numbers are kept as
// json.Number so no precision is lost.
type Response map[string]any

// Raw re-encodes the response as JSON.
func (r Response) Raw() (json.RawMessage, error) {
	return json.Marshal(r)
}

// Decode re-decodes the response into v, for callers that want typed access to
// the fields they care about.
func (r Response) Decode(v any) error {
	raw, err := r.Raw()
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// Binary is the body of an attachment download.
type Binary struct {
	ContentType string
	Data        []byte
}

// File is an upload source for the attachment and avatar endpoints.
type File struct {
	// Name is the filename reported in the multipart part. Defaults to the field name.
	Name string
	// Reader supplies the file content.
	Reader io.Reader
}

// PageRequest carries the page/limit pair accepted by most listing endpoints.
type PageRequest struct {
	// Page is the 1-based page number.
	Page int
	// Limit is the number of items per page.
	Limit int
}

// CategoriesRequest filters the category and forum listings.
type CategoriesRequest struct {
	ParentCategoryID int
	ParentForumID    int
	// Order is a server-defined ordering, e.g. "natural" or "list".
	Order string
}

// ForumsRequest filters the forum listing.
type ForumsRequest = CategoriesRequest

// FollowForumRequest selects which notifications a forum follow subscribes to.
type FollowForumRequest struct {
	// Post subscribes to new posts as well as new threads.
	Post bool
	// Alert enables on-site alerts.
	Alert bool
	// Email enables e-mail notifications.
	Email bool
}

// PagesRequest filters the page listing.
type PagesRequest struct {
	ParentPageID int
	Order        string
}

// ThreadsRequest filters the thread listing.
type ThreadsRequest struct {
	ForumID        int
	ThreadIDs      []int
	CreatorUserID  int
	Sticky         bool
	ThreadPrefixID int
	ThreadTagID    int
	Page           int
	Limit          int
	Order          string
	// ThreadCreateDate and ThreadUpdateDate are unix timestamps.
	ThreadCreateDate int64
	ThreadUpdateDate int64
}

// CreateThreadRequest describes a new thread. ForumID, ThreadTitle and
// PostBody are always sent.
type CreateThreadRequest struct {
	ForumID        int
	ThreadTitle    string
	PostBody       string
	ThreadPrefixID int
	// ThreadTags is a comma separated tag list.
	ThreadTags string
}

// NewThreadsRequest filters the new-threads listing.
type NewThreadsRequest struct {
	Limit     int
	ForumID   int
	DataLimit int
}

// RecentThreadsRequest filters the recent-threads listing.
type RecentThreadsRequest struct {
	Days      int
	Limit     int
	ForumID   int
	DataLimit int
}

// PostsRequest filters the post listing.
type PostsRequest struct {
	ThreadID     int
	PageOfPostID int
	PostIDs      []int
	Page         int
	Limit        int
	Order        string
}

// CreatePostRequest describes a reply. ThreadID is always sent.
type CreatePostRequest struct {
	ThreadID    int
	QuotePostID int
	PostBody    string
}

// PostAttachmentRequest scopes a post attachment upload.
type PostAttachmentRequest struct {
	ThreadID       int
	PostID         int
	AttachmentHash string
}

// EditPostRequest describes a post edit. PostBody is always sent; the thread
// fields only apply when editing the first post of a thread.
type EditPostRequest struct {
	PostBody       string
	ThreadTitle    string
	ThreadPrefixID int
	ThreadTags     string
	ThreadNodeID   int
}

// AttachmentRequest controls thumbnailing of an attachment download.
type AttachmentRequest struct {
	MaxWidth  int
	MaxHeight int
	KeepRatio bool
}

// DeletePostAttachmentRequest scopes a post attachment removal.
type DeletePostAttachmentRequest struct {
	ThreadID       int
	AttachmentHash string
}

// CreateUserRequest describes a registration.
type CreateUserRequest struct {
	UserEmail      string
	Username       string
	Password       string
	PasswordAlgo   string
	UserDobDay     int
	UserDobMonth   int
	UserDobYear    int
	Fields         map[string]string
	ClientID       string
	ExtraData      string
	ExtraTimestamp int64
}

// EditUserRequest describes a profile edit.
type EditUserRequest struct {
	Password          string
	PasswordOld       string
	PasswordAlgo      string
	UserEmail         string
	Username          string
	UserTitle         string
	PrimaryGroupID    int
	SecondaryGroupIDs []int
	UserDobDay        int
	UserDobMonth      int
	UserDobYear       int
	Fields            map[string]string
}

// PasswordResetRequest identifies the account for a lost-password request.
type PasswordResetRequest struct {
	Username string
	Email    string
}

// FollowListRequest pages through followers or followings.
type FollowListRequest struct {
	Order string
	Page  int
	Limit int
}

// MessagesRequest pages through the messages of a conversation.
type MessagesRequest struct {
	Page  int
	Limit int
	Order string
	// Before and After are unix timestamps.
	Before int64
	After  int64
}

// MessageAttachmentRequest scopes a message attachment upload.
type MessageAttachmentRequest struct {
	ConversationID int
	MessageID      int
	AttachmentHash string
}

// DeleteMessageAttachmentRequest scopes a message attachment removal.
type DeleteMessageAttachmentRequest struct {
	ConversationID int
	AttachmentHash string
}

// CustomAlertRequest describes a custom notification.
type CustomAlertRequest struct {
	UserID           int
	Username         string
	Message          string
	MessageHTML      string
	NotificationType string
	ExtraData        string
}

// SearchRequest narrows a full text search.
type SearchRequest struct {
	Tag     string
	ForumID int
	UserID  int
	Page    int
	Limit   int
}

// TaggedSearchRequest narrows a tag search.
type TaggedSearchRequest struct {
	Tags  []string
	Page  int
	Limit int
}
