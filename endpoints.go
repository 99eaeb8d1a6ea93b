package lolz

import (
	"net/http"

	"github.com/jamesprial/go-lolz-api-wrapper/internal"
)

func get(name, path string) internal.Endpoint {
	return internal.Endpoint{Name: name, Method: http.MethodGet, Path: path}
}

func post(name, path string) internal.Endpoint {
	return internal.Endpoint{Name: name, Method: http.MethodPost, Path: path}
}

func put(name, path string) internal.Endpoint {
	return internal.Endpoint{Name: name, Method: http.MethodPut, Path: path}
}

func del(name, path string) internal.Endpoint {
	return internal.Endpoint{Name: name, Method: http.MethodDelete, Path: path}
}

// Endpoint table. Every public method maps to exactly one entry.
var (
	epCategories = get("categories.list", "categories")
	epCategory   = get("categories.get", "categories/{category_id}")

	epForums         = get("forums.list", "forums")
	epForum          = get("forums.get", "forums/{forum_id}")
	epForumFollowers = get("forums.followers", "forums/{forum_id}/followers")
	epFollowForum    = post("forums.follow", "forums/{forum_id}/followers")
	epUnfollowForum  = del("forums.unfollow", "forums/{forum_id}/followers")
	epFollowedForums = get("forums.followed", "forums/followed")

	epPages            = get("pages.list", "pages")
	epPage             = get("pages.get", "pages/{page_id}")
	epNavigation       = get("navigation.list", "navigation")
	epThreadNavigation = get("threads.navigation", "threads/{thread_id}/navigation")

	epThreads                = get("threads.list", "threads")
	epCreateThread           = post("threads.create", "threads")
	epUploadThreadAttachment = post("threads.attachments.upload", "threads/attachments")
	epDeleteThreadAttachment = del("threads.attachments.delete", "threads/attachments")
	epThread                 = get("threads.get", "threads/{thread_id}")
	epDeleteThread           = del("threads.delete", "threads/{thread_id}")
	epThreadFollowers        = get("threads.followers", "threads/{thread_id}/followers")
	epFollowThread           = post("threads.follow", "threads/{thread_id}/followers")
	epUnfollowThread         = del("threads.unfollow", "threads/{thread_id}/followers")
	epFollowedThreads        = get("threads.followed", "threads/followed")
	epThreadPoll             = get("threads.poll", "threads/{thread_id}/poll")
	epVoteThreadPoll         = post("threads.poll.vote", "threads/{thread_id}/poll/votes")
	epNewThreads             = get("threads.new", "threads/new")
	epRecentThreads          = get("threads.recent", "threads/recent")

	epPosts                = get("posts.list", "posts")
	epCreatePost           = post("posts.create", "posts")
	epUploadPostAttachment = post("posts.attachments.upload", "posts/attachments")
	epPost                 = get("posts.get", "posts/{post_id}")
	epEditPost             = put("posts.edit", "posts/{post_id}")
	epDeletePost           = del("posts.delete", "posts/{post_id}")
	epPostAttachments      = get("posts.attachments.list", "posts/{post_id}/attachments")
	epPostAttachment       = get("posts.attachments.get", "posts/{post_id}/attachments/{attachment_id}")
	epDeletePostAttachment = del("posts.attachments.delete", "posts/{post_id}/attachments/{attachment_id}")
	epPostLikes            = get("posts.likes", "posts/{post_id}/likes")
	epLikePost             = post("posts.like", "posts/{post_id}/likes")
	epUnlikePost           = del("posts.unlike", "posts/{post_id}/likes")
	epReportPost           = post("posts.report", "posts/{post_id}/report")
	epPostComments         = get("posts.comments.list", "posts/{post_id}/comments")
	epCreatePostComment    = post("posts.comments.create", "posts/{post_id}/comments")

	epPopularTags = get("tags.popular", "tags")
	epTags        = get("tags.list", "tags/list")
	epTagged      = get("tags.get", "tags/{tag_id}")
	epFindTags    = get("tags.find", "tags/find")

	epUsers             = get("users.list", "users")
	epCreateUser        = post("users.create", "users")
	epUserFields        = get("users.fields", "users/fields")
	epFindUsers         = get("users.find", "users/find")
	epUser              = get("users.get", "users/{user_id}")
	epEditUser          = put("users.edit", "users/{user_id}")
	epResetPassword     = post("users.password.reset", "lost-password")
	epUploadAvatar      = post("users.avatar.upload", "users/{user_id}/avatar")
	epDeleteAvatar      = del("users.avatar.delete", "users/{user_id}/avatar")
	epUserFollowers     = get("users.followers", "users/{user_id}/followers")
	epFollowUser        = post("users.follow", "users/{user_id}/followers")
	epUnfollowUser      = del("users.unfollow", "users/{user_id}/followers")
	epUserFollowings    = get("users.followings", "users/{user_id}/followings")
	epIgnoredUsers      = get("users.ignored", "users/ignored")
	epIgnoreUser        = post("users.ignore", "users/{user_id}/ignore")
	epUnignoreUser      = del("users.unignore", "users/{user_id}/ignore")
	epGroups            = get("users.groups.list", "users/groups")
	epUserGroups        = get("users.groups", "users/{user_id}/groups")
	epUserTimeline      = get("users.timeline", "users/{user_id}/timeline")
	epCreateProfilePost = post("users.timeline.post", "users/{user_id}/timeline")

	epProfilePost              = get("profile_posts.get", "profile-posts/{profile_post_id}")
	epEditProfilePost          = put("profile_posts.edit", "profile-posts/{profile_post_id}")
	epDeleteProfilePost        = del("profile_posts.delete", "profile-posts/{profile_post_id}")
	epProfilePostLikes         = get("profile_posts.likes", "profile-posts/{profile_post_id}/likes")
	epLikeProfilePost          = post("profile_posts.like", "profile-posts/{profile_post_id}/likes")
	epUnlikeProfilePost        = del("profile_posts.unlike", "profile-posts/{profile_post_id}/likes")
	epProfilePostComments      = get("profile_posts.comments.list", "profile-posts/{profile_post_id}/comments")
	epCreateProfilePostComment = post("profile_posts.comments.create", "profile-posts/{profile_post_id}/comments")
	epProfilePostComment       = get("profile_posts.comments.get", "profile-posts/{profile_post_id}/comments/{comment_id}")
	epDeleteProfilePostComment = del("profile_posts.comments.delete", "profile-posts/{profile_post_id}/comments/{comment_id}")
	epReportProfilePost        = post("profile_posts.report", "profile-posts/{profile_post_id}/report")

	epConversations                = get("conversations.list", "conversations")
	epConversation                 = get("conversations.get", "conversations/{conversation_id}")
	epDeleteConversation           = del("conversations.delete", "conversations/{conversation_id}")
	epUploadConversationAttachment = post("conversations.attachments.upload", "conversations/attachments")
	epDeleteConversationAttachment = del("conversations.attachments.delete", "conversations/attachments")

	epMessages                = get("messages.list", "conversation-messages")
	epCreateMessage           = post("messages.create", "conversation-messages")
	epUploadMessageAttachment = post("messages.attachments.upload", "conversation-messages/attachments")
	epMessage                 = get("messages.get", "conversation-messages/{message_id}")
	epEditMessage             = put("messages.edit", "conversation-messages/{message_id}")
	epDeleteMessage           = del("messages.delete", "conversation-messages/{message_id}")
	epMessageAttachments      = get("messages.attachments.list", "conversation-messages/{message_id}/attachments")
	epMessageAttachment       = get("messages.attachments.get", "conversation-messages/{message_id}/attachments/{attachment_id}")
	epDeleteMessageAttachment = del("messages.attachments.delete", "conversation-messages/{message_id}/attachments/{attachment_id}")
	epReportMessage           = post("messages.report", "conversation-messages/{message_id}/report")

	epNotifications       = get("notifications.list", "notifications")
	epNotificationContent = get("notifications.content", "notifications/{notification_id}/content")
	epCustomAlert         = post("notifications.custom", "notifications/custom")
	epReadNotifications   = post("notifications.read", "notifications/read")

	epSearch       = post("search.posts", "search")
	epSearchTagged = post("search.tagged", "search/tagged")
)
