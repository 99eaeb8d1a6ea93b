package lolz

import (
	"strings"

	"github.com/google/uuid"
)

// NewAttachmentHash returns a random attachment hash. Uploads sharing a hash
// are attached together once the thread, post or message is created.
func NewAttachmentHash() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
