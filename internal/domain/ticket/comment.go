package ticket

import (
	"fmt"
	"strings"
	"time"

	"trackd/internal/shared/id"
)

// Comment is a remark attached to a ticket. Anyone who can view the
// ticket may comment; removal belongs to the author or a manage-rights
// holder.
type Comment struct {
	id        string
	ticketID  string
	authorID  string
	content   string
	createdAt time.Time
}

// NewComment creates a comment on the given ticket.
func NewComment(ticketID, authorID, content string) (*Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("content is required")
	}
	if !id.ValidFormat(ticketID) {
		return nil, fmt.Errorf("invalid ticket ID: %s", ticketID)
	}
	if !id.ValidFormat(authorID) {
		return nil, fmt.Errorf("invalid author ID: %s", authorID)
	}

	return &Comment{
		ticketID:  ticketID,
		authorID:  authorID,
		content:   content,
		createdAt: time.Now(),
	}, nil
}

// ReconstructComment rebuilds a comment from persisted state.
func ReconstructComment(
	commentID string,
	ticketID string,
	authorID string,
	content string,
	createdAt time.Time,
) (*Comment, error) {
	if !id.ValidFormat(commentID) {
		return nil, fmt.Errorf("invalid comment ID: %s", commentID)
	}
	if content == "" {
		return nil, fmt.Errorf("content is required")
	}

	return &Comment{
		id:        commentID,
		ticketID:  ticketID,
		authorID:  authorID,
		content:   content,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() string {
	return c.id
}

func (c *Comment) TicketID() string {
	return c.ticketID
}

func (c *Comment) AuthorID() string {
	return c.authorID
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

// IsAuthoredBy reports whether userID wrote this comment.
func (c *Comment) IsAuthoredBy(userID string) bool {
	return c.authorID == userID
}

// SetID assigns the allocated identifier to a newly created comment.
func (c *Comment) SetID(commentID string) error {
	if c.id != "" {
		return fmt.Errorf("comment ID is already set")
	}
	if !id.ValidFormat(commentID) {
		return fmt.Errorf("invalid comment ID: %s", commentID)
	}
	c.id = commentID
	return nil
}
