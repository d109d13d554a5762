package quietgh

import (
	"fmt"
	"strings"
	"time"
)

// IssueRef identifies an issue (or pull request) in a repository.
type IssueRef struct {
	Owner  string `json:"owner"`
	Repo   string `json:"repo"`
	Number int    `json:"number"`
}

// String renders the reference as owner/repo#number.
func (r IssueRef) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}

// Validate checks that the reference can address an issue.
func (r IssueRef) Validate() error {
	if r.Owner == "" {
		return newInvalidInputError("owner", "cannot be empty")
	}
	if r.Repo == "" {
		return newInvalidInputError("repo", "cannot be empty")
	}
	if r.Number <= 0 {
		return newInvalidInputError("number", fmt.Sprintf("must be positive, got %d", r.Number))
	}
	return nil
}

// SubscriptionState is the viewer's notification subscription to a thread.
// Values use the GraphQL enum spelling.
type SubscriptionState string

const (
	// SubscriptionSubscribed means the viewer is notified of all activity.
	SubscriptionSubscribed SubscriptionState = "SUBSCRIBED"

	// SubscriptionUnsubscribed means the viewer is only notified when participating or mentioned.
	SubscriptionUnsubscribed SubscriptionState = "UNSUBSCRIBED"

	// SubscriptionIgnored means the viewer is never notified.
	SubscriptionIgnored SubscriptionState = "IGNORED"
)

// ParseSubscriptionState parses a state case-insensitively.
func ParseSubscriptionState(s string) (SubscriptionState, error) {
	switch state := SubscriptionState(strings.ToUpper(strings.TrimSpace(s))); state {
	case SubscriptionSubscribed, SubscriptionUnsubscribed, SubscriptionIgnored:
		return state, nil
	default:
		return "", newInvalidInputError("subscription state", fmt.Sprintf("unknown value %q", s))
	}
}

// CommentData contains issue comment information from the provider.
type CommentData struct {
	// Identification
	ID     int64  `json:"id"`
	NodeID string `json:"node_id"`

	// Content
	Body   string `json:"body"`
	Author string `json:"author"`

	// URLs
	HTMLURL  string `json:"html_url"`
	IssueURL string `json:"issue_url"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IssueData contains issue information from the provider.
type IssueData struct {
	// Identification. ID is the REST identifier, which is also the
	// notification thread identifier for the issue.
	ID     int64  `json:"id"`
	NodeID string `json:"node_id"`
	Number int    `json:"number"`

	// Content
	Title string `json:"title"`
	Body  string `json:"body"`

	// State and metadata
	State     string   `json:"state"`
	Author    string   `json:"author"`
	Labels    []string `json:"labels"`
	Assignees []string `json:"assignees"`
	Milestone string   `json:"milestone"`

	// URL
	HTMLURL string `json:"html_url"`

	// Timestamps
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
}

// SubscriptionData is the viewer's subscription to a subscribable item.
type SubscriptionData struct {
	// SubjectID is the GraphQL node identifier of the issue or pull request.
	SubjectID string `json:"subject_id"`

	// State is the viewer's current subscription state.
	State SubscriptionState `json:"state"`
}

// State constants for issues.
const (
	// StateOpen indicates an issue is open.
	StateOpen = "open"

	// StateClosed indicates an issue is closed.
	StateClosed = "closed"
)

// CreateIssueOptions contains options for creating an issue.
type CreateIssueOptions struct {
	// Title is the issue title (required)
	Title string

	// Body is the issue description
	Body string

	// Labels is the list of labels to apply
	Labels []string

	// Assignees is the list of usernames to assign
	Assignees []string

	// Milestone is the milestone number to assign (0 for none)
	Milestone int
}
