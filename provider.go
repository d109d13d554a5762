package quietgh

import "context"

//go:generate go run github.com/matryer/moq@latest -out mocks/provider.go -pkg mocks . Provider

// Provider defines the GitHub operations the Client depends on.
// Implementations include the SDK provider (go-github and githubv4) and the
// CLI provider (gh CLI).
//
// The first three methods are the REST surface used to create items and to
// resolve their notification thread. DeleteThreadSubscription is the REST
// way of unsubscribing; GetSubscription and UpdateSubscription are the
// GraphQL way. The Client only uses the pair selected by its Strategy.
//
// All methods accept a context.Context as the first parameter for
// cancellation and timeout control. Providers perform a single attempt per
// call and never retry.
type Provider interface {
	// CreateComment creates a comment on an issue or pull request.
	// Returns ErrNotFound if the issue doesn't exist.
	CreateComment(ctx context.Context, owner, repo string, number int, body string) (*CommentData, error)

	// CreateIssue creates a new issue.
	// Returns ErrInvalidInput if required fields are missing or invalid.
	CreateIssue(ctx context.Context, owner, repo string, opts CreateIssueOptions) (*IssueData, error)

	// GetIssue retrieves a specific issue by number.
	// Returns ErrNotFound if the issue doesn't exist.
	GetIssue(ctx context.Context, owner, repo string, number int) (*IssueData, error)

	// DeleteThreadSubscription removes the viewer's subscription to a
	// notification thread. Returns an error with ErrCodeNotModified when the
	// viewer was not subscribed.
	DeleteThreadSubscription(ctx context.Context, threadID int64) error

	// GetSubscription reads the viewer's subscription to an issue or pull
	// request along with the item's node identifier.
	GetSubscription(ctx context.Context, owner, repo string, number int) (*SubscriptionData, error)

	// UpdateSubscription sets the viewer's subscription on a subscribable
	// node and returns the state reported back by GitHub.
	UpdateSubscription(ctx context.Context, subjectID string, state SubscriptionState) (SubscriptionState, error)
}
