package quietgh

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jmgilman/go/errors"
)

// Client creates issues and comments and then unsubscribes the acting
// identity from the resulting notification thread.
//
// Creation and suppression are two phases. A creation failure is returned
// and nothing else is attempted. A suppression failure is only logged: the
// created item is always returned once it exists.
//
// Example usage:
//
//	provider, err := sdk.NewSDKProvider(sdk.WithToken(os.Getenv("GITHUB_TOKEN")))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client := quietgh.NewClient(provider, "myorg", "myrepo", quietgh.WithLogger(slog.Default()))
//	comment, err := client.CreateComment(ctx, client.Issue(42), "Build passed")
//
// A Client holds no mutable state and may be shared between goroutines.
type Client struct {
	provider Provider
	owner    string
	repo     string
	strategy Strategy
	logger   *slog.Logger
}

// NewClient creates a new Client backed by the given provider. The owner and
// repo are the repository new issues are created in, usually the repository
// the workflow runs for.
func NewClient(provider Provider, owner, repo string, opts ...ClientOption) *Client {
	c := &Client{
		provider: provider,
		owner:    owner,
		repo:     repo,
		strategy: StrategyGraphQL,
		logger:   discardLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CreateComment posts a comment on the referenced issue or pull request and
// then unsubscribes from its thread.
func (c *Client) CreateComment(ctx context.Context, ref IssueRef, body string) (*CommentData, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(body) == "" {
		return nil, newInvalidInputError("body", "cannot be empty")
	}

	comment, err := c.provider.CreateComment(ctx, ref.Owner, ref.Repo, ref.Number, body)
	if err != nil {
		return nil, wrapProviderError(err, "failed to create comment")
	}
	if comment == nil {
		return nil, errors.New(errors.CodeInternal, "provider returned no comment")
	}

	// Comments carry no thread identifier, so the REST strategy looks it up.
	out, err := c.unsubscribe(ctx, thread{ref: ref})

	logger := c.logger.With(
		"owner", ref.Owner,
		"repo", ref.Repo,
		"number", ref.Number,
		"comment_id", comment.ID,
	)
	report(ctx, logger, "comment posted", out, err)

	return comment, nil
}

// CreateIssue opens an issue in the client's repository and then
// unsubscribes from its thread. Labels default to none.
func (c *Client) CreateIssue(ctx context.Context, title, body string, opts ...IssueOption) (*IssueData, error) {
	if c.owner == "" || c.repo == "" {
		return nil, newInvalidInputError("repository", "client has no owner/repo")
	}
	if strings.TrimSpace(title) == "" {
		return nil, newInvalidInputError("title", "cannot be empty")
	}

	createOpts := CreateIssueOptions{
		Title: title,
		Body:  body,
	}
	for _, opt := range opts {
		opt(&createOpts)
	}
	if createOpts.Labels == nil {
		createOpts.Labels = []string{}
	}

	issue, err := c.provider.CreateIssue(ctx, c.owner, c.repo, createOpts)
	if err != nil {
		return nil, wrapProviderError(err, "failed to create issue")
	}
	if issue == nil {
		return nil, errors.New(errors.CodeInternal, "provider returned no issue")
	}

	out, err := c.unsubscribe(ctx, thread{
		ref: c.Issue(issue.Number),
		id:  issue.ID,
	})

	logger := c.logger.With(
		"owner", c.owner,
		"repo", c.repo,
		"number", issue.Number,
	)
	report(ctx, logger, "issue created", out, err)

	return issue, nil
}

// Issue returns a reference to an issue in the client's repository.
func (c *Client) Issue(number int) IssueRef {
	return IssueRef{
		Owner:  c.owner,
		Repo:   c.repo,
		Number: number,
	}
}

// Provider returns the underlying Provider.
// This is an escape hatch for operations not covered by the Client.
func (c *Client) Provider() Provider {
	return c.provider
}

// Owner returns the owner new issues are created under.
func (c *Client) Owner() string {
	return c.owner
}

// Repo returns the repository new issues are created in.
func (c *Client) Repo() string {
	return c.repo
}

// Strategy returns the unsubscribe strategy in use.
func (c *Client) Strategy() Strategy {
	return c.strategy
}
