package quietgh

import (
	"io"
	"log/slog"
)

// IssueOption configures issue creation.
type IssueOption func(*CreateIssueOptions)

// WithLabels sets labels for an issue.
func WithLabels(labels ...string) IssueOption {
	return func(opts *CreateIssueOptions) {
		opts.Labels = labels
	}
}

// WithAssignees sets assignees for an issue.
func WithAssignees(assignees ...string) IssueOption {
	return func(opts *CreateIssueOptions) {
		opts.Assignees = assignees
	}
}

// WithMilestone sets the milestone number for an issue.
func WithMilestone(number int) IssueOption {
	return func(opts *CreateIssueOptions) {
		opts.Milestone = number
	}
}

// Strategy selects how the Client unsubscribes from a thread.
type Strategy string

const (
	// StrategyGraphQL reads the viewer's subscription and only mutates it
	// when it is not already UNSUBSCRIBED.
	StrategyGraphQL Strategy = "graphql"

	// StrategyREST deletes the thread subscription and treats a 304 as
	// already unsubscribed.
	StrategyREST Strategy = "rest"
)

// ParseStrategy parses a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch strategy := Strategy(s); strategy {
	case StrategyGraphQL, StrategyREST:
		return strategy, nil
	default:
		return "", newInvalidInputError("strategy", "must be one of graphql, rest")
	}
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets the logger that receives suppression outcomes.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStrategy sets the unsubscribe strategy. Defaults to StrategyGraphQL.
func WithStrategy(strategy Strategy) ClientOption {
	return func(c *Client) {
		c.strategy = strategy
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
