package quietgh

import (
	"context"
	"log/slog"

	"github.com/jmgilman/go/errors"
)

// thread identifies the notification thread of a newly created item.
type thread struct {
	ref IssueRef

	// id is the REST thread identifier, zero when creation did not return one.
	id int64
}

// outcome describes a completed unsubscribe attempt.
type outcome struct {
	// already is set when the viewer was not subscribed to begin with.
	already bool

	// state is the subscription state observed after the attempt.
	state SubscriptionState
}

// unsubscribe removes the viewer's subscription to t using the configured
// strategy. It makes a single attempt and never retries.
func (c *Client) unsubscribe(ctx context.Context, t thread) (outcome, error) {
	switch c.strategy {
	case StrategyREST:
		return c.unsubscribeREST(ctx, t)
	case StrategyGraphQL, "":
		return c.unsubscribeGraphQL(ctx, t)
	default:
		return outcome{}, newInvalidInputError("strategy", string(c.strategy))
	}
}

// unsubscribeGraphQL reads the current state first and only mutates when the
// viewer is not already unsubscribed.
func (c *Client) unsubscribeGraphQL(ctx context.Context, t thread) (outcome, error) {
	sub, err := c.provider.GetSubscription(ctx, t.ref.Owner, t.ref.Repo, t.ref.Number)
	if err != nil {
		return outcome{}, wrapProviderError(err, "failed to read subscription")
	}
	if sub == nil {
		return outcome{}, errors.New(errors.CodeNotFound, "no subscription returned for "+t.ref.String())
	}

	if sub.State == SubscriptionUnsubscribed {
		return outcome{already: true, state: sub.State}, nil
	}
	if sub.SubjectID == "" {
		return outcome{}, errors.New(errors.CodeNotFound, "no node identifier for "+t.ref.String())
	}

	state, err := c.provider.UpdateSubscription(ctx, sub.SubjectID, SubscriptionUnsubscribed)
	if err != nil {
		return outcome{}, wrapProviderError(err, "failed to update subscription")
	}

	return outcome{state: state}, nil
}

// unsubscribeREST deletes the thread subscription, looking the thread up
// through the issue when creation did not return its identifier.
func (c *Client) unsubscribeREST(ctx context.Context, t thread) (outcome, error) {
	threadID := t.id
	if threadID == 0 {
		issue, err := c.provider.GetIssue(ctx, t.ref.Owner, t.ref.Repo, t.ref.Number)
		if err != nil {
			return outcome{}, wrapProviderError(err, "failed to look up thread")
		}
		if issue != nil {
			threadID = issue.ID
		}
	}
	if threadID == 0 {
		return outcome{}, errors.New(errors.CodeNotFound, "no thread identifier for "+t.ref.String())
	}

	if err := c.provider.DeleteThreadSubscription(ctx, threadID); err != nil {
		if IsNotModified(err) {
			return outcome{already: true, state: SubscriptionUnsubscribed}, nil
		}
		return outcome{}, wrapProviderError(err, "failed to delete thread subscription")
	}

	return outcome{state: SubscriptionUnsubscribed}, nil
}

// report logs the result of the suppression phase. Errors end here.
func report(ctx context.Context, logger *slog.Logger, action string, out outcome, err error) {
	switch {
	case err != nil:
		logger.WarnContext(ctx, action+" but could not unsubscribe", "error", err.Error())
	case out.already:
		logger.InfoContext(ctx, action+", already unsubscribed")
	default:
		logger.InfoContext(ctx, action+" and unsubscribed", "state", string(out.state))
	}
}
