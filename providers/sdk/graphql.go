package sdk

import (
	"context"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/quietgh"
	"github.com/shurcooL/githubv4"
)

// subscribable holds the fields read from an Issue or PullRequest node.
type subscribable struct {
	ID                 githubv4.ID
	ViewerSubscription githubv4.SubscriptionState
}

// subscriptionQuery reads the viewer's subscription to an issue or pull
// request. Both fragments are needed because comments can land on either.
type subscriptionQuery struct {
	Repository struct {
		IssueOrPullRequest struct {
			Issue       subscribable `graphql:"... on Issue"`
			PullRequest subscribable `graphql:"... on PullRequest"`
		} `graphql:"issueOrPullRequest(number: $number)"`
	} `graphql:"repository(owner: $owner, name: $name)"`
}

// updateSubscriptionMutation sets the viewer's subscription on a node.
type updateSubscriptionMutation struct {
	UpdateSubscription struct {
		Subscribable struct {
			ViewerSubscription githubv4.SubscriptionState
		}
	} `graphql:"updateSubscription(input: $input)"`
}

// GetSubscription reads the viewer's subscription to an issue or pull request.
func (s *SDKProvider) GetSubscription(ctx context.Context, owner, repo string, number int) (*quietgh.SubscriptionData, error) {
	var q subscriptionQuery
	vars := map[string]interface{}{
		"owner":  githubv4.String(owner),
		"name":   githubv4.String(repo),
		"number": githubv4.Int(number),
	}

	if err := s.graphql.Query(ctx, &q, vars); err != nil {
		return nil, quietgh.WrapGraphQLError(err, "failed to query subscription")
	}

	node := q.Repository.IssueOrPullRequest.Issue
	if node.ID == nil {
		node = q.Repository.IssueOrPullRequest.PullRequest
	}

	id, _ := node.ID.(string)
	if id == "" {
		return nil, errors.Newf(errors.CodeNotFound, "issue or pull request not found: %s/%s#%d", owner, repo, number)
	}

	return &quietgh.SubscriptionData{
		SubjectID: id,
		State:     quietgh.SubscriptionState(node.ViewerSubscription),
	}, nil
}

// UpdateSubscription sets the viewer's subscription on a subscribable node.
func (s *SDKProvider) UpdateSubscription(ctx context.Context, subjectID string, state quietgh.SubscriptionState) (quietgh.SubscriptionState, error) {
	var m updateSubscriptionMutation
	input := githubv4.UpdateSubscriptionInput{
		SubscribableID: githubv4.ID(subjectID),
		State:          githubv4.SubscriptionState(state),
	}

	if err := s.graphql.Mutate(ctx, &m, input, nil); err != nil {
		wrapped := quietgh.WrapGraphQLError(err, "failed to update subscription")
		return "", errors.WithContext(wrapped, "subject_id", subjectID)
	}

	return quietgh.SubscriptionState(m.UpdateSubscription.Subscribable.ViewerSubscription), nil
}
