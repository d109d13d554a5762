//nolint:contextcheck // Context is properly passed via CommandWrapper.WithContext() but linter cannot verify
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/exec"
	"github.com/jmgilman/go/quietgh"
)

// subscriptionQuery reads the viewer's subscription to an issue or pull request.
const subscriptionQuery = `query($owner: String!, $name: String!, $number: Int!) {
  repository(owner: $owner, name: $name) {
    issueOrPullRequest(number: $number) {
      ... on Issue { id viewerSubscription }
      ... on PullRequest { id viewerSubscription }
    }
  }
}`

// updateSubscriptionMutation sets the viewer's subscription on a node.
const updateSubscriptionMutation = `mutation($id: ID!, $state: SubscriptionState!) {
  updateSubscription(input: {subscribableId: $id, state: $state}) {
    subscribable { viewerSubscription }
  }
}`

// statusPattern finds an HTTP status in gh output, either the
// "HTTP/2.0 304 Not Modified" line printed by --include or the
// "gh: Not Found (HTTP 404)" message printed on failure.
var statusPattern = regexp.MustCompile(`HTTP(?:/[0-9.]+)? ([0-9]{3})`)

// Option configures the CLI provider.
type Option func(*CLIProvider) error

// CLIProvider implements quietgh.Provider using the gh CLI.
type CLIProvider struct {
	wrapper  *exec.CommandWrapper
	hostname string
}

// NewCLIProvider creates a provider using the gh CLI.
// Inherits authentication from gh CLI configuration.
//
// Example:
//
//	provider, err := cli.NewCLIProvider()
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewCLIProvider(opts ...Option) (*CLIProvider, error) {
	executor := exec.New(exec.WithInheritEnv(), exec.WithDisableColors())

	provider := &CLIProvider{
		wrapper: exec.NewWrapper(executor, "gh"),
	}

	// Apply options (can override the wrapper)
	for _, opt := range opts {
		if err := opt(provider); err != nil {
			return nil, err
		}
	}

	// Verify gh is installed and authenticated
	args := []string{"auth", "status"}
	if provider.hostname != "" {
		args = append(args, "--hostname", provider.hostname)
	}
	result, err := provider.wrapper.Clone().Run(args...)
	if err != nil {
		return nil, wrapAuthError(err, result)
	}

	return provider, nil
}

// WithExecutor sets a custom executor for the CLI provider.
// This is primarily useful for testing with a fake executor.
func WithExecutor(executor exec.Executor) Option {
	return func(p *CLIProvider) error {
		if executor == nil {
			err := errors.New(errors.CodeInvalidInput, "executor cannot be nil")
			return errors.WithContext(err, "field", "executor")
		}
		p.wrapper = exec.NewWrapper(executor, "gh")
		return nil
	}
}

// WithHostname targets a GitHub Enterprise Server host gh is logged in to.
func WithHostname(hostname string) Option {
	return func(p *CLIProvider) error {
		p.hostname = hostname
		return nil
	}
}

// api runs `gh api` with the given arguments.
func (c *CLIProvider) api(ctx context.Context, args ...string) (*exec.Result, error) {
	full := append([]string{"api"}, args...)
	if c.hostname != "" {
		full = append(full, "--hostname", c.hostname)
	}
	return c.wrapper.Clone().WithContext(ctx).Run(full...)
}

// CreateComment creates a comment on an issue or pull request.
func (c *CLIProvider) CreateComment(ctx context.Context, owner, repo string, number int, body string) (*quietgh.CommentData, error) {
	result, err := c.api(ctx,
		fmt.Sprintf("repos/%s/%s/issues/%d/comments", owner, repo, number),
		"--method", "POST",
		"-f", "body="+body,
	)
	if err != nil {
		return nil, c.wrapCLIError(err, result, "failed to create comment")
	}

	var comment apiComment
	if err := c.parseJSON(result, &comment); err != nil {
		return nil, err
	}

	return comment.convert(), nil
}

// CreateIssue creates a new issue.
func (c *CLIProvider) CreateIssue(ctx context.Context, owner, repo string, opts quietgh.CreateIssueOptions) (*quietgh.IssueData, error) {
	args := []string{
		fmt.Sprintf("repos/%s/%s/issues", owner, repo),
		"--method", "POST",
		"-f", "title=" + opts.Title,
	}

	if opts.Body != "" {
		args = append(args, "-f", "body="+opts.Body)
	}
	for _, label := range opts.Labels {
		args = append(args, "-f", "labels[]="+label)
	}
	for _, assignee := range opts.Assignees {
		args = append(args, "-f", "assignees[]="+assignee)
	}
	if opts.Milestone > 0 {
		args = append(args, "-F", "milestone="+strconv.Itoa(opts.Milestone))
	}

	result, err := c.api(ctx, args...)
	if err != nil {
		return nil, c.wrapCLIError(err, result, "failed to create issue")
	}

	var issue apiIssue
	if err := c.parseJSON(result, &issue); err != nil {
		return nil, err
	}

	return issue.convert(), nil
}

// GetIssue retrieves a specific issue by number.
func (c *CLIProvider) GetIssue(ctx context.Context, owner, repo string, number int) (*quietgh.IssueData, error) {
	result, err := c.api(ctx, fmt.Sprintf("repos/%s/%s/issues/%d", owner, repo, number))
	if err != nil {
		return nil, c.wrapCLIError(err, result, "failed to get issue")
	}

	var issue apiIssue
	if err := c.parseJSON(result, &issue); err != nil {
		return nil, err
	}

	return issue.convert(), nil
}

// DeleteThreadSubscription removes the viewer's subscription to a thread.
// gh reports a 304 either on the --include status line or as a failure,
// and both surface as quietgh.ErrCodeNotModified.
func (c *CLIProvider) DeleteThreadSubscription(ctx context.Context, threadID int64) error {
	result, err := c.api(ctx,
		fmt.Sprintf("notifications/threads/%d/subscription", threadID),
		"--method", "DELETE",
		"--include",
	)

	if err == nil && result != nil && statusFromResult(result) == 304 {
		err = errors.New(quietgh.ErrCodeNotModified, "thread subscription not modified")
	}
	if err != nil {
		wrapped := c.wrapCLIError(err, result, "failed to delete thread subscription")
		return errors.WithContext(wrapped, "thread_id", threadID)
	}

	return nil
}

// GetSubscription reads the viewer's subscription to an issue or pull request.
func (c *CLIProvider) GetSubscription(ctx context.Context, owner, repo string, number int) (*quietgh.SubscriptionData, error) {
	result, err := c.api(ctx, "graphql",
		"-f", "query="+subscriptionQuery,
		"-f", "owner="+owner,
		"-f", "name="+repo,
		"-F", "number="+strconv.Itoa(number),
	)
	if err != nil {
		return nil, c.wrapCLIError(err, result, "failed to query subscription")
	}

	var resp struct {
		Data struct {
			Repository *struct {
				IssueOrPullRequest *struct {
					ID                 string `json:"id"`
					ViewerSubscription string `json:"viewerSubscription"`
				} `json:"issueOrPullRequest"`
			} `json:"repository"`
		} `json:"data"`
	}
	if err := c.parseJSON(result, &resp); err != nil {
		return nil, err
	}

	repository := resp.Data.Repository
	if repository == nil || repository.IssueOrPullRequest == nil || repository.IssueOrPullRequest.ID == "" {
		return nil, errors.Newf(errors.CodeNotFound, "issue or pull request not found: %s/%s#%d", owner, repo, number)
	}

	node := repository.IssueOrPullRequest
	return &quietgh.SubscriptionData{
		SubjectID: node.ID,
		State:     quietgh.SubscriptionState(node.ViewerSubscription),
	}, nil
}

// UpdateSubscription sets the viewer's subscription on a subscribable node.
func (c *CLIProvider) UpdateSubscription(ctx context.Context, subjectID string, state quietgh.SubscriptionState) (quietgh.SubscriptionState, error) {
	result, err := c.api(ctx, "graphql",
		"-f", "query="+updateSubscriptionMutation,
		"-f", "id="+subjectID,
		"-f", "state="+string(state),
	)
	if err != nil {
		wrapped := c.wrapCLIError(err, result, "failed to update subscription")
		return "", errors.WithContext(wrapped, "subject_id", subjectID)
	}

	var resp struct {
		Data struct {
			UpdateSubscription struct {
				Subscribable struct {
					ViewerSubscription string `json:"viewerSubscription"`
				} `json:"subscribable"`
			} `json:"updateSubscription"`
		} `json:"data"`
	}
	if err := c.parseJSON(result, &resp); err != nil {
		return "", err
	}

	return quietgh.SubscriptionState(resp.Data.UpdateSubscription.Subscribable.ViewerSubscription), nil
}

// statusFromResult extracts the HTTP status gh printed, or 0.
func statusFromResult(result *exec.Result) int {
	for _, out := range []string{result.Stdout, result.Stderr} {
		if m := statusPattern.FindStringSubmatch(out); m != nil {
			status, err := strconv.Atoi(m[1])
			if err == nil {
				return status
			}
		}
	}
	return 0
}

// getErrorCodeFromResult determines the error code based on the result.
func (c *CLIProvider) getErrorCodeFromResult(result *exec.Result) errors.ErrorCode {
	switch result.ExitCode {
	case 2:
		return errors.CodeUnauthorized
	case 4:
		return errors.CodeNotFound
	case 1:
		// Check stderr for specific error patterns
		stderr := strings.ToLower(result.Stderr)
		if strings.Contains(stderr, "not found") || strings.Contains(stderr, "could not resolve") {
			return errors.CodeNotFound
		}
		if strings.Contains(stderr, "authentication") || strings.Contains(stderr, "unauthorized") {
			return errors.CodeUnauthorized
		}
		if strings.Contains(stderr, "forbidden") || strings.Contains(stderr, "permission denied") {
			return errors.CodeForbidden
		}
		if strings.Contains(stderr, "rate limit") {
			return errors.CodeRateLimit
		}
	}
	return errors.CodeExecutionFailed
}

// parseJSON unmarshals JSON from result stdout into the target.
func (c *CLIProvider) parseJSON(result *exec.Result, target interface{}) error {
	if err := json.Unmarshal([]byte(result.Stdout), target); err != nil {
		wrappedErr := errors.Wrap(err, errors.CodeInvalidInput, "failed to parse JSON response")
		wrappedErr = errors.WithContext(wrappedErr, "stdout", result.Stdout)
		return wrappedErr
	}
	return nil
}

// wrapCLIError wraps CLI errors with appropriate error codes.
func (c *CLIProvider) wrapCLIError(err error, result *exec.Result, message string) error {
	if err == nil {
		return nil
	}

	// Errors raised by the provider itself already carry a code
	if code := errors.GetCode(err); code == quietgh.ErrCodeNotModified {
		return errors.Wrap(err, code, message)
	}

	if result == nil {
		return errors.Wrap(err, errors.CodeExecutionFailed, message)
	}

	// A status printed by gh is more precise than the exit code
	if status := statusFromResult(result); status != 0 {
		wrappedErr := quietgh.WrapHTTPError(err, status, message)
		if result.Stderr != "" {
			wrappedErr = errors.WithContext(wrappedErr, "stderr", result.Stderr)
		}
		return wrappedErr
	}

	wrappedErr := errors.Wrap(err, c.getErrorCodeFromResult(result), message)

	// Include stderr in error details if available
	if result.Stderr != "" {
		wrappedErr = errors.WithContext(wrappedErr, "stderr", result.Stderr)
		wrappedErr = errors.WithContext(wrappedErr, "exit_code", result.ExitCode)
	}

	return wrappedErr
}

// wrapAuthError wraps authentication errors from gh CLI.
func wrapAuthError(err error, result *exec.Result) error {
	authErr := errors.Wrap(err, errors.CodeUnauthorized, "gh CLI not authenticated")
	authErr = errors.WithContext(authErr, "hint", "Run 'gh auth login' to authenticate")
	if result != nil && result.Stderr != "" {
		authErr = errors.WithContext(authErr, "stderr", result.Stderr)
	}
	return authErr
}
