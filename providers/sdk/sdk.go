// Package sdk provides a quietgh provider implementation using the go-github
// and githubv4 SDKs.
//
// REST operations (creating comments and issues, fetching issues, deleting
// thread subscriptions) go through github.com/google/go-github/v67. The
// subscription read and update go through GitHub's GraphQL API using
// github.com/shurcooL/githubv4. Both share one oauth2 transport when the
// provider is built from a token.
package sdk

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/go-github/v67/github"
	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/quietgh"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// GraphQLClient is the part of githubv4.Client the provider uses.
type GraphQLClient interface {
	Query(ctx context.Context, q interface{}, variables map[string]interface{}) error
	Mutate(ctx context.Context, m interface{}, input githubv4.Input, variables map[string]interface{}) error
}

// SDKProvider implements quietgh.Provider using go-github and githubv4.
type SDKProvider struct {
	client  *github.Client
	graphql GraphQLClient
}

// NewSDKProvider creates a provider using the GitHub SDKs.
//
// Example with token authentication:
//
//	provider, err := sdk.NewSDKProvider(sdk.WithToken(os.Getenv("GITHUB_TOKEN")))
//
// Example against GitHub Enterprise Server:
//
//	provider, err := sdk.NewSDKProvider(
//	    sdk.WithToken(token),
//	    sdk.WithEnterpriseURL("https://ghe.example.com/api/v3"),
//	)
func NewSDKProvider(opts ...Option) (*SDKProvider, error) {
	cfg := &config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	var httpClient *http.Client
	if cfg.token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	// If no client was provided, create a default one
	if cfg.client == nil {
		if httpClient == nil {
			err := errors.New(errors.CodeInvalidInput, "either token or client must be provided")
			return nil, errors.WithContext(err, "field", "token or client")
		}

		cfg.client = github.NewClient(httpClient)
		if cfg.apiURL != "" {
			client, err := cfg.client.WithEnterpriseURLs(cfg.apiURL, cfg.apiURL)
			if err != nil {
				wrapped := errors.Wrap(err, errors.CodeInvalidConfig, "invalid enterprise URL")
				return nil, errors.WithContext(wrapped, "api_url", cfg.apiURL)
			}
			cfg.client = client
		}
	}

	if cfg.graphql == nil {
		if httpClient == nil {
			httpClient = cfg.client.Client()
		}

		graphqlURL := cfg.graphqlURL
		if graphqlURL == "" && cfg.apiURL != "" {
			graphqlURL = graphQLEndpoint(cfg.apiURL)
		}

		if graphqlURL != "" {
			cfg.graphql = githubv4.NewEnterpriseClient(graphqlURL, httpClient)
		} else {
			cfg.graphql = githubv4.NewClient(httpClient)
		}
	}

	return &SDKProvider{
		client:  cfg.client,
		graphql: cfg.graphql,
	}, nil
}

// config holds configuration for SDKProvider.
type config struct {
	client     *github.Client
	graphql    GraphQLClient
	token      string
	apiURL     string
	graphqlURL string
}

// Option configures the SDK provider.
type Option func(*config) error

// WithToken sets the authentication token for the SDK provider.
func WithToken(token string) Option {
	return func(cfg *config) error {
		if token == "" {
			err := errors.New(errors.CodeInvalidInput, "token cannot be empty")
			return errors.WithContext(err, "field", "token")
		}
		cfg.token = token
		return nil
	}
}

// WithClient sets a custom GitHub client for the SDK provider.
// This allows full control over the HTTP client configuration,
// authentication, and other advanced settings.
func WithClient(client *github.Client) Option {
	return func(cfg *config) error {
		if client == nil {
			err := errors.New(errors.CodeInvalidInput, "client cannot be nil")
			return errors.WithContext(err, "field", "client")
		}
		cfg.client = client
		return nil
	}
}

// WithGraphQLClient sets the client used for GraphQL queries and mutations.
func WithGraphQLClient(client GraphQLClient) Option {
	return func(cfg *config) error {
		if client == nil {
			err := errors.New(errors.CodeInvalidInput, "graphql client cannot be nil")
			return errors.WithContext(err, "field", "graphql client")
		}
		cfg.graphql = client
		return nil
	}
}

// WithEnterpriseURL points the provider at a GitHub Enterprise Server REST
// endpoint such as https://ghe.example.com/api/v3. The GraphQL endpoint is
// derived from it unless WithGraphQLURL is also given. An empty URL keeps
// the github.com defaults.
func WithEnterpriseURL(apiURL string) Option {
	return func(cfg *config) error {
		cfg.apiURL = apiURL
		return nil
	}
}

// WithGraphQLURL sets the GraphQL endpoint explicitly.
func WithGraphQLURL(graphqlURL string) Option {
	return func(cfg *config) error {
		cfg.graphqlURL = graphqlURL
		return nil
	}
}

// graphQLEndpoint derives the GraphQL endpoint from a REST API base URL.
func graphQLEndpoint(apiURL string) string {
	u := strings.TrimSuffix(apiURL, "/")
	u = strings.TrimSuffix(u, "/v3")
	return u + "/graphql"
}

// wrapError wraps go-github errors with appropriate error codes.
func (s *SDKProvider) wrapError(err error, resp *github.Response, message string) error {
	if err == nil {
		return nil
	}

	// Extract status code from response
	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}

	// Try to get status code from ErrorResponse
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		statusCode = ghErr.Response.StatusCode
	}

	if statusCode != 0 {
		return quietgh.WrapHTTPError(err, statusCode, message)
	}

	// Fallback to network error for unknown errors
	return errors.Wrap(err, errors.CodeNetwork, message)
}

// REST operations

// CreateComment creates a comment on an issue or pull request.
func (s *SDKProvider) CreateComment(ctx context.Context, owner, repo string, number int, body string) (*quietgh.CommentData, error) {
	comment, resp, err := s.client.Issues.CreateComment(ctx, owner, repo, number, &github.IssueComment{
		Body: github.String(body),
	})
	if err != nil {
		return nil, s.wrapError(err, resp, "failed to create comment")
	}

	return s.convertComment(comment), nil
}

// CreateIssue creates a new issue.
func (s *SDKProvider) CreateIssue(ctx context.Context, owner, repo string, opts quietgh.CreateIssueOptions) (*quietgh.IssueData, error) {
	req := &github.IssueRequest{
		Title: github.String(opts.Title),
		Body:  github.String(opts.Body),
	}

	// Only set labels and assignees if they're non-empty
	// GitHub API rejects nil pointers to empty slices
	if len(opts.Labels) > 0 {
		req.Labels = &opts.Labels
	}
	if len(opts.Assignees) > 0 {
		req.Assignees = &opts.Assignees
	}
	if opts.Milestone > 0 {
		req.Milestone = github.Int(opts.Milestone)
	}

	issue, resp, err := s.client.Issues.Create(ctx, owner, repo, req)
	if err != nil {
		return nil, s.wrapError(err, resp, "failed to create issue")
	}

	return s.convertIssue(issue), nil
}

// GetIssue retrieves a specific issue by number.
func (s *SDKProvider) GetIssue(ctx context.Context, owner, repo string, number int) (*quietgh.IssueData, error) {
	issue, resp, err := s.client.Issues.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, s.wrapError(err, resp, "failed to get issue")
	}

	return s.convertIssue(issue), nil
}

// DeleteThreadSubscription removes the viewer's subscription to a thread.
// GitHub answers 304 when there was nothing to delete, which surfaces as
// quietgh.ErrCodeNotModified.
func (s *SDKProvider) DeleteThreadSubscription(ctx context.Context, threadID int64) error {
	resp, err := s.client.Activity.DeleteThreadSubscription(ctx, strconv.FormatInt(threadID, 10))
	if err != nil {
		wrapped := s.wrapError(err, resp, "failed to delete thread subscription")
		return errors.WithContext(wrapped, "thread_id", threadID)
	}

	return nil
}

// convertComment converts a go-github IssueComment to CommentData.
func (s *SDKProvider) convertComment(comment *github.IssueComment) *quietgh.CommentData {
	if comment == nil {
		return nil
	}

	data := &quietgh.CommentData{
		ID:        comment.GetID(),
		NodeID:    comment.GetNodeID(),
		Body:      comment.GetBody(),
		HTMLURL:   comment.GetHTMLURL(),
		IssueURL:  comment.GetIssueURL(),
		CreatedAt: comment.GetCreatedAt().Time,
		UpdatedAt: comment.GetUpdatedAt().Time,
	}

	if user := comment.GetUser(); user != nil {
		data.Author = user.GetLogin()
	}

	return data
}

// convertIssue converts a go-github Issue to IssueData.
func (s *SDKProvider) convertIssue(issue *github.Issue) *quietgh.IssueData {
	if issue == nil {
		return nil
	}

	data := &quietgh.IssueData{
		ID:        issue.GetID(),
		NodeID:    issue.GetNodeID(),
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		Body:      issue.GetBody(),
		State:     issue.GetState(),
		HTMLURL:   issue.GetHTMLURL(),
		CreatedAt: issue.GetCreatedAt().Time,
		UpdatedAt: issue.GetUpdatedAt().Time,
	}

	// Extract author
	if user := issue.GetUser(); user != nil {
		data.Author = user.GetLogin()
	}

	// Extract labels
	data.Labels = make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		data.Labels = append(data.Labels, label.GetName())
	}

	// Extract assignees
	data.Assignees = make([]string, 0, len(issue.Assignees))
	for _, assignee := range issue.Assignees {
		data.Assignees = append(data.Assignees, assignee.GetLogin())
	}

	// Extract milestone
	if milestone := issue.GetMilestone(); milestone != nil {
		data.Milestone = milestone.GetTitle()
	}

	// Extract closed time
	if closedAt := issue.GetClosedAt(); !closedAt.IsZero() {
		t := closedAt.Time
		data.ClosedAt = &t
	}

	return data
}
