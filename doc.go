// Package quietgh creates GitHub issue comments and issues on behalf of
// automation and then drops the acting identity's notification subscription
// to the thread it just touched.
//
// Creating an issue or commenting on one subscribes the author to the
// thread. Bots and CI tokens that post often end up with thousands of
// subscriptions. Client performs the creation and immediately revokes the
// subscription so no separate cleanup job is needed.
//
// # Act then suppress
//
// Every operation has two phases:
//
//  1. Create the comment or issue. A failure here is returned to the caller
//     with its error code preserved, and nothing else happens.
//  2. Unsubscribe from the thread. A failure here is logged at warn level
//     and swallowed: the created item is still returned. A thread that was
//     already unsubscribed is logged at info level.
//
// # Strategies
//
// StrategyGraphQL (the default) reads the viewer's subscription through the
// GraphQL API and issues a single updateSubscription mutation unless the
// state is already UNSUBSCRIBED. It works for issues and pull requests.
//
// StrategyREST deletes the REST thread subscription. The thread identifier is
// taken from the created issue when available and looked up otherwise. GitHub
// answers 304 when there was nothing to delete, which surfaces as
// ErrCodeNotModified and is treated as already unsubscribed.
//
// # Providers
//
// Client talks to GitHub through the Provider interface. Two
// implementations ship with the module:
//
//   - providers/sdk uses google/go-github for REST and shurcooL/githubv4 for
//     GraphQL, authenticated with a token.
//   - providers/cli shells out to the gh CLI (gh api, gh api graphql) and
//     inherits its authentication.
//
// mocks.ProviderMock is a generated mock for tests.
//
// # Usage
//
//	provider, err := sdk.NewSDKProvider(sdk.WithToken(os.Getenv("GITHUB_TOKEN")))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client := quietgh.NewClient(provider, "octo-org", "octo-repo",
//	    quietgh.WithLogger(slog.Default()),
//	)
//
//	comment, err := client.CreateComment(ctx, client.Issue(42), "Deployed to staging")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(comment.HTMLURL)
//
//	issue, err := client.CreateIssue(ctx, "Nightly build failed", body,
//	    quietgh.WithLabels("ci"),
//	)
//
// # Error Handling
//
// Errors are github.com/jmgilman/go/errors PlatformErrors:
//
//	comment, err := client.CreateComment(ctx, ref, body)
//	if err != nil {
//	    switch errors.GetCode(err) {
//	    case errors.CodeNotFound:
//	        // the issue does not exist
//	    case errors.CodeUnauthorized, errors.CodeForbidden:
//	        // the token cannot comment here
//	    }
//	}
//
// Suppression errors never reach the caller; they only appear in the log.
package quietgh
