//nolint:contextcheck // Context is properly passed via CommandWrapper.WithContext() but linter cannot verify
package cli

import (
	"context"
	stderrors "errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/exec"
	"github.com/jmgilman/go/quietgh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecutor records every Run and answers with runFunc.
type fakeExecutor struct {
	mu      sync.Mutex
	calls   [][]string
	runFunc func(args ...string) (*exec.Result, error)
}

func (f *fakeExecutor) WithEnv(map[string]string) exec.Executor { return f }
func (f *fakeExecutor) WithDir(string) exec.Executor              { return f }
func (f *fakeExecutor) WithContext(context.Context) exec.Executor { return f }
func (f *fakeExecutor) WithDisableColors() exec.Executor          { return f }
func (f *fakeExecutor) WithTimeout(string) exec.Executor          { return f }
func (f *fakeExecutor) WithInheritEnv() exec.Executor             { return f }
func (f *fakeExecutor) WithStdout(io.Writer) exec.Executor        { return f }
func (f *fakeExecutor) WithStderr(io.Writer) exec.Executor        { return f }
func (f *fakeExecutor) WithPassthrough() exec.Executor            { return f }
func (f *fakeExecutor) Clone() exec.Executor                      { return f }

func (f *fakeExecutor) Run(args ...string) (*exec.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, args)
	f.mu.Unlock()
	return f.runFunc(args...)
}

// lastCall returns the arguments of the most recent Run.
func (f *fakeExecutor) lastCall() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return nil
	}
	return f.calls[len(f.calls)-1]
}

// setupProvider builds a provider whose auth check succeeds and whose api
// calls are answered by apiFunc.
func setupProvider(t *testing.T, apiFunc func(args ...string) (*exec.Result, error), opts ...Option) (*CLIProvider, *fakeExecutor) {
	t.Helper()

	fake := &fakeExecutor{
		runFunc: func(args ...string) (*exec.Result, error) {
			if len(args) >= 2 && args[0] == "gh" && args[1] == "auth" {
				return &exec.Result{Stdout: "Logged in to github.com"}, nil
			}
			return apiFunc(args...)
		},
	}

	provider, err := NewCLIProvider(append([]Option{WithExecutor(fake)}, opts...)...)
	require.NoError(t, err)

	return provider, fake
}

// failure mimics a gh invocation that exited non-zero.
func failure(exitCode int, stdout, stderr string) (*exec.Result, error) {
	result := &exec.Result{Stdout: stdout, Stderr: stderr, Combined: stdout + stderr, ExitCode: exitCode}
	return result, &exec.ExecError{ExitCode: exitCode, Stdout: stdout, Stderr: stderr, Err: stderrors.New("exit status 1")}
}

func TestNewCLIProvider(t *testing.T) {
	t.Run("success with custom executor", func(t *testing.T) {
		provider, fake := setupProvider(t, nil)

		assert.NotNil(t, provider)
		assert.Equal(t, []string{"gh", "auth", "status"}, fake.lastCall())
	})

	t.Run("checks the configured host", func(t *testing.T) {
		_, fake := setupProvider(t, nil, WithHostname("ghe.example.com"))

		assert.Equal(t, []string{"gh", "auth", "status", "--hostname", "ghe.example.com"}, fake.lastCall())
	})

	t.Run("fails when auth status check fails", func(t *testing.T) {
		fake := &fakeExecutor{
			runFunc: func(args ...string) (*exec.Result, error) {
				return failure(1, "", "You are not logged into any GitHub hosts.")
			},
		}

		_, err := NewCLIProvider(WithExecutor(fake))

		require.Error(t, err)
		assert.Equal(t, errors.CodeUnauthorized, errors.GetCode(err))
	})

	t.Run("rejects nil executor", func(t *testing.T) {
		_, err := NewCLIProvider(WithExecutor(nil))

		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	})
}

func TestCLIProvider_CreateComment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		provider, fake := setupProvider(t, func(args ...string) (*exec.Result, error) {
			return &exec.Result{Stdout: `{
				"id": 9001,
				"node_id": "IC_kwDOAAAB",
				"body": "Build passed",
				"user": {"login": "ci-bot"},
				"html_url": "https://github.com/octo-org/octo-repo/issues/42#issuecomment-9001",
				"created_at": "2024-05-01T10:00:00Z"
			}`}, nil
		})

		comment, err := provider.CreateComment(context.Background(), "octo-org", "octo-repo", 42, "Build passed")

		require.NoError(t, err)
		assert.Equal(t, int64(9001), comment.ID)
		assert.Equal(t, "ci-bot", comment.Author)
		assert.Equal(t, 2024, comment.CreatedAt.Year())
		assert.Equal(t, []string{
			"gh", "api", "repos/octo-org/octo-repo/issues/42/comments",
			"--method", "POST", "-f", "body=Build passed",
		}, fake.lastCall())
	})

	t.Run("not found", func(t *testing.T) {
		provider, _ := setupProvider(t, func(args ...string) (*exec.Result, error) {
			return failure(1, `{"message":"Not Found"}`, "gh: Not Found (HTTP 404)")
		})

		_, err := provider.CreateComment(context.Background(), "octo-org", "octo-repo", 42, "Build passed")

		require.Error(t, err)
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	})

	t.Run("invalid json", func(t *testing.T) {
		provider, _ := setupProvider(t, func(args ...string) (*exec.Result, error) {
			return &exec.Result{Stdout: "not json"}, nil
		})

		_, err := provider.CreateComment(context.Background(), "octo-org", "octo-repo", 42, "Build passed")

		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	})
}

func TestCLIProvider_CreateIssue(t *testing.T) {
	provider, fake := setupProvider(t, func(args ...string) (*exec.Result, error) {
		return &exec.Result{Stdout: `{
			"id": 777,
			"node_id": "I_kwDOAAAC",
			"number": 7,
			"title": "Nightly failed",
			"state": "open",
			"labels": [{"name": "ci"}],
			"assignees": [{"login": "octocat"}],
			"milestone": {"title": "v1.0"},
			"closed_at": null
		}`}, nil
	})

	issue, err := provider.CreateIssue(context.Background(), "octo-org", "octo-repo", quietgh.CreateIssueOptions{
		Title:     "Nightly failed",
		Body:      "See logs",
		Labels:    []string{"ci"},
		Assignees: []string{"octocat"},
		Milestone: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(777), issue.ID)
	assert.Equal(t, 7, issue.Number)
	assert.Equal(t, []string{"ci"}, issue.Labels)
	assert.Equal(t, []string{"octocat"}, issue.Assignees)
	assert.Equal(t, "v1.0", issue.Milestone)
	assert.Nil(t, issue.ClosedAt)
	assert.Equal(t, []string{
		"gh", "api", "repos/octo-org/octo-repo/issues",
		"--method", "POST",
		"-f", "title=Nightly failed",
		"-f", "body=See logs",
		"-f", "labels[]=ci",
		"-f", "assignees[]=octocat",
		"-F", "milestone=3",
	}, fake.lastCall())
}

func TestCLIProvider_GetIssue(t *testing.T) {
	provider, fake := setupProvider(t, func(args ...string) (*exec.Result, error) {
		return &exec.Result{Stdout: `{"id": 123456, "number": 42, "state": "CLOSED", "closed_at": "2024-05-02T10:00:00Z"}`}, nil
	}, WithHostname("ghe.example.com"))

	issue, err := provider.GetIssue(context.Background(), "octo-org", "octo-repo", 42)

	require.NoError(t, err)
	assert.Equal(t, int64(123456), issue.ID)
	assert.Equal(t, quietgh.StateClosed, issue.State)
	require.NotNil(t, issue.ClosedAt)
	assert.Equal(t, []string{"gh", "api", "repos/octo-org/octo-repo/issues/42", "--hostname", "ghe.example.com"}, fake.lastCall())
}

func TestCLIProvider_DeleteThreadSubscription(t *testing.T) {
	tests := []struct {
		name            string
		run             func(args ...string) (*exec.Result, error)
		wantErr         bool
		wantNotModified bool
		wantCode        errors.ErrorCode
	}{
		{
			name: "deleted",
			run: func(args ...string) (*exec.Result, error) {
				return &exec.Result{Stdout: "HTTP/2.0 204 No Content\r\nServer: GitHub.com\r\n\r\n"}, nil
			},
		},
		{
			name: "not modified on status line",
			run: func(args ...string) (*exec.Result, error) {
				return &exec.Result{Stdout: "HTTP/2.0 304 Not Modified\r\nServer: GitHub.com\r\n\r\n"}, nil
			},
			wantErr:         true,
			wantNotModified: true,
			wantCode:        quietgh.ErrCodeNotModified,
		},
		{
			name: "not modified reported as failure",
			run: func(args ...string) (*exec.Result, error) {
				return failure(1, "HTTP/2.0 304 Not Modified\r\n\r\n", "gh: HTTP 304")
			},
			wantErr:         true,
			wantNotModified: true,
			wantCode:        quietgh.ErrCodeNotModified,
		},
		{
			name: "forbidden",
			run: func(args ...string) (*exec.Result, error) {
				return failure(1, "HTTP/2.0 403 Forbidden\r\n\r\n", "gh: Resource not accessible by integration (HTTP 403)")
			},
			wantErr:  true,
			wantCode: errors.CodeForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, fake := setupProvider(t, tt.run)

			err := provider.DeleteThreadSubscription(context.Background(), 123456)

			assert.Equal(t, []string{
				"gh", "api", "notifications/threads/123456/subscription", "--method", "DELETE", "--include",
			}, fake.lastCall())

			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetCode(err))
			assert.Equal(t, tt.wantNotModified, quietgh.IsNotModified(err))
		})
	}
}

func TestCLIProvider_GetSubscription(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		provider, fake := setupProvider(t, func(args ...string) (*exec.Result, error) {
			return &exec.Result{Stdout: `{"data":{"repository":{"issueOrPullRequest":{"id":"I_kwDOAAAB","viewerSubscription":"SUBSCRIBED"}}}}`}, nil
		})

		sub, err := provider.GetSubscription(context.Background(), "octo-org", "octo-repo", 42)

		require.NoError(t, err)
		assert.Equal(t, "I_kwDOAAAB", sub.SubjectID)
		assert.Equal(t, quietgh.SubscriptionSubscribed, sub.State)

		args := fake.lastCall()
		require.GreaterOrEqual(t, len(args), 3)
		assert.Equal(t, []string{"gh", "api", "graphql"}, args[:3])
		assert.Contains(t, args, "owner=octo-org")
		assert.Contains(t, args, "name=octo-repo")
		assert.Contains(t, args, "number=42")
		assert.True(t, strings.Contains(strings.Join(args, " "), "issueOrPullRequest(number: $number)"))
	})

	t.Run("null node", func(t *testing.T) {
		provider, _ := setupProvider(t, func(args ...string) (*exec.Result, error) {
			return &exec.Result{Stdout: `{"data":{"repository":{"issueOrPullRequest":null}}}`}, nil
		})

		_, err := provider.GetSubscription(context.Background(), "octo-org", "octo-repo", 42)

		require.Error(t, err)
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	})

	t.Run("unresolvable number", func(t *testing.T) {
		provider, _ := setupProvider(t, func(args ...string) (*exec.Result, error) {
			return failure(1, "", "gh: Could not resolve to an issue or pull request with the number of 9.")
		})

		_, err := provider.GetSubscription(context.Background(), "octo-org", "octo-repo", 9)

		require.Error(t, err)
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	})
}

func TestCLIProvider_UpdateSubscription(t *testing.T) {
	provider, fake := setupProvider(t, func(args ...string) (*exec.Result, error) {
		return &exec.Result{Stdout: `{"data":{"updateSubscription":{"subscribable":{"viewerSubscription":"UNSUBSCRIBED"}}}}`}, nil
	})

	state, err := provider.UpdateSubscription(context.Background(), "I_kwDOAAAB", quietgh.SubscriptionUnsubscribed)

	require.NoError(t, err)
	assert.Equal(t, quietgh.SubscriptionUnsubscribed, state)

	args := fake.lastCall()
	assert.Contains(t, args, "id=I_kwDOAAAB")
	assert.Contains(t, args, "state=UNSUBSCRIBED")
}

func TestGetErrorCodeFromResult(t *testing.T) {
	provider := &CLIProvider{}

	tests := []struct {
		name   string
		result *exec.Result
		want   errors.ErrorCode
	}{
		{name: "exit 2", result: &exec.Result{ExitCode: 2}, want: errors.CodeUnauthorized},
		{name: "exit 4", result: &exec.Result{ExitCode: 4}, want: errors.CodeNotFound},
		{name: "rate limit", result: &exec.Result{ExitCode: 1, Stderr: "API rate limit exceeded"}, want: errors.CodeRateLimit},
		{name: "permission", result: &exec.Result{ExitCode: 1, Stderr: "permission denied"}, want: errors.CodeForbidden},
		{name: "other", result: &exec.Result{ExitCode: 1, Stderr: "boom"}, want: errors.CodeExecutionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, provider.getErrorCodeFromResult(tt.result))
		})
	}
}
