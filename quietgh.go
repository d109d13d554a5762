package quietgh

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmgilman/go/errors"
)

// ParseGitHubTime parses a timestamp string from the GitHub API.
// GitHub uses RFC3339 format for timestamps.
func ParseGitHubTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errors.Wrap(err, errors.CodeInvalidInput, "failed to parse timestamp")
	}
	return t, nil
}

// ParseRepository splits an "owner/repo" string, the format used by the
// GITHUB_REPOSITORY variable in Actions runners.
func ParseRepository(s string) (owner, repo string, err error) {
	owner, repo, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", newInvalidInputError("repository", fmt.Sprintf("expected owner/repo, got %q", s))
	}
	return owner, repo, nil
}

// ParseIssueRef parses an "owner/repo#number" string into an IssueRef.
func ParseIssueRef(s string) (IssueRef, error) {
	repoPart, numPart, ok := strings.Cut(strings.TrimSpace(s), "#")
	if !ok {
		return IssueRef{}, newInvalidInputError("issue", fmt.Sprintf("expected owner/repo#number, got %q", s))
	}

	owner, repo, err := ParseRepository(repoPart)
	if err != nil {
		return IssueRef{}, err
	}

	number, err := strconv.Atoi(numPart)
	if err != nil {
		return IssueRef{}, errors.Wrap(err, errors.CodeInvalidInput, "failed to parse issue number")
	}

	ref := IssueRef{Owner: owner, Repo: repo, Number: number}
	if err := ref.Validate(); err != nil {
		return IssueRef{}, err
	}
	return ref, nil
}
