package cli

import (
	"strings"

	"github.com/jmgilman/go/quietgh"
)

// apiUser is the user object embedded in REST responses.
type apiUser struct {
	Login string `json:"login"`
}

// apiComment is the REST representation of an issue comment.
type apiComment struct {
	ID        int64    `json:"id"`
	NodeID    string   `json:"node_id"`
	Body      string   `json:"body"`
	User      *apiUser `json:"user"`
	HTMLURL   string   `json:"html_url"`
	IssueURL  string   `json:"issue_url"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

// apiIssue is the REST representation of an issue.
type apiIssue struct {
	ID     int64    `json:"id"`
	NodeID string   `json:"node_id"`
	Number int      `json:"number"`
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	State  string   `json:"state"`
	User   *apiUser `json:"user"`
	Labels []struct {
		Name string `json:"name"`
	} `json:"labels"`
	Assignees []apiUser `json:"assignees"`
	Milestone *struct {
		Title string `json:"title"`
	} `json:"milestone"`
	HTMLURL   string  `json:"html_url"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
	ClosedAt  *string `json:"closed_at"`
}

func (c apiComment) convert() *quietgh.CommentData {
	comment := &quietgh.CommentData{
		ID:       c.ID,
		NodeID:   c.NodeID,
		Body:     c.Body,
		HTMLURL:  c.HTMLURL,
		IssueURL: c.IssueURL,
	}

	if c.User != nil {
		comment.Author = c.User.Login
	}

	// Parse timestamps
	if t, err := quietgh.ParseGitHubTime(c.CreatedAt); err == nil {
		comment.CreatedAt = t
	}
	if t, err := quietgh.ParseGitHubTime(c.UpdatedAt); err == nil {
		comment.UpdatedAt = t
	}

	return comment
}

func (i apiIssue) convert() *quietgh.IssueData {
	issue := &quietgh.IssueData{
		ID:      i.ID,
		NodeID:  i.NodeID,
		Number:  i.Number,
		Title:   i.Title,
		Body:    i.Body,
		State:   strings.ToLower(i.State),
		HTMLURL: i.HTMLURL,
	}

	if i.User != nil {
		issue.Author = i.User.Login
	}

	issue.Labels = make([]string, 0, len(i.Labels))
	for _, l := range i.Labels {
		issue.Labels = append(issue.Labels, l.Name)
	}

	issue.Assignees = make([]string, 0, len(i.Assignees))
	for _, a := range i.Assignees {
		issue.Assignees = append(issue.Assignees, a.Login)
	}

	if i.Milestone != nil {
		issue.Milestone = i.Milestone.Title
	}

	// Parse timestamps
	if t, err := quietgh.ParseGitHubTime(i.CreatedAt); err == nil {
		issue.CreatedAt = t
	}
	if t, err := quietgh.ParseGitHubTime(i.UpdatedAt); err == nil {
		issue.UpdatedAt = t
	}
	if i.ClosedAt != nil {
		if t, err := quietgh.ParseGitHubTime(*i.ClosedAt); err == nil {
			issue.ClosedAt = &t
		}
	}

	return issue
}
