package cli

import (
	"fmt"

	"github.com/jmgilman/go/quietgh"
	"github.com/spf13/cobra"
)

func newIssueCommand(opts *globalOptions) *cobra.Command {
	var (
		repository string
		title      string
		body       string
		bodyFile   string
		labels     []string
		assignees  []string
		milestone  int
	)

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Open an issue and unsubscribe from it",
		Example: `  quietgh issue --title "Nightly build failed" --body-file failure.md --label ci
  quietgh issue --repo octo-org/octo-repo --title "Rotate keys" --assignee octocat`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := readBody(cmd, body, bodyFile)
			if err != nil {
				return err
			}

			s, err := newSession(cmd, opts, repository)
			if err != nil {
				return err
			}
			defer s.cancel()

			issueOpts := []quietgh.IssueOption{
				quietgh.WithLabels(labels...),
				quietgh.WithAssignees(assignees...),
			}
			if milestone > 0 {
				issueOpts = append(issueOpts, quietgh.WithMilestone(milestone))
			}

			issue, err := s.client.CreateIssue(s.ctx, title, text, issueOpts...)
			if err != nil {
				return err
			}

			s.logger.Debug("issue opened", "number", issue.Number, "id", issue.ID)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), issue.HTMLURL)
			return nil
		},
	}

	cmd.Flags().StringVar(&repository, "repo", "", "Repository as owner/repo (defaults to GITHUB_REPOSITORY)")
	cmd.Flags().StringVar(&title, "title", "", "Issue title")
	cmd.Flags().StringVar(&body, "body", "", "Issue body")
	cmd.Flags().StringVar(&bodyFile, "body-file", "", "Read the issue body from a file (- for stdin)")
	cmd.Flags().StringArrayVar(&labels, "label", nil, "Label to apply (repeatable)")
	cmd.Flags().StringArrayVar(&assignees, "assignee", nil, "User to assign (repeatable)")
	cmd.Flags().IntVar(&milestone, "milestone", 0, "Milestone number")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}
