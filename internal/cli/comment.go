package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCommentCommand(opts *globalOptions) *cobra.Command {
	var (
		number     int
		repository string
		body       string
		bodyFile   string
	)

	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Comment on an issue or pull request and unsubscribe from it",
		Example: `  quietgh comment --issue 42 --body "Deployed to staging"
  quietgh comment --repo octo-org/octo-repo --issue 42 --body-file report.md`,
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

			comment, err := s.client.CreateComment(s.ctx, s.client.Issue(number), text)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), comment.HTMLURL)
			return nil
		},
	}

	cmd.Flags().IntVar(&number, "issue", 0, "Issue or pull request number")
	cmd.Flags().StringVar(&repository, "repo", "", "Repository as owner/repo (defaults to GITHUB_REPOSITORY)")
	cmd.Flags().StringVar(&body, "body", "", "Comment body")
	cmd.Flags().StringVar(&bodyFile, "body-file", "", "Read the comment body from a file (- for stdin)")
	_ = cmd.MarkFlagRequired("issue")

	return cmd
}
