// Package cli provides the command-line interface for quietgh.
package cli

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fs/billy"
	"github.com/jmgilman/go/fs/core"
	"github.com/jmgilman/go/quietgh"
	"github.com/jmgilman/go/quietgh/internal/config"
	ghcli "github.com/jmgilman/go/quietgh/providers/cli"
	"github.com/jmgilman/go/quietgh/providers/sdk"
	"github.com/spf13/cobra"
)

// defaultAPIURL is what the Actions runner reports for github.com.
const defaultAPIURL = "https://api.github.com"

// newProviderFunc builds the provider from configuration, allowing it to be replaced in tests.
var newProviderFunc = newProvider

// bodyFS is where --body-file paths are read from.
var bodyFS core.ReadFS = billy.NewLocal()

// globalOptions holds the persistent flags.
type globalOptions struct {
	configPath string
	provider   string
	strategy   string
	logLevel   string
}

// NewRootCommand creates the root command for quietgh.
func NewRootCommand(version string) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "quietgh",
		Short: "Post GitHub comments and issues without subscribing to them",
		Long: `quietgh creates an issue comment or an issue and then removes the
acting identity's notification subscription to that thread.

Unsubscribing is best effort: if it fails the creation still succeeds and
a warning is logged.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a TOML config file")
	root.PersistentFlags().StringVar(&opts.provider, "provider", "", "GitHub provider: sdk or cli")
	root.PersistentFlags().StringVar(&opts.strategy, "strategy", "", "Unsubscribe strategy: graphql or rest")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	root.AddCommand(
		newCommentCommand(opts),
		newIssueCommand(opts),
	)

	return root
}

// session is everything a subcommand needs to talk to GitHub.
type session struct {
	client *quietgh.Client
	logger *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

// newSession loads configuration, applies flag overrides and builds the client.
// repository overrides the configured owner/repo when non-empty.
func newSession(cmd *cobra.Command, opts *globalOptions, repository string) (*session, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if opts.provider != "" {
		cfg.Provider = opts.provider
	}
	if opts.strategy != "" {
		cfg.Strategy = opts.strategy
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if repository != "" {
		cfg.GitHub.Repository = repository
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if cfg.GitHub.Repository == "" {
		err := errors.New(errors.CodeInvalidInput, "repository is required")
		return nil, errors.WithContext(err, "hint", "pass --repo or set GITHUB_REPOSITORY")
	}
	owner, repo, err := quietgh.ParseRepository(cfg.GitHub.Repository)
	if err != nil {
		return nil, err
	}

	strategy, err := quietgh.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	provider, err := newProviderFunc(cfg)
	if err != nil {
		return nil, err
	}

	logger.Debug("client configured",
		"provider", cfg.Provider,
		"strategy", strategy,
		"owner", owner,
		"repo", repo,
	)

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)

	return &session{
		client: quietgh.NewClient(provider, owner, repo,
			quietgh.WithLogger(logger),
			quietgh.WithStrategy(strategy),
		),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// newProvider builds the provider named by the configuration.
func newProvider(cfg *config.Config) (quietgh.Provider, error) {
	switch cfg.Provider {
	case config.ProviderCLI:
		var opts []ghcli.Option
		if cfg.Hostname != "" {
			opts = append(opts, ghcli.WithHostname(cfg.Hostname))
		}
		return ghcli.NewCLIProvider(opts...)
	default:
		opts := []sdk.Option{sdk.WithToken(cfg.GitHub.Token)}
		if url := strings.TrimSuffix(cfg.GitHub.API.URL, "/"); url != "" && url != defaultAPIURL {
			opts = append(opts, sdk.WithEnterpriseURL(url))
		}
		return sdk.NewSDKProvider(opts...)
	}
}

// readBody resolves --body and --body-file; "-" reads stdin.
func readBody(cmd *cobra.Command, body, bodyFile string) (string, error) {
	if body != "" && bodyFile != "" {
		return "", errors.New(errors.CodeInvalidInput, "--body and --body-file are mutually exclusive")
	}
	if bodyFile == "" {
		return body, nil
	}

	var (
		data []byte
		err  error
	)
	if bodyFile == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		var path string
		path, err = filepath.Abs(bodyFile)
		if err == nil {
			data, err = bodyFS.ReadFile(path)
		}
	}
	if err != nil {
		wrapped := errors.Wrap(err, errors.CodeInvalidInput, "failed to read body file")
		return "", errors.WithContext(wrapped, "path", bodyFile)
	}

	return string(data), nil
}
