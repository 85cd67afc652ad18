// Package cli implements the recruitctl commands. Every view of the client is
// a command; guarded commands declare the roles they admit.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/core/service"
	"github.com/talentbridge/recruitment-client/internal/infrastructure/config"
	"github.com/talentbridge/recruitment-client/internal/metrics"
	"github.com/talentbridge/recruitment-client/internal/output"
	"github.com/talentbridge/recruitment-client/pkg/logger"
)

// rolesAnnotation lists, comma separated, the roles a command admits. An empty
// value admits any signed-in identity.
const rolesAnnotation = "recruitctl/roles"

// offlineAnnotation marks commands that run without configuration or services.
const offlineAnnotation = "recruitctl/offline"

// Options configures the root command. Zero values select the production
// defaults.
type Options struct {
	Version    string
	Build      Builder
	LoadConfig func(ctx context.Context) (*config.Config, error)
	In         io.Reader
	Out        io.Writer
	Err        io.Writer
}

// state is shared by every command of one invocation.
type state struct {
	opts Options

	jsonOutput bool
	quiet      bool
	verbose    bool
	colorMode  string

	cfg     *config.Config
	log     zerolog.Logger
	printer *output.Printer
	app     *App
}

// NewRootCommand builds the recruitctl command tree.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Build == nil {
		opts.Build = Wire
	}
	if opts.LoadConfig == nil {
		opts.LoadConfig = config.Load
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}

	st := &state{opts: opts}

	root := &cobra.Command{
		Use:   "recruitctl",
		Short: "Client for the recruitment platform",
		Long: `recruitctl talks to the recruitment backend on behalf of one student or
recruiter. The session token is kept in the configured token store between
invocations.

Example usage:
  recruitctl login --email ana@campus.edu --password-stdin
  recruitctl student jobs search golang
  recruitctl recruiter applications list --status PENDING
  recruitctl serve                      # local portal on PORTAL_PORT`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return st.teardown(cmd.Context())
		},
	}
	root.SetIn(opts.In)
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)

	root.PersistentFlags().BoolVar(&st.jsonOutput, "json", false, "print results as JSON")
	root.PersistentFlags().BoolVarP(&st.quiet, "quiet", "q", false, "suppress informational output")
	root.PersistentFlags().BoolVarP(&st.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVar(&st.colorMode, "color", "auto", "color output: auto, always, never")

	root.AddCommand(
		newVersionCommand(st),
		newLoginCommand(st),
		newRegisterCommand(st),
		newLogoutCommand(st),
		newWhoamiCommand(st),
		newStudentCommand(st),
		newRecruiterCommand(st),
		newServeCommand(st),
	)
	return root
}

// Execute runs recruitctl with args and returns the process exit code.
func Execute(ctx context.Context, opts Options, args []string) int {
	root := NewRootCommand(opts)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return output.ExitSuccess
	}

	p := output.NewPrinter(output.PrinterOptions{ColorMode: output.ColorAuto, Out: root.OutOrStdout(), Err: root.ErrOrStderr()})
	cliErr := asCLIError(err)
	p.FormatError(cliErr)
	return cliErr.ExitCode
}

func (st *state) setup(cmd *cobra.Command) error {
	mode, err := output.ParseColorMode(st.colorMode)
	if err != nil {
		return &output.CLIError{Summary: err.Error(), ExitCode: output.ExitUsageError}
	}
	st.printer = output.NewPrinter(output.PrinterOptions{
		ColorMode: mode,
		Quiet:     st.quiet,
		JSON:      st.jsonOutput,
		Out:       cmd.OutOrStdout(),
		Err:       cmd.ErrOrStderr(),
	})

	if cmd.Annotations[offlineAnnotation] == "true" {
		return nil
	}

	ctx := cmd.Context()
	st.cfg, err = st.opts.LoadConfig(ctx)
	if err != nil {
		return &output.CLIError{
			Summary:    "invalid configuration",
			Detail:     err.Error(),
			Suggestion: "check the RECRUIT_* and TOKEN_* variables or the .env file",
			ExitCode:   output.ExitConfigError,
			Err:        err,
		}
	}

	level := st.cfg.LogLevel
	if st.verbose {
		level = "debug"
	}
	st.log = logger.Init(logger.Options{
		Level:   level,
		Pretty:  st.cfg.LogPretty,
		Output:  cmd.ErrOrStderr(),
		Service: "recruitctl",
	})
	st.log.Debug().Str("api", st.cfg.API.BaseURL).Str("token_store", st.cfg.Token.Store).Msg("configuration loaded")

	st.app, err = st.opts.Build(ctx, st.cfg, st.log)
	if err != nil {
		return &output.CLIError{
			Summary:  "could not start the client",
			Detail:   err.Error(),
			ExitCode: output.ExitConfigError,
			Err:      err,
		}
	}

	if roles, protected := commandRoles(cmd); protected {
		if err := st.guard(ctx, roles); err != nil {
			_ = st.teardown(ctx)
			return err
		}
	}
	return nil
}

func (st *state) teardown(ctx context.Context) error {
	if st.app == nil || st.app.Close == nil {
		return nil
	}
	if err := st.app.Close(ctx); err != nil {
		st.log.Warn().Err(err).Msg("close token store")
	}
	return nil
}

// guard applies the route guard to the stored session. Refusals become
// CLIErrors pointing at the command that fixes them.
func (st *state) guard(ctx context.Context, roles []domain.Role) error {
	session := st.app.Sessions.Check(ctx)
	d := service.Guard(session, roles...)
	if d.Allow {
		metrics.GuardDecisionsTotal.WithLabelValues("allow").Inc()
		return nil
	}

	if d.Redirect == service.RouteLogin {
		metrics.GuardDecisionsTotal.WithLabelValues("login").Inc()
		summary := "not signed in"
		if session.State == domain.StateExpired {
			summary = "session expired"
		}
		return &output.CLIError{
			Summary:    summary,
			Suggestion: "recruitctl login",
			ExitCode:   output.ExitAuthError,
			Err:        domain.ErrUnauthorized,
		}
	}

	metrics.GuardDecisionsTotal.WithLabelValues("home").Inc()
	return &output.CLIError{
		Summary:    fmt.Sprintf("this command is for %s accounts", strings.ToLower(joinRoles(roles))),
		Detail:     fmt.Sprintf("signed in as %s (%s)", session.Identity.Email, session.Identity.Role),
		Suggestion: "recruitctl whoami",
		ExitCode:   output.ExitAuthError,
		Err:        domain.ErrForbidden,
	}
}

// commandRoles walks up from cmd to the nearest command declaring roles.
func commandRoles(cmd *cobra.Command) ([]domain.Role, bool) {
	for c := cmd; c != nil; c = c.Parent() {
		v, ok := c.Annotations[rolesAnnotation]
		if !ok {
			continue
		}
		var roles []domain.Role
		for _, r := range strings.Split(v, ",") {
			if r = strings.TrimSpace(r); r != "" {
				roles = append(roles, domain.Role(r))
			}
		}
		return roles, true
	}
	return nil, false
}

func guarded(roles ...domain.Role) map[string]string {
	return map[string]string{rolesAnnotation: joinRoles(roles)}
}

func joinRoles(roles []domain.Role) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, ",")
}

// asCLIError maps errors coming out of the views to a printable CLIError.
func asCLIError(err error) *output.CLIError {
	var cliErr *output.CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	e := &output.CLIError{Summary: err.Error(), ExitCode: output.ExitGeneral, Err: err}
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		e.Summary = "session expired"
		e.Detail = message(err)
		e.Suggestion = "recruitctl login"
		e.ExitCode = output.ExitAuthError
	case errors.Is(err, domain.ErrForbidden):
		e.Summary = "not allowed"
		e.Detail = message(err)
		e.ExitCode = output.ExitAuthError
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidRole):
		e.Summary = "invalid input"
		e.Detail = message(err)
		e.ExitCode = output.ExitUsageError
	case errors.Is(err, domain.ErrNotFound):
		e.Summary = "not found"
		e.Detail = message(err)
	case errors.Is(err, domain.ErrNetwork):
		e.Summary = "backend unreachable"
		e.Detail = err.Error()
		e.Suggestion = "check RECRUIT_API_URL and that the backend is running"
		e.ExitCode = output.ExitBackend
	case errors.Is(err, domain.ErrServer), errors.Is(err, domain.ErrConflict):
		e.Summary = "backend rejected the request"
		e.Detail = message(err)
		e.ExitCode = output.ExitBackend
	}
	return e
}

// serverMessage is implemented by errors that carry the backend's own message.
type serverMessage interface {
	ServerMessage() string
}

func message(err error) string {
	var sm serverMessage
	if errors.As(err, &sm) && sm.ServerMessage() != "" {
		return sm.ServerMessage()
	}
	return err.Error()
}
