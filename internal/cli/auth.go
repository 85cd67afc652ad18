package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/core/service"
	"github.com/talentbridge/recruitment-client/internal/output"
)

type credentialFlags struct {
	email         string
	password      string
	passwordStdin bool
}

func (f *credentialFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.email, "email", "", "account email")
	cmd.Flags().StringVar(&f.password, "password", "", "account password")
	cmd.Flags().BoolVar(&f.passwordStdin, "password-stdin", false, "read the password from stdin")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")
}

func (f *credentialFlags) resolvePassword(in io.Reader) (string, error) {
	if !f.passwordStdin {
		return f.password, nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newLoginCommand(st *state) *cobra.Command {
	var flags credentialFlags
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := flags.resolvePassword(cmd.InOrStdin())
			if err != nil {
				return err
			}
			res := st.app.Sessions.Login(cmd.Context(), flags.email, password)
			return st.reportAuth(res, "login failed")
		},
	}
	flags.register(cmd)
	return cmd
}

func newRegisterCommand(st *state) *cobra.Command {
	var (
		flags    credentialFlags
		role     string
		fullName string
	)
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := flags.resolvePassword(cmd.InOrStdin())
			if err != nil {
				return err
			}
			res := st.app.Sessions.Register(cmd.Context(), domain.Registration{
				Email:    flags.email,
				Password: password,
				Role:     domain.Role(strings.ToUpper(strings.TrimSpace(role))),
				FullName: fullName,
			})
			return st.reportAuth(res, "registration failed")
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&role, "role", "", "account role: student or recruiter")
	cmd.Flags().StringVar(&fullName, "name", "", "full name")
	return cmd
}

// reportAuth prints the outcome of login or register.
func (st *state) reportAuth(res domain.AuthResult, failure string) error {
	if !res.Success {
		e := &output.CLIError{
			Summary:  failure,
			Detail:   res.Message,
			ExitCode: output.ExitAuthError,
		}
		if len(res.Fields) > 0 {
			e.Detail = formatFields(res.Fields)
			e.ExitCode = output.ExitUsageError
		}
		return e
	}

	if st.printer.JSONMode() {
		return st.printer.JSON(res)
	}
	id := st.app.Sessions.CurrentIdentity()
	if id != nil {
		st.printer.Success("signed in as %s (%s)", id.Email, id.Role)
	}
	st.printer.Info("next: %s", commandFor(res.Redirect))
	return nil
}

func newLogoutCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st.app.Sessions.Logout(cmd.Context())
			st.printer.Success("signed out")
			return nil
		},
	}
}

func newWhoamiCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session and the views it can open",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := st.app.Sessions.Check(cmd.Context())
			nav := service.NavigationItems(session)

			if st.printer.JSONMode() {
				return st.printer.JSON(struct {
					Session    domain.Session    `json:"session"`
					Navigation []service.NavItem `json:"navigation"`
				}{session, nav})
			}

			if !session.IsAuthenticated {
				if session.State == domain.StateExpired {
					st.printer.Warning("session expired")
				}
				st.printer.Info("not signed in")
				return nil
			}

			st.printer.Header("Session")
			st.printer.Field("Email", session.Identity.Email)
			st.printer.Field("Role", string(session.Identity.Role))
			st.printer.Field("User ID", fmt.Sprint(session.Identity.ID))

			st.printer.Header("Views")
			for _, item := range nav {
				st.printer.Print("  %-20s %s", item.Label, commandFor(item.Path))
			}
			return nil
		},
	}
}

// commandFor names the command that opens the view at path.
func commandFor(path string) string {
	switch path {
	case "", service.RouteHome:
		return "recruitctl whoami"
	case service.RouteRecruiterJobCreate:
		return "recruitctl recruiter jobs create"
	}
	return "recruitctl " + strings.ReplaceAll(strings.Trim(path, "/"), "/", " ")
}

func formatFields(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fields[k]
	}
	return strings.Join(parts, "; ")
}
