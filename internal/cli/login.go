package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/me/glamgiant/internal/guard"
	"github.com/me/glamgiant/internal/identity"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the GlamGiant API",
		Long:  "Exchange email and password for a token and save the session for later commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())
			if email == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Email: ")
				line, err := reader.ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read email: %w", err)
				}
				email = strings.TrimSpace(line)
			}
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				line, err := reader.ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}
			if email == "" || password == "" {
				return fmt.Errorf("email and password are required")
			}

			id, err := session.Login(cmd.Context(), email, password)
			if err != nil {
				var authErr *identity.AuthenticationError
				if errors.As(err, &authErr) {
					return fmt.Errorf("login failed: invalid email or password")
				}
				return err
			}
			success(cmd, "Logged in as %s (%s)", id.DisplayName(), id.Role)
			fmt.Fprintf(cmd.OutOrStdout(), "Dashboard: %s\n", guard.DashboardPath(id.Role))
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email (prompted if omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted if omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := session.Logout(cmd.Context()); err != nil {
				return err
			}
			success(cmd, "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity and the views it may open",
		RunE: func(cmd *cobra.Command, args []string) error {
			id := session.Current()
			if id == nil {
				return ErrNotLoggedIn
			}
			if refresh {
				var err error
				if id, err = session.Refresh(cmd.Context(), authed()); err != nil {
					return fmt.Errorf("refresh identity: %w", err)
				}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:        %s\n", id.ID)
			fmt.Fprintf(out, "Name:      %s\n", id.DisplayName())
			fmt.Fprintf(out, "Email:     %s\n", id.Email)
			fmt.Fprintf(out, "Role:      %s\n", id.Role)
			fmt.Fprintf(out, "Dashboard: %s\n", guard.DashboardPath(id.Role))
			fmt.Fprintln(out, "Views:")
			for _, link := range guard.NavLinks(id) {
				fmt.Fprintf(out, "  %-22s %s\n", link.Path, link.Title)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Re-fetch the user record from the API first")
	return cmd
}

func newRegisterCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a client account",
		RunE: func(cmd *cobra.Command, args []string) error {
			form := registration{Name: name, Email: email, Password: password}
			if err := validate.Struct(form); err != nil {
				return fmt.Errorf("invalid registration: %w", err)
			}
			u, err := api.Register(cmd.Context(), form.request())
			if err != nil {
				return fmt.Errorf("register: %w", err)
			}
			success(cmd, "Account %s created, run 'glamctl login --email %s'", u.Email, u.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Your name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Password (at least 6 characters)")
	return cmd
}
