package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/KirkDiggler/hydroquest/internal/app"
	"github.com/KirkDiggler/hydroquest/internal/services/auth"
	"github.com/spf13/cobra"
)

// PasswordEnv supplies the password when --password is not given
const PasswordEnv = "HYDRO_PASSWORD"

// CredentialsOptions holds flags for signup and login
type CredentialsOptions struct {
	Email    string
	Password string
}

func (o *CredentialsOptions) input() *auth.CredentialsInput {
	password := o.Password
	if password == "" {
		password = os.Getenv(PasswordEnv)
	}
	return &auth.CredentialsInput{Email: o.Email, Password: password}
}

func credentialsFlags(cmd *cobra.Command, opts *CredentialsOptions) {
	cmd.Flags().StringVarP(&opts.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "account password (or "+PasswordEnv+")")
	_ = cmd.MarkFlagRequired("email")
}

func accountView(result *auth.AuthOutput) *AccountView {
	return &AccountView{
		SignedIn:  true,
		AccountID: result.Session.AccountID,
		Email:     result.Session.Email,
		ExpiresAt: result.ExpiresAt,
	}
}

func newSignUpCommand(rootOpts *RootOptions, factory AppFactory) *cobra.Command {
	opts := &CredentialsOptions{}

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a cloud account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, rootOpts, factory, func(ctx context.Context, a *app.App, out *OutputFormatter) error {
				if err := a.ConnectRemote(ctx); err != nil {
					return err
				}

				result, err := a.Auth.SignUp(ctx, opts.input())
				if err != nil {
					return err
				}

				view := accountView(result)
				return out.Success(view, func(w io.Writer) error {
					if _, err := io.WriteString(w, "Account Created!\n"); err != nil {
						return err
					}
					return renderAccount(w, view)
				})
			})
		},
	}
	credentialsFlags(cmd, opts)

	return cmd
}

func newLoginCommand(rootOpts *RootOptions, factory AppFactory) *cobra.Command {
	opts := &CredentialsOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to a cloud account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, rootOpts, factory, func(ctx context.Context, a *app.App, out *OutputFormatter) error {
				if err := a.ConnectRemote(ctx); err != nil {
					return err
				}

				result, err := a.Auth.Login(ctx, opts.input())
				if err != nil {
					return err
				}

				view := accountView(result)
				return out.Success(view, func(w io.Writer) error {
					if _, err := io.WriteString(w, "Login Successful!\n"); err != nil {
						return err
					}
					return renderAccount(w, view)
				})
			})
		},
	}
	credentialsFlags(cmd, opts)

	return cmd
}

func newLogoutCommand(rootOpts *RootOptions, factory AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out of the cloud account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, rootOpts, factory, func(ctx context.Context, a *app.App, out *OutputFormatter) error {
				if err := a.Auth.Logout(ctx); err != nil {
					return err
				}

				view := &AccountView{}
				return out.Success(view, func(w io.Writer) error { return renderAccount(w, view) })
			})
		},
	}
}

func newWhoAmICommand(rootOpts *RootOptions, factory AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, rootOpts, factory, func(ctx context.Context, a *app.App, out *OutputFormatter) error {
				view := &AccountView{}

				result, err := a.Auth.Current(ctx)
				switch {
				case err == nil:
					view = accountView(result)
				case errors.Is(err, auth.ErrNotSignedIn):
				default:
					return err
				}

				return out.Success(view, func(w io.Writer) error { return renderAccount(w, view) })
			})
		},
	}
}
