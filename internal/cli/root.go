// Package cli is the terminal shell around the page controllers: one cobra
// command per page, a navigator that dispatches guard redirects back into
// pages, and a stdin-backed confirmer for destructive actions.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/craftlink/craftlink/internal/core/page"
)

// App owns the wired page dependencies and builds the command tree.
type App struct {
	deps    page.Deps
	version string
}

// New wires the navigator (and, unless one was injected, a terminal
// confirmer) into the dependency set and returns the app.
func New(deps page.Deps, version string) *App {
	a := &App{deps: deps, version: version}
	a.deps.Nav = &navigator{app: a}
	if a.deps.Confirm == nil {
		a.deps.Confirm = newTerminalConfirmer(os.Stdin, a.deps.Out)
	}
	return a
}

// Root builds the craftlink command tree.
func (a *App) Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "craftlink",
		Short:         "CraftLink artisan marketplace client",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return page.NewHome(a.deps).Run(cmd.Context())
		},
	}

	root.AddCommand(
		a.loginCmd(),
		a.registerCmd(),
		a.verifyEmailCmd(),
		a.forgotPasswordCmd(),
		a.resetPasswordCmd(),
		a.browseCmd(),
		a.profileCmd(),
		a.dashboardCmd(),
		a.accountCmd(),
		a.subscriptionCmd(),
		a.reviewsCmd(),
		a.contactsCmd(),
		a.adminCmd(),
		a.logoutCmd(),
		a.versionCmd(),
	)
	return root
}

func (a *App) loginCmd() *cobra.Command {
	var form page.LoginForm
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to your account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return page.NewLogin(a.deps).Run(cmd.Context(), form)
		},
	}
	cmd.Flags().StringVar(&form.Email, "email", "", "account email")
	cmd.Flags().StringVar(&form.Password, "password", "", "account password")
	return cmd
}

func (a *App) registerCmd() *cobra.Command {
	var form page.RegisterForm
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a client or artisan account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return page.NewRegister(a.deps).Run(cmd.Context(), form)
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "full name")
	cmd.Flags().StringVar(&form.Email, "email", "", "account email")
	cmd.Flags().StringVar(&form.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&form.Role, "role", "client", "account role (client or artisan)")
	cmd.Flags().StringVar(&form.Password, "password", "", "password (minimum 6 characters)")
	cmd.Flags().StringVar(&form.ConfirmPassword, "confirm-password", "", "repeat the password")
	cmd.Flags().StringVar(&form.CraftType, "craft-type", "", "craft type (artisans)")
	cmd.Flags().IntVar(&form.Experience, "experience", 0, "years of experience (artisans)")
	cmd.Flags().StringVar(&form.Location, "location", "", "location (artisans)")
	cmd.Flags().StringVar(&form.Bio, "bio", "", "short bio (artisans)")
	cmd.Flags().StringVar(&form.Skills, "skills", "", "comma-separated skills (artisans)")
	return cmd
}

func (a *App) verifyEmailCmd() *cobra.Command {
	var form page.VerifyEmailForm
	cmd := &cobra.Command{
		Use:   "verify-email",
		Short: "Confirm your email with the 6-digit code",
		RunE: func(cmd *cobra.Command, args []string) error {
			return page.NewVerifyEmail(a.deps).Run(cmd.Context(), form)
		},
	}
	cmd.Flags().StringVar(&form.Email, "email", "", "account email")
	cmd.Flags().StringVar(&form.Code, "code", "", "6-digit verification code")
	cmd.Flags().BoolVar(&form.Resend, "resend", false, "send a new code instead of verifying")
	return cmd
}

func (a *App) forgotPasswordCmd() *cobra.Command {
	var form page.ForgotPasswordForm
	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Request a password reset link",
		RunE: func(cmd *cobra.Command, args []string) error {
			return page.NewForgotPassword(a.deps).Run(cmd.Context(), form)
		},
	}
	cmd.Flags().StringVar(&form.Email, "email", "", "account email")
	return cmd
}

func (a *App) resetPasswordCmd() *cobra.Command {
	var form page.ResetPasswordForm
	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password using a reset token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return page.NewResetPassword(a.deps).Run(cmd.Context(), form)
		},
	}
	cmd.Flags().StringVar(&form.Token, "token", "", "reset token from the email link")
	cmd.Flags().StringVar(&form.NewPassword, "password", "", "new password (minimum 6 characters)")
	cmd.Flags().StringVar(&form.ConfirmPassword, "confirm-password", "", "repeat the new password")
	return cmd
}

func (a *App) browseCmd() *cobra.Command {
	var form page.BrowseForm
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse and search verified artisans",
		RunE: func(cmd *cobra.Command, args []string) error {
			return page.NewBrowse(a.deps).Run(cmd.Context(), form)
		},
	}
	cmd.Flags().StringVar(&form.CraftType, "craft-type", "", "filter by craft type")
	cmd.Flags().StringVar(&form.Location, "location", "", "filter by location")
	return cmd
}

func (a *App) profileCmd() *cobra.Command {
	var form page.PublicProfileForm
	var unlock bool
	cmd := &cobra.Command{
		Use:   "profile <artisan-id>",
		Short: "View an artisan's public profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form.ArtisanID = args[0]
			switch {
			case unlock:
				form.Action = page.ProfileUnlock
			case form.Rating > 0 || form.Comment != "":
				form.Action = page.ProfileReview
			default:
				form.Action = page.ProfileView
			}
			return page.NewPublicProfile(a.deps).Run(cmd.Context(), form)
		},
	}
	cmd.Flags().BoolVar(&unlock, "unlock", false, "unlock the artisan's contact details")
	cmd.Flags().IntVar(&form.Rating, "rating", 0, "leave a review with this rating (1-5)")
	cmd.Flags().StringVar(&form.Comment, "comment", "", "review comment")
	return cmd
}

func (a *App) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show your account dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return page.NewDashboard(a.deps).Run(cmd.Context())
		},
	}
}

func (a *App) accountCmd() *cobra.Command {
	var form page.AccountForm
	var update, deletePicture bool
	cmd := &cobra.Command{
		Use:   "account",
		Short: "View or edit your profile and picture",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case update:
				form.Action = page.AccountUpdate
			case form.PicturePath != "":
				form.Action = page.AccountUploadPicture
			case deletePicture:
				form.Action = page.AccountDeletePicture
			default:
				form.Action = page.AccountView
			}
			return page.NewAccount(a.deps).Run(cmd.Context(), form)
		},
	}
	cmd.Flags().BoolVar(&update, "update", false, "save the craft profile fields")
	cmd.Flags().StringVar(&form.CraftType, "craft-type", "", "craft type")
	cmd.Flags().StringVar(&form.Location, "location", "", "location")
	cmd.Flags().IntVar(&form.Experience, "experience", 0, "years of experience")
	cmd.Flags().StringVar(&form.Bio, "bio", "", "short bio")
	cmd.Flags().StringVar(&form.Skills, "skills", "", "comma-separated skills")
	cmd.Flags().StringVar(&form.PicturePath, "upload-picture", "", "upload this image as your profile picture")
	cmd.Flags().BoolVar(&deletePicture, "delete-picture", false, "remove your profile picture")
	return cmd
}

func (a *App) subscriptionCmd() *cobra.Command {
	var form page.SubscriptionForm
	var cancel bool
	cmd := &cobra.Command{
		Use:   "subscription",
		Short: "View plans, subscribe or cancel",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case cancel:
				form.Action = page.SubscriptionCancel
			case form.PlanID != "":
				form.Action = page.SubscriptionSubscribe
			default:
				form.Action = page.SubscriptionView
			}
			return page.NewSubscription(a.deps).Run(cmd.Context(), form)
		},
	}
	cmd.Flags().StringVar(&form.PlanID, "plan", "", "plan id to subscribe to")
	cmd.Flags().StringVar(&form.CardNumber, "card", "", "card number")
	cmd.Flags().StringVar(&form.Expiry, "expiry", "", "card expiry (MM/YY)")
	cmd.Flags().StringVar(&form.CVC, "cvc", "", "card security code")
	cmd.Flags().BoolVar(&cancel, "cancel", false, "cancel the current subscription")
	return cmd
}

func (a *App) reviewsCmd() *cobra.Command {
	var form page.ReviewsForm
	var edit, remove string
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "List, edit or delete your reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case edit != "":
				form.Action = page.ReviewsEdit
				form.ReviewID = edit
			case remove != "":
				form.Action = page.ReviewsDelete
				form.ReviewID = remove
			default:
				form.Action = page.ReviewsList
			}
			return page.NewReviews(a.deps).Run(cmd.Context(), form)
		},
	}
	cmd.Flags().StringVar(&edit, "edit", "", "review id to edit")
	cmd.Flags().IntVar(&form.Rating, "rating", 0, "new rating (1-5)")
	cmd.Flags().StringVar(&form.Comment, "comment", "", "new comment")
	cmd.Flags().StringVar(&remove, "delete", "", "review id to delete")
	return cmd
}

func (a *App) contactsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contacts",
		Short: "List the artisan contacts you have unlocked",
		RunE: func(cmd *cobra.Command, args []string) error {
			return page.NewContacts(a.deps).Run(cmd.Context())
		},
	}
}

func (a *App) adminCmd() *cobra.Command {
	var form page.AdminForm
	var verify, unverify, deleteUser string
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Artisan verification queue and user management",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case verify != "":
				form.Action = page.AdminVerify
				form.UserID = verify
			case unverify != "":
				form.Action = page.AdminUnverify
				form.UserID = unverify
			case deleteUser != "":
				form.Action = page.AdminDeleteUser
				form.UserID = deleteUser
			default:
				form.Action = page.AdminOverview
			}
			return page.NewAdmin(a.deps).Run(cmd.Context(), form)
		},
	}
	cmd.Flags().StringVar(&verify, "verify", "", "user id of the artisan to verify")
	cmd.Flags().StringVar(&unverify, "unverify", "", "user id of the artisan to unverify")
	cmd.Flags().StringVar(&deleteUser, "delete-user", "", "user id of the account to delete")
	return cmd
}

func (a *App) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.deps.Session.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(a.deps.Out, "Signed out.")
			return nil
		},
	}
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.deps.Out, "craftlink", a.version)
		},
	}
}
