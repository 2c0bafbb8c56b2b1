package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"campuseats/internal/validate"
)

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in and persist the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		password, err := promptSecret("Password: ")
		if err != nil {
			return err
		}

		creds := validate.Credentials{Username: args[0], Password: password}
		if err := validate.Struct(creds); err != nil {
			return err
		}

		resp, err := a.client.Login(cmd.Context(), creds.Username, creds.Password)
		if err != nil {
			return err
		}
		if err := a.sessions.Persist(resp.Data, resp.Token); err != nil {
			return fmt.Errorf("failed to persist session: %w", err)
		}
		fmt.Printf("Logged in as %s\n", resp.Data.Username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if !a.sessions.Authenticated() {
			fmt.Println("Not logged in")
			return nil
		}
		if err := a.sessions.Clear(); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register <username> <email>",
	Short: "Create an account and log in",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		password, err := promptSecret("Password: ")
		if err != nil {
			return err
		}

		reg := validate.Registration{Username: args[0], Email: args[1], Password: password}
		if err := validate.Struct(reg); err != nil {
			return err
		}

		ctx := cmd.Context()
		if _, err := a.client.Register(ctx, reg.Username, reg.Email, reg.Password); err != nil {
			return err
		}

		// A fresh account has no token yet; log in right away.
		resp, err := a.client.Login(ctx, reg.Username, reg.Password)
		if err != nil {
			return err
		}
		if err := a.sessions.Persist(resp.Data, resp.Token); err != nil {
			return fmt.Errorf("failed to persist session: %w", err)
		}
		fmt.Printf("Registered and logged in as %s\n", resp.Data.Username)
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		user := a.sessions.User()
		if user == nil {
			fmt.Println("Not logged in")
			return nil
		}
		fmt.Printf("%s <%s>\n", user.Username, user.Email)
		if user.FavouriteRestaurant != "" {
			fmt.Printf("Favorite restaurant: %s\n", user.FavouriteRestaurant)
		}
		return nil
	},
}

// promptSecret reads a secret from stdin, without echo when stdin is a
// terminal. Piped input falls back to a plain line read so the subcommands
// stay scriptable.
func promptSecret(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, registerCmd, whoamiCmd)
}
