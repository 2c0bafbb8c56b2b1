package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"campuseats/internal/api"
)

var errNotLoggedIn = errors.New("not logged in, run `eats login` first")

var favoriteCmd = &cobra.Command{
	Use:   "favorite <restaurant-id>",
	Short: "Set or clear the favorite restaurant",
	Long: `Set the given restaurant as your favorite. Passing the id that is
already the favorite clears it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		user := a.sessions.User()
		if user == nil {
			return errNotLoggedIn
		}

		id := args[0]
		if err := a.dir.Refresh(cmd.Context()); err != nil {
			return err
		}
		if _, ok := a.dir.Get(id); !ok && user.FavouriteRestaurant != id {
			return fmt.Errorf("unknown restaurant id %q", id)
		}

		next := id
		if user.FavouriteRestaurant == id {
			next = ""
		}
		resp, err := a.client.UpdateProfile(cmd.Context(), api.ProfileUpdate{FavouriteRestaurant: &next})
		if err != nil {
			return err
		}
		if err := a.sessions.UpdateUser(resp.Data); err != nil {
			return err
		}

		if next == "" {
			fmt.Println("Favorite cleared")
		} else if r, ok := a.dir.Get(next); ok {
			fmt.Printf("Favorite set to %s\n", r.Name)
		} else {
			fmt.Printf("Favorite set to %s\n", next)
		}
		return nil
	},
}

var avatarCmd = &cobra.Command{
	Use:   "avatar <image-file>",
	Short: "Upload a profile avatar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if !a.sessions.Authenticated() {
			return errNotLoggedIn
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open avatar file: %w", err)
		}
		defer f.Close()

		resp, err := a.client.UploadAvatar(cmd.Context(), filepath.Base(args[0]), f)
		if err != nil {
			return err
		}
		if err := a.sessions.UpdateUser(resp.Data); err != nil {
			return err
		}
		fmt.Println("Avatar updated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(favoriteCmd, avatarCmd)
}
