package main

import (
	"fmt"

	"github.com/spf13/cobra"

	activityctrl "moviemania/internal/controller/activity"
	"moviemania/pkg/model"
)

// newActivityCmd builds the command tree shared by favorites and history;
// ctrl is resolved lazily because the app is wired in PersistentPreRunE.
func newActivityCmd(name, short string, ctrl func() *activityctrl.Controller) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
	}

	var addID uint64
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a movie to the list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := theApp.session(false)
			if err != nil {
				return err
			}
			outcome, err := ctrl().Add(cmd.Context(), s.Username, model.MovieID(addID))
			if err != nil {
				return err
			}
			if outcome == model.AlreadyPresent {
				fmt.Printf("Movie %d is already in your %s.\n", addID, name)
				return nil
			}
			fmt.Printf("Added movie %d to your %s.\n", addID, name)
			return nil
		},
	}
	add.Flags().Uint64Var(&addID, "id", 0, "movie id")
	_ = add.MarkFlagRequired("id")

	var removeID uint64
	remove := &cobra.Command{
		Use:   "remove",
		Short: "Remove a movie from the list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := theApp.session(false)
			if err != nil {
				return err
			}
			if err := ctrl().Remove(cmd.Context(), s.Username, model.MovieID(removeID)); err != nil {
				return err
			}
			fmt.Printf("Removed movie %d from your %s.\n", removeID, name)
			return nil
		},
	}
	remove.Flags().Uint64Var(&removeID, "id", 0, "movie id")
	_ = remove.MarkFlagRequired("id")

	list := &cobra.Command{
		Use:   "list",
		Short: "List the movies in the list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := theApp.session(false)
			if err != nil {
				return err
			}
			entries, err := ctrl().List(cmd.Context(), s.Username)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Printf("Your %s list is empty.\n", name)
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%d\t%s\n", e.ID, e.Title)
			}
			return nil
		},
	}

	cmd.AddCommand(add, remove, list)
	return cmd
}
