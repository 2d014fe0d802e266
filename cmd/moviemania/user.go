package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRegisterCmd() *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new user account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := theApp.users.Register(cmd.Context(), username, password); err != nil {
				return err
			}
			fmt.Printf("Account %q created, you can now log in.\n", username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLoginCmd() *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print a session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := theApp.users.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s (%s).\n", s.Username, s.Role)
			fmt.Printf("Pass this token to further commands via --token:\n%s\n", s.Token)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
