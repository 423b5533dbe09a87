package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func initHashPasswordCmd() *cobra.Command {
	in := &HashPasswordInput{}

	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Print the bcrypt hash to use as ui.passwordHash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := hashPassword(in)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Password, "password", "", "")
	cmd.Flags().IntVar(&in.Cost, "cost", bcrypt.DefaultCost, "bcrypt cost")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func hashPassword(in *HashPasswordInput) (string, error) {
	if in.Password == "" {
		return "", errors.New("empty password")
	}

	b, err := bcrypt.GenerateFromPassword([]byte(in.Password), in.Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(b), nil
}
