package main

import (
	"context"
	"fmt"
	"landregistry/internal/auth"
	"landregistry/internal/config"
	"landregistry/pkg/domain"
	"landregistry/pkg/logger"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that issues an access token for
// a given user ID and role using the configured private key.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates an access token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("subject")
			role, _ := cmd.Flags().GetString("role")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			id, err := uuid.Parse(subject)
			if err != nil {
				logger.Fatal(ctx, "subject is not a valid user id", zap.Error(err))
			}
			r := domain.Role(strings.ToUpper(role))
			if !r.Valid() {
				logger.Fatal(ctx, "unknown role", zap.String("role", role))
			}

			opts := auth.NewTokenOptions(cfg)
			opts.TTL = ttl
			tokens, err := auth.NewTokens(opts)
			if err != nil {
				logger.Fatal(ctx, "could not load jwt keys", zap.Error(err))
			}

			signed, _, err := tokens.Issue(domain.UserID(id), r, false, time.Now())
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (user ID)")
	cmd.Flags().String("role", string(domain.RoleCitizen), "Role claim (CITIZEN, LAND_OFFICER, ADMIN)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
