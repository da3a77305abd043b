package main

import (
	"context"
	"crypto/rsa"
	"factcrawler/internal/config"
	"factcrawler/pkg/domain"
	"factcrawler/pkg/logger"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// signTenantToken returns an RS256 token whose subject is tenant. now is the
// issue time and ttl the validity from it.
func signTenantToken(key *rsa.PrivateKey, tenant domain.TenantID, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   tenant.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, nil
}

// JWTCommand constructs the 'jwt' subcommand that mints a bearer token for a
// tenant with the configured private key. Without --tenant a new tenant ID is
// generated and printed to stderr.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for a tenant",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			raw, _ := cmd.Flags().GetString("tenant")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			tenant := domain.TenantID(uuid.New())
			if raw != "" {
				var err error
				if tenant, err = domain.ParseTenantID(raw); err != nil {
					logger.Fatal(ctx, "invalid tenant", zap.Error(err))
				}
			} else {
				cmd.PrintErrln("tenant:", tenant.String())
			}

			key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.JWT.PrivateKey))
			if err != nil {
				logger.Fatal(ctx, "could not parse RSA private key", zap.Error(err))
			}

			signed, err := signTenantToken(key, tenant, time.Now(), ttl)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("tenant", "", "Tenant ID used as JWT subject, empty generates one")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")

	return cmd
}
