package v1handler

import (
	"context"
	"errors"
	"factcrawler/internal/config"
	"factcrawler/pkg/domain"
	"factcrawler/pkg/serrors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SecHandlerOptions configures bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key tokens are signed for.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler verifies RS256 bearer tokens. The token subject is the tenant ID.
type SecHandler struct {
	parser *jwt.Parser
	key    any
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.PublicKey == "" {
		return nil, errors.New("jwt public key is required")
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse jwt public key: %w", err)
	}

	return &SecHandler{
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
		key: key,
	}, nil
}

// HandleBearerAuth validates token and returns ctx carrying its tenant.
// Every failure is ErrUnauthorized.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	tenant, err := domain.ParseTenantID(claims.Subject)
	if err != nil || tenant.IsZero() {
		return ctx, serrors.With(serrors.ErrUnauthorized, "invalid token subject")
	}

	return domain.WithTenant(ctx, tenant), nil
}

// Middleware rejects requests without a valid bearer token and passes the
// tenant on in the request context.
func (s *SecHandler) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			abortWithError(c, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			abortWithError(c, err)

			return
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func tenantOf(ctx context.Context) (domain.TenantID, error) {
	tenant, ok := domain.TenantFromContext(ctx)
	if !ok {
		return domain.TenantID{}, serrors.KindOnly(serrors.ErrUnauthorized)
	}

	return tenant, nil
}
