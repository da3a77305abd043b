package main

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"factcrawler/internal/api/handler/v1handler"
	"factcrawler/pkg/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSignTenantTokenRoundTrip(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pubASN1, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	sec, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{
		PublicKey: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})),
	})
	require.NoError(t, err)

	tenant := domain.TenantID(uuid.New())

	token, err := signTenantToken(key, tenant, time.Now(), time.Hour)
	require.NoError(t, err)
	ctx, err := sec.HandleBearerAuth(context.Background(), token)
	require.NoError(t, err)
	got, ok := domain.TenantFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, tenant, got)

	expired, err := signTenantToken(key, tenant, time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)
	_, err = sec.HandleBearerAuth(context.Background(), expired)
	require.Error(t, err)
}
