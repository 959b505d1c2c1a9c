package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/billsplit/pkg/api"
)

func TestAuthService(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	reg, err := c.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
		Email:       "Alice@Example.com",
		DisplayName: "Alice",
		Password:    "correct horse",
	}))
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", reg.Msg.User.Email)
	assert.NotEmpty(t, reg.Msg.Token)

	_, err = c.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
		Email:       "alice@example.com",
		DisplayName: "Alice again",
		Password:    "correct horse",
	}))
	requireCode(t, connect.CodeAlreadyExists, err)

	login, err := c.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	}))
	require.NoError(t, err)
	assert.Equal(t, reg.Msg.User.ID, login.Msg.User.ID)

	_, err = c.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong password",
	}))
	requireCode(t, connect.CodeUnauthenticated, err)

	req := connect.NewRequest(&api.GetCurrentUserRequest{})
	req.Header().Set("Authorization", "Bearer "+login.Msg.Token)
	me, err := c.auth.GetCurrentUser(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Alice", me.Msg.User.DisplayName)
	assert.Equal(t, reg.Msg.User.ID, me.Msg.User.ID)

	_, err = c.auth.GetCurrentUser(ctx, connect.NewRequest(&api.GetCurrentUserRequest{}))
	requireCode(t, connect.CodeUnauthenticated, err)

	bad := connect.NewRequest(&api.GetCurrentUserRequest{})
	bad.Header().Set("Authorization", "Bearer not-a-token")
	_, err = c.auth.GetCurrentUser(ctx, bad)
	requireCode(t, connect.CodeUnauthenticated, err)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	c := setupTestServer(t)

	tests := []struct {
		name string
		req  *api.RegisterRequest
		code connect.Code
	}{
		{name: "missing email", req: &api.RegisterRequest{DisplayName: "A", Password: "longenough"}, code: connect.CodeInvalidArgument},
		{name: "bad email", req: &api.RegisterRequest{Email: "nope", DisplayName: "A", Password: "longenough"}, code: connect.CodeInvalidArgument},
		{name: "missing name", req: &api.RegisterRequest{Email: "a@example.com", Password: "longenough"}, code: connect.CodeInvalidArgument},
		{name: "weak password", req: &api.RegisterRequest{Email: "a@example.com", DisplayName: "A", Password: "short"}, code: connect.CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.auth.Register(context.Background(), connect.NewRequest(tt.req))
			requireCode(t, tt.code, err)
		})
	}
}
