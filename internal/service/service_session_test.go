package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-items-client/internal/adapter"
	"github.com/MKhiriev/go-items-client/internal/logger"
	"github.com/MKhiriev/go-items-client/internal/mock"
	"github.com/MKhiriev/go-items-client/internal/store"
	"github.com/MKhiriev/go-items-client/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller) (*sessionService, *mock.MockServerAdapter, *mock.MockTokenStore) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockTokens := mock.NewMockTokenStore(ctrl)

	api := NewAPIService(mockAdapter, logger.Nop())
	svc := NewSessionService(api, mockTokens, logger.Nop()).(*sessionService)
	return svc, mockAdapter, mockTokens
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("any-key"))
	require.NoError(t, err)
	return s
}

// ── SignIn ───────────────────────────────────────────────────────────────────

func TestSessionService_SignIn_PersistsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockTokens := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	creds := models.Credentials{Username: "alice", Password: "secret"}
	want := models.Token{AccessToken: "tok123", TokenType: "bearer"}

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, creds).Return(want, nil),
		mockTokens.EXPECT().SetToken(ctx, "tok123").Return(nil),
	)

	got, err := svc.SignIn(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSessionService_SignIn_LoginFailureLeavesStoreUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	loginErr := &adapter.HTTPError{StatusCode: 401}
	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.Token{}, loginErr)

	_, err := svc.SignIn(ctx, models.Credentials{Username: "alice", Password: "wrong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestSessionService_SignIn_EmptyAccessToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.Token{TokenType: "bearer"}, nil)

	_, err := svc.SignIn(ctx, models.Credentials{Username: "alice"})
	assert.ErrorIs(t, err, ErrEmptyAccessToken)
}

func TestSessionService_SignIn_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockTokens := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	storeErr := errors.New("disk full")
	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.Token{AccessToken: "t"}, nil)
	mockTokens.EXPECT().SetToken(ctx, "t").Return(storeErr)

	_, err := svc.SignIn(ctx, models.Credentials{Username: "alice"})
	assert.ErrorIs(t, err, ErrPersistToken)
	assert.ErrorIs(t, err, storeErr)
}

// ── SignOut ──────────────────────────────────────────────────────────────────

func TestSessionService_SignOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockTokens := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockTokens.EXPECT().ClearToken(ctx).Return(nil)
	require.NoError(t, svc.SignOut(ctx))

	mockTokens.EXPECT().ClearToken(ctx).Return(store.ErrStoreClosed)
	err := svc.SignOut(ctx)
	assert.ErrorIs(t, err, ErrClearToken)
	assert.ErrorIs(t, err, store.ErrStoreClosed)
}

// ── Authenticated ────────────────────────────────────────────────────────────

func TestSessionService_Authenticated(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		token    string
		tokenErr error
		want     bool
		wantErr  error
	}{
		{name: "no token", token: "", want: false},
		{name: "opaque token", token: "tok123", want: true},
		{name: "valid jwt", token: signedToken(t, now.Add(time.Hour)), want: true},
		{name: "expired jwt", token: signedToken(t, now.Add(-time.Minute)), want: false},
		{name: "store failure", tokenErr: store.ErrStoreClosed, want: false, wantErr: ErrReadToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, mockTokens := newTestSessionSvc(t, ctrl)
			svc.now = func() time.Time { return now }
			ctx := context.Background()

			mockTokens.EXPECT().Token(ctx).Return(tt.token, tt.tokenErr)

			got, err := svc.Authenticated(ctx)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSessionService_WithMemoryStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	tokens := store.NewMemoryTokenStore()
	ctx := context.Background()

	services := NewClientServices(mockAdapter, tokens, logger.Nop())

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.Token{AccessToken: "tok123", TokenType: "bearer"}, nil)

	_, err := services.SessionService.SignIn(ctx, models.Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	stored, err := tokens.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", stored)

	ok, err := services.SessionService.Authenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, services.SessionService.SignOut(ctx))
	ok, err = services.SessionService.Authenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
