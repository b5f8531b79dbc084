package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbancabz/console/internal/pkg/apperror"
	"github.com/urbancabz/console/internal/pkg/cache"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
	"github.com/urbancabz/console/internal/pkg/database"
	jwtpkg "github.com/urbancabz/console/internal/pkg/jwt"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/identity"
	"github.com/urbancabz/console/services/identity/mocks"
	"github.com/urbancabz/console/services/identity/repository"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

var testNow = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func signed(t *testing.T, name string, exp time.Time) string {
	t.Helper()
	claims := jwtpkg.Claims{Name: name}
	if !exp.IsZero() {
		claims.RegisteredClaims.ExpiresAt = jwt.NewNumericDate(exp)
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("api-side-secret"))
	require.NoError(t, err)
	return token
}

func newSessionUC(clock *fakeClock, identities *cache.TTLCache[*models.Identity]) (identity.SessionUC, identity.TokenRepo) {
	repo := repository.NewMemoryTokenRepository(clock)
	return NewSessionUC(models.JWTConfig{Leeway: 30 * time.Second}, repo, identities, clock), repo
}

// login stores a token and returns a context carrying the resulting session
func login(t *testing.T, ctx context.Context, uc identity.SessionUC, userType models.UserType, token string) context.Context {
	t.Helper()
	session, err := uc.Login(ctx, models.SessionRequest{UserType: userType, Token: token})
	require.NoError(t, err)
	require.NotEmpty(t, session.ID)
	return appcontext.WithSessionID(ctx, session.ID)
}

func TestSessionUC_LoginThenToken(t *testing.T) {
	clock := &fakeClock{now: testNow}
	uc, _ := newSessionUC(clock, nil)

	token := signed(t, "Priya", testNow.Add(time.Hour))
	session, err := uc.Login(context.Background(), models.SessionRequest{UserType: models.UserTypeAdmin, Token: " " + token + " "})
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeAdmin, session.UserType)
	require.NotNil(t, session.ExpiresAt)
	assert.True(t, session.ExpiresAt.Equal(testNow.Add(time.Hour)))
	assert.Empty(t, session.Token)
	require.NotEmpty(t, session.ID)

	ctx := appcontext.WithSessionID(context.Background(), session.ID)
	got, err := uc.Token(ctx, models.UserTypeAdmin)
	require.NoError(t, err)
	assert.Equal(t, token, got)

	current, err := uc.CurrentUserType(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeAdmin, current)

	_, err = uc.Token(ctx, models.UserTypeBusiness)
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}

func TestSessionUC_CallerWithoutSessionIsLoggedOut(t *testing.T) {
	clock := &fakeClock{now: testNow}
	uc, _ := newSessionUC(clock, nil)

	login(t, context.Background(), uc, models.UserTypeAdmin, signed(t, "Priya", testNow.Add(time.Hour)))

	_, err := uc.Token(context.Background(), models.UserTypeAdmin)
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
	_, err = uc.CurrentUserType(context.Background())
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
	_, err = uc.Session(context.Background())
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)

	stranger := appcontext.WithSessionID(context.Background(), "not-issued-here")
	_, err = uc.Token(stranger, models.UserTypeAdmin)
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}

func TestSessionUC_SessionsAreIsolated(t *testing.T) {
	clock := &fakeClock{now: testNow}
	uc, _ := newSessionUC(clock, nil)

	adminToken := signed(t, "Priya", testNow.Add(time.Hour))
	customerToken := signed(t, "Ravi", testNow.Add(time.Hour))
	adminCtx := login(t, context.Background(), uc, models.UserTypeAdmin, adminToken)
	customerCtx := login(t, context.Background(), uc, models.UserTypeCustomer, customerToken)
	assert.NotEqual(t, appcontext.GetSessionID(adminCtx), appcontext.GetSessionID(customerCtx))

	current, err := uc.CurrentUserType(adminCtx)
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeAdmin, current)

	_, err = uc.Token(customerCtx, models.UserTypeAdmin)
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
	got, err := uc.Token(customerCtx, models.UserTypeCustomer)
	require.NoError(t, err)
	assert.Equal(t, customerToken, got)
}

func TestSessionUC_LoginReusesLiveSession(t *testing.T) {
	clock := &fakeClock{now: testNow}
	uc, _ := newSessionUC(clock, nil)

	ctx := login(t, context.Background(), uc, models.UserTypeAdmin, signed(t, "Priya", testNow.Add(time.Hour)))
	session, err := uc.Login(ctx, models.SessionRequest{UserType: models.UserTypeBusiness, Token: signed(t, "Acme Travel Desk", testNow.Add(time.Hour))})
	require.NoError(t, err)
	assert.Equal(t, appcontext.GetSessionID(ctx), session.ID)

	_, err = uc.Token(ctx, models.UserTypeAdmin)
	assert.NoError(t, err)

	forged := appcontext.WithSessionID(context.Background(), "chosen-by-client")
	session, err = uc.Login(forged, models.SessionRequest{UserType: models.UserTypeAdmin, Token: signed(t, "Priya", testNow.Add(time.Hour))})
	require.NoError(t, err)
	assert.NotEqual(t, "chosen-by-client", session.ID)
}

func TestSessionUC_LoginValidation(t *testing.T) {
	clock := &fakeClock{now: testNow}
	uc, _ := newSessionUC(clock, nil)

	tests := []struct {
		name  string
		req   models.SessionRequest
		field string
	}{
		{name: "unknown user type", req: models.SessionRequest{UserType: "driver", Token: signed(t, "x", testNow.Add(time.Hour))}, field: "user_type"},
		{name: "blank token", req: models.SessionRequest{UserType: models.UserTypeAdmin, Token: "  "}, field: "token"},
		{name: "malformed token", req: models.SessionRequest{UserType: models.UserTypeAdmin, Token: "not-a-jwt"}, field: "token"},
		{name: "expired token", req: models.SessionRequest{UserType: models.UserTypeAdmin, Token: signed(t, "x", testNow.Add(-time.Hour))}, field: "token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Login(context.Background(), tt.req)
			var verr *apperror.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestSessionUC_ExpiredTokenReadsAsLoggedOut(t *testing.T) {
	clock := &fakeClock{now: testNow}
	uc, repo := newSessionUC(clock, nil)

	token := signed(t, "Priya", testNow.Add(10*time.Minute))
	ctx := login(t, context.Background(), uc, models.UserTypeAdmin, token)
	sessionID := appcontext.GetSessionID(ctx)

	clock.now = testNow.Add(10*time.Minute + 10*time.Second)
	_, err := uc.Token(ctx, models.UserTypeAdmin)
	assert.NoError(t, err, "inside leeway")

	// Token without a ttl in the store, so only the exp claim decides
	require.NoError(t, repo.SaveToken(ctx, sessionID, models.UserTypeAdmin, token, 0))
	clock.now = testNow.Add(11 * time.Minute)
	_, err = uc.Token(ctx, models.UserTypeAdmin)
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)

	_, err = repo.GetToken(ctx, sessionID, models.UserTypeAdmin)
	assert.ErrorIs(t, err, database.ErrCacheMiss)
}

func TestSessionUC_Session(t *testing.T) {
	clock := &fakeClock{now: testNow}
	uc, _ := newSessionUC(clock, nil)

	ctx := login(t, context.Background(), uc, models.UserTypeBusiness, signed(t, "Acme Travel Desk", time.Time{}))

	session, err := uc.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeBusiness, session.UserType)
	assert.Equal(t, appcontext.GetSessionID(ctx), session.ID)
	assert.Nil(t, session.ExpiresAt)
}

func TestSessionUC_Logout(t *testing.T) {
	clock := &fakeClock{now: testNow}
	identities := cache.NewTTLCache[*models.Identity](time.Minute, clock)
	uc, _ := newSessionUC(clock, identities)

	ctx := login(t, context.Background(), uc, models.UserTypeAdmin, signed(t, "Priya", testNow.Add(time.Hour)))
	ctx = login(t, ctx, uc, models.UserTypeCustomer, signed(t, "Ravi", testNow.Add(time.Hour)))
	key := identityKey(appcontext.GetSessionID(ctx), models.UserTypeAdmin)
	identities.Set(key, &models.Identity{Name: "Priya"})

	require.NoError(t, uc.Logout(ctx, models.UserTypeAdmin))

	_, err := uc.Token(ctx, models.UserTypeAdmin)
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
	_, cached := identities.Peek(key)
	assert.False(t, cached)

	current, err := uc.CurrentUserType(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeCustomer, current)

	require.NoError(t, uc.Logout(ctx, models.UserTypeCustomer))
	_, err = uc.CurrentUserType(ctx)
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)

	assert.True(t, apperror.IsValidation(uc.Logout(ctx, "driver")))
	assert.NoError(t, uc.Logout(context.Background(), models.UserTypeAdmin))
}

func TestSessionUC_StoreFailureIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTokenRepo(ctrl)
	uc := NewSessionUC(models.JWTConfig{}, repo, nil, &fakeClock{now: testNow})

	storeErr := errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")
	repo.EXPECT().GetToken(gomock.Any(), "session-a", models.UserTypeAdmin).Return("", storeErr)

	_, err := uc.Token(appcontext.WithSessionID(context.Background(), "session-a"), models.UserTypeAdmin)
	assert.ErrorIs(t, err, storeErr)
}

func TestSessionUC_LoginStoreFailureOnPresentedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTokenRepo(ctrl)
	uc := NewSessionUC(models.JWTConfig{}, repo, nil, &fakeClock{now: testNow})

	storeErr := errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")
	repo.EXPECT().GetCurrent(gomock.Any(), "session-a").Return(models.UserType(""), storeErr)

	ctx := appcontext.WithSessionID(context.Background(), "session-a")
	_, err := uc.Login(ctx, models.SessionRequest{UserType: models.UserTypeAdmin, Token: signed(t, "Priya", testNow.Add(time.Hour))})
	assert.ErrorIs(t, err, storeErr)
}
