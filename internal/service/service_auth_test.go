package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/press-pay/internal/config"
	"github.com/MKhiriev/press-pay/internal/logger"
	"github.com/MKhiriev/press-pay/internal/mock"
	"github.com/MKhiriev/press-pay/internal/store"
	"github.com/MKhiriev/press-pay/internal/validators"
	"github.com/MKhiriev/press-pay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAppConfig = config.App{
	TokenSignKey:     "test-secret",
	TokenIssuer:      "presspay-test",
	TokenDuration:    time.Hour,
	PasswordHashCost: bcrypt.MinCost,
	ServiceName:      "PressPay API",
}

func newTestAuthSvc(t *testing.T) (*authService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(users, testAppConfig, logger.Nop()).(*authService)
	return svc, users
}

func flex(s string) *models.FlexNumber {
	n := models.FlexNumber(s)
	return &n
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ── RegisterUser ────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Customer(t *testing.T) {
	svc, users := newTestAuthSvc(t)
	ctx := context.Background()

	request := models.RegisterRequest{
		Role:     "CUSTOMER",
		Name:     "Amina",
		Email:    "amina@example.com",
		Password: "secret",
		Phone:    "+100",
		Rate:     flex("99"),
		ShopName: "ignored",
	}

	gomock.InOrder(
		users.EXPECT().FindUserByEmail(ctx, "amina@example.com").Return(models.User{}, store.ErrNoUserWasFound),
		users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, models.RoleCustomer, u.Role)
				assert.Equal(t, "Amina", u.Name)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret")))
				require.NotNil(t, u.Phone)
				assert.Equal(t, "+100", *u.Phone)
				assert.Nil(t, u.Address)
				assert.Nil(t, u.Rate, "customers never carry a rate")
				u.ID = 1
				return u, nil
			},
		),
	)

	user, err := svc.RegisterUser(ctx, request)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestAuthService_RegisterUser_VendorRate(t *testing.T) {
	svc, users := newTestAuthSvc(t)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			require.NotNil(t, u.Rate)
			assert.Equal(t, 12.5, *u.Rate)
			u.ID = 2
			return u, nil
		},
	)

	user, err := svc.RegisterUser(ctx, models.RegisterRequest{
		Role: "VENDOR", Name: "Shop", Email: "shop@example.com", Password: "pw", Rate: flex("12.5"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleVendor, user.Role)
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	svc, users := newTestAuthSvc(t)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "taken@example.com").Return(models.User{ID: 5}, nil)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{
		Role: "CUSTOMER", Name: "A", Email: "taken@example.com", Password: "pw",
	})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_RegisterUser_EmailTakenByRace(t *testing.T) {
	svc, users := newTestAuthSvc(t)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
	users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{
		Role: "CUSTOMER", Name: "A", Email: "race@example.com", Password: "pw",
	})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_RegisterUser_ValidationFailsBeforeStorage(t *testing.T) {
	tests := []struct {
		name    string
		request models.RegisterRequest
		wantErr error
	}{
		{"missing password", models.RegisterRequest{Role: "CUSTOMER", Name: "A", Email: "a@b.c"}, validators.ErrMissingFields},
		{"unknown role", models.RegisterRequest{Role: "ADMIN", Name: "A", Email: "a@b.c", Password: "pw"}, validators.ErrInvalidRole},
		{"vendor bad rate", models.RegisterRequest{Role: "VENDOR", Name: "A", Email: "a@b.c", Password: "pw", Rate: flex("x")}, validators.ErrInvalidRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestAuthSvc(t)

			_, err := svc.RegisterUser(context.Background(), tt.request)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_RegisterUser_LookupError(t *testing.T) {
	svc, users := newTestAuthSvc(t)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	users.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, dbErr)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{Role: "CUSTOMER", Name: "A", Email: "a@b.c", Password: "pw"})
	assert.ErrorIs(t, err, dbErr)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, users := newTestAuthSvc(t)
	ctx := context.Background()

	stored := models.User{ID: 3, Role: models.RoleVendor, Name: "Shop", Email: "shop@example.com", Password: hashed(t, "pw")}
	users.EXPECT().FindUserByEmail(ctx, "shop@example.com").Return(stored, nil)

	user, err := svc.Login(ctx, models.LoginRequest{Email: "shop@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	svc, users := newTestAuthSvc(t)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrNoUserWasFound)
	users.EXPECT().FindUserByEmail(ctx, "shop@example.com").Return(models.User{ID: 3, Password: hashed(t, "pw")}, nil)

	_, unknownErr := svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: "pw"})
	_, wrongErr := svc.Login(ctx, models.LoginRequest{Email: "shop@example.com", Password: "nope"})

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "a@b.c"})
	assert.ErrorIs(t, err, validators.ErrMissingFields)
}

func TestAuthService_Login_StorageError(t *testing.T) {
	svc, users := newTestAuthSvc(t)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, errors.New("boom"))

	_, err := svc.Login(ctx, models.LoginRequest{Email: "a@b.c", Password: "pw"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── Tokens ──────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()
	user := models.User{ID: 9, Role: models.RoleCustomer, Name: "Amina"}

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, user.Identity(), parsed.Identity)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()

	other := NewAuthService(nil, config.App{
		TokenSignKey: "other-secret", TokenIssuer: testAppConfig.TokenIssuer, TokenDuration: time.Hour,
	}, logger.Nop())
	foreign, err := other.CreateToken(ctx, models.User{ID: 1, Role: models.RoleVendor})
	require.NoError(t, err)

	for _, raw := range []string{"", "garbage", foreign.SignedString} {
		_, err := svc.ParseToken(ctx, raw)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	}
}

func TestAuthService_CreateToken_Failure(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	svc.tokenDuration = 0

	_, err := svc.CreateToken(context.Background(), models.User{ID: 1})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
