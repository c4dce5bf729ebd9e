package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"brain-backend/internal/database/models"
	apperrors "brain-backend/internal/errors"
	"brain-backend/internal/mocks"
	"brain-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret:  "test-signing-key",
		TokenTTL:   time.Hour,
		Issuer:     "brain-backend",
		BcryptCost: bcrypt.MinCost,
	}
}

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	svc, err := NewAuthService(testConfig(), repository.NewMemoryStore().Users(), nil)
	require.NoError(t, err)
	return svc
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, testConfig().ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := testConfig()
		cfg.JWTSecret = ""
		err := cfg.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		cfg := testConfig()
		cfg.TokenTTL = 0
		assert.Error(t, cfg.ValidateConfig())
	})

	t.Run("zero cost defaults", func(t *testing.T) {
		cfg := testConfig()
		cfg.BcryptCost = 0
		require.NoError(t, cfg.ValidateConfig())
		assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	})

	t.Run("cost out of range", func(t *testing.T) {
		cfg := testConfig()
		cfg.BcryptCost = 99
		assert.Error(t, cfg.ValidateConfig())
	})

	t.Run("service refuses invalid config", func(t *testing.T) {
		cfg := testConfig()
		cfg.JWTSecret = ""
		_, err := NewAuthService(cfg, nil, nil)
		assert.Error(t, err)
	})
}

func TestJWTOperations(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	token, err := svc.GenerateJWT(userID, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "brain-backend", claims.Issuer)
	got, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	_, err = svc.ValidateJWT("invalid-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestJWTRejections(t *testing.T) {
	svc := newTestService(t)

	t.Run("expired", func(t *testing.T) {
		cfg := testConfig()
		cfg.TokenTTL = -time.Minute
		expiredSvc := &AuthService{config: cfg}
		token, err := expiredSvc.GenerateJWT(uuid.New(), "alice")
		require.NoError(t, err)

		_, err = svc.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		cfg := testConfig()
		cfg.JWTSecret = "another-key"
		other := &AuthService{config: cfg}
		token, err := other.GenerateJWT(uuid.New(), "alice")
		require.NoError(t, err)

		_, err = svc.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("non-hmac algorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &AuthClaims{
			Username: "alice",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   uuid.NewString(),
				Issuer:    "brain-backend",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateJWT(signed)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("subject is not a uuid", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, &AuthClaims{
			Username: "alice",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "12345",
				Issuer:    "brain-backend",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := token.SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		_, err = svc.ValidateJWT(signed)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestPasswordHashing(t *testing.T) {
	svc := newTestService(t)

	hash, err := svc.HashPassword("P@ssw0rd1")
	require.NoError(t, err)
	assert.NotEqual(t, "P@ssw0rd1", hash)
	assert.True(t, svc.ComparePassword(hash, "P@ssw0rd1"))
	assert.False(t, svc.ComparePassword(hash, "wrong"))
	assert.False(t, svc.ComparePassword("not-a-hash", "P@ssw0rd1"))
}

func TestSignupAndSignin(t *testing.T) {
	svc := newTestService(t)
	ctx := t.Context()

	user, err := svc.Signup(ctx, &CredentialsRequest{Username: "  alice ", Password: "P@ssw0rd1"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, uuid.Nil, user.ID)

	_, err = svc.Signup(ctx, &CredentialsRequest{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, apperrors.ErrUserExists)

	token, err := svc.Signin(ctx, &CredentialsRequest{Username: "alice", Password: "P@ssw0rd1"})
	require.NoError(t, err)
	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	id, _ := claims.UserID()
	assert.Equal(t, user.ID, id)

	_, err = svc.Signin(ctx, &CredentialsRequest{Username: "alice", Password: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrIncorrectPassword)

	_, err = svc.Signin(ctx, &CredentialsRequest{Username: "bob", Password: "P@ssw0rd1"})
	assert.ErrorIs(t, err, apperrors.ErrSigninUserNotFound)
}

func TestCredentialValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := t.Context()

	cases := []CredentialsRequest{
		{Username: "", Password: "x"},
		{Username: "   ", Password: "x"},
		{Username: "alice", Password: ""},
		{Username: strings.Repeat("a", 65), Password: "x"},
		{Username: "alice", Password: strings.Repeat("p", 73)},
	}
	for _, req := range cases {
		req := req
		_, err := svc.Signup(ctx, &req)
		assert.True(t, apperrors.IsValidation(err), "signup %q: %v", req.Username, err)

		_, err = svc.Signin(ctx, &req)
		assert.True(t, apperrors.IsValidation(err), "signin %q: %v", req.Username, err)
	}
}

func TestSignup_StoreFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepositoryInterface(ctrl)
	svc, err := NewAuthService(testConfig(), repo, nil)
	require.NoError(t, err)

	t.Run("lookup error is wrapped", func(t *testing.T) {
		repo.EXPECT().GetByUsername("alice").Return(nil, errors.New("connection refused"))

		_, err := svc.Signup(t.Context(), &CredentialsRequest{Username: "alice", Password: "pw"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
		assert.False(t, apperrors.IsValidation(err))
	})

	t.Run("unique index race maps to conflict", func(t *testing.T) {
		repo.EXPECT().GetByUsername("alice").Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

		_, err := svc.Signup(t.Context(), &CredentialsRequest{Username: "alice", Password: "pw"})
		assert.ErrorIs(t, err, apperrors.ErrUserExists)
	})

	t.Run("stored hash is bcrypt", func(t *testing.T) {
		repo.EXPECT().GetByUsername("carol").Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw")))
			return nil
		})

		_, err := svc.Signup(t.Context(), &CredentialsRequest{Username: "carol", Password: "pw"})
		assert.NoError(t, err)
	})
}

func setupAuthRouter(t *testing.T) (*gin.Engine, *AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := newTestService(t)
	h := NewAuthHandler(svc)
	mw := NewAuthMiddleware(svc)

	r := gin.New()
	r.POST("/signup", h.Signup)
	r.POST("/signin", h.Signin)
	r.POST("/auth/validate", h.ValidateToken)
	r.GET("/whoami", mw.RequireAuth(), func(c *gin.Context) {
		id, ok := GetUserID(c)
		claims, hasClaims := GetAuthClaims(c)
		name := ""
		if hasClaims {
			name = claims.Username
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "ok": ok, "username": name, "claims": hasClaims})
	})
	return r, svc
}

func doJSON(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandlers(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := doJSON(r, http.MethodPost, "/signup", `{"username":"alice","password":"P@ssw0rd1"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var signup SignupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signup))
	assert.Equal(t, "User signed up successfully", signup.Message)
	assert.NotEqual(t, uuid.Nil, signup.UserID)

	w = doJSON(r, http.MethodPost, "/signup", `{"username":"alice","password":"x"}`, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists")

	w = doJSON(r, http.MethodPost, "/signup", `{"username":"bob"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Username and password are required")

	w = doJSON(r, http.MethodPost, "/signup", `not json`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/signin", `{"username":"nobody","password":"x"}`, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")

	w = doJSON(r, http.MethodPost, "/signin", `{"username":"alice","password":"bad"}`, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Incorrect password")

	w = doJSON(r, http.MethodPost, "/signin", `{"username":"alice","password":"P@ssw0rd1"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var signin SigninResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signin))
	require.NotEmpty(t, signin.Token)

	bearer := map[string]string{"Authorization": "Bearer " + signin.Token}

	w = doJSON(r, http.MethodPost, "/auth/validate", "", bearer)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":true`)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)

	w = doJSON(r, http.MethodGet, "/whoami", "", bearer)
	require.Equal(t, http.StatusOK, w.Code)
	var who map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &who))
	assert.Equal(t, signup.UserID.String(), who["id"])
	assert.Equal(t, true, who["ok"])
	assert.Equal(t, "alice", who["username"])
	assert.Equal(t, true, who["claims"])
}

func TestValidateToken_UsesClaimsFromRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(newTestService(t))

	r := gin.New()
	r.POST("/auth/validate", func(c *gin.Context) {
		c.Set("auth_claims", &AuthClaims{Username: "carol"})
		c.Next()
	}, h.ValidateToken)

	// no Authorization header; the claims set upstream are returned as-is
	w := doJSON(r, http.MethodPost, "/auth/validate", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"username":"carol"`)

	r = gin.New()
	r.POST("/auth/validate", h.ValidateToken)
	w = doJSON(r, http.MethodPost, "/auth/validate", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth(t *testing.T) {
	r, svc := setupAuthRouter(t)
	valid, err := svc.GenerateJWT(uuid.New(), "alice")
	require.NoError(t, err)

	cases := []struct {
		name    string
		header  string
		status  int
		message string
	}{
		{"missing header", "", http.StatusUnauthorized, "Unauthorized"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Unauthorized"},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, "Unauthorized"},
		{"garbage token", "Bearer abc.def.ghi", http.StatusUnauthorized, "Invalid token"},
		{"valid token", "Bearer " + valid, http.StatusOK, ""},
		{"lowercase scheme", "bearer " + valid, http.StatusOK, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			headers := map[string]string{}
			if tc.header != "" {
				headers["Authorization"] = tc.header
			}
			w := doJSON(r, http.MethodGet, "/whoami", "", headers)
			assert.Equal(t, tc.status, w.Code)
			if tc.message != "" {
				assert.JSONEq(t, `{"message":"`+tc.message+`"}`, w.Body.String())
			}
		})
	}
}
