package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tag-ledger/internal/config"
	apierrors "tag-ledger/internal/errors"
	"tag-ledger/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	privateKey *rsa.PrivateKey
	cfg        config.AuthConfig
	e          *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	s.Require().NoError(err)

	s.privateKey = privateKey
	s.cfg = config.AuthConfig{
		PublicKey: &privateKey.PublicKey,
		Issuer:    "test-issuer",
	}
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) signToken(key *rsa.PrivateKey, claims models.AccessClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(key)
	s.Require().NoError(err)
	return signed
}

func (s *AuthMiddlewareSuite) validClaims() models.AccessClaims {
	now := time.Now()
	return models.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-1",
			Issuer:    "test-issuer",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		UserID:    "user-42",
		Email:     "user@example.com",
		TokenType: "access",
	}
}

func (s *AuthMiddlewareSuite) run(cfg config.AuthConfig, setup func(*http.Request)) (*httptest.ResponseRecorder, string, bool) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tags", nil)
	setup(req)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	var userID string
	called := false
	handler := RequireAuth(cfg)(func(c echo.Context) error {
		called = true
		userID, _ = c.Get("user_id").(string)
		return c.NoContent(http.StatusOK)
	})

	s.Require().NoError(handler(c))
	return rec, userID, called
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	token := s.signToken(s.privateKey, s.validClaims())

	rec, userID, called := s.run(s.cfg, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})

	s.True(called)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("user-42", userID)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_SubjectFallback() {
	claims := s.validClaims()
	claims.UserID = ""
	claims.Subject = "subject-user"
	token := s.signToken(s.privateKey, claims)

	_, userID, called := s.run(s.cfg, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})

	s.True(called)
	s.Equal("subject-user", userID)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_Rejections() {
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	s.Require().NoError(err)

	expired := s.validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongIssuer := s.validClaims()
	wrongIssuer.Issuer = "someone-else"

	refresh := s.validClaims()
	refresh.TokenType = "refresh"

	tests := []struct {
		name   string
		header string
		code   apierrors.ErrorCode
		status int
	}{
		{"missing header", "", apierrors.AuthMissingToken, http.StatusUnauthorized},
		{"not bearer", "Basic abc", apierrors.AuthInvalidTokenFormat, http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", apierrors.AuthInvalidTokenFormat, http.StatusUnauthorized},
		{"expired", "Bearer " + s.signToken(s.privateKey, expired), apierrors.AuthExpiredToken, http.StatusUnauthorized},
		{"wrong key", "Bearer " + s.signToken(otherKey, s.validClaims()), apierrors.AuthInvalidTokenFormat, http.StatusUnauthorized},
		{"wrong issuer", "Bearer " + s.signToken(s.privateKey, wrongIssuer), apierrors.AuthInvalidTokenFormat, http.StatusUnauthorized},
		{"refresh token", "Bearer " + s.signToken(s.privateKey, refresh), apierrors.AuthInvalidTokenFormat, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec, _, called := s.run(s.cfg, func(r *http.Request) {
				if tt.header != "" {
					r.Header.Set("Authorization", tt.header)
				}
			})

			s.False(called)
			s.Equal(tt.status, rec.Code)
			s.Contains(rec.Body.String(), string(tt.code))
		})
	}
}

func (s *AuthMiddlewareSuite) TestRequireAuth_HMACTokenRejected() {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, s.validClaims())
	signed, err := token.SignedString([]byte("shared-secret"))
	s.Require().NoError(err)

	rec, _, called := s.run(s.cfg, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+signed)
	})

	s.False(called)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_DisabledUsesHeader() {
	cfg := config.AuthConfig{Disabled: true}

	_, userID, called := s.run(cfg, func(r *http.Request) {
		r.Header.Set(UserIDHeader, "dev-user")
	})
	s.True(called)
	s.Equal("dev-user", userID)

	rec, _, called := s.run(cfg, func(r *http.Request) {})
	s.False(called)
	s.Equal(http.StatusUnauthorized, rec.Code)
}
