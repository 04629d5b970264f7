package usecase

import (
	"context"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsnexus/opsnexus/pkg/domain/interfaces"
	"github.com/opsnexus/opsnexus/pkg/domain/model"
	"github.com/opsnexus/opsnexus/pkg/domain/types"
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultTokenTTL is the lifetime of an access token
	DefaultTokenTTL = 30 * time.Minute

	// TokenType is returned with every issued access token
	TokenType = "bearer"

	claimCompanyID = "company_id"
	claimRole      = "role"
)

// dummyHash is compared against when the user does not exist so that unknown
// and known usernames take the same time to reject
var dummyHash = []byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3D.qK3pG8YtFfSCt6lq6a5e")

// Auth implements AuthUseCase with users from the users file and JWT access tokens
type Auth struct {
	repo   interfaces.Repository
	users  *model.UsersConfig
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// AuthOption configures Auth
type AuthOption func(*Auth)

// WithClock replaces the clock used to issue and validate tokens
func WithClock(now func() time.Time) AuthOption {
	return func(a *Auth) {
		a.now = now
	}
}

// NewAuth creates a new Auth use case
func NewAuth(repo interfaces.Repository, users *model.UsersConfig, secret []byte, ttl time.Duration, opts ...AuthOption) AuthUseCase {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	if users == nil {
		users = &model.UsersConfig{}
	}

	a := &Auth{
		repo:   repo,
		users:  users,
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Login verifies the credentials and issues a signed access token
func (a *Auth) Login(ctx context.Context, username, password string) (*model.AccessToken, error) {
	logger := ctxlog.From(ctx)

	user := a.users.FindUser(types.Username(username))
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		logger.Info("Login rejected: unknown user", "username", username)
		return nil, goerr.Wrap(model.ErrInvalidCredentials, "unknown user", goerr.V("username", username))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Info("Login rejected: password mismatch", "username", username)
		return nil, goerr.Wrap(model.ErrInvalidCredentials, "password mismatch", goerr.V("username", username))
	}

	tokenID, err := types.NewTokenID()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate token ID")
	}

	now := a.now()
	expiresAt := now.Add(a.ttl)

	tok, err := jwt.NewBuilder().
		Subject(user.Username.String()).
		JwtID(tokenID.String()).
		IssuedAt(now).
		Expiration(expiresAt).
		Claim(claimCompanyID, user.CompanyID.Int64()).
		Claim(claimRole, user.Role.String()).
		Build()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build access token")
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, a.secret))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to sign access token")
	}

	logger.Info("Issued access token",
		"username", user.Username,
		"companyID", user.CompanyID,
		"tokenID", tokenID,
		"expiresAt", expiresAt,
	)

	return &model.AccessToken{
		ID:        tokenID,
		Token:     string(signed),
		TokenType: TokenType,
		ExpiresAt: expiresAt,
	}, nil
}

// Authenticate validates signature and expiry, rejects revoked tokens and
// resolves the user. Company and role come from the users file, not the claims.
func (a *Auth) Authenticate(ctx context.Context, rawToken string) (*model.AuthContext, error) {
	tok, err := a.parse(rawToken)
	if err != nil {
		return nil, err
	}

	tokenID := types.TokenID(tok.JwtID())
	if tokenID == "" || tok.Subject() == "" {
		return nil, goerr.Wrap(model.ErrUnauthorized, "token lacks jti or sub")
	}

	revoked, err := a.repo.IsTokenRevoked(ctx, tokenID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to check token revocation", goerr.V("tokenID", tokenID))
	}
	if revoked {
		return nil, goerr.Wrap(model.ErrTokenRevoked, "token is revoked", goerr.V("tokenID", tokenID))
	}

	user := a.users.FindUser(types.Username(tok.Subject()))
	if user == nil {
		return nil, goerr.Wrap(model.ErrUnauthorized, "token subject is not a known user",
			goerr.V("username", tok.Subject()))
	}

	return &model.AuthContext{
		Username:  user.Username,
		CompanyID: user.CompanyID,
		Role:      user.Role,
		TokenID:   tokenID,
		ExpiresAt: tok.Expiration(),
	}, nil
}

// Logout revokes the access token until it expires
func (a *Auth) Logout(ctx context.Context, rawToken string) error {
	tok, err := a.parse(rawToken)
	if err != nil {
		return err
	}

	tokenID := types.TokenID(tok.JwtID())
	if tokenID == "" {
		return goerr.Wrap(model.ErrUnauthorized, "token lacks jti")
	}

	if err := a.repo.RevokeToken(ctx, &model.RevokedToken{
		ID:        tokenID,
		Username:  types.Username(tok.Subject()),
		RevokedAt: a.now(),
		ExpiresAt: tok.Expiration(),
	}); err != nil {
		return goerr.Wrap(err, "failed to revoke token", goerr.V("tokenID", tokenID))
	}

	ctxlog.From(ctx).Info("Revoked access token",
		"username", tok.Subject(),
		"tokenID", tokenID,
	)

	return nil
}

// GetUser returns the public profile of a user
func (a *Auth) GetUser(ctx context.Context, username types.Username) (*model.User, error) {
	user := a.users.FindUser(username)
	if user == nil {
		return nil, goerr.Wrap(model.ErrUserNotFound, "failed to get user", goerr.V("username", username))
	}
	return user.Public(), nil
}

func (a *Auth) parse(rawToken string) (jwt.Token, error) {
	if rawToken == "" {
		return nil, goerr.Wrap(model.ErrUnauthorized, "access token is empty")
	}

	tok, err := jwt.Parse([]byte(rawToken),
		jwt.WithKey(jwa.HS256, a.secret),
		jwt.WithValidate(true),
		jwt.WithClock(jwt.ClockFunc(a.now)),
	)
	if err != nil {
		return nil, goerr.Wrap(model.ErrUnauthorized, "invalid access token", goerr.V("reason", err.Error()))
	}
	return tok, nil
}

// HashPassword returns the bcrypt hash stored in the users file
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", goerr.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", goerr.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}
