package config

import (
	"context"
	"crypto/rand"
	"log/slog"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsnexus/opsnexus/pkg/domain/interfaces"
	"github.com/opsnexus/opsnexus/pkg/domain/model"
	"github.com/opsnexus/opsnexus/pkg/usecase"
	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"
)

// MinJWTSecretLength is the minimum HS256 key size in bytes
const MinJWTSecretLength = 32

// Auth holds authentication configuration
type Auth struct {
	JWTSecret  string
	TokenTTL   time.Duration
	UsersFile  string
	LoginRate  float64
	LoginBurst int
}

// Flags returns CLI flags for Auth configuration
func (a *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "jwt-secret",
			Usage:       "HS256 signing key for access tokens (random per process when empty)",
			Category:    "Auth",
			Sources:     cli.EnvVars("OPSNEXUS_JWT_SECRET"),
			Destination: &a.JWTSecret,
		},
		&cli.DurationFlag{
			Name:        "token-ttl",
			Usage:       "Access token lifetime",
			Category:    "Auth",
			Value:       usecase.DefaultTokenTTL,
			Sources:     cli.EnvVars("OPSNEXUS_TOKEN_TTL"),
			Destination: &a.TokenTTL,
		},
		&cli.StringFlag{
			Name:        "users-file",
			Aliases:     []string{"u"},
			Usage:       "Path to users YAML file",
			Category:    "Auth",
			Value:       "./users.yaml",
			Sources:     cli.EnvVars("OPSNEXUS_USERS_FILE"),
			Destination: &a.UsersFile,
		},
		&cli.FloatFlag{
			Name:        "login-rate",
			Usage:       "Sustained login attempts per second per client IP",
			Category:    "Auth",
			Value:       1,
			Sources:     cli.EnvVars("OPSNEXUS_LOGIN_RATE"),
			Destination: &a.LoginRate,
		},
		&cli.IntFlag{
			Name:        "login-burst",
			Usage:       "Login attempts allowed in a burst per client IP",
			Category:    "Auth",
			Value:       5,
			Sources:     cli.EnvVars("OPSNEXUS_LOGIN_BURST"),
			Destination: &a.LoginBurst,
		},
	}
}

// LoadUsers reads the users file
func (a *Auth) LoadUsers() (*model.UsersConfig, error) {
	return LoadUsersFromFile(a.UsersFile)
}

// Secret returns the signing key. Without a configured secret a random key
// is generated, so tokens do not survive a restart.
func (a *Auth) Secret(ctx context.Context) ([]byte, error) {
	if a.JWTSecret == "" {
		ctxlog.From(ctx).Warn("jwt-secret is not set, using a random key. Tokens are invalidated on restart")
		key := make([]byte, MinJWTSecretLength)
		if _, err := rand.Read(key); err != nil {
			return nil, goerr.Wrap(err, "failed to generate jwt secret")
		}
		return key, nil
	}

	if len(a.JWTSecret) < MinJWTSecretLength {
		return nil, goerr.New("jwt-secret is too short",
			goerr.V("length", len(a.JWTSecret)),
			goerr.V("min", MinJWTSecretLength))
	}
	return []byte(a.JWTSecret), nil
}

// RateLimit returns the login rate limit
func (a *Auth) RateLimit() (rate.Limit, int, error) {
	if a.LoginRate <= 0 || a.LoginBurst <= 0 {
		return 0, 0, goerr.New("login rate and burst must be positive",
			goerr.V("rate", a.LoginRate),
			goerr.V("burst", a.LoginBurst))
	}
	return rate.Limit(a.LoginRate), a.LoginBurst, nil
}

// Configure creates the auth use case
func (a *Auth) Configure(ctx context.Context, repo interfaces.Repository, users *model.UsersConfig) (usecase.AuthUseCase, error) {
	if a.TokenTTL <= 0 {
		return nil, goerr.New("token-ttl must be positive", goerr.V("ttl", a.TokenTTL))
	}

	secret, err := a.Secret(ctx)
	if err != nil {
		return nil, err
	}

	return usecase.NewAuth(repo, users, secret, a.TokenTTL), nil
}

// LogValue returns structured log value
func (a Auth) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_jwt_secret", a.JWTSecret != ""),
		slog.Duration("token_ttl", a.TokenTTL),
		slog.String("users_file", a.UsersFile),
		slog.Float64("login_rate", a.LoginRate),
		slog.Int("login_burst", a.LoginBurst),
	)
}
