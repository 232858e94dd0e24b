// Package auth turns the session token carried in the "token" cookie
// into a verified identity. Token verification itself is delegated to
// the identity provider through its signing key; this package never
// issues tokens.
package auth

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	localCache "github.com/canarylab/chirper/pkg/internal/cache"
	"github.com/canarylab/chirper/pkg/internal/models"
	"github.com/canarylab/chirper/pkg/internal/stores"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/golang-jwt/jwt/v5"
)

var ErrUnauthenticated = errors.New("no valid session token")

type ProfileState int

const (
	// StateUnprovisioned means the token verified but the user never
	// claimed a username, so no profile row exists yet.
	StateUnprovisioned = ProfileState(iota)
	StateActive
)

// Identity is the resolved caller: a stable provider-assigned user id
// plus the profile, when one has been provisioned.
type Identity struct {
	UserID  string
	State   ProfileState
	Profile models.Account
}

type Resolver struct {
	secret   []byte
	profiles stores.ProfileStore
}

func NewResolver(secret string, profiles stores.ProfileStore) *Resolver {
	return &Resolver{secret: []byte(secret), profiles: profiles}
}

// Resolve verifies the raw token and loads the caller's profile. The
// profile read is always fresh; only the verification result is cached,
// since that is the expensive provider round-trip.
func (r *Resolver) Resolve(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrUnauthenticated
	}

	uid, err := r.verify(ctx, token)
	if err != nil {
		return Identity{}, err
	}

	profile, err := r.profiles.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return Identity{UserID: uid, State: StateUnprovisioned}, nil
		}
		return Identity{}, err
	}

	return Identity{UserID: uid, State: StateActive, Profile: profile}, nil
}

func (r *Resolver) verify(ctx context.Context, token string) (string, error) {
	var cacheManager *cache.Cache[string]
	var cacheKey string
	if localCache.S != nil {
		cacheManager = cache.New[string](localCache.S)
		cacheKey = fmt.Sprintf("token-subject#%x", sha256.Sum256([]byte(token)))
		if uid, err := cacheManager.Get(ctx, cacheKey); err == nil {
			return uid, nil
		}
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return r.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrUnauthenticated
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrUnauthenticated
	}

	uid, ok := claims["user_id"].(string)
	if !ok {
		uid, ok = claims["sub"].(string)
	}
	if !ok || uid == "" {
		return "", ErrUnauthenticated
	}

	if cacheManager != nil {
		_ = cacheManager.Set(ctx, cacheKey, uid, store.WithExpiration(5*time.Minute))
	}

	return uid, nil
}
