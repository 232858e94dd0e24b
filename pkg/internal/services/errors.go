package services

import (
	"errors"

	"github.com/canarylab/chirper/pkg/internal/stores"
)

var (
	// ErrNotFound mirrors the store sentinel so handlers only have to
	// match against one package.
	ErrNotFound = stores.ErrNotFound

	// ErrSelfReference is returned when an account tries to follow or
	// unfollow itself.
	ErrSelfReference = errors.New("cannot follow yourself")

	// ErrUsernameTaken is returned when the requested username already
	// belongs to another account.
	ErrUsernameTaken = errors.New("username already taken")
)
