// Package repository defines errors shared by all store implementations.
package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateId is returned when inserting a movie whose id is already in
// use.
var ErrDuplicateId = errors.New("duplicate movie id")

// ErrUsernameTaken is returned when registering a username that already
// exists.
var ErrUsernameTaken = errors.New("username already taken")
