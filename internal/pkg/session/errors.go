package session

import "errors"

// ErrSessionNotFound indicates the store holds no session with the given id.
var ErrSessionNotFound = errors.New("session not found")

// ErrSessionAlreadyExists indicates a session with the given id is already in flight.
var ErrSessionAlreadyExists = errors.New("session already exists")
