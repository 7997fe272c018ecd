package store

import "errors"

// Sentinel errors returned by token store implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrEmptyToken is returned by SetToken when asked to persist an empty
	// token. Use ClearToken to remove a token.
	ErrEmptyToken = errors.New("empty token")

	// ErrStoreClosed is returned by every operation on a closed store.
	ErrStoreClosed = errors.New("token store is closed")
)

// Low-level database operation errors. These wrap the driver error when a
// SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
