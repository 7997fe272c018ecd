package service

import "errors"

var (
	ErrEmptyAccessToken = errors.New("backend returned an empty access token")
	ErrPersistToken     = errors.New("error persisting access token")
	ErrClearToken       = errors.New("error clearing access token")
	ErrReadToken        = errors.New("error reading access token")
)
