package model

import "errors"

var (
	ErrConnection    = errors.New("database connection failed")
	ErrSourceRead    = errors.New("catalog source unreadable")
	ErrUserNotFound  = errors.New("user not found")
	ErrCardNotFound  = errors.New("card not found")
	ErrDuplicateUser = errors.New("user already exists")
	ErrInvalidRole   = errors.New("invalid role")
)
