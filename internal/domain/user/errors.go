package user

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserEmailExists   = errors.New("email already registered")
	ErrCannotDeleteSelf  = errors.New("you cannot delete your own account")
	ErrIncorrectPassword = errors.New("old password is incorrect")
)
