package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	ErrEmptyText     = errors.New("text must not be empty")
	ErrSelfFollow    = errors.New("cannot follow yourself")
	ErrNotAuthor     = errors.New("only the author can edit this post")
	ErrGroupNotFound = errors.New("group does not exist")
	ErrBadUsername   = errors.New("invalid username")
	ErrShortPassword = errors.New("password must be at least 8 characters")
	ErrLongPassword  = errors.New("password must be at most 72 characters")
	ErrBadLogin      = errors.New("invalid username or password")
	ErrUsernameTaken = errors.New("this username is already taken")
)

var validate = validator.New()

// validateInput maps field failures to the matching sentinel errors
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, fe := range fieldErrors {
			switch fe.Field() {
			case "Text":
				return ErrEmptyText
			case "Username":
				return ErrBadUsername
			case "Password":
				if fe.Tag() == "max" {
					return ErrLongPassword
				}
				return ErrShortPassword
			}
		}
	}
	return err
}
