package services

import "errors"

var (
	// ErrUnauthorized covers both missing elevation and ownership failures.
	// Handlers surface it as a generic message so callers cannot probe which
	// forms exist.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrLastSection rejects deleting a form's only remaining section.
	ErrLastSection = errors.New("a form must keep at least one section")

	// ErrScopeMismatch rejects a bulk reorder listing a child outside the
	// claimed parent. Wrapped with the offending ID.
	ErrScopeMismatch = errors.New("child does not belong to the given parent")

	// ErrFormMismatch rejects moving a field into a section of another form.
	ErrFormMismatch = errors.New("field cannot be moved across forms")

	// ErrFieldNotInForm rejects a response referencing a field outside the
	// submitted form.
	ErrFieldNotInForm = errors.New("response references a field outside this form")

	// ErrFormInactive rejects submissions against an unpublished form.
	ErrFormInactive = errors.New("form is not accepting submissions")

	ErrInvalidFieldType   = errors.New("unknown field type")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)
