package wizard

import "errors"

// ValidationError is an owner mistake caught before anything is sent to the
// backend. The draft is left as it was.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func invalid(msg string) error { return &ValidationError{msg: msg} }

// IsValidation reports whether err, or anything it wraps, is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

var (
	ErrStepIncomplete = invalid("please complete the current step before proceeding")
	ErrInvalidStep    = invalid("invalid step")
	ErrNoNextStep     = invalid("preview is the last step, publish instead")
	ErrNotAtPreview   = invalid("only possible from the preview step")
	ErrTooManyImages  = invalid("you can upload maximum 10 images")
	ErrNoImages       = invalid("please upload at least one image first")
	ErrNoImageContent = invalid("image content is not available, upload the image again")
	ErrImageIndex     = invalid("no image at that position")
	ErrBlankFabric    = invalid("please enter a fabric name")
	ErrMissingDetails = invalid("please provide item name and short description first")
	ErrInvalidPrice   = invalid("price must be a non-negative number")
	ErrNoOtherColors  = invalid("enable other colours before choosing them")
	ErrIncomplete     = invalid("product is incomplete")
	ErrFabricExists   = errors.New("fabric already exists")
	ErrDraftNotFound  = errors.New("draft not found")
)
