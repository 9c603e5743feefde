package service

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// notBlank rejects strings made only of whitespace. validation.Required
// only rejects the empty string.
var notBlank = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
})

var isUUID = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if _, err := uuid.Parse(s); err != nil {
		return errors.New("must be a valid document id")
	}
	return nil
})

// checkSize rejects text larger than limit bytes. A limit of zero or less
// disables the check.
func checkSize(text string, limit int) error {
	if limit > 0 && len(text) > limit {
		return WrapError(ErrPayloadTooLarge, "text exceeds import size limit")
	}
	return nil
}
