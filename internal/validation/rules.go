// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"

	validation "github.com/jellydator/validation"
	"go.mongodb.org/mongo-driver/v2/bson"

	apperrors "github.com/foodshare/server/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err)
}

// ObjectID validates that a string is a 24 character hex MongoDB ObjectID.
var ObjectID = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := bson.ObjectIDFromHex(s)
		return err == nil
	},
	validation.NewError("validation_object_id", "must be a valid ObjectID"),
)
