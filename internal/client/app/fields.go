package app

import (
	"errors"
	"sort"
	"strings"

	"github.com/and161185/micromuu/internal/validate"
)

var fieldLabels = map[string]string{
	validate.FieldName:     "Name",
	validate.FieldLastName: "Last name",
	validate.FieldEmail:    "Email",
	validate.FieldPassword: "Password",
	validate.FieldConfirm:  "Confirm password",
	validate.FieldLocation: "Location",
}

var reasonText = map[string]string{
	validate.ReasonRequired: "is required",
	validate.ReasonInvalid:  "is not valid",
	validate.ReasonTooShort: "must be at least 6 characters",
	validate.ReasonTooLong:  "is too long",
	validate.ReasonMismatch: "does not match",
}

func isFieldError(err error) bool {
	var ve *validate.Error
	return errors.As(err, &ve)
}

func fieldMessage(err error) string {
	var ve *validate.Error
	if !errors.As(err, &ve) {
		return err.Error()
	}
	keys := make([]string, 0, len(ve.Fields))
	for k := range ve.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		label, ok := fieldLabels[k]
		if !ok {
			label = k
		}
		reason, ok := reasonText[ve.Fields[k]]
		if !ok {
			reason = ve.Fields[k]
		}
		lines = append(lines, label+" "+reason)
	}
	return strings.Join(lines, "\n")
}
