package validators

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/ramosvitor/tibiaset-backend/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeJSONBody decodes the request body into dst and runs struct validation.
func DecodeJSONBody(r *http.Request, dst any) error {
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	if err := decoder.Decode(dst); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request body")
	}

	if err := validate.Struct(dst); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "validation setup failed")
		}
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed").
			WithDetails(fieldErrors(err))
	}

	return nil
}

// ValidateStruct runs struct validation without decoding, for bodies that are
// assembled from form values rather than JSON.
func ValidateStruct(dst any) error {
	if err := validate.Struct(dst); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed").
			WithDetails(fieldErrors(err))
	}
	return nil
}

func fieldErrors(err error) []map[string]string {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	out := make([]map[string]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, map[string]string{
			"field": strings.ToLower(fe.Field()),
			"rule":  fe.Tag(),
		})
	}
	return out
}
