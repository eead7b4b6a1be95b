package validators

import (
	"net/http"
	"strconv"

	pkgerrors "github.com/ramosvitor/tibiaset-backend/pkg/errors"
)

// StringQuery returns a pointer to the query value, or nil when absent or empty.
func StringQuery(r *http.Request, name string) *string {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil
	}
	return &value
}

// IntQuery parses an optional integer query parameter. Absent values yield
// (nil, nil); malformed values yield a validation error naming the parameter.
func IntQuery(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid query parameter").
			WithDetails(map[string]string{"param": name})
	}
	return &value, nil
}
