package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateWeight checks that a layout weight is finite and not negative.
// A weight of exactly 0 is valid.
func ValidateWeight(id string, w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return New(ErrCodeInvalidWeight, "node %q: weight must be finite", id)
	}
	if w < 0 {
		return New(ErrCodeInvalidWeight, "node %q: weight must not be negative (got %g)", id, w)
	}
	return nil
}

// ValidateSpacing checks that an explicit gap is finite and not negative.
func ValidateSpacing(id string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidSpacing, "node %q: spacing must be finite", id)
	}
	if v < 0 {
		return New(ErrCodeInvalidSpacing, "node %q: spacing must not be negative (got %g)", id, v)
	}
	return nil
}

// ValidateSize checks one intrinsic dimension of a node. field names the
// dimension in the message ("width", "height").
func ValidateSize(id, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidSize, "node %q: %s must be finite", id, field)
	}
	if v < 0 {
		return New(ErrCodeInvalidSize, "node %q: %s must not be negative (got %g)", id, field, v)
	}
	return nil
}

// ValidateNodeID validates a node identifier.
//
// The validation rules are intentionally conservative:
//   - Maximum length of 256 characters
//   - No control characters
//   - No "/" (reserved as the path separator between nested nodes)
//
// Empty IDs are accepted; callers fill them with the node's path.
func ValidateNodeID(id string) error {
	if len(id) > 256 {
		return New(ErrCodeInvalidScene, "node id too long (max 256 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidScene, "node id %q contains invalid control characters", id)
		}
	}
	if strings.Contains(id, "/") {
		return New(ErrCodeInvalidScene, "node id %q cannot contain '/'", id)
	}
	return nil
}

// ValidatePath validates a scene file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
