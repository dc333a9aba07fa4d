// Package validation holds the pure per-field validators. Each function
// takes a raw input and returns either the normalized value or an error
// whose message is part of the API contract.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// UserID parses a path parameter as a user identifier (integer >= 1).
func UserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New("User ID must be a valid integer")
	}
	if id <= 0 {
		return 0, errors.New("User ID must be a positive integer")
	}
	return id, nil
}

// Username checks presence, minimum length and the allowed character set.
func Username(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("Username is required")
	}
	if len(raw) < 3 {
		return "", errors.New("Username must be at least 3 characters long")
	}
	if !usernameRe.MatchString(raw) {
		return "", errors.New("Username can only contain letters, numbers, and underscores")
	}
	return raw, nil
}

// Email checks presence and a local-part@domain.tld shape.
func Email(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("Email is required")
	}
	if !emailRe.MatchString(raw) {
		return "", errors.New("Invalid email format")
	}
	return raw, nil
}

// Name trims the value and rejects an empty result. The label names the
// field in the error message ("First name", "Last name").
func Name(label, raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%s cannot be empty", label)
	}
	return trimmed, nil
}

// Age validates an optional age from its raw JSON value. Absent or null
// passes through as nil. A number or a numeric string must be an integer
// in [0,150].
func Age(raw json.RawMessage) (*int, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var num json.Number
	if err := json.Unmarshal(raw, &num); err != nil {
		// Tolerate a quoted numeric string, same as the integer
		// coercion the API has always performed.
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, errors.New("Age must be a valid number")
		}
		num = json.Number(s)
	}

	age, err := strconv.Atoi(num.String())
	if err != nil {
		return nil, errors.New("Age must be a valid number")
	}
	if age < 0 || age > 150 {
		return nil, errors.New("Age must be between 0 and 150")
	}
	return &age, nil
}
