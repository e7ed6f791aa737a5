// Package web defines common components for a web application.
package web

import "github.com/go-playground/validator/v10"

// JSONError provides type for explicit json encoded error response.
type JSONError struct {
	Error string `json:"error"`
}

// Error wraps a given err into json frinedly struct.
func Error(err error) JSONError {
	return JSONError{Error: err.Error()}
}

// Response holds the common confirmation response type for all APIs.
type Response struct {
	Message string `json:"message,omitempty"`
}

// GetErrorMsg translates a binding validation error into a human message.
// Callers prefix it with the field name.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " is required"
	case "datetime":
		return " must be formatted as " + fe.Param()
	case "min":
		return " must be at least " + fe.Param()
	case "max":
		return " must be at most " + fe.Param()
	}

	return " is invalid"
}
