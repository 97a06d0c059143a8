package errors

import (
	"time"

	"varscanner/api/models/dtos"
)

/*
	Utility functions to facillitate returning error responses to HTTP clients
*/

// -- Simplest: 1 error with message
func CreateSimpleBadRequest(message string) dtos.GeneralErrorResponseDto {
	return dtos.GeneralErrorResponseDto{
		Code:      400,
		Message:   "Bad Request",
		Timestamp: time.Now(),
		Errors: []dtos.GeneralError{
			{
				Message: message,
			},
		},
	}
}

func CreateSimpleInternalServerError(message string) dtos.GeneralErrorResponseDto {
	return dtos.GeneralErrorResponseDto{
		Code:      500,
		Message:   "Internal Server Error",
		Timestamp: time.Now(),
		Errors: []dtos.GeneralError{
			{
				Message: message,
			},
		},
	}
}

// -- Schema validation: 1 error per offending field
func CreateValidationError(fieldErrors []dtos.GeneralError) dtos.GeneralErrorResponseDto {
	return dtos.GeneralErrorResponseDto{
		Code:      422,
		Message:   "Unprocessable Entity",
		Timestamp: time.Now(),
		Errors:    fieldErrors,
	}
}
