package api

import (
	"github.com/bitmark-inc/mobility-api/store"
	"github.com/bitmark-inc/mobility-api/view"
)

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",

		1100: store.ErrCountryNotFound.Error(),
		1101: view.ErrInvalidSelection.Error(),

		1200: "boundary reference is not loaded",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters = errorJSON(1010)

	errorCountryNotFound  = errorJSON(1100)
	errorInvalidSelection = errorJSON(1101)

	errorBoundaryNotLoaded = errorJSON(1200)
)

type ErrorResponse struct {
	Code    int64  `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
