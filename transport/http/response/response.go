package response

import (
	"encoding/json"
	"net/http"
	"staybook/shared/constant"
	"staybook/shared/failure"
	"staybook/shared/logger"
)

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends the payload as-is; the mock API serves bare arrays and
// objects rather than an envelope.
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, jsonPayload)
}

// WithError sends a response with an error message, the status code taken
// from the failure. Method-not-allowed failures also set the Allow header.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	if allow := failure.GetAllow(err); allow != "" {
		writer.Header().Set(constant.ResponseHeaderAllow, allow)
	}

	response(writer, code, Error{Error: &errMsg})
}

// MethodNotAllowedHandler rejects any request reaching it with a 405 carrying
// the route's single permitted method.
func MethodNotAllowedHandler(allow string) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		WithError(writer, failure.MethodNotAllowed(request.Method, allow))
	}
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
