package mediator

import (
	"github.com/pkg/errors"
)

var (
	//ErrHandlerNotFound when there is no handler registered for request type
	ErrHandlerNotFound = errors.New("handler is not found")

	//ErrHandlerAlreadyRegistered when request type already has a handler
	ErrHandlerAlreadyRegistered = errors.New("handler is already registered")

	//ErrNilRequest when nil request is sent
	ErrNilRequest = errors.New("request is nil")

	//ErrUnexpectedResponse when response is not of type expected by caller
	ErrUnexpectedResponse = errors.New("unexpected response type")
)
