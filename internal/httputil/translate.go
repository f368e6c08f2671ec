package httputil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/blakestevenson/mediacatalog/internal/apierror"
	"github.com/blakestevenson/mediacatalog/internal/problem"
	"github.com/blakestevenson/mediacatalog/internal/validation"
)

const (
	// BoundaryTitle and BoundaryDetail are sent for every generic boundary
	// fault, whatever the underlying error says.
	BoundaryTitle  = "HTTP Error"
	BoundaryDetail = "An HTTP error occurred"
)

// BoundaryError is a routing or protocol level failure raised at the HTTP
// edge, such as an unknown route or a recovered panic.
type BoundaryError struct {
	Status int
	Err    error
}

func (e *BoundaryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("http %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("http %d", e.Status)
}

func (e *BoundaryError) Unwrap() error {
	return e.Err
}

// NewBoundaryError creates a BoundaryError.
func NewBoundaryError(status int, err error) *BoundaryError {
	return &BoundaryError{Status: status, Err: err}
}

// Translate converts any error into the problem document sent to the client.
// Only fixed strings reach the document; err itself is never rendered.
func Translate(err error) *problem.Document {
	var (
		requestErr  *validation.RequestError
		domainErr   *validation.DomainError
		apiErr      *apierror.Error
		boundaryErr *BoundaryError
	)

	switch {
	case errors.As(err, &requestErr):
		return problem.Build(http.StatusUnprocessableEntity,
			problem.WithDetail(apierror.SafeDetail(apierror.CodeValidation)))

	case errors.As(err, &domainErr):
		return problem.Build(http.StatusBadRequest,
			problem.WithDetail(apierror.SafeDetail(apierror.CodeValidation)))

	case errors.As(err, &apiErr):
		return problem.Build(errorStatus(apiErr.Status),
			problem.WithDetail(apierror.SafeDetail(apiErr.Code)))

	case errors.As(err, &boundaryErr):
		return boundaryProblem(errorStatus(boundaryErr.Status))

	default:
		return boundaryProblem(http.StatusInternalServerError)
	}
}

func boundaryProblem(status int) *problem.Document {
	return problem.Build(status,
		problem.WithTitle(BoundaryTitle),
		problem.WithDetail(BoundaryDetail))
}

// errorStatus keeps a status inside the 4xx/5xx range.
func errorStatus(status int) int {
	if status < 400 || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}
