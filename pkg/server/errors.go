package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/vertexcover/pkg/cover"
	"github.com/matzehuels/vertexcover/pkg/errors"
	"github.com/matzehuels/vertexcover/pkg/graph"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code  errors.Code `json:"code"`
	Error string      `json:"error"`
}

// classify assigns a code to errors that do not carry one yet.
func classify(err error) *errors.Error {
	var coded *errors.Error
	if stderrors.As(err, &coded) {
		return coded
	}
	var verrs validator.ValidationErrors
	switch {
	case stderrors.As(err, &verrs):
		return errors.New(errors.ErrCodeInvalidInput, "%s", describe(verrs))
	case stderrors.Is(err, cover.ErrBudgetExceeded):
		return errors.Wrap(errors.ErrCodeBudgetExceeded, err, "search did not finish")
	case stderrors.Is(err, cover.ErrInfeasible):
		return errors.Wrap(errors.ErrCodeInfeasible, err, "no cover within bound")
	case stderrors.Is(err, cover.ErrInvalidBound), stderrors.Is(err, cover.ErrInvalidDepth):
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid search options")
	case graph.IsPrecondition(err):
		return errors.Wrap(errors.ErrCodePrecondition, err, "precondition failed")
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.Wrap(errors.ErrCodeTimeout, err, "request timed out")
	default:
		return errors.Wrap(errors.ErrCodeInternal, err, "internal error")
	}
}

// describe turns validator errors into one line per failing field.
func describe(verrs validator.ValidationErrors) string {
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		if fe.Param() != "" {
			msgs[i] = fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
		} else {
			msgs[i] = fmt.Sprintf("%s is %s", fe.Field(), fe.Tag())
		}
	}
	return strings.Join(msgs, "; ")
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	e := classify(err)
	status := errors.HTTPStatus(e.Code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", middleware.GetReqID(r.Context()), "code", e.Code, "err", err)
	} else {
		s.logger.Debug("request rejected", "id", middleware.GetReqID(r.Context()), "code", e.Code, "err", err)
	}
	writeJSON(w, status, errorBody{Code: e.Code, Error: errors.UserMessage(e)})
}
