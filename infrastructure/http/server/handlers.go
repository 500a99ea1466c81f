package server

import (
	"errors"
	"flight-parser/domain"
	perrors "flight-parser/errors"
	"flight-parser/infrastructure/http/middleware"
	"net/http"

	"github.com/gin-gonic/gin"
)

type parseResponse struct {
	Status string `json:"status"`
	domain.ParseResult
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) parse(c *gin.Context) {
	var request domain.ParseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		// An unreadable body is handled like an empty one: validation reports the missing field.
		request = domain.ParseRequest{}
	}

	result, err := s.parser.Parse(c.Request.Context(), request)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, parseResponse{Status: "ok", ParseResult: result})
}

func (s *Server) writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	status, message := classify(err)
	if status == http.StatusInternalServerError {
		s.log.Error("Parse request failed", "request_id", middleware.GetRequestID(c), "error", err)
	}
	c.JSON(status, gin.H{"error": message})
}

// classify maps a service error onto an HTTP status and the message shown to the caller.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, perrors.ErrInvalidInput),
		errors.Is(err, perrors.ErrDownload),
		errors.Is(err, perrors.ErrEmptyResult):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, perrors.ErrUnauthorized):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, perrors.ErrMissingAPIKey),
		errors.Is(err, perrors.ErrKeyResolution),
		errors.Is(err, perrors.ErrDecode):
		return http.StatusInternalServerError, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
