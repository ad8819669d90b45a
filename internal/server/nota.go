package server

import (
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	notadomain "github.com/dimaswi/pos-emas/internal/nota/domain"
)

type printRequest struct {
	Mode notadomain.PrintMode `json:"mode"`
}

func (s *Server) printModes(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}
	options, err := s.nota.Modes(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}

func (s *Server) printNota(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	var req printRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
				Error: errorPayload{Type: "invalid_request", Message: "malformed request body"},
			})
			return
		}
	}

	mode, err := s.resolveMode(c, id, req.Mode)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.nota.Print(c.Request.Context(), id, mode); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"outcome": "started", "mode": mode})
}

func (s *Server) previewNota(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	mode, err := s.resolveMode(c, id, notadomain.PrintMode(c.Query("mode")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	html, err := s.nota.Preview(c.Request.Context(), id, mode)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) archiveNota(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}
	pdf, err := s.nota.ArchivePDF(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// resolveMode enforces the print-mode gate: with more than one item the mode
// must come from the operator; with one item single mode applies without a
// prompt.
func (s *Server) resolveMode(c *gin.Context, id snowflake.ID, requested notadomain.PrintMode) (notadomain.PrintMode, error) {
	if requested != "" {
		if requested != notadomain.ModeSingle && requested != notadomain.ModePerItem {
			return "", notadomain.ErrUnknownMode
		}
		return requested, nil
	}
	options, err := s.nota.Modes(c.Request.Context(), id)
	if err != nil {
		return "", err
	}
	if options.ChoiceRequired {
		return "", notadomain.ErrUnknownMode
	}
	return options.Modes[0], nil
}
