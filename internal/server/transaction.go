package server

import (
	"net/http"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	txdomain "github.com/dimaswi/pos-emas/internal/transaction/domain"
)

func (s *Server) createDeposit(c *gin.Context) {
	var input txdomain.CreateDepositInput
	if err := c.ShouldBindJSON(&input); err != nil {
		AbortWithError(c, txdomain.ErrEmptyTransaction)
		return
	}

	tx, err := s.transactions.CreateDeposit(c.Request.Context(), input)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

func (s *Server) getTransaction(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}
	tx, err := s.transactions.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

func (s *Server) listTransactions(c *gin.Context) {
	filter := txdomain.ListFilter{
		Kind:   txdomain.Kind(c.Query("kind")),
		Limit:  queryInt(c, "limit", 50),
		Offset: queryInt(c, "offset", 0),
	}
	txs, err := s.transactions.List(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}

func (s *Server) updateDepositItem(c *gin.Context) {
	txID, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}
	itemID, ok := parseID(c, c.Param("itemID"))
	if !ok {
		return
	}

	var input txdomain.UpdateDepositItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
			Error: errorPayload{Type: "invalid_request", Message: "malformed request body"},
		})
		return
	}

	item, err := s.transactions.UpdateDepositItem(c.Request.Context(), txID, itemID, input)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func parseID(c *gin.Context, raw string) (snowflake.ID, bool) {
	id, err := snowflake.ParseString(raw)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
			Error: errorPayload{Type: "invalid_request", Message: "invalid id"},
		})
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
