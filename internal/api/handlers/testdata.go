package handlers

import (
	"errors"
	"io"
	"net/http"

	"sellerops/internal/api/auth"
	"sellerops/internal/api/fakedata"

	"github.com/gin-gonic/gin"
)

type TestDataHandler struct {
	populator Populator
}

func NewTestDataHandler(p Populator) *TestDataHandler {
	return &TestDataHandler{populator: p}
}

type populateRequest struct {
	Seed      uint64 `json:"seed"`
	Items     int    `json:"items" binding:"min=0"`
	Orders    int    `json:"orders" binding:"min=0"`
	Questions int    `json:"questions" binding:"min=0"`
}

// Populate fills the session account with generated data. The body is optional.
// POST /test-data/populate
func (h *TestDataHandler) Populate(c *gin.Context) {
	var req populateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "details": err.Error()})
		return
	}

	sum, err := h.populator.Populate(c.Request.Context(), auth.AccountID(c), fakedata.Options{
		Seed:      req.Seed,
		Items:     req.Items,
		Orders:    req.Orders,
		Questions: req.Questions,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sum)
}
