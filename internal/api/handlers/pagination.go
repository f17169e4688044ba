package handlers

import (
	"fmt"

	"sellerops/internal/api/domain/page"

	"github.com/gin-gonic/gin"
)

type pageParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func bindPage(c *gin.Context) (page.Page, error) {
	var params pageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return page.Page{}, fmt.Errorf("%w: %v", page.ErrInvalid, err)
	}
	return page.New(params.Limit, params.Offset)
}
