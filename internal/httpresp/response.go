package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PaginatedResponse is the envelope for cursor-paginated lists.
// next_cursor is omitted on the final page.
type PaginatedResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
	Limit      int    `json:"limit"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func Paginated[T any](c *gin.Context, items []T, nextCursor string, limit int) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, PaginatedResponse[T]{
		Items:      items,
		NextCursor: nextCursor,
		Limit:      limit,
	})
}
