// Package pagination implements cursor pagination: the page boundary is
// "everything with id greater than the cursor", never a numeric offset.
package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params carry the cursor (id of the last item from the previous page)
// and the page size, already clamped.
type Params struct {
	Cursor string
	Limit  int
}

// FromQuery reads cursor/limit query params. The limit is clamped
// server-side regardless of what the caller asked for.
func FromQuery(c *gin.Context) Params {
	limit := DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	return Params{
		Cursor: c.Query("cursor"),
		Limit:  Clamp(limit),
	}
}

func Clamp(limit int) int {
	if limit < 1 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Page trims a limit+1 result set down to one page. If the extra row is
// present, nextCursor is the id of the last row kept; otherwise it is
// empty and the listing is exhausted.
func Page[T any](rows []T, limit int, id func(T) string) (items []T, nextCursor string) {
	if len(rows) > limit {
		items = rows[:limit]
		return items, id(items[len(items)-1])
	}
	return rows, ""
}
