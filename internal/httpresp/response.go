package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ItemsResponse[T any] struct {
	OK    bool `json:"ok"`
	Items []T  `json:"items"`
}

type PageResponse[T any] struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Items []T   `json:"items"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Items wraps a list in the {ok, items} envelope used by the admin API.
// A nil slice is sent as [].
func Items[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, ItemsResponse[T]{OK: true, Items: items})
}

func Page[T any](c *gin.Context, page, limit int, total int64, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, PageResponse[T]{Page: page, Limit: limit, Total: total, Items: items})
}

func Done(c *gin.Context, extra gin.H) {
	body := gin.H{"ok": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}
