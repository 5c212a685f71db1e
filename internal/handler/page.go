package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 25

// PageInfo mirrors the pagination envelope the frontend already consumes.
type PageInfo struct {
	TotalRows   int  `json:"totalRows"`
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	IsFirstPage bool `json:"isFirstPage"`
	IsLastPage  bool `json:"isLastPage"`
}

func pageParams(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	return offset, limit
}

func paginate[T any](items []T, offset, limit int) ([]T, PageInfo) {
	total := len(items)
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	info := PageInfo{
		TotalRows:   total,
		Page:        offset/limit + 1,
		PageSize:    limit,
		IsFirstPage: offset == 0,
		IsLastPage:  offset+limit >= total,
	}
	return items[start:end], info
}
