package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data    []T `json:"data"`
	Total   int `json:"total"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(201, data)
}

func List[T any](c *gin.Context, data []T, page, perPage int) {
	c.JSON(200, ListResponse[T]{
		Data:    data,
		Total:   len(data),
		Page:    page,
		PerPage: perPage,
	})
}
