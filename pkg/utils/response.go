package utils

import "github.com/gin-gonic/gin"

// Response is the envelope every endpoint answers with.
type Response struct {
	Errors    bool   `json:"errors"`
	Message   string `json:"message"`
	TotalData *int   `json:"totalData,omitempty"`
	Data      any    `json:"data,omitempty"`
}

// ListResponse is the directory listing envelope; Card carries the optional
// random sample.
type ListResponse struct {
	Errors    bool   `json:"errors"`
	Message   string `json:"message"`
	TotalData int    `json:"totalData"`
	Data      any    `json:"data"`
	Card      any    `json:"card,omitempty"`
}

func SuccessResponse(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{
		Errors:  false,
		Message: message,
		Data:    data,
	})
}

func PagedResponse(c *gin.Context, status int, message string, data any, total int) {
	c.JSON(status, Response{
		Errors:    false,
		Message:   message,
		TotalData: &total,
		Data:      data,
	})
}

func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Errors:  true,
		Message: message,
	})
}

// ArticleListResponse keeps the article listing's `result` field name.
type ArticleListResponse struct {
	Errors    bool   `json:"errors"`
	Result    any    `json:"result"`
	TotalData int    `json:"totalData"`
	Message   string `json:"message"`
}

// ArticleDetailResponse carries an optional related article in RandomItem.
type ArticleDetailResponse struct {
	Errors     bool   `json:"errors"`
	Data       any    `json:"data"`
	RandomItem any    `json:"randomItem,omitempty"`
	Message    string `json:"message"`
}

// ListingResponse answers a directory page; a nil card is omitted.
func ListingResponse(c *gin.Context, status int, message string, data any, total int, card any) {
	resp := ListResponse{
		Errors:    false,
		Message:   message,
		TotalData: total,
		Data:      data,
	}
	if card != nil {
		resp.Card = card
	}
	c.JSON(status, resp)
}
