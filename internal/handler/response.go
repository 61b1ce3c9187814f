package handler

import "github.com/gin-gonic/gin"

// APIResponse is the envelope wrapped around every successful response
type APIResponse struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// APIErrorResponse is the envelope wrapped around every error response
type APIErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

func respond(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, APIResponse{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

func respondError(c *gin.Context, status int, message string, errs ...string) {
	if errs == nil {
		errs = []string{}
	}
	c.JSON(status, APIErrorResponse{
		StatusCode: status,
		Message:    message,
		Success:    false,
		Errors:     errs,
	})
}
