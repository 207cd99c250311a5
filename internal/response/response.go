package response

import "github.com/gin-gonic/gin"

// Envelope is the body shape of every API response.
type Envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    any      `json:"data,omitempty"`
	Token   string   `json:"token,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func OK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// OKWithToken also mirrors the token into the X-TOKEN header so clients
// can pick it up without parsing the body.
func OKWithToken(c *gin.Context, status int, message string, data any, token string) {
	c.Header("X-TOKEN", token)
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
		Token:   token,
	})
}

func Fail(c *gin.Context, status int, message string, errs ...string) {
	c.JSON(status, Envelope{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}
