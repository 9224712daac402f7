package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.AbortWithStatusJSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
	})
}

// RespondFile mengirim dokumen (pdf/csv). inline=false memaksa download.
func RespondFile(c *gin.Context, contentType, filename string, inline bool, body []byte) {
	disposition := "attachment"
	if inline {
		disposition = "inline"
	}
	c.Header("Content-Disposition", fmt.Sprintf(`%s; filename="%s"`, disposition, filename))
	c.Data(200, contentType, body)
}
