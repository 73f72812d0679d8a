package delivery

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage = 0
	defaultSize = 5
)

func pathID(c *gin.Context) (int64, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id parameter '%s'", idStr)
	}
	return id, nil
}

// queryInt falls back silently on missing, malformed or negative values.
func queryInt(c *gin.Context, name string, fallback int) int {
	value := c.DefaultQuery(name, strconv.Itoa(fallback))
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
