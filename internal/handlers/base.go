package handlers

import (
	"log"
	"net/http"

	"newsdesk/internal/apperr"

	"github.com/gin-gonic/gin"
)

// fail writes the uniform {"msg": ...} error body. Unrecognized failures become
// a 500 and are logged here, at the boundary.
func fail(c *gin.Context, err error) {
	e := apperr.From(err)
	if e.Status >= http.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(e.Status, gin.H{"msg": e.Msg})
}
