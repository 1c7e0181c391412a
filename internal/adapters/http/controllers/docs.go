package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"

	"github.com/rafaelleal24/commerce/internal/adapters/http/handlers"
)

type DocsController struct{}

func NewDocsController() *DocsController {
	return &DocsController{}
}

// Swagger serves the OpenAPI document registered by the generated docs package.
func (dc *DocsController) Swagger(c *gin.Context) {
	doc, err := swag.ReadDoc()
	if err != nil {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "api documentation not registered"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}
