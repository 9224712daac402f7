package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bar-app/services"
	"github.com/yeremiapane/bar-app/utils"
)

// MenuCategoryController serves categories derived from the catalog; they are
// not stored on their own.
type MenuCategoryController struct {
	Bar *services.Bar
}

func NewMenuCategoryController(bar *services.Bar) *MenuCategoryController {
	return &MenuCategoryController{Bar: bar}
}

// GetAllCategories
func (mcc *MenuCategoryController) GetAllCategories(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "All menu categories", mcc.Bar.MenuCategories())
}
