package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bar-app/kds"
	"github.com/yeremiapane/bar-app/models"
	"github.com/yeremiapane/bar-app/services"
	"github.com/yeremiapane/bar-app/utils"
)

type MenuController struct {
	Bar *services.Bar
}

func NewMenuController(bar *services.Bar) *MenuController {
	return &MenuController{Bar: bar}
}

// menuInput accepts price as number or pt-BR text ("12,90")
type menuInput struct {
	Name        *string     `json:"name"`
	Category    *string     `json:"category"`
	Price       interface{} `json:"price"`
	Description *string     `json:"description"`
	ImageURL    *string     `json:"imageUrl"`
}

func (in menuInput) patch() models.MenuItemPatch {
	p := models.MenuItemPatch{
		Name:        trimmed(in.Name),
		Category:    trimmed(in.Category),
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}
	if in.Price != nil {
		price := utils.ParseAmount(in.Price)
		p.Price = &price
	}
	return p
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// GetAllMenus -> katalog, bisa difilter ?category=
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of menus", mc.Bar.SortedMenu(c.Query("category")))
}

func (mc *MenuController) GetMenu(c *gin.Context) {
	item, ok := mc.Bar.MenuItem(c.Param("id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, services.ErrMenuItemNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu detail", item)
}

// CreateMenu
func (mc *MenuController) CreateMenu(c *gin.Context) {
	var in menuInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name is required"))
		return
	}

	item := mc.Bar.AddMenuItem(in.patch().Apply(models.MenuItem{}))

	kds.Broadcast(kds.EventMenuUpdate, gin.H{"action": "create", "menu": item})
	utils.Info().Printf("Menu created: %s (%s)", item.Name, utils.FormatCurrency(item.Price))
	utils.RespondJSON(c, http.StatusCreated, "Menu created", item)
}

// UpdateMenu -> hanya field yang dikirim yang diubah
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	var in menuInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name cannot be empty"))
		return
	}

	item, err := mc.Bar.UpdateMenuItem(c.Param("id"), in.patch())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	kds.Broadcast(kds.EventMenuUpdate, gin.H{"action": "update", "menu": item})
	utils.Info().Printf("Menu updated: %s", item.ID)
	utils.RespondJSON(c, http.StatusOK, "Menu updated", item)
}

// DeleteMenu
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	id := c.Param("id")
	if err := mc.Bar.DeleteMenuItem(id); err != nil {
		respondServiceError(c, err)
		return
	}

	kds.Broadcast(kds.EventMenuUpdate, gin.H{"action": "delete", "menu_id": id})
	utils.Info().Printf("Menu deleted: %s", id)
	utils.RespondJSON(c, http.StatusOK, "Menu deleted", nil)
}
