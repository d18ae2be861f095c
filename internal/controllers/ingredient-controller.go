package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/trishareddy/grocery-budget-api/internal/services"
)

// IngredientController handles HTTP requests related to ingredients
type IngredientController interface {
	// GetAllIngredients retrieves all ingredients
	GetAllIngredients(c *gin.Context)
	// GetIngredientByID retrieves an ingredient by its ID
	GetIngredientByID(c *gin.Context)
	// CreateIngredient creates a new ingredient
	CreateIngredient(c *gin.Context)
	// UpdateIngredient partially updates an existing ingredient
	UpdateIngredient(c *gin.Context)
	// DeleteIngredient deletes an ingredient by its ID
	DeleteIngredient(c *gin.Context)
}

type ingredientController struct {
	service services.IngredientService
}

// NewIngredientController creates a new instance of IngredientController
func NewIngredientController(service services.IngredientService) *ingredientController {
	return &ingredientController{service: service}
}

// GetAllIngredients godoc
// @Summary List ingredients
// @Description Get all ingredients
// @Tags ingredients
// @Produce json
// @Success 200 {array} models.Ingredient
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /api/ingredients [get]
func (ic *ingredientController) GetAllIngredients(ctx *gin.Context) {
	ingredients, err := ic.service.GetAllIngredients()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ingredients"})
		return
	}
	ctx.JSON(http.StatusOK, ingredients)
}

// CreateIngredient godoc
// @Summary Create an ingredient
// @Description Create a new ingredient with a unique name
// @Tags ingredients
// @Accept json
// @Produce json
// @Param ingredient body object{name=string,price=number,unit=string} true "Ingredient fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/ingredients [post]
func (ic *ingredientController) CreateIngredient(ctx *gin.Context) {
	// Price is a pointer so a zero price still counts as present
	var req struct {
		Name  string   `json:"name" binding:"required"`
		Price *float64 `json:"price" binding:"required"`
		Unit  string   `json:"unit" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	ingredient, err := ic.service.CreateIngredient(req.Name, *req.Price, req.Unit)
	if err != nil {
		if err == services.ErrIngredientExists {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Ingredient already exists"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ingredient"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "id": ingredient.ID})
}

// GetIngredientByID godoc
// @Summary Get ingredient by ID
// @Tags ingredients
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} models.Ingredient
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/ingredients/{id} [get]
func (ic *ingredientController) GetIngredientByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ingredient ID"})
		return
	}

	ingredient, err := ic.service.GetIngredientByID(id)
	if err != nil {
		if err == services.ErrNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ingredient"})
		return
	}
	ctx.JSON(http.StatusOK, ingredient)
}

// UpdateIngredient godoc
// @Summary Update an ingredient
// @Description Partially update an ingredient; omitted fields keep their prior value
// @Tags ingredients
// @Accept json
// @Produce json
// @Param id path int true "Ingredient ID"
// @Param ingredient body object{name=string,price=number,unit=string} false "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/ingredients/{id} [put]
func (ic *ingredientController) UpdateIngredient(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ingredient ID"})
		return
	}

	var req struct {
		Name  *string  `json:"name"`
		Price *float64 `json:"price"`
		Unit  *string  `json:"unit"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ingredient, err := ic.service.UpdateIngredient(id, services.IngredientUpdate{
		Name:  req.Name,
		Price: req.Price,
		Unit:  req.Unit,
	})
	if err != nil {
		switch err {
		case services.ErrNotFound:
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		case services.ErrIngredientNameTaken:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Ingredient with this name already exists"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ingredient"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      ingredient.ID,
		"name":    ingredient.Name,
		"price":   ingredient.Price,
		"unit":    ingredient.Unit,
	})
}

// DeleteIngredient godoc
// @Summary Delete an ingredient
// @Description Delete an ingredient; meals referencing it lose it from their set
// @Tags ingredients
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/ingredients/{id} [delete]
func (ic *ingredientController) DeleteIngredient(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ingredient ID"})
		return
	}

	if err := ic.service.DeleteIngredient(id); err != nil {
		if err == services.ErrNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ingredient"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// parseIDParam reads the :id path parameter as an unsigned integer
func parseIDParam(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
