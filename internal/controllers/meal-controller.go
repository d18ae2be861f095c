package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trishareddy/grocery-budget-api/internal/services"
)

// MealController handles HTTP requests related to meals. Meals are
// immutable after creation: there is no update endpoint, only
// delete-and-recreate.
type MealController interface {
	GetAllMeals(c *gin.Context)
	GetMealByID(c *gin.Context)
	CreateMeal(c *gin.Context)
	DeleteMeal(c *gin.Context)
}

type mealController struct {
	service services.MealService
}

// NewMealController creates a new instance of MealController
func NewMealController(service services.MealService) *mealController {
	return &mealController{service: service}
}

// GetAllMeals godoc
// @Summary List meals
// @Description Get all meals with their ingredient objects inlined
// @Tags meals
// @Produce json
// @Success 200 {array} models.Meal
// @Security BearerAuth
// @Router /api/meals [get]
func (mc *mealController) GetAllMeals(ctx *gin.Context) {
	meals, err := mc.service.GetAllMeals()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve meals"})
		return
	}
	ctx.JSON(http.StatusOK, meals)
}

// CreateMeal godoc
// @Summary Create a meal
// @Description Create a meal from a name and a list of ingredient ids; unknown ids are dropped
// @Tags meals
// @Accept json
// @Produce json
// @Param meal body object{name=string,ingredient_ids=[]int} true "Meal fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/meals [post]
func (mc *mealController) CreateMeal(ctx *gin.Context) {
	// ingredient_ids is a pointer so an empty array still counts as present
	var req struct {
		Name          string  `json:"name" binding:"required"`
		IngredientIDs *[]uint `json:"ingredient_ids" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	meal, err := mc.service.CreateMeal(req.Name, *req.IngredientIDs)
	if err != nil {
		if err == services.ErrMealExists {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Meal already exists"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meal"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "id": meal.ID})
}

// GetMealByID godoc
// @Summary Get meal by ID
// @Tags meals
// @Produce json
// @Param id path int true "Meal ID"
// @Success 200 {object} models.Meal
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/meals/{id} [get]
func (mc *mealController) GetMealByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal ID"})
		return
	}

	meal, err := mc.service.GetMealByID(id)
	if err != nil {
		if err == services.ErrNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve meal"})
		return
	}
	ctx.JSON(http.StatusOK, meal)
}

// DeleteMeal godoc
// @Summary Delete a meal
// @Description Delete a meal and its join rows; referenced ingredients are untouched
// @Tags meals
// @Produce json
// @Param id path int true "Meal ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/meals/{id} [delete]
func (mc *mealController) DeleteMeal(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal ID"})
		return
	}

	if err := mc.service.DeleteMeal(id); err != nil {
		if err == services.ErrNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meal"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
