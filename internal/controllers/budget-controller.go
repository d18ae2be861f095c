package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trishareddy/grocery-budget-api/internal/services"
)

// BudgetController handles HTTP requests related to budgets. Budgets
// have no update endpoint and the period string is accepted as-is.
type BudgetController interface {
	GetAllBudgets(c *gin.Context)
	GetBudgetByID(c *gin.Context)
	CreateBudget(c *gin.Context)
	DeleteBudget(c *gin.Context)
}

type budgetController struct {
	service services.BudgetService
}

// NewBudgetController creates a new instance of BudgetController
func NewBudgetController(service services.BudgetService) *budgetController {
	return &budgetController{service: service}
}

// GetAllBudgets godoc
// @Summary List budgets
// @Tags budgets
// @Produce json
// @Success 200 {array} models.Budget
// @Security BearerAuth
// @Router /api/budgets [get]
func (bc *budgetController) GetAllBudgets(ctx *gin.Context) {
	budgets, err := bc.service.GetAllBudgets()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve budgets"})
		return
	}
	ctx.JSON(http.StatusOK, budgets)
}

// CreateBudget godoc
// @Summary Create a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body object{amount=number,period=string} true "Budget fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/budgets [post]
func (bc *budgetController) CreateBudget(ctx *gin.Context) {
	var req struct {
		Amount *float64 `json:"amount" binding:"required"`
		Period string   `json:"period" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	budget, err := bc.service.CreateBudget(*req.Amount, req.Period)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create budget"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "id": budget.ID})
}

// GetBudgetByID godoc
// @Summary Get budget by ID
// @Tags budgets
// @Produce json
// @Param id path int true "Budget ID"
// @Success 200 {object} models.Budget
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/budgets/{id} [get]
func (bc *budgetController) GetBudgetByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid budget ID"})
		return
	}

	budget, err := bc.service.GetBudgetByID(id)
	if err != nil {
		if err == services.ErrNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve budget"})
		return
	}
	ctx.JSON(http.StatusOK, budget)
}

// DeleteBudget godoc
// @Summary Delete a budget
// @Tags budgets
// @Produce json
// @Param id path int true "Budget ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/budgets/{id} [delete]
func (bc *budgetController) DeleteBudget(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid budget ID"})
		return
	}

	if err := bc.service.DeleteBudget(id); err != nil {
		if err == services.ErrNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete budget"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
