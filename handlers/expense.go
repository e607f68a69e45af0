package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mohajiro/moneyponey/models"
	"github.com/Mohajiro/moneyponey/services"
	"github.com/Mohajiro/moneyponey/utils"
)

type ExpenseHandler struct {
	Service *services.ExpenseService
	WS      *WSHandler
}

func NewExpenseHandler(service *services.ExpenseService, ws *WSHandler) *ExpenseHandler {
	return &ExpenseHandler{Service: service, WS: ws}
}

// ListExpenses returns all expenses matching the optional filter triple.
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	expenses, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		utils.SafeError("Failed to list expenses: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// CreateExpense records a new expense and returns the assigned id.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var input models.ExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	id, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		utils.SafeError("Failed to create expense: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense"})
		return
	}

	utils.LogExpenseAction("created", id)
	h.broadcast(services.ExpenseCreated)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateExpense overwrites all fields of the expense matching the id
// in the path.
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense ID"})
		return
	}

	var input models.ExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	found, err := h.Service.Update(c.Request.Context(), id, input)
	if err != nil {
		utils.SafeError("Failed to update expense %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expense"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}

	utils.LogExpenseAction("updated", id)
	h.broadcast(services.ExpenseUpdated)
	c.JSON(http.StatusOK, gin.H{"message": "Expense updated"})
}

// DeleteExpense removes the expense matching the id in the path. An id
// that matches nothing still succeeds.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense ID"})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		utils.SafeError("Failed to delete expense %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		return
	}

	utils.LogExpenseAction("deleted", id)
	h.broadcast(services.ExpenseDeleted)
	c.Status(http.StatusNoContent)
}

// GetSummary returns the per-day chart series and the running total
// for the filtered record set.
func (h *ExpenseHandler) GetSummary(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	summary, err := h.Service.Summary(c.Request.Context(), filter)
	if err != nil {
		utils.SafeError("Failed to build expense summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ListCategories returns the static category enumeration used by the
// client's filter and form selects.
func (h *ExpenseHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.Categories)
}

func (h *ExpenseHandler) broadcast(updateType string) {
	if h.WS != nil {
		h.WS.BroadcastUpdate(updateType)
	}
}

// parseFilter reads the optional (category_id, dateFrom, dateTo)
// triple from the query string. It writes a 400 response and returns
// ok=false when category_id is present but not an integer.
func parseFilter(c *gin.Context) (models.ExpenseFilter, bool) {
	var filter models.ExpenseFilter

	if v := c.Query("category_id"); v != "" {
		categoryID, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
			return filter, false
		}
		filter.CategoryID = categoryID
	}
	filter.DateFrom = c.Query("dateFrom")
	filter.DateTo = c.Query("dateTo")

	return filter, true
}
