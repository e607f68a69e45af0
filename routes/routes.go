package routes

import (
	"database/sql"

	"github.com/Mohajiro/moneyponey/handlers"
	"github.com/Mohajiro/moneyponey/services"
	"github.com/Mohajiro/moneyponey/store"

	"github.com/gin-gonic/gin"
)

// SetupExpenseRoutes wires the expense CRUD, summary and category
// routes. The publisher may be nil when no broker is configured.
func SetupExpenseRoutes(rg *gin.RouterGroup, db *sql.DB, events services.EventPublisher, ws *handlers.WSHandler) {
	expenseService := services.NewExpenseService(store.NewPostgresStore(db), events)

	h := handlers.NewExpenseHandler(expenseService, ws)

	rg.GET("/expenses", h.ListExpenses)
	rg.POST("/expenses", h.CreateExpense)
	rg.PUT("/expenses/:id", h.UpdateExpense)
	rg.DELETE("/expenses/:id", h.DeleteExpense)

	rg.GET("/expenses/summary", h.GetSummary)
	rg.GET("/categories", h.ListCategories)
}
