package expense

import (
	"strconv"
	"time"

	"expenses-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Fields are pointers so a missing field can be told apart from a
// zero value; every one is required.
type CreateExpenseRequest struct {
	Amount      *int64  `json:"amount" query:"amount"`
	Category    *string `json:"category" query:"category"`
	Description *string `json:"description" query:"description"`
	ExpenseDate *string `json:"expense_date" query:"expense_date"`
}

type ExpenseResponse struct {
	ID          uint   `json:"id"`
	Amount      int64  `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// GET /expenses?category=...&sort=date_desc
//
// Both query parameters are optional: an empty category means no
// filter, and any sort value other than "date_desc" means no explicit
// ordering.
func ListExpensesHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := db.WithContext(c.Context()).Model(&models.Expense{})

		if category := c.Query("category"); category != "" {
			dbq = dbq.Where("category = ?", category)
		}
		if c.Query("sort") == "date_desc" {
			dbq = dbq.Order("date DESC, id DESC")
		}

		var rows []models.Expense
		if err := dbq.Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list expenses")
		}

		resp := make([]ExpenseResponse, 0, len(rows))
		for _, r := range rows {
			resp = append(resp, ExpenseResponse{
				ID:          r.ID,
				Amount:      r.Amount,
				Category:    r.Category,
				Description: r.Description,
				Date:        r.Date.Format(dateLayout),
			})
		}

		return c.JSON(resp)
	}
}

// POST /expenses
func CreateExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := parseCreateRequest(c)
		if err != nil {
			return err
		}

		switch {
		case body.Amount == nil:
			return fiber.NewError(fiber.StatusUnprocessableEntity, "amount is required and must be an integer in minor units")
		case body.Category == nil:
			return fiber.NewError(fiber.StatusUnprocessableEntity, "category is required")
		case body.Description == nil:
			return fiber.NewError(fiber.StatusUnprocessableEntity, "description is required")
		case body.ExpenseDate == nil:
			return fiber.NewError(fiber.StatusUnprocessableEntity, "expense_date is required")
		}

		d, err := time.Parse(dateLayout, *body.ExpenseDate)
		if err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "expense_date must be a 'YYYY-MM-DD' date")
		}

		exp := models.Expense{
			Amount:      *body.Amount,
			Category:    *body.Category,
			Description: *body.Description,
			Date:        d,
		}

		if err := db.WithContext(c.Context()).Create(&exp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not record expense")
		}

		return c.JSON(fiber.Map{
			"message": "Expense recorded successfully",
			"id":      exp.ID,
		})
	}
}

// DELETE /expenses/:expense_id
//
// The delete is a single statement keyed on the affected-row count, so
// two concurrent deletes of one id cannot both succeed.
func DeleteExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("expense_id"), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "expense_id must be an integer")
		}

		res := db.WithContext(c.Context()).Delete(&models.Expense{}, id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete expense")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Expense not found")
		}

		return c.JSON(fiber.Map{"message": "Deleted successfully"})
	}
}

// parseCreateRequest reads the create parameters from the JSON body
// when one is present, otherwise from the query string (the service
// historically accepted them there).
func parseCreateRequest(c *fiber.Ctx) (CreateExpenseRequest, error) {
	var body CreateExpenseRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return body, fiber.NewError(fiber.StatusUnprocessableEntity, "Request body is not valid JSON for an expense")
		}
		return body, nil
	}
	if err := c.QueryParser(&body); err != nil {
		return body, fiber.NewError(fiber.StatusUnprocessableEntity, "Query parameters are not a valid expense")
	}
	return body, nil
}
