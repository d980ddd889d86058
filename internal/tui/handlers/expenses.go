package handlers

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"dayboard/internal/constants"
	"dayboard/internal/dateutil"
	"dayboard/internal/models"
	"dayboard/internal/tui/components/budget"
	"dayboard/internal/tui/state"
)

// HandleBudgetMsgs reacts to messages emitted by the budget widget. It
// reports whether the message was consumed.
func HandleBudgetMsgs(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case budget.AddExpenseMsg:
		m.ExpenseForm = &state.ExpenseFormModel{Category: models.CategoryFood}
		m.Form = NewExpenseForm(m.ExpenseForm)
		m.PreviousState = m.State
		m.State = constants.StateAddExpense
		return true, m.Form.Init()
	case budget.DeleteExpenseMsg:
		m.PendingExpenseID = msg.ID
		m.PreviousState = m.State
		m.State = constants.StateConfirmDeleteExpense
		return true, nil
	}
	return false, nil
}

func HandleExpenseFormState(m *state.Model, msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.ClearForm()
		m.State = m.PreviousState
		return nil
	}

	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}

	switch m.Form.State {
	case huh.StateCompleted:
		// Per-field validators already ran; a parse failure here means the
		// form was bypassed somehow, so treat it as a retry.
		amount, err := decimal.NewFromString(m.ExpenseForm.Amount)
		if err != nil {
			m.FormError = "enter a valid amount"
			fm := *m.ExpenseForm
			m.ExpenseForm = &fm
			m.Form = NewExpenseForm(m.ExpenseForm)
			return m.Form.Init()
		}
		m.Expenses = models.AppendExpense(m.Expenses, models.Expense{
			ID:       uuid.NewString(),
			Title:    m.ExpenseForm.Title,
			Amount:   amount,
			Category: m.ExpenseForm.Category,
			Date:     dateutil.Today(),
		})
		persistExpenses(m)
		m.ClearForm()
		m.State = m.PreviousState
	case huh.StateAborted:
		m.ClearForm()
		m.State = m.PreviousState
	}

	return cmd
}
