package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fintrackapp/fintrack/internal/model"
)

// WriteTable renders header + rows through a tabwriter with a styled header
// and a dashed separator, the layout every list command shares.
func WriteTable(out io.Writer, header []string, rows [][]string) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	styled := make([]string, len(header))
	dashes := make([]string, len(header))
	for i, h := range header {
		styled[i] = HeaderStyle.Render(h)
		dashes[i] = strings.Repeat("-", len(h)+2)
	}
	fmt.Fprintln(w, strings.Join(styled, "\t"))
	fmt.Fprintln(w, strings.Join(dashes, "\t"))

	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
}

// FormatAmount renders an amount with the user's currency symbol, colored by
// transaction direction.
func FormatAmount(amount float64, currency model.Currency, txType model.TransactionType) string {
	text := fmt.Sprintf("%s%.2f", currency.Symbol, amount)
	if txType == model.TypeIncome {
		return IncomeStyle.Render("+" + text)
	}
	return ExpenseStyle.Render("-" + text)
}

// FormatMoney renders a plain amount with the user's currency symbol.
func FormatMoney(amount float64, currency model.Currency) string {
	return fmt.Sprintf("%s%.2f", currency.Symbol, amount)
}
