package model

// NotificationSettings gates which user-visible alerts the store may fire.
type NotificationSettings struct {
	BudgetAlerts bool `json:"budgetAlerts"`
	DailySummary bool `json:"dailySummary"`
}

// Theme is the stored display preference. The store persists it verbatim;
// rendering is not this layer's concern.
type Theme string

const (
	// ThemeLight forces the light palette.
	ThemeLight Theme = "light"
	// ThemeDark forces the dark palette.
	ThemeDark Theme = "dark"
	// ThemeSystem follows the platform preference.
	ThemeSystem Theme = "system"
)

// Valid reports whether the theme is one of the known literals.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeSystem
}

// Currency is the user's display currency.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// DefaultCurrency is used until the user picks one.
var DefaultCurrency = Currency{Code: "USD", Symbol: "$", Name: "US Dollar"}
