package model

// DefaultCategories is the category set seeded on first run when no stored
// categories exist. Returned as a fresh copy so callers can mutate freely.
func DefaultCategories() []ExpenseCategory {
	return []ExpenseCategory{
		{
			ID: "1", Name: "Housing", Color: "#4f46e5",
			SubCategories: []SubCategory{
				{ID: "1-1", Name: "Rent", ParentID: "1"},
				{ID: "1-2", Name: "Mortgage", ParentID: "1"},
				{ID: "1-3", Name: "Property Taxes", ParentID: "1"},
				{ID: "1-4", Name: "Home Maintenance", ParentID: "1"},
			},
		},
		{
			ID: "2", Name: "Food", Color: "#10b981",
			SubCategories: []SubCategory{
				{ID: "2-1", Name: "Groceries", ParentID: "2"},
				{ID: "2-2", Name: "Dining Out", ParentID: "2"},
				{ID: "2-3", Name: "Snacks & Beverages", ParentID: "2"},
			},
		},
		{
			ID: "3", Name: "Transportation", Color: "#f59e0b",
			SubCategories: []SubCategory{
				{ID: "3-1", Name: "Fuel", ParentID: "3"},
				{ID: "3-2", Name: "Public Transport", ParentID: "3"},
				{ID: "3-3", Name: "Car Maintenance", ParentID: "3"},
				{ID: "3-4", Name: "Taxis & Ridesharing", ParentID: "3"},
			},
		},
		{
			ID: "4", Name: "Entertainment", Color: "#ef4444",
			SubCategories: []SubCategory{
				{ID: "4-1", Name: "Movies & Shows", ParentID: "4"},
				{ID: "4-2", Name: "Games", ParentID: "4"},
				{ID: "4-3", Name: "Streaming Services", ParentID: "4"},
				{ID: "4-4", Name: "Events & Concerts", ParentID: "4"},
			},
		},
		{
			ID: "5", Name: "Utilities", Color: "#8b5cf6",
			SubCategories: []SubCategory{
				{ID: "5-1", Name: "Electricity", ParentID: "5"},
				{ID: "5-2", Name: "Water", ParentID: "5"},
				{ID: "5-3", Name: "Internet & Cable", ParentID: "5"},
				{ID: "5-4", Name: "Gas", ParentID: "5"},
			},
		},
		{
			ID: "6", Name: "Health", Color: "#f87171",
			SubCategories: []SubCategory{
				{ID: "6-1", Name: "Doctor Visits", ParentID: "6"},
				{ID: "6-2", Name: "Medication", ParentID: "6"},
				{ID: "6-3", Name: "Health Insurance", ParentID: "6"},
				{ID: "6-4", Name: "Gym & Fitness", ParentID: "6"},
			},
		},
		{
			ID: "7", Name: "Insurance", Color: "#fbbf24",
			SubCategories: []SubCategory{
				{ID: "7-1", Name: "Health Insurance", ParentID: "7"},
				{ID: "7-2", Name: "Car Insurance", ParentID: "7"},
				{ID: "7-3", Name: "Home Insurance", ParentID: "7"},
				{ID: "7-4", Name: "Life Insurance", ParentID: "7"},
			},
		},
		{
			ID: "8", Name: "Personal", Color: "#6ee7b7",
			SubCategories: []SubCategory{
				{ID: "8-1", Name: "Clothing", ParentID: "8"},
				{ID: "8-2", Name: "Beauty & Grooming", ParentID: "8"},
				{ID: "8-3", Name: "Subscriptions", ParentID: "8"},
			},
		},
		{
			ID: "9", Name: "Salary", Color: "#f472b6",
			SubCategories: []SubCategory{
				{ID: "9-1", Name: "Base Salary", ParentID: "9"},
				{ID: "9-2", Name: "Bonuses", ParentID: "9"},
				{ID: "9-3", Name: "Overtime Pay", ParentID: "9"},
			},
		},
		{
			ID: "10", Name: "Investment Returns", Color: "#34d399",
			SubCategories: []SubCategory{
				{ID: "10-1", Name: "Stocks", ParentID: "10"},
				{ID: "10-2", Name: "Bonds", ParentID: "10"},
				{ID: "10-3", Name: "Real Estate", ParentID: "10"},
			},
		},
		{
			ID: "11", Name: "Dividends", Color: "#6b7280",
			SubCategories: []SubCategory{
				{ID: "11-1", Name: "Stock Dividends", ParentID: "11"},
				{ID: "11-2", Name: "Mutual Fund Dividends", ParentID: "11"},
			},
		},
		{
			ID: "12", Name: "Profit", Color: "#6b7280",
			SubCategories: []SubCategory{
				{ID: "12-1", Name: "Business Profit", ParentID: "12"},
				{ID: "12-2", Name: "Side Hustles", ParentID: "12"},
			},
		},
	}
}
