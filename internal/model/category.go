package model

// ExpenseCategory is a named grouping for transactions with a display color
// and an ordered set of subcategories.
type ExpenseCategory struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Color         string        `json:"color"`
	SubCategories []SubCategory `json:"subCategories"`
}

// SubCategory is a second-level grouping owned by exactly one category.
// ParentID is a back-reference for lookups, not an ownership pointer.
type SubCategory struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parentId"`
}

// SubCategoryByID scans the category's subcategories for a matching id.
func (c *ExpenseCategory) SubCategoryByID(id string) (SubCategory, bool) {
	for _, sc := range c.SubCategories {
		if sc.ID == id {
			return sc, true
		}
	}
	return SubCategory{}, false
}
