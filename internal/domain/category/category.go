package category

// Category is a top-level listing category
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PropertyValue is one selectable value under a property definition
type PropertyValue struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

// Property is a property definition attached to a sub-category,
// e.g. "Size" with values XS/SM/LG
type Property struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	Values []PropertyValue `json:"values"`
}

// SubCategory is a second-level category carrying the property
// definitions selectable for listings underneath it
type SubCategory struct {
	ID             int64      `json:"id"`
	CategoryID     int64      `json:"category_id"`
	Name           string     `json:"name"`
	PropertyValues []Property `json:"property_values"`
}

// HasProperty reports whether the given property belongs to this sub-category.
// The only invariant on reference data: a selection must belong to the
// currently chosen parent.
func (s *SubCategory) HasProperty(propertyID int64) bool {
	for _, p := range s.PropertyValues {
		if p.ID == propertyID {
			return true
		}
	}
	return false
}
