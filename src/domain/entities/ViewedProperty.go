package entities

import "time"

type ViewedProperty struct {
	Property
	ViewedAt time.Time `json:"viewedAt"`
}

func (v ViewedProperty) Clone() ViewedProperty {
	return ViewedProperty{Property: v.Property.Clone(), ViewedAt: v.ViewedAt}
}
