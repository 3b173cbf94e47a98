package models

// FoodItem is a catalog document. Options carries the serving-size to
// price map(s) the frontend menu expects.
type FoodItem struct {
	ID           string              `bson:"_id,omitempty" json:"_id"`
	Name         string              `bson:"name" json:"name"`
	CategoryName string              `bson:"CategoryName" json:"CategoryName"`
	Img          string              `bson:"img" json:"img"`
	Options      []map[string]string `bson:"options,omitempty" json:"options"`
	Description  string              `bson:"description,omitempty" json:"description"`
}

// FoodCategory is one menu section header.
type FoodCategory struct {
	ID           string `bson:"_id,omitempty" json:"_id"`
	CategoryName string `bson:"CategoryName" json:"CategoryName"`
}
