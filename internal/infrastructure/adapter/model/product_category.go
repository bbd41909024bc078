package model

// ProductCategory links products to categories. Rows disappear with either side.
type ProductCategory struct {
	ProductID  uint64    `gorm:"primaryKey"`
	CategoryID uint64    `gorm:"primaryKey;index"`
	Product    *Product  `gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:CASCADE"`
	Category   *Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for ProductCategory
func (ProductCategory) TableName() string {
	return "product_categories"
}
