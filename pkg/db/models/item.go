package models

// Item is a catalog entry. Price and stock bounds are enforced at the
// validation layer before rows reach the database.
type Item struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:text;not null"`
	Price       float64 `gorm:"not null"`
	Description *string `gorm:"type:text"`
	Stock       int     `gorm:"not null;default:0"`
	Category    *string `gorm:"type:text"`
}
