package models

// Store is a physical location. Read-only after seeding.
type Store struct {
	StoreID     int     `json:"store_id" gorm:"primaryKey;autoIncrement:false"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	IsOpen      bool    `json:"is_open" gorm:"default:true"`
	ReviewScore float64 `json:"review_score" gorm:"default:0"`
}
