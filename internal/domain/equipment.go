package domain

import "time"

// Equipment is an inventory record. Name is the join key that project usage
// entries point at, so it carries a uniqueness constraint.
type Equipment struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"uniqueIndex"`
	Qty       int       `json:"qty"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
