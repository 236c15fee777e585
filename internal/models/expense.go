package models

import "time"

// Expense is a single recorded expense. Amount is the monetary value
// in the currency's minor unit (100.50 -> 10050), never a fraction.
type Expense struct {
	ID          uint      `gorm:"primaryKey"`
	Amount      int64     `gorm:"not null"`
	Category    string    `gorm:"size:100;index"`
	Description string    `gorm:"size:255"`
	Date        time.Time `gorm:"index;not null"`
}
