package models

import "time"

// WorkingHours holds the salon's opening window for one weekday
// (0 = Sunday). Open and Close are "HH:MM" wall-clock strings.
type WorkingHours struct {
	ID uint `gorm:"primaryKey" json:"-"`

	Weekday  int    `gorm:"not null;uniqueIndex" json:"weekday"`
	Open     string `gorm:"column:open_time;size:5;not null" json:"open"`
	Close    string `gorm:"column:close_time;size:5;not null" json:"close"`
	IsClosed bool   `gorm:"not null" json:"is_closed"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
