package models

import "time"

// Post is a single published message owned by exactly one account.
type Post struct {
	ID        string `json:"id" gorm:"primaryKey"`
	AccountID string `json:"-" gorm:"index"`

	// Column names follow the original document layout: the body text
	// is stored under "name".
	Body     string `json:"name" gorm:"column:name"`
	Username string `json:"username"`
	ImageURL string `json:"image_url"`

	// Date is assigned by the server at creation and is the sole
	// ordering key. Edits never touch it.
	Date time.Time `json:"date" gorm:"index"`

	UpdatedAt time.Time `json:"-"`
}
