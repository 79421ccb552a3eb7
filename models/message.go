package models

// Message is a single post on the board.
type Message struct {
	ID      uint   `gorm:"primaryKey;autoIncrement;column:id"`
	Handle  string `gorm:"column:handle;type:text"`
	Content string `gorm:"column:message;type:text"`
}

// TableName overrides the table name used by GORM
func (Message) TableName() string {
	return "messages"
}

// Validate reports ErrValidation when either field is empty.
func (m Message) Validate() error {
	if m.Handle == "" || m.Content == "" {
		return ErrValidation
	}
	return nil
}
