package office

// Office is a brokerage branch. Agents belong to exactly one office.
type Office struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
}
