package models

// Review is a public testimonial. Date is a locale-formatted display string
// chosen by the caller, not a timestamp (the site renders it verbatim).
type Review struct {
	ID       string `json:"id" gorm:"primaryKey"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating" gorm:"check:rating >= 1 AND rating <= 5"`
	Comment  string `json:"comment" gorm:"type:text"`
	Date     string `json:"date"`
	Location string `json:"location"`
}
