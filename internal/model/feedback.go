package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Feedback struct {
	ID          string    `bson:"_id" gorm:"type:varchar(36);primaryKey"`
	Name        string    `bson:"name" gorm:"not null"`
	Email       string    `bson:"email" gorm:"not null"`
	Message     string    `bson:"message" gorm:"type:text;not null"`
	SubmittedOn time.Time `bson:"submittedOn" gorm:"not null;index"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) (err error) {
	f.Stamp(time.Now())
	return
}

// Stamp fills the server-assigned fields.
func (f *Feedback) Stamp(now time.Time) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.SubmittedOn.IsZero() {
		f.SubmittedOn = now
	}
}
