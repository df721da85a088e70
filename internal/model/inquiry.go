package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Inquiry struct {
	ID        string    `bson:"_id" gorm:"type:varchar(36);primaryKey"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Address   string    `bson:"address"`
	PhoneNo   string    `bson:"phoneNo"`
	Message   string    `bson:"message" gorm:"type:text"`
	CreatedAt time.Time `bson:"createdAt" gorm:"index"`
}

func (i *Inquiry) BeforeCreate(tx *gorm.DB) (err error) {
	i.Stamp(time.Now())
	return
}

func (i *Inquiry) Stamp(now time.Time) {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
}
