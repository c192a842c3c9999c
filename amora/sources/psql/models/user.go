package models

import "time"

// User is the member aggregate. Photos are exclusively owned by the
// user and loaded alongside it; handlers mutate them in place and save
// the whole aggregate.
type User struct {
	ID           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"type:varchar(255);uniqueIndex;not null"`
	KnownAs      string    `json:"known_as" gorm:"type:varchar(255)"`
	Gender       string    `json:"gender" gorm:"type:varchar(16);not null"`
	DateOfBirth  time.Time `json:"date_of_birth"`
	City         string    `json:"city" gorm:"type:varchar(255)"`
	Country      string    `json:"country" gorm:"type:varchar(255)"`
	Introduction string    `json:"introduction"`
	LookingFor   string    `json:"looking_for"`
	Interests    string    `json:"interests"`
	Created      time.Time `json:"created" gorm:"autoCreateTime"`
	LastActive   time.Time `json:"last_active" gorm:"autoUpdateTime"`
	Photos       []Photo   `json:"photos" gorm:"constraint:OnDelete:CASCADE"`
}

// Age in full years as of now.
func (u *User) Age() int {
	now := time.Now()
	age := now.Year() - u.DateOfBirth.Year()
	if now.YearDay() < u.DateOfBirth.YearDay() {
		age--
	}
	return age
}

// MainPhoto returns the photo currently flagged as main, or nil.
func (u *User) MainPhoto() *Photo {
	for i := range u.Photos {
		if u.Photos[i].IsMain {
			return &u.Photos[i]
		}
	}
	return nil
}

// PhotoByID returns the user's photo with the given id, or nil.
// Lookups are always scoped to the owning user, so a foreign photo id
// can never resolve.
func (u *User) PhotoByID(id int) *Photo {
	for i := range u.Photos {
		if u.Photos[i].ID == id {
			return &u.Photos[i]
		}
	}
	return nil
}

// Photo is a hosted gallery image. PublicID is the key the hosting
// provider knows the object by; at most one photo per user has IsMain.
type Photo struct {
	ID       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	URL      string `json:"url" gorm:"type:varchar(512)"`
	PublicID string `json:"-" gorm:"type:varchar(255)"`
	IsMain   bool   `json:"is_main"`
	UserID   int    `json:"-" gorm:"index;not null"`
}
