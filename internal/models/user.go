package models

import "time"

const DefaultProfileImage = "assets/images/profile.jpg"

// User is the Users collection document, keyed by email.
type User struct {
	Email        string    `bson:"_id" json:"email"`
	Name         string    `bson:"name" json:"name"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Gender       string    `bson:"gender" json:"gender"`
	Phone        string    `bson:"phone" json:"phone"`
	Bio          string    `bson:"bio" json:"bio"`
	Role         string    `bson:"role" json:"role"`
	Image        string    `bson:"image" json:"image"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserProfile is the projection returned from create and login:
// no password digest, no timestamps.
type UserProfile struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Gender string `json:"gender"`
	Phone  string `json:"phone"`
	Bio    string `json:"bio"`
	Role   string `json:"role"`
	Image  string `json:"image"`
}

func (u *User) Profile() UserProfile {
	return UserProfile{
		Name:   u.Name,
		Email:  u.Email,
		Gender: u.Gender,
		Phone:  u.Phone,
		Bio:    u.Bio,
		Role:   u.Role,
		Image:  u.Image,
	}
}
