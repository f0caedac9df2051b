package models

type User struct {
	Username  string `gorm:"primaryKey" json:"username"`
	Name      string `gorm:"not null" json:"name"`
	AvatarURL string `gorm:"size:1000" json:"avatar_url"`
	Password  string `gorm:"not null" json:"-"` // bcrypt hash, never serialized
}

// PublicUser is the projection returned by the API; the credential stays server-side.
type PublicUser struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

func (u *User) Public() PublicUser {
	return PublicUser{Username: u.Username, Name: u.Name, AvatarURL: u.AvatarURL}
}
