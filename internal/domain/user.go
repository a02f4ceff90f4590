package domain

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username" validate:"required"`
	Name         string `json:"name" validate:"required"`
	PhoneNumber  string `json:"phonenumber"`
	Address      string `json:"address"`
	PasswordHash string `json:"-"`
	Points       int    `json:"points"`
	Rank         int    `json:"rank"`
	ProfileImage string `json:"profileImage,omitempty"`
	Staff        bool   `json:"staff"`
	Admin        bool   `json:"admin"`
}
