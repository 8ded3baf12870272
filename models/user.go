package models

import (
	"errors"
	"strings"

	"blog/db"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	Username  string `gorm:"type:varchar(150);index:uniq_username,unique"`
	Name      string `gorm:"type:varchar(150)"`
	Password  string `gorm:"type:varchar(128)"`
}

type UserInput struct {
	Username string `validate:"required,max=150"`
	Name     string `validate:"max=150"`
	Password string `validate:"required,min=8,max=72"`
}

// PasswordCost is the bcrypt work factor, tests lower it to bcrypt.MinCost
var PasswordCost = bcrypt.DefaultCost

func UserCreate(in UserInput) (u User, err error) {
	in.Username = strings.TrimSpace(in.Username)
	if err = validateInput(in); err != nil {
		return
	}
	if strings.ContainsAny(in.Username, " /?#") {
		return u, ErrBadUsername
	}
	u.Username = in.Username
	u.Name = in.Name
	if err = u.SetPassword(in.Password); err != nil {
		return
	}
	if err = db.Instance.Create(&u).Error; err != nil {
		// Two signups can both pass the form check, the unique index decides
		if errors.Is(err, gorm.ErrDuplicatedKey) || usernameExists(u.Username) {
			return User{}, ErrUsernameTaken
		}
		return User{}, err
	}
	return u, nil
}

func usernameExists(username string) bool {
	var count int64
	db.Instance.Model(&User{}).Where("username = ?", username).Count(&count)
	return count > 0
}

func (u *User) SetPassword(plainTextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), PasswordCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

func UserLogin(username, plainTextPassword string) (u User, err error) {
	if db.Instance.First(&u, "username = ?", username).Error != nil {
		return User{}, ErrBadLogin
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plainTextPassword)) != nil {
		return User{}, ErrBadLogin
	}
	return u, nil
}

func UserByUsername(username string) (u User, err error) {
	err = db.Instance.First(&u, "username = ?", username).Error
	return
}

// DisplayName falls back to the username when no name is set
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

func (u *User) PostsCount() (count int64, err error) {
	err = db.Instance.Model(&Post{}).Where("user_id = ?", u.ID).Count(&count).Error
	return
}
