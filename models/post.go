package models

import (
	"errors"
	"strings"

	"blog/db"

	"gorm.io/gorm"
)

type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"index"`
	UpdatedAt int64
	UserID    uint64  `gorm:"index"`
	User      User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID   *uint64 `gorm:"index"`
	Group     *Group  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Text      string  `gorm:"type:text"`
	Image     string  `gorm:"type:varchar(255)"` // Reference to an externally stored image
}

type PostInput struct {
	Text    string `validate:"required"`
	GroupID *uint64
	Image   string `validate:"max=255"`
}

const postTitleLength = 15

// String returns the first few characters of the text
func (p *Post) String() string {
	runes := []rune(p.Text)
	if len(runes) > postTitleLength {
		return string(runes[:postTitleLength])
	}
	return p.Text
}

func (in *PostInput) clean() error {
	in.Text = strings.TrimSpace(in.Text)
	in.Image = strings.TrimSpace(in.Image)
	if err := validateInput(in); err != nil {
		return err
	}
	if in.GroupID == nil {
		return nil
	}
	var count int64
	if err := db.Instance.Model(&Group{}).Where("id = ?", *in.GroupID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrGroupNotFound
	}
	return nil
}

func PostCreate(author *User, in PostInput) (p Post, err error) {
	if err = in.clean(); err != nil {
		return
	}
	p = Post{
		UserID:  author.ID,
		GroupID: in.GroupID,
		Text:    in.Text,
		Image:   in.Image,
	}
	return p, db.Instance.Create(&p).Error
}

// Update applies the changes only if editor is the author of the post
func (p *Post) Update(editor *User, in PostInput) error {
	if p.UserID != editor.ID {
		return ErrNotAuthor
	}
	if err := in.clean(); err != nil {
		return err
	}
	p.Text = in.Text
	p.GroupID = in.GroupID
	p.Image = in.Image
	p.Group = nil
	return db.Instance.Model(p).Updates(map[string]any{
		"text":     p.Text,
		"group_id": p.GroupID,
		"image":    p.Image,
	}).Error
}

func PostByID(id uint64) (p Post, err error) {
	err = db.Instance.Preload("User").Preload("Group").First(&p, id).Error
	return
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
