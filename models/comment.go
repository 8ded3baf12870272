package models

import (
	"strings"

	"blog/db"
)

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    uint64
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PostID    uint64 `gorm:"index"`
	Post      Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text      string `gorm:"type:text"`
}

type CommentInput struct {
	Text string `validate:"required"`
}

// CommentAppend stores a new comment by author under the given post
func CommentAppend(author *User, post *Post, in CommentInput) (c Comment, err error) {
	in.Text = strings.TrimSpace(in.Text)
	if err = validateInput(in); err != nil {
		return
	}
	c = Comment{
		UserID: author.ID,
		PostID: post.ID,
		Text:   in.Text,
	}
	return c, db.Instance.Create(&c).Error
}

// PostComments returns the comments of a post, oldest first
func PostComments(postID uint64) (comments []Comment, err error) {
	err = db.Instance.
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return
}
