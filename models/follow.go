package models

import (
	"blog/db"

	"gorm.io/gorm/clause"
)

// Follow is a subscription of User to the posts of Author
type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    uint64 `gorm:"index:uniq_user_author,priority:1,unique"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"index:uniq_user_author,priority:2,unique;index:idx_author"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// FollowCreate is idempotent, the unique index absorbs repeated and concurrent calls
func FollowCreate(userID, authorID uint64) error {
	if userID == authorID {
		return ErrSelfFollow
	}
	follow := Follow{
		UserID:   userID,
		AuthorID: authorID,
	}
	return db.Instance.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow).Error
}

func FollowDelete(userID, authorID uint64) error {
	if userID == authorID {
		return nil
	}
	return db.Instance.
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&Follow{}).Error
}

func IsFollowing(userID, authorID uint64) bool {
	if userID == 0 || userID == authorID {
		return false
	}
	var count int64
	if db.Instance.Model(&Follow{}).Where("user_id = ? AND author_id = ?", userID, authorID).Count(&count).Error != nil {
		return false
	}
	return count > 0
}
