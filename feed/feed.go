package feed

import (
	"blog/db"
	"blog/models"

	"gorm.io/gorm"
)

// Scope narrows down the set of posts in a feed
type Scope func(tx *gorm.DB) *gorm.DB

type Page struct {
	Posts    []models.Post
	Number   int
	NumPages int
	Count    int64
	PerPage  int
}

func (p *Page) HasNext() bool {
	return p.Number < p.NumPages
}

func (p *Page) HasPrevious() bool {
	return p.Number > 1
}

func (p *Page) HasOtherPages() bool {
	return p.HasNext() || p.HasPrevious()
}

func (p *Page) NextPageNumber() int {
	if !p.HasNext() {
		return p.Number
	}
	return p.Number + 1
}

func (p *Page) PreviousPageNumber() int {
	if !p.HasPrevious() {
		return p.Number
	}
	return p.Number - 1
}

// PageRange lists all page numbers, used by the pagination links
func (p *Page) PageRange() []int {
	result := make([]int, p.NumPages)
	for i := range result {
		result[i] = i + 1
	}
	return result
}

func Global() Scope {
	return func(tx *gorm.DB) *gorm.DB {
		return tx
	}
}

func InGroup(groupID uint64) Scope {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("posts.group_id = ?", groupID)
	}
}

func ByAuthor(userID uint64) Scope {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("posts.user_id = ?", userID)
	}
}

// Subscriptions selects posts by the authors followed by viewerID
func Subscriptions(viewerID uint64) Scope {
	return func(tx *gorm.DB) *gorm.DB {
		authors := tx.Session(&gorm.Session{NewDB: true}).
			Model(&models.Follow{}).
			Select("author_id").
			Where("user_id = ?", viewerID)
		return tx.Where("posts.user_id IN (?)", authors)
	}
}

// Load returns the requested page of posts in scope, newest first
func Load(scope Scope, rawPage string, perPage int) (page Page, err error) {
	page.PerPage = perPage
	err = db.Instance.Model(&models.Post{}).Scopes(scope).Count(&page.Count).Error
	if err != nil {
		return
	}
	page.NumPages = NumPages(page.Count, perPage)
	page.Number = ResolvePage(rawPage, page.NumPages)
	page.Posts = []models.Post{}
	if page.Count == 0 {
		return
	}
	err = db.Instance.
		Scopes(scope).
		Preload("User").
		Preload("Group").
		Order("posts.created_at DESC, posts.id DESC").
		Offset((page.Number - 1) * perPage).
		Limit(perPage).
		Find(&page.Posts).Error
	return
}
