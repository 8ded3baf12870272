package feed

import (
	"fmt"
	"testing"

	"blog/db"
	"blog/models"
)

type fixture struct {
	alice, bob, carol models.User
	cats, dogs        models.Group
}

// setup creates 15 posts by alice in cats, 3 by bob in dogs and 2 by carol without a group
func setup(t *testing.T) fixture {
	t.Helper()
	if err := db.OpenInMemory(); err != nil {
		t.Fatalf("cannot open database: %v", err)
	}
	if err := models.Init(); err != nil {
		t.Fatalf("cannot migrate: %v", err)
	}
	f := fixture{
		alice: models.User{Username: "alice"},
		bob:   models.User{Username: "bob"},
		carol: models.User{Username: "carol"},
		cats:  models.Group{Title: "Cats", Slug: "cats"},
		dogs:  models.Group{Title: "Dogs", Slug: "dogs"},
	}
	for _, record := range []any{&f.alice, &f.bob, &f.carol, &f.cats, &f.dogs} {
		if err := db.Instance.Create(record).Error; err != nil {
			t.Fatal(err)
		}
	}
	created := int64(1700000000)
	add := func(user models.User, group *models.Group, text string) {
		created += 60
		post := models.Post{CreatedAt: created, UserID: user.ID, Text: text}
		if group != nil {
			post.GroupID = &group.ID
		}
		if err := db.Instance.Create(&post).Error; err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < 15; i++ {
		add(f.alice, &f.cats, fmt.Sprintf("alice %d", i))
	}
	for i := 0; i < 3; i++ {
		add(f.bob, &f.dogs, fmt.Sprintf("bob %d", i))
	}
	for i := 0; i < 2; i++ {
		add(f.carol, nil, fmt.Sprintf("carol %d", i))
	}
	return f
}

func TestLoad_Pagination(t *testing.T) {
	f := setup(t)
	tests := []struct {
		name       string
		raw        string
		wantNumber int
		wantLen    int
		wantFirst  string
	}{
		{"first page", "", 1, 10, "alice 14"},
		{"second page", "2", 2, 5, "alice 4"},
		{"past the end", "7", 2, 5, "alice 4"},
		{"zero", "0", 2, 5, "alice 4"},
		{"garbage", "x", 1, 10, "alice 14"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := Load(ByAuthor(f.alice.ID), tt.raw, 10)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if page.Count != 15 || page.NumPages != 2 {
				t.Errorf("Count = %d, NumPages = %d, want 15, 2", page.Count, page.NumPages)
			}
			if page.Number != tt.wantNumber || len(page.Posts) != tt.wantLen {
				t.Fatalf("page %d with %d posts, want page %d with %d", page.Number, len(page.Posts), tt.wantNumber, tt.wantLen)
			}
			if page.Posts[0].Text != tt.wantFirst {
				t.Errorf("first post = %q, want %q", page.Posts[0].Text, tt.wantFirst)
			}
		})
	}
}

func TestLoad_Ordering(t *testing.T) {
	setup(t)
	page, err := Load(Global(), "1", 10)
	if err != nil {
		t.Fatal(err)
	}
	if page.Count != 20 {
		t.Fatalf("Count = %d, want 20", page.Count)
	}
	for i := 1; i < len(page.Posts); i++ {
		prev, cur := page.Posts[i-1], page.Posts[i]
		if prev.CreatedAt < cur.CreatedAt {
			t.Errorf("post %d (%d) is newer than post %d (%d)", i, cur.CreatedAt, i-1, prev.CreatedAt)
		}
	}
	if first := page.Posts[0]; first.Text != "carol 1" || first.User.Username != "carol" || first.Group != nil {
		t.Errorf("newest post = %q by %q, group %v", first.Text, first.User.Username, first.Group)
	}
}

func TestLoad_SameTimestamp(t *testing.T) {
	setup(t)
	var latest models.Post
	if err := db.Instance.Order("id DESC").First(&latest).Error; err != nil {
		t.Fatal(err)
	}
	tie := models.Post{CreatedAt: latest.CreatedAt, UserID: latest.UserID, Text: "tie"}
	if err := db.Instance.Create(&tie).Error; err != nil {
		t.Fatal(err)
	}
	page, err := Load(Global(), "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if page.Posts[0].ID != tie.ID {
		t.Errorf("first post id = %d, want the later inserted %d", page.Posts[0].ID, tie.ID)
	}
}

func TestLoad_Scopes(t *testing.T) {
	f := setup(t)
	if err := models.FollowCreate(f.carol.ID, f.bob.ID); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name      string
		scope     Scope
		wantCount int64
		wantUser  uint64
	}{
		{"group cats", InGroup(f.cats.ID), 15, f.alice.ID},
		{"group dogs", InGroup(f.dogs.ID), 3, f.bob.ID},
		{"author carol", ByAuthor(f.carol.ID), 2, f.carol.ID},
		{"subscriptions of carol", Subscriptions(f.carol.ID), 3, f.bob.ID},
		{"no subscriptions", Subscriptions(f.alice.ID), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := Load(tt.scope, "", 10)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if page.Count != tt.wantCount {
				t.Fatalf("Count = %d, want %d", page.Count, tt.wantCount)
			}
			if page.NumPages < 1 || page.Number != 1 {
				t.Errorf("page %d of %d", page.Number, page.NumPages)
			}
			for _, p := range page.Posts {
				if p.UserID != tt.wantUser {
					t.Errorf("post %q by user %d, want %d", p.Text, p.UserID, tt.wantUser)
				}
			}
		})
	}
}
