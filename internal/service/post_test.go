package service

import (
	"testing"

	"blog-api/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostService() (*PostService, *UserService) {
	mem := store.NewMemoryStore()
	users := NewUserService(mem, testBcryptCost)
	return NewPostService(mem, users), users
}

func TestPostService_Create(t *testing.T) {
	posts, users := newPostService()

	owner, _ := users.Create("Alice", "alice@x.com", "password123")

	post, err := posts.Create("Hi There", "1234567890", owner.ID, false)
	require.NoError(t, err)
	assert.NotZero(t, post.ID)
	assert.Equal(t, owner.ID, post.UserID)
	assert.False(t, post.Published)
}

func TestPostService_Create_OwnerMissing(t *testing.T) {
	posts, _ := newPostService()

	_, err := posts.Create("Hi There", "1234567890", 12345, false)
	assert.ErrorIs(t, err, ErrNotFound)

	// 文章不应入库
	all, err := posts.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPostService_FindAll_NewestFirstWithOwner(t *testing.T) {
	posts, users := newPostService()

	owner, _ := users.Create("Alice", "alice@x.com", "password123")
	first, _ := posts.Create("First Post", "1234567890", owner.ID, false)
	second, _ := posts.Create("Second Post", "1234567890", owner.ID, true)

	all, err := posts.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	// 新的在前
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
	// 带作者公开字段，不带密码哈希
	require.NotNil(t, all[0].User)
	assert.Equal(t, "alice@x.com", all[0].User.Email)
	assert.Empty(t, all[0].User.Password)
}

func TestPostService_FindByUser(t *testing.T) {
	posts, users := newPostService()

	a, _ := users.Create("Alice", "alice@x.com", "password123")
	b, _ := users.Create("Bob", "bob@x.com", "password123")
	_, _ = posts.Create("Alice Post", "1234567890", a.ID, false)
	_, _ = posts.Create("Bob Post", "1234567890", b.ID, false)

	got, err := posts.FindByUser(a.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Alice Post", got[0].Title)

	// 用户不存在 → NotFound
	_, err = posts.FindByUser(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostService_Update(t *testing.T) {
	posts, users := newPostService()

	owner, _ := users.Create("Alice", "alice@x.com", "password123")
	post, _ := posts.Create("Hi There", "1234567890", owner.ID, false)

	title := "New Title"
	published := true
	updated, err := posts.Update(post.ID, UpdatePostInput{Title: &title, Published: &published})
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "1234567890", updated.Content)
	assert.True(t, updated.Published)
	// 作者不可变
	assert.Equal(t, owner.ID, updated.UserID)

	_, err = posts.Update(999, UpdatePostInput{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostService_Remove(t *testing.T) {
	posts, users := newPostService()

	owner, _ := users.Create("Alice", "alice@x.com", "password123")
	post, _ := posts.Create("Hi There", "1234567890", owner.ID, false)

	require.NoError(t, posts.Remove(post.ID))

	_, err := posts.FindOne(post.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, posts.Remove(post.ID), ErrNotFound)
}

func TestPostService_FindOne(t *testing.T) {
	posts, users := newPostService()

	owner, _ := users.Create("Alice", "alice@x.com", "password123")
	post, _ := posts.Create("Hi There", "1234567890", owner.ID, false)

	got, err := posts.FindOne(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hi There", got.Title)
	require.NotNil(t, got.User)
	assert.Empty(t, got.User.Password)

	_, err = posts.FindOne(999)
	assert.ErrorIs(t, err, ErrNotFound)
}
