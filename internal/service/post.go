package service

import (
	"errors"

	"blog-api/internal/models"
	"blog-api/internal/store"
)

// PostService 文章 CRUD，创建时校验作者存在，UserID 创建后不可变。
type PostService struct {
	store store.PostStore
	users *UserService
}

func NewPostService(s store.PostStore, users *UserService) *PostService {
	return &PostService{store: s, users: users}
}

// UpdatePostInput PATCH 的部分字段，nil 表示不修改
type UpdatePostInput struct {
	Title     *string
	Content   *string
	Published *bool
}

// Create 创建文章。作者不存在时返回 ErrNotFound，文章不会入库。
func (s *PostService) Create(title, content string, userID uint, published bool) (*models.Post, error) {
	if _, err := s.users.FindOne(userID); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:     title,
		Content:   content,
		UserID:    userID,
		Published: published,
	}
	if err := s.store.CreatePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

// FindAll 返回所有文章（带脱敏作者），按创建时间倒序。
func (s *PostService) FindAll() ([]models.Post, error) {
	posts, err := s.store.ListPosts()
	if err != nil {
		return nil, err
	}
	sanitizeOwners(posts)
	return posts, nil
}

// FindByUser 返回某个用户的文章，用户不存在时返回 ErrNotFound。
func (s *PostService) FindByUser(userID uint) ([]models.Post, error) {
	if _, err := s.users.FindOne(userID); err != nil {
		return nil, err
	}
	posts, err := s.store.ListPostsByUser(userID)
	if err != nil {
		return nil, err
	}
	sanitizeOwners(posts)
	return posts, nil
}

// FindOne 按 ID 查找，不存在时返回 ErrNotFound。
func (s *PostService) FindOne(id uint) (*models.Post, error) {
	p, err := s.store.GetPostByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	sanitizeOwner(p)
	return p, nil
}

// Update 部分更新标题/内容/发布状态，UserID 不可修改。
func (s *PostService) Update(id uint, in UpdatePostInput) (*models.Post, error) {
	p, err := s.store.GetPostByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if in.Published != nil {
		p.Published = *in.Published
	}

	if err := s.store.UpdatePost(p); err != nil {
		return nil, err
	}
	sanitizeOwner(p)
	return p, nil
}

// Remove 删除文章。
func (s *PostService) Remove(id uint) error {
	err := s.store.DeletePost(id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func sanitizeOwner(p *models.Post) {
	if p.User != nil {
		p.User.Password = ""
		p.User.Posts = nil
	}
}

func sanitizeOwners(posts []models.Post) {
	for i := range posts {
		sanitizeOwner(&posts[i])
	}
}
