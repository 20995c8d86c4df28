package store

import (
	"sort"
	"sync"
	"time"

	"blog-api/internal/models"
)

// MemoryStore 内存实现，map + 粗粒度互斥锁，主要用于测试和本地开发。
// 所有方法返回副本，调用方改动不会影响存储内部状态。
type MemoryStore struct {
	mu sync.Mutex

	users map[uint]*models.User
	posts map[uint]*models.Post

	nextUserID uint
	nextPostID uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      make(map[uint]*models.User),
		posts:      make(map[uint]*models.Post),
		nextUserID: 1,
		nextPostID: 1,
	}
}

func copyUser(u *models.User) *models.User {
	c := *u
	c.Posts = nil
	return &c
}

func copyPost(p *models.Post) *models.Post {
	c := *p
	c.User = nil
	return &c
}

// 按创建时间倒序，同一时刻按 ID 倒序（内存里时间戳可能相同）
func sortPostsNewestFirst(posts []models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID > posts[j].ID
	})
}

// ---------- users ----------

func (s *MemoryStore) CreateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	u.ID = s.nextUserID
	s.nextUserID++
	u.CreatedAt = now
	u.UpdatedAt = now

	s.users[u.ID] = copyUser(u)
	return nil
}

func (s *MemoryStore) GetUserByID(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := copyUser(u)
	out.Posts = s.postsOfLocked(id)
	return out, nil
}

func (s *MemoryStore) GetUserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListUsers() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *copyUser(u))
	}
	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		}
		return users[i].ID > users[j].ID
	})
	return users, nil
}

func (s *MemoryStore) UpdateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID]; !ok {
		return ErrNotFound
	}
	u.UpdatedAt = time.Now()
	s.users[u.ID] = copyUser(u)
	return nil
}

func (s *MemoryStore) DeleteUser(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	// 级联删除该用户的文章
	for pid, p := range s.posts {
		if p.UserID == id {
			delete(s.posts, pid)
		}
	}
	return nil
}

// postsOfLocked 调用方必须已持有 s.mu
func (s *MemoryStore) postsOfLocked(userID uint) []models.Post {
	var posts []models.Post
	for _, p := range s.posts {
		if p.UserID == userID {
			posts = append(posts, *copyPost(p))
		}
	}
	sortPostsNewestFirst(posts)
	return posts
}

// ---------- posts ----------

func (s *MemoryStore) CreatePost(p *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	p.ID = s.nextPostID
	s.nextPostID++
	p.CreatedAt = now
	p.UpdatedAt = now

	s.posts[p.ID] = copyPost(p)
	return nil
}

func (s *MemoryStore) GetPostByID(id uint) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := copyPost(p)
	if u, ok := s.users[p.UserID]; ok {
		out.User = copyUser(u)
	}
	return out, nil
}

func (s *MemoryStore) ListPosts() ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		c := *copyPost(p)
		if u, ok := s.users[p.UserID]; ok {
			c.User = copyUser(u)
		}
		posts = append(posts, c)
	}
	sortPostsNewestFirst(posts)
	return posts, nil
}

func (s *MemoryStore) ListPostsByUser(userID uint) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.postsOfLocked(userID)
	if u, ok := s.users[userID]; ok {
		for i := range posts {
			posts[i].User = copyUser(u)
		}
	}
	return posts, nil
}

func (s *MemoryStore) UpdatePost(p *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[p.ID]; !ok {
		return ErrNotFound
	}
	p.UpdatedAt = time.Now()
	s.posts[p.ID] = copyPost(p)
	return nil
}

func (s *MemoryStore) DeletePost(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return ErrNotFound
	}
	delete(s.posts, id)
	return nil
}
