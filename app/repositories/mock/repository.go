package mock

import (
	"context"
	"sync"

	"simpleblog/app/models"
	"simpleblog/app/repositories"
)

// In-memory repositories used by service and route tests. They mirror the
// scoping and eager-loading behavior of the gorm implementations.

type UserRepository struct {
	users  map[uint]*models.User
	nextID uint
	mutex  sync.RWMutex
}

type PostRepository struct {
	posts  map[uint]*models.Post
	nextID uint
	users  *UserRepository
	mutex  sync.RWMutex
}

type CommentRepository struct {
	comments map[uint]*models.Comment
	nextID   uint
	users    *UserRepository
	posts    *PostRepository
	mutex    sync.RWMutex
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[uint]*models.User),
		nextID: 1,
	}
}

func NewPostRepository(users *UserRepository) *PostRepository {
	return &PostRepository{
		posts:  make(map[uint]*models.Post),
		nextID: 1,
		users:  users,
	}
}

func NewCommentRepository(users *UserRepository, posts *PostRepository) *CommentRepository {
	return &CommentRepository{
		comments: make(map[uint]*models.Comment),
		nextID:   1,
		users:    users,
		posts:    posts,
	}
}

// UserRepository implementation

func (m *UserRepository) Create(ctx context.Context, user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, existing := range m.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return repositories.ErrConflict
		}
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *UserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// PostRepository implementation

func (m *PostRepository) Create(ctx context.Context, post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = m.nextID
	m.nextID++
	stored := *post
	m.posts[post.ID] = &stored
	return nil
}

func (m *PostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	out := *post
	out.Owner, _ = m.users.GetByID(ctx, post.OwnerID)
	return &out, nil
}

func (m *PostRepository) GetByIDAndOwner(ctx context.Context, id, ownerID uint) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists || post.OwnerID != ownerID {
		return nil, repositories.ErrNotFound
	}
	out := *post
	return &out, nil
}

func (m *PostRepository) List(ctx context.Context) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := []*models.Post{}
	for id := uint(1); id < m.nextID; id++ {
		if post, exists := m.posts[id]; exists {
			out := *post
			out.Owner, _ = m.users.GetByID(ctx, post.OwnerID)
			posts = append(posts, &out)
		}
	}
	return posts, nil
}

func (m *PostRepository) Update(ctx context.Context, post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	stored := *post
	m.posts[post.ID] = &stored
	return nil
}

func (m *PostRepository) Delete(ctx context.Context, post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, post.ID)
	return nil
}

// CommentRepository implementation

func (m *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment.ID = m.nextID
	m.nextID++
	stored := *comment
	stored.Author = nil
	stored.Post = nil
	m.comments[comment.ID] = &stored
	return nil
}

func (m *CommentRepository) GetScoped(ctx context.Context, postID, commentID, authorID uint) (*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comment, exists := m.comments[commentID]
	if !exists || comment.PostID != postID || comment.AuthorID != authorID {
		return nil, repositories.ErrNotFound
	}
	out := *comment
	return &out, nil
}

func (m *CommentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comments := []*models.Comment{}
	for id := uint(1); id < m.nextID; id++ {
		comment, exists := m.comments[id]
		if !exists || comment.PostID != postID {
			continue
		}
		out := *comment
		out.Author, _ = m.users.GetByID(ctx, comment.AuthorID)
		comments = append(comments, &out)
	}
	return comments, nil
}

func (m *CommentRepository) List(ctx context.Context) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comments := []*models.Comment{}
	for id := uint(1); id < m.nextID; id++ {
		comment, exists := m.comments[id]
		if !exists {
			continue
		}
		out := *comment
		out.Author, _ = m.users.GetByID(ctx, comment.AuthorID)
		out.Post, _ = m.posts.GetByID(ctx, comment.PostID)
		comments = append(comments, &out)
	}
	return comments, nil
}

func (m *CommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.comments[comment.ID]; !exists {
		return repositories.ErrNotFound
	}
	stored := *comment
	stored.Author = nil
	stored.Post = nil
	m.comments[comment.ID] = &stored
	return nil
}

func (m *CommentRepository) Delete(ctx context.Context, comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.comments[comment.ID]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.comments, comment.ID)
	return nil
}
