package repositories

import (
	"context"

	"github.com/cataleon/cataleon/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContentRepositoryImpl interface {
	CreatePost(ctx context.Context, post *models.BlogPost) error
	UpdatePost(ctx context.Context, post *models.BlogPost) error
	DeletePost(ctx context.Context, id string) error
	GetPosts(ctx context.Context, publishedOnly bool) ([]models.BlogPost, error)
	GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)

	CreatePressItem(ctx context.Context, item *models.PressItem) error
	DeletePressItem(ctx context.Context, id string) error
	GetPressItems(ctx context.Context) ([]models.PressItem, error)

	CreateBrandLogo(ctx context.Context, logo *models.BrandLogo) error
	DeleteBrandLogo(ctx context.Context, id string) error
	GetBrandLogos(ctx context.Context) ([]models.BrandLogo, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepositoryImpl {
	return &contentRepository{db}
}

func (r *contentRepository) CreatePost(ctx context.Context, post *models.BlogPost) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *contentRepository) UpdatePost(ctx context.Context, post *models.BlogPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *contentRepository) DeletePost(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.BlogPost{}).Error
}

func (r *contentRepository) GetPosts(ctx context.Context, publishedOnly bool) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	err := q.Find(&posts).Error
	return posts, err
}

func (r *contentRepository) GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *contentRepository) CreatePressItem(ctx context.Context, item *models.PressItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *contentRepository) DeletePressItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.PressItem{}).Error
}

func (r *contentRepository) GetPressItems(ctx context.Context) ([]models.PressItem, error) {
	var items []models.PressItem
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *contentRepository) CreateBrandLogo(ctx context.Context, logo *models.BrandLogo) error {
	if logo.ID == "" {
		logo.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(logo).Error
}

func (r *contentRepository) DeleteBrandLogo(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.BrandLogo{}).Error
}

func (r *contentRepository) GetBrandLogos(ctx context.Context) ([]models.BrandLogo, error) {
	var logos []models.BrandLogo
	err := r.db.WithContext(ctx).Order("sort_order ASC, created_at ASC").Find(&logos).Error
	return logos, err
}
