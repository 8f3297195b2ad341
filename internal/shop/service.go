package shop

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Sayedtaha55/ray-eg/internal/catalog"
)

type Storage interface {
	UploadFile(ctx context.Context, key string, file *multipart.FileHeader) (string, error)
}

var validCategories = map[string]bool{
	catalog.CategoryRestaurant: true,
	catalog.CategoryFashion:    true,
	catalog.CategoryFood:       true,
	catalog.CategoryRetail:     true,
	catalog.CategoryService:    true,
}

type Service struct {
	repo    Repository
	catalog *catalog.Service
	storage Storage
}

func NewService(repo Repository, catalogService *catalog.Service, storage Storage) *Service {
	return &Service{
		repo:    repo,
		catalog: catalogService,
		storage: storage,
	}
}

// --------------------------------------------------
// Create shop
// --------------------------------------------------
func (s *Service) CreateShop(
	ctx context.Context,
	name string,
	category string,
	governorate string,
	city string,
	ownerID string,
) (*Shop, error) {

	if name == "" || category == "" {
		return nil, errors.New("missing required fields")
	}
	if !validCategories[category] {
		return nil, errors.New("invalid category")
	}

	shop := &Shop{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Name:        name,
		Slug:        slugify(name),
		Category:    category,
		Governorate: governorate,
		City:        city,
		Status:      "pending",
	}

	if err := s.repo.Create(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *Service) ListMyShops(ctx context.Context, ownerID string) ([]*Shop, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// --------------------------------------------------
// Public preview (shop + catalog + gallery)
// --------------------------------------------------

type Preview struct {
	Shop     *Shop              `json:"shop"`
	Products []*catalog.Product `json:"products"`
	Gallery  []*GalleryItem     `json:"gallery"`
}

func (s *Service) Preview(ctx context.Context, slug string) (*Preview, error) {
	sh, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	products, err := s.catalog.ListByShop(ctx, sh.ID)
	if err != nil {
		return nil, err
	}

	gallery, _ := s.repo.ListGallery(ctx, sh.ID)

	return &Preview{
		Shop:     sh,
		Products: products,
		Gallery:  gallery,
	}, nil
}

// --------------------------------------------------
// Gallery upload (OWNER ONLY)
// --------------------------------------------------
func (s *Service) UploadGalleryMedia(
	ctx context.Context,
	shopID string,
	userID string,
	file *multipart.FileHeader,
	caption string,
) (*GalleryItem, error) {

	owns, err := s.repo.IsOwner(ctx, shopID, userID)
	if err != nil || !owns {
		return nil, errors.New("unauthorized")
	}

	mediaType, err := MediaTypeFor(file.Filename)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	key := fmt.Sprintf("gallery/%s/%s%s", shopID, uuid.New().String(), ext)

	url, err := s.storage.UploadFile(ctx, key, file)
	if err != nil {
		return nil, err
	}

	item := &GalleryItem{
		ID:        uuid.New().String(),
		ShopID:    shopID,
		URL:       url,
		MediaType: mediaType,
		Caption:   caption,
	}

	if err := s.repo.AddGalleryItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return fmt.Sprintf("%s-%s", slug, uuid.New().String()[:8])
}
