package services

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"

	"github.com/GDG-Vishnu/community-platform/dto"
	"github.com/GDG-Vishnu/community-platform/logx"
	"github.com/GDG-Vishnu/community-platform/models"
	"github.com/GDG-Vishnu/community-platform/repositories"
	"github.com/GDG-Vishnu/community-platform/revalidate"
	"github.com/GDG-Vishnu/community-platform/storage"
	"github.com/GDG-Vishnu/community-platform/types"
)

var galleryPages = []string{"/", "/gallery"}

type GalleryService struct {
	repos    *repositories.Repos
	authz    *AuthzService
	store    storage.ObjectStore
	notifier revalidate.Notifier
}

func NewGalleryService(repos *repositories.Repos, authz *AuthzService, store storage.ObjectStore, notifier revalidate.Notifier) *GalleryService {
	return &GalleryService{repos: repos, authz: authz, store: store, notifier: notifier}
}

// UploadImage stores the object first, then the metadata row; a failed row
// write removes the orphaned object.
func (s *GalleryService) UploadImage(ctx context.Context, claims *types.Claims, filename, contentType string, content io.Reader, size int64, title *string) (*models.GalleryImage, error) {
	if err := s.authz.RequireElevated(claims); err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("gallery/%s%s", uuid.NewString(), path.Ext(filename))
	url, err := s.store.Upload(ctx, objectKey, contentType, content, size)
	if err != nil {
		return nil, err
	}

	max, err := s.repos.Gallery.MaxOrder()
	if err != nil {
		return nil, err
	}
	image := &models.GalleryImage{
		Title:      title,
		ObjectKey:  objectKey,
		URL:        url,
		UploadedBy: claims.UserID,
		Order:      max + 1,
	}
	if err := s.repos.Gallery.Create(image); err != nil {
		if rmErr := s.store.Remove(ctx, objectKey); rmErr != nil {
			logx.Warnf("gallery: orphaned object %s: %v", objectKey, rmErr)
		}
		return nil, err
	}
	s.notifier.Notify(galleryPages...)
	return image, nil
}

func (s *GalleryService) ListImages() ([]models.GalleryImage, error) {
	return s.repos.Gallery.List()
}

func (s *GalleryService) UpdateImage(claims *types.Claims, imageID string, input dto.UpdateGalleryImageDTO) (*models.GalleryImage, error) {
	if err := s.authz.RequireElevated(claims); err != nil {
		return nil, err
	}
	image, err := s.repos.Gallery.FindByID(imageID)
	if err != nil {
		return nil, err
	}
	if input.Title != nil {
		image.Title = input.Title
	}
	if input.Order != nil {
		image.Order = *input.Order
	}
	if err := s.repos.Gallery.Update(image); err != nil {
		return nil, err
	}
	s.notifier.Notify(galleryPages...)
	return image, nil
}

// DeleteImage removes the row, then the stored object best-effort.
func (s *GalleryService) DeleteImage(ctx context.Context, claims *types.Claims, imageID string) error {
	if err := s.authz.RequireElevated(claims); err != nil {
		return err
	}
	image, err := s.repos.Gallery.FindByID(imageID)
	if err != nil {
		return err
	}
	if err := s.repos.Gallery.Delete(imageID); err != nil {
		return err
	}
	if err := s.store.Remove(ctx, image.ObjectKey); err != nil {
		logx.Warnf("gallery: could not remove object %s: %v", image.ObjectKey, err)
	}
	s.notifier.Notify(galleryPages...)
	return nil
}

func (s *GalleryService) ReorderImages(claims *types.Claims, input dto.ReorderGalleryDTO) error {
	if err := s.authz.RequireElevated(claims); err != nil {
		return err
	}
	images, err := s.repos.Gallery.List()
	if err != nil {
		return err
	}
	known := make(map[string]struct{}, len(images))
	for _, img := range images {
		known[img.ID] = struct{}{}
	}
	updates := make([]repositories.OrderUpdate, 0, len(input.Images))
	for _, pair := range input.Images {
		if _, ok := known[pair.ID]; !ok {
			return fmt.Errorf("%w: gallery image %s", ErrScopeMismatch, pair.ID)
		}
		updates = append(updates, repositories.OrderUpdate{ID: pair.ID, Order: pair.Order})
	}
	if err := s.repos.Gallery.Reorder(updates); err != nil {
		return err
	}
	s.notifier.Notify(galleryPages...)
	return nil
}
