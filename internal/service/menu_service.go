package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/N4th0wl/HangTuah-Website/internal/domain"
)

type MenuService struct {
	repo   MenuRepository
	ledger OrderLedger
	cache  MenuCache
	images ImageStore
}

func NewMenuService(repo MenuRepository, ledger OrderLedger, cache MenuCache, images ImageStore) *MenuService {
	return &MenuService{repo: repo, ledger: ledger, cache: cache, images: images}
}

func (s *MenuService) List(ctx context.Context, category, search string) ([]domain.MenuItem, error) {
	var cacheKey string
	if s.cache != nil {
		cacheKey = s.cache.MenuListKey(category, search)
		if items, ok := s.cache.GetMenuList(ctx, cacheKey); ok {
			return items, nil
		}
	}

	items, err := s.repo.ListMenuItems(category, search)
	if err != nil {
		return nil, err
	}
	for i := range items {
		decorateImageURL(&items[i])
	}

	if s.cache != nil {
		if err := s.cache.SetMenuList(ctx, cacheKey, items); err != nil {
			log.Printf("[menu] failed to cache menu list: %v", err)
		}
	}
	return items, nil
}

func (s *MenuService) Get(id int) (*domain.MenuItem, error) {
	item, err := s.repo.GetMenuItem(id)
	if err != nil {
		return nil, err
	}
	decorateImageURL(item)
	return item, nil
}

func (s *MenuService) Categories() ([]domain.MenuCategory, error) {
	names, err := s.repo.ListCategories()
	if err != nil {
		return nil, err
	}
	categories := make([]domain.MenuCategory, 0, len(names))
	for _, name := range names {
		categories = append(categories, domain.MenuCategory{
			ID:   name,
			Name: capitalize(name),
		})
	}
	return categories, nil
}

func (s *MenuService) Create(ctx context.Context, item *domain.MenuItem) error {
	if err := validateMenuItem(item); err != nil {
		return err
	}
	if err := s.repo.CreateMenuItem(item); err != nil {
		return err
	}
	decorateImageURL(item)
	s.invalidate(ctx)
	return nil
}

// Update replaces or removes the stored image file according to the flags;
// the old file is released only once the new state is decided.
func (s *MenuService) Update(ctx context.Context, item *domain.MenuItem, newImage string, removeImage bool) error {
	if err := validateMenuItem(item); err != nil {
		return err
	}

	current, err := s.repo.GetMenuItem(item.ID)
	if err != nil {
		return err
	}

	switch {
	case newImage != "":
		s.releaseImage(current.ImageFilename)
		item.ImageFilename = newImage
	case removeImage:
		s.releaseImage(current.ImageFilename)
		item.ImageFilename = ""
	default:
		item.ImageFilename = current.ImageFilename
	}

	if err := s.repo.UpdateMenuItem(item); err != nil {
		return err
	}
	decorateImageURL(item)
	s.invalidate(ctx)
	return nil
}

// Delete runs the transactional cascade: order items referencing the menu
// item are purged and affected order totals decremented by exactly the
// removed amount. The image file is released only after the commit; a failed
// file removal is logged, never rolled back.
func (s *MenuService) Delete(ctx context.Context, id int) (domain.CascadeResult, error) {
	result, imageFilename, err := s.ledger.DeleteMenuItemCascade(id)
	if err != nil {
		return result, err
	}

	if imageFilename != "" {
		s.releaseImage(imageFilename)
	}
	s.invalidate(ctx)
	return result, nil
}

func (s *MenuService) releaseImage(filename string) {
	if filename == "" || s.images == nil {
		return
	}
	if err := s.images.Delete(filename); err != nil {
		log.Printf("[menu] failed to delete image file %s: %v", filename, err)
	}
}

func (s *MenuService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("[menu] failed to invalidate menu cache: %v", err)
	}
}

func validateMenuItem(item *domain.MenuItem) error {
	if item.Name == "" || item.Category == "" {
		return fmt.Errorf("name and category are required: %w", domain.ErrInvalidInput)
	}
	if item.Price < 0 {
		return fmt.Errorf("price must be non-negative: %w", domain.ErrInvalidInput)
	}
	return nil
}

func decorateImageURL(item *domain.MenuItem) {
	if item.ImageFilename != "" {
		item.ImageURL = "/uploads/" + item.ImageFilename
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var _ MenuServiceInterface = (*MenuService)(nil)
