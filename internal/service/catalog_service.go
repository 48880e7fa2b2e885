package service

import (
	"fmt"

	"github.com/bloomlavka/bloom_api/internal/models"
	"github.com/bloomlavka/bloom_api/internal/repository"
	"github.com/bloomlavka/bloom_api/internal/utils"
	"github.com/bloomlavka/bloom_api/pkg/pricing"
)

// CatalogService handles catalog reads and operator-driven catalog changes.
type CatalogService struct {
	flowerRepo  *repository.FlowerRepository
	minQuantity int
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(flowerRepo *repository.FlowerRepository, minQuantity int) *CatalogService {
	return &CatalogService{
		flowerRepo:  flowerRepo,
		minQuantity: minQuantity,
	}
}

// MinQuantity returns the smallest orderable piece count.
func (s *CatalogService) MinQuantity() int {
	return s.minQuantity
}

// ListFlowers returns the full catalog with the card price filled in on each
// entry.
func (s *CatalogService) ListFlowers() ([]models.Flower, error) {
	flowers, err := s.flowerRepo.ReadAll()
	if err != nil {
		return nil, err
	}
	for i := range flowers {
		flowers[i].PricePerPiece = pricing.CardPrice(pricingItem(flowers[i]))
	}
	return flowers, nil
}

// GetFlower returns the catalog entry with the given id.
func (s *CatalogService) GetFlower(id int) (*models.Flower, error) {
	flowers, err := s.flowerRepo.ReadAll()
	if err != nil {
		return nil, err
	}
	for i := range flowers {
		if flowers[i].ID == id {
			return &flowers[i], nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", utils.ErrFlowerNotFound, id)
}

// AddFlower appends a new flower to the catalog. The id is assigned by the
// repository; any id on the argument is ignored.
func (s *CatalogService) AddFlower(flower models.Flower) (models.Flower, error) {
	return s.flowerRepo.Append(flower)
}

// DeleteFlower removes the flower with the given id and returns the removed
// record.
func (s *CatalogService) DeleteFlower(id int) (*models.Flower, error) {
	flowers, err := s.flowerRepo.ReadAll()
	if err != nil {
		return nil, err
	}
	for i := range flowers {
		if flowers[i].ID != id {
			continue
		}
		deleted := flowers[i]
		flowers = append(flowers[:i], flowers[i+1:]...)
		if err := s.flowerRepo.WriteAll(flowers); err != nil {
			return nil, err
		}
		return &deleted, nil
	}
	return nil, fmt.Errorf("%w: id %d", utils.ErrFlowerNotFound, id)
}

func pricingItem(f models.Flower) pricing.Item {
	return pricing.Item{
		SupplierPrice: f.SupplierPrice,
		PackSize:      f.PackSize,
		Markup:        f.Markup,
	}
}
