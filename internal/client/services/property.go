package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/api"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/models"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/search"
)

// DefaultPageSize mirrors the server's default; MaxPageSize its hard cap.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page addresses one slice of search results.
type Page struct {
	Skip  int
	Limit int
}

// clamp normalizes a page to the server's bounds.
func (p Page) clamp() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	return p
}

// PropertyService exposes the listing endpoints. Search always issues the
// call, even for empty criteria: an unconstrained query is the unfiltered
// listing view, not a skipped request.
type PropertyService interface {
	Search(ctx context.Context, criteria search.Criteria, page Page) ([]models.Property, error)
	Get(ctx context.Context, id int64) (*models.Property, error)
}

type propertyService struct {
	client api.Client
}

func NewPropertyService(client api.Client) PropertyService {
	return &propertyService{client: client}
}

func (s *propertyService) Search(ctx context.Context, criteria search.Criteria, page Page) ([]models.Property, error) {
	query := criteria.Normalize()

	page = page.clamp()
	query.Set("skip", strconv.Itoa(page.Skip))
	query.Set("limit", strconv.Itoa(page.Limit))

	props, err := s.client.SearchProperties(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching properties: %w", err)
	}
	return props, nil
}

func (s *propertyService) Get(ctx context.Context, id int64) (*models.Property, error) {
	p, err := s.client.GetProperty(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching property %d: %w", id, err)
	}
	return p, nil
}
