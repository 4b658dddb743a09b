package services

import (
	"context"
	"fmt"

	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/api"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/favorites"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/models"
)

// FavoriteService lists the user's favorites and keeps the reconciler seeded
// with the favorite-record IDs the listing carries, so later removals can be
// addressed correctly from any view.
type FavoriteService interface {
	List(ctx context.Context) ([]models.Favorite, error)
}

type favoriteService struct {
	client     api.Client
	reconciler *favorites.Reconciler
}

func NewFavoriteService(client api.Client, reconciler *favorites.Reconciler) FavoriteService {
	return &favoriteService{client: client, reconciler: reconciler}
}

func (s *favoriteService) List(ctx context.Context) ([]models.Favorite, error) {
	favs, err := s.client.ListFavorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching favorites: %w", err)
	}
	for _, f := range favs {
		s.reconciler.TrackFavorite(f)
	}
	return favs, nil
}
