package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/api"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/models"
)

// ProfileService reads and updates the current user's profile. The server
// transmits the date of birth as a full ISO-8601 timestamp; Get truncates it
// to a date-only value so the editing flow never shows a spurious time part.
type ProfileService interface {
	Get(ctx context.Context) (*models.Profile, error)
	Update(ctx context.Context, upd models.ProfileUpdate) (*models.Profile, error)
}

type profileService struct {
	client api.Client
}

func NewProfileService(client api.Client) ProfileService {
	return &profileService{client: client}
}

func (s *profileService) Get(ctx context.Context) (*models.Profile, error) {
	p, err := s.client.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	p.DateOfBirth = truncateToDate(p.DateOfBirth)
	return p, nil
}

func (s *profileService) Update(ctx context.Context, upd models.ProfileUpdate) (*models.Profile, error) {
	p, err := s.client.UpdateProfile(ctx, upd)
	if err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	p.DateOfBirth = truncateToDate(p.DateOfBirth)
	return p, nil
}

func truncateToDate(ts *time.Time) *time.Time {
	if ts == nil {
		return nil
	}
	y, m, d := ts.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &date
}
