package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/favorites"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/models"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/search"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/logging"
)

// ---- fake api.Client ----

type fakeClient struct {
	LoginRet    string
	LoginErr    error
	RegisterRet string
	RegisterErr error
	GoogleRet   string
	GoogleErr   error

	CurrentUserRet *models.User
	CurrentUserErr error

	SearchRet []models.Property
	SearchErr error

	GetPropertyRet *models.Property
	GetPropertyErr error

	GetProfileRet    *models.Profile
	GetProfileErr    error
	UpdateProfileRet *models.Profile
	UpdateProfileErr error

	ListFavoritesRet []models.Favorite
	ListFavoritesErr error

	// argument capture
	LastLoginEmail    string
	LastLoginPassword string
	LastRegisterUser  string
	LastSearchQuery   url.Values
	LastUpdate        models.ProfileUpdate
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, error) {
	f.LastLoginEmail = email
	f.LastLoginPassword = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, email, username, password string) (string, error) {
	f.LastRegisterUser = username
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) GoogleAuth(ctx context.Context, code string) (string, error) {
	return f.GoogleRet, f.GoogleErr
}

func (f *fakeClient) CurrentUser(ctx context.Context) (*models.User, error) {
	return f.CurrentUserRet, f.CurrentUserErr
}

func (f *fakeClient) SearchProperties(ctx context.Context, query url.Values) ([]models.Property, error) {
	f.LastSearchQuery = query
	return f.SearchRet, f.SearchErr
}

func (f *fakeClient) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	return f.GetPropertyRet, f.GetPropertyErr
}

func (f *fakeClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	return f.GetProfileRet, f.GetProfileErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.Profile, error) {
	f.LastUpdate = upd
	return f.UpdateProfileRet, f.UpdateProfileErr
}

func (f *fakeClient) ListFavorites(ctx context.Context) ([]models.Favorite, error) {
	return f.ListFavoritesRet, f.ListFavoritesErr
}

func (f *fakeClient) AddFavorite(ctx context.Context, propertyID int64) (*models.Favorite, error) {
	return &models.Favorite{ID: 1, PropertyID: propertyID}, nil
}

func (f *fakeClient) RemoveFavorite(ctx context.Context, favoriteID int64) error {
	return nil
}

// ---- fake session ----

type fakeSession struct {
	Token      string
	Email      string
	SetErr     error
	ClearErr   error
	ClearCalls int
}

func (s *fakeSession) SetToken(ctx context.Context, token string) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	s.Token = token
	return nil
}

func (s *fakeSession) SetEmail(ctx context.Context, email string) error {
	s.Email = email
	return nil
}

func (s *fakeSession) ClearToken(ctx context.Context) error {
	s.ClearCalls++
	s.Token = ""
	return s.ClearErr
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ---- auth ----

func TestAuthService_Login_StoresToken(t *testing.T) {
	client := &fakeClient{LoginRet: "tok-123"}
	sess := &fakeSession{}
	svc := NewAuthService(client, sess)

	err := svc.Login(context.Background(), "investor@example.com", []byte("hunter22"))
	require.NoError(t, err)
	require.Equal(t, "tok-123", sess.Token)
	require.Equal(t, "investor@example.com", sess.Email)
	require.Equal(t, "investor@example.com", client.LastLoginEmail)
	require.Equal(t, "hunter22", client.LastLoginPassword)
}

func TestAuthService_Login_ServerErrorLeavesSessionUntouched(t *testing.T) {
	client := &fakeClient{LoginErr: errors.New("invalid credentials")}
	sess := &fakeSession{}
	svc := NewAuthService(client, sess)

	err := svc.Login(context.Background(), "investor@example.com", []byte("wrong"))
	require.Error(t, err)
	require.Empty(t, sess.Token)
}

func TestAuthService_Register_StoresToken(t *testing.T) {
	client := &fakeClient{RegisterRet: "tok-reg"}
	sess := &fakeSession{}
	svc := NewAuthService(client, sess)

	err := svc.Register(context.Background(), "new@example.com", "newbie", []byte("hunter22"))
	require.NoError(t, err)
	require.Equal(t, "tok-reg", sess.Token)
	require.Equal(t, "newbie", client.LastRegisterUser)
}

func TestAuthService_GoogleAuth_StoresToken(t *testing.T) {
	client := &fakeClient{GoogleRet: "tok-google"}
	sess := &fakeSession{}
	svc := NewAuthService(client, sess)

	require.NoError(t, svc.GoogleAuth(context.Background(), "oauth-code"))
	require.Equal(t, "tok-google", sess.Token)
}

func TestAuthService_Logout_ClearsSession(t *testing.T) {
	sess := &fakeSession{Token: "tok"}
	svc := NewAuthService(&fakeClient{}, sess)

	require.NoError(t, svc.Logout(context.Background()))
	require.Equal(t, 1, sess.ClearCalls)
	require.Empty(t, sess.Token)
}

// ---- properties ----

func TestPropertyService_Search_AddsPaging(t *testing.T) {
	client := &fakeClient{SearchRet: []models.Property{{ID: 1}}}
	svc := NewPropertyService(client)

	_, err := svc.Search(context.Background(), search.Criteria{ZipCode: "90210"}, Page{Skip: 40, Limit: 20})
	require.NoError(t, err)

	require.Equal(t, "90210", client.LastSearchQuery.Get("zip_code"))
	require.Equal(t, "40", client.LastSearchQuery.Get("skip"))
	require.Equal(t, "20", client.LastSearchQuery.Get("limit"))
}

func TestPropertyService_Search_EmptyCriteriaStillQueries(t *testing.T) {
	client := &fakeClient{}
	svc := NewPropertyService(client)

	_, err := svc.Search(context.Background(), search.Reset(), Page{})
	require.NoError(t, err)

	// The call was made, with paging only.
	require.NotNil(t, client.LastSearchQuery)
	require.Equal(t, "0", client.LastSearchQuery.Get("skip"))
	require.Equal(t, "20", client.LastSearchQuery.Get("limit"))
	require.Empty(t, client.LastSearchQuery.Get("zip_code"))
}

func TestPropertyService_Search_ClampsLimit(t *testing.T) {
	client := &fakeClient{}
	svc := NewPropertyService(client)

	_, err := svc.Search(context.Background(), search.Reset(), Page{Skip: -5, Limit: 500})
	require.NoError(t, err)
	require.Equal(t, "0", client.LastSearchQuery.Get("skip"))
	require.Equal(t, "100", client.LastSearchQuery.Get("limit"))
}

// ---- profile ----

func TestProfileService_Get_TruncatesDateOfBirth(t *testing.T) {
	dob := time.Date(1990, time.March, 14, 15, 9, 26, 0, time.UTC)
	client := &fakeClient{GetProfileRet: &models.Profile{ID: 1, DateOfBirth: &dob}}
	svc := NewProfileService(client)

	p, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, p.DateOfBirth)
	require.Equal(t, time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC), *p.DateOfBirth)
}

func TestProfileService_Get_NilDateOfBirth(t *testing.T) {
	client := &fakeClient{GetProfileRet: &models.Profile{ID: 1}}
	svc := NewProfileService(client)

	p, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Nil(t, p.DateOfBirth)
}

func TestProfileService_Update_PassesFieldsThrough(t *testing.T) {
	addr := "12 Main St"
	client := &fakeClient{UpdateProfileRet: &models.Profile{ID: 1, Address: &addr}}
	svc := NewProfileService(client)

	p, err := svc.Update(context.Background(), models.ProfileUpdate{Address: &addr})
	require.NoError(t, err)
	require.Equal(t, &addr, client.LastUpdate.Address)
	require.Equal(t, "12 Main St", *p.Address)
}

// ---- favorites ----

func TestFavoriteService_List_SeedsReconciler(t *testing.T) {
	client := &fakeClient{ListFavoritesRet: []models.Favorite{
		{ID: 11, PropertyID: 101, Property: models.Property{ID: 101}},
		{ID: 12, PropertyID: 102, Property: models.Property{ID: 102}},
	}}
	rec := favorites.New(client, discardLogger())
	svc := NewFavoriteService(client, rec)

	favs, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, favs, 2)
	require.True(t, rec.IsFavorited(101))
	require.True(t, rec.IsFavorited(102))
}
