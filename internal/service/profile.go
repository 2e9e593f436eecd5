package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Nomenandrianina/fleet-master/internal/models"
	"github.com/Nomenandrianina/fleet-master/internal/repository"
)

type ProfileService struct {
	profileRepo repository.ProfileRepo
}

func NewProfileService(profileRepo repository.ProfileRepo) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

var _ Profile = (*ProfileService)(nil)

var errEmptyProfileName = errors.New("profile first and last name are required")

// Load returns the saved record, or the default one when nothing was
// ever saved.
func (s *ProfileService) Load(ctx context.Context) (models.Profile, error) {
	return s.profileRepo.Load(ctx)
}

// Save replaces the stored record as a whole. The only check is that the
// record still names somebody; every other field is free-form.
func (s *ProfileService) Save(ctx context.Context, p models.Profile) error {
	if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
		return errEmptyProfileName
	}
	return s.profileRepo.Save(ctx, p)
}
