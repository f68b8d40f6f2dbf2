package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devconnect/backend/internal/models"
	"github.com/devconnect/backend/internal/types"
)

// ProfileService handles profile creation, updates and the experience and
// education sub-lists.
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{
		db: db,
	}
}

// ProfileInput carries the upsert field set after request binding.
type ProfileInput struct {
	Company        string
	Website        string
	Location       string
	Status         string
	Skills         string
	Bio            string
	GithubUsername string
	Social         models.SocialLinks
}

// splitSkills turns the comma-delimited input into an ordered list with
// each element trimmed. Empty elements are kept, matching the behavior the
// frontend has always seen for inputs with trailing commas.
func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, len(parts))
	for i, p := range parts {
		skills[i] = strings.TrimSpace(p)
	}
	return skills
}

// Upsert creates the caller's profile on first submission and replaces the
// top-level scalar and social fields on every later one. The experience and
// education lists are never touched here.
func (s *ProfileService) Upsert(ctx context.Context, userID uuid.UUID, input ProfileInput) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.Profile{UserID: userID}
	}

	profile.Company = input.Company
	profile.Website = input.Website
	profile.Location = input.Location
	profile.Status = input.Status
	profile.Skills = splitSkills(input.Skills)
	profile.Bio = input.Bio
	profile.GithubUsername = input.GithubUsername
	profile.Social = input.Social

	// Save inserts when the profile is new. Two concurrent first
	// submissions can both reach this insert; the unique index on user_id
	// rejects the loser.
	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByUser returns the profile owned by the given user.
func (s *ProfileService) GetByUser(ctx context.Context, userID uuid.UUID) (*types.ProfileView, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	var owner models.User
	if err := s.db.WithContext(ctx).First(&owner, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	view := withOwner(profile, owner)
	return &view, nil
}

// List returns every profile with its owner's name and avatar resolved.
// The join is an explicit second fetch keyed by user id.
func (s *ProfileService) List(ctx context.Context) ([]types.ProfileView, error) {
	var profiles []models.Profile
	if err := s.db.WithContext(ctx).Order("created_at").Find(&profiles).Error; err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return []types.ProfileView{}, nil
	}

	ids := make([]uuid.UUID, len(profiles))
	for i, p := range profiles {
		ids[i] = p.UserID
	}
	var owners []models.User
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&owners).Error; err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]models.User, len(owners))
	for _, o := range owners {
		byID[o.ID] = o
	}

	views := make([]types.ProfileView, len(profiles))
	for i, p := range profiles {
		views[i] = withOwner(p, byID[p.UserID])
	}
	return views, nil
}

// AddExperience inserts a new entry at the head of the experience list.
func (s *ProfileService) AddExperience(ctx context.Context, userID uuid.UUID, entry models.Experience) (*models.Profile, error) {
	profile, err := s.ownedProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry.ID = uuid.New()
	profile.Experience = append([]models.Experience{entry}, profile.Experience...)

	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// RemoveExperience deletes the entry with the given id from the caller's
// experience list.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, entryID uuid.UUID) (*models.Profile, error) {
	profile, err := s.ownedProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, e := range profile.Experience {
		if e.ID == entryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrEntryNotFound
	}
	profile.Experience = append(profile.Experience[:idx], profile.Experience[idx+1:]...)

	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// AddEducation inserts a new entry at the head of the education list.
func (s *ProfileService) AddEducation(ctx context.Context, userID uuid.UUID, entry models.Education) (*models.Profile, error) {
	profile, err := s.ownedProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry.ID = uuid.New()
	profile.Education = append([]models.Education{entry}, profile.Education...)

	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// RemoveEducation deletes the entry with the given id from the caller's
// education list.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, entryID uuid.UUID) (*models.Profile, error) {
	profile, err := s.ownedProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, e := range profile.Education {
		if e.ID == entryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrEntryNotFound
	}
	profile.Education = append(profile.Education[:idx], profile.Education[idx+1:]...)

	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// Delete removes the caller's profile. Used both directly and by the
// account-deletion cascade.
func (s *ProfileService) Delete(ctx context.Context, userID uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Profile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (s *ProfileService) ownedProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func withOwner(p models.Profile, o models.User) types.ProfileView {
	return types.ProfileView{
		Profile: p,
		Owner: types.ProfileOwner{
			ID:     o.ID,
			Name:   o.Name,
			Avatar: o.Avatar,
		},
	}
}
