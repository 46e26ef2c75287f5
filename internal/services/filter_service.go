package services

import (
	"sort"
	"strings"

	"gorm.io/gorm"

	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type FilterService struct {
	profileRepo repositories.ProfileRepository
}

func NewFilterService(profileRepo repositories.ProfileRepository) *FilterService {
	return &FilterService{profileRepo: profileRepo}
}

// CandidateFilters aggregates the facet values the candidate search UI
// offers. Skills and languages are stored as comma-separated tags, so they
// are split and deduplicated here rather than in SQL.
func (s *FilterService) CandidateFilters(db *gorm.DB) (*dto.CandidateFilters, error) {
	rawSkills, err := s.profileRepo.AllSkills(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	rawLanguages, err := s.profileRepo.AllLanguages(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	diplomas, err := s.profileRepo.DistinctDiplomas(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	years, err := s.profileRepo.DistinctExperienceYears(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	sort.Strings(diplomas)

	return &dto.CandidateFilters{
		Skills:          SplitTags(rawSkills),
		Languages:       SplitTags(rawLanguages),
		Diplomas:        diplomas,
		ExperienceYears: years,
	}, nil
}

// SplitTags explodes comma-separated tag lists into a sorted set of
// distinct trimmed values.
func SplitTags(rows []string) []string {
	seen := make(map[string]struct{})
	for _, row := range rows {
		for _, tag := range strings.Split(row, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			seen[tag] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
