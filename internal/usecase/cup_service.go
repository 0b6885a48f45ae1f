package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/cup"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	idgen "github.com/riskibarqy/league-portal/internal/platform/id"
)

type CupInput struct {
	Slug    string
	NameEN  string
	NameAM  string
	Country string
	LogoURL string
}

type EditionInput struct {
	Slug           string
	Season         string
	WinnerTeamID   string
	RunnerUpTeamID string
	FinalDate      *time.Time
}

// CupDetail is a cup with its editions, latest season first.
type CupDetail struct {
	Cup      cup.Cup
	Editions []cup.Edition
}

type CupService struct {
	cupRepo     cup.Repository
	editionRepo cup.EditionRepository
	teamRepo    team.Repository
	idGen       idgen.Generator
	now         func() time.Time
}

func NewCupService(cupRepo cup.Repository, editionRepo cup.EditionRepository, teamRepo team.Repository, idGen idgen.Generator) *CupService {
	return &CupService{
		cupRepo:     cupRepo,
		editionRepo: editionRepo,
		teamRepo:    teamRepo,
		idGen:       idGen,
		now:         time.Now,
	}
}

func (s *CupService) ListCups(ctx context.Context) ([]cup.Cup, error) {
	cups, err := s.cupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cups: %w", err)
	}
	return cups, nil
}

func (s *CupService) GetCup(ctx context.Context, ref string) (CupDetail, error) {
	c, err := resolveRef(ctx, "cup", ref, s.cupRepo.GetByID, s.cupRepo.GetBySlug)
	if err != nil {
		return CupDetail{}, err
	}
	editions, err := s.editionRepo.ListByCup(ctx, c.ID)
	if err != nil {
		return CupDetail{}, fmt.Errorf("list cup editions: %w", err)
	}
	sort.SliceStable(editions, func(i, j int) bool { return editions[i].Season > editions[j].Season })

	return CupDetail{Cup: c, Editions: editions}, nil
}

func (s *CupService) CreateCup(ctx context.Context, in CupInput) (cup.Cup, error) {
	id, err := s.idGen.NewID()
	if err != nil {
		return cup.Cup{}, fmt.Errorf("generate cup id: %w", err)
	}
	now := s.now().UTC()
	c := cup.Cup{ID: id, CreatedAt: now}
	if err := s.applyCup(ctx, &c, in, now); err != nil {
		return cup.Cup{}, err
	}
	if err := s.cupRepo.Create(ctx, c); err != nil {
		return cup.Cup{}, fmt.Errorf("create cup: %w", err)
	}
	return c, nil
}

func (s *CupService) UpdateCup(ctx context.Context, cupID string, in CupInput) (cup.Cup, error) {
	c, err := loadByID(ctx, "cup", cupID, s.cupRepo.GetByID)
	if err != nil {
		return cup.Cup{}, err
	}
	if err := s.applyCup(ctx, &c, in, s.now().UTC()); err != nil {
		return cup.Cup{}, err
	}
	if err := s.cupRepo.Update(ctx, c); err != nil {
		return cup.Cup{}, fmt.Errorf("update cup: %w", err)
	}
	return c, nil
}

// DeleteCup refuses to remove a cup that still has editions.
func (s *CupService) DeleteCup(ctx context.Context, cupID string) error {
	c, err := loadByID(ctx, "cup", cupID, s.cupRepo.GetByID)
	if err != nil {
		return err
	}
	editions, err := s.editionRepo.ListByCup(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("list cup editions: %w", err)
	}
	if len(editions) > 0 {
		return fmt.Errorf("%w: cup %s still has %d editions", ErrConflict, c.Slug, len(editions))
	}
	if err := s.cupRepo.Delete(ctx, c.ID); err != nil {
		return fmt.Errorf("delete cup: %w", err)
	}
	return nil
}

func (s *CupService) CreateEdition(ctx context.Context, cupID string, in EditionInput) (cup.Edition, error) {
	c, err := loadByID(ctx, "cup", cupID, s.cupRepo.GetByID)
	if err != nil {
		return cup.Edition{}, err
	}
	id, err := s.idGen.NewID()
	if err != nil {
		return cup.Edition{}, fmt.Errorf("generate cup edition id: %w", err)
	}
	now := s.now().UTC()
	e := cup.Edition{ID: id, CupID: c.ID, CreatedAt: now}
	if err := s.applyEdition(ctx, &e, in, now); err != nil {
		return cup.Edition{}, err
	}
	if err := s.editionRepo.Create(ctx, e); err != nil {
		return cup.Edition{}, fmt.Errorf("create cup edition: %w", err)
	}
	return e, nil
}

func (s *CupService) UpdateEdition(ctx context.Context, editionID string, in EditionInput) (cup.Edition, error) {
	e, err := loadByID(ctx, "cup edition", editionID, s.editionRepo.GetByID)
	if err != nil {
		return cup.Edition{}, err
	}
	if err := s.applyEdition(ctx, &e, in, s.now().UTC()); err != nil {
		return cup.Edition{}, err
	}
	if err := s.editionRepo.Update(ctx, e); err != nil {
		return cup.Edition{}, fmt.Errorf("update cup edition: %w", err)
	}
	return e, nil
}

func (s *CupService) DeleteEdition(ctx context.Context, editionID string) error {
	e, err := loadByID(ctx, "cup edition", editionID, s.editionRepo.GetByID)
	if err != nil {
		return err
	}
	if err := s.editionRepo.Delete(ctx, e.ID); err != nil {
		return fmt.Errorf("delete cup edition: %w", err)
	}
	return nil
}

func (s *CupService) applyCup(ctx context.Context, c *cup.Cup, in CupInput, now time.Time) error {
	value, err := pickSlug(in.Slug, in.NameEN, "cup", c.ID)
	if err != nil {
		return err
	}
	if err := ensureSlugFree(ctx, "cup", value, c.ID, s.cupRepo.GetBySlug, func(c cup.Cup) string { return c.ID }); err != nil {
		return err
	}

	c.Slug = value
	c.NameEN = strings.TrimSpace(in.NameEN)
	c.NameAM = strings.TrimSpace(in.NameAM)
	c.Country = strings.ToUpper(strings.TrimSpace(in.Country))
	c.LogoURL = strings.TrimSpace(in.LogoURL)
	c.UpdatedAt = now

	return domainInvalid(c.Validate())
}

func (s *CupService) applyEdition(ctx context.Context, e *cup.Edition, in EditionInput, now time.Time) error {
	refs := []struct{ field, teamID string }{
		{"winner_team_id", in.WinnerTeamID},
		{"runner_up_team_id", in.RunnerUpTeamID},
	}
	for _, ref := range refs {
		if strings.TrimSpace(ref.teamID) == "" {
			continue
		}
		if _, err := mustExist(ctx, "team", ref.field, ref.teamID, s.teamRepo.GetByID); err != nil {
			return err
		}
	}
	value, err := pickSlug(in.Slug, in.Season, "edition", e.ID)
	if err != nil {
		return err
	}
	bySlug := func(ctx context.Context, v string) (cup.Edition, bool, error) {
		return s.editionRepo.GetBySlug(ctx, e.CupID, v)
	}
	if err := ensureSlugFree(ctx, "cup edition", value, e.ID, bySlug, func(e cup.Edition) string { return e.ID }); err != nil {
		return err
	}

	e.Slug = value
	e.Season = strings.TrimSpace(in.Season)
	e.WinnerTeamID = strings.TrimSpace(in.WinnerTeamID)
	e.RunnerUpTeamID = strings.TrimSpace(in.RunnerUpTeamID)
	e.FinalDate = in.FinalDate
	e.UpdatedAt = now

	return domainInvalid(e.Validate())
}
