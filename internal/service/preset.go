package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
)

var (
	ErrPresetNameRequired = errors.New("preset name is required")
	ErrPresetNameTooLong  = errors.New("preset name must be at most 64 characters")
	ErrPresetNotFound     = errors.New("preset not found")
)

const maxPresetNameRunes = 64

// PresetStore is the persistence surface the preset service needs.
// *repository.PresetRepository satisfies it.
type PresetStore interface {
	Upsert(ctx context.Context, p *model.Preset) error
	GetByName(ctx context.Context, userID int64, name string) (*model.Preset, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Preset, error)
	Delete(ctx context.Context, userID int64, name string) error
}

// PresetService handles saved generation configurations. Presets are
// validated with the same rules as ad-hoc generation requests, so a saved
// preset can always be generated from later.
type PresetService struct {
	store PresetStore
}

// NewPresetService creates a new PresetService.
func NewPresetService(store PresetStore) *PresetService {
	return &PresetService{store: store}
}

// Save creates or replaces a named preset for the user and returns the
// stored row, timestamps included.
func (s *PresetService) Save(ctx context.Context, userID int64, req model.PresetRequest) (model.PresetResponse, error) {
	if req.Name == "" {
		return model.PresetResponse{}, ErrPresetNameRequired
	}
	if utf8.RuneCountInString(req.Name) > maxPresetNameRunes {
		return model.PresetResponse{}, ErrPresetNameTooLong
	}

	opts := presetOptions(req)
	if opts.Length < crypto.MinLength {
		return model.PresetResponse{}, crypto.ErrLengthTooShort
	}

	// Dry-run the generator so unusable configurations are rejected at
	// save time instead of surprising the user later.
	if _, err := crypto.Generate(opts); err != nil {
		return model.PresetResponse{}, err
	}

	preset := &model.Preset{
		UserID:            userID,
		Name:              req.Name,
		Length:            req.Length,
		Uppercase:         req.Uppercase,
		Lowercase:         req.Lowercase,
		Digits:            req.Digits,
		Symbols:           req.Symbols,
		ExcludeAmbiguous:  req.ExcludeAmbiguous,
		GuaranteeEachType: req.GuaranteeEachType,
	}

	if err := s.store.Upsert(ctx, preset); err != nil {
		return model.PresetResponse{}, err
	}

	// The database owns the timestamps, so read the row back rather than
	// echoing the in-memory struct.
	saved, err := s.store.GetByName(ctx, userID, req.Name)
	if err != nil {
		return model.PresetResponse{}, err
	}

	return presetResponse(*saved), nil
}

// List returns all of the user's presets.
func (s *PresetService) List(ctx context.Context, userID int64) ([]model.PresetResponse, error) {
	presets, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]model.PresetResponse, 0, len(presets))
	for _, p := range presets {
		resp = append(resp, presetResponse(p))
	}
	return resp, nil
}

// Delete removes one of the user's presets by name.
func (s *PresetService) Delete(ctx context.Context, userID int64, name string) error {
	if err := s.store.Delete(ctx, userID, name); err != nil {
		if errors.Is(err, repository.ErrPresetNotFound) {
			return ErrPresetNotFound
		}
		return err
	}
	return nil
}

// Generate produces a password from one of the user's saved presets.
func (s *PresetService) Generate(ctx context.Context, userID int64, name string) (model.GenerateResponse, error) {
	preset, err := s.store.GetByName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, repository.ErrPresetNotFound) {
			return model.GenerateResponse{}, ErrPresetNotFound
		}
		return model.GenerateResponse{}, err
	}

	return generateFromOptions(crypto.GeneratorOptions{
		Length:            preset.Length,
		Uppercase:         preset.Uppercase,
		Lowercase:         preset.Lowercase,
		Digits:            preset.Digits,
		Symbols:           preset.Symbols,
		ExcludeAmbiguous:  preset.ExcludeAmbiguous,
		GuaranteeEachType: preset.GuaranteeEachType,
	})
}

func presetOptions(req model.PresetRequest) crypto.GeneratorOptions {
	return crypto.GeneratorOptions{
		Length:            req.Length,
		Uppercase:         req.Uppercase,
		Lowercase:         req.Lowercase,
		Digits:            req.Digits,
		Symbols:           req.Symbols,
		ExcludeAmbiguous:  req.ExcludeAmbiguous,
		GuaranteeEachType: req.GuaranteeEachType,
	}
}

func presetResponse(p model.Preset) model.PresetResponse {
	return model.PresetResponse{
		Name:              p.Name,
		Length:            p.Length,
		Uppercase:         p.Uppercase,
		Lowercase:         p.Lowercase,
		Digits:            p.Digits,
		Symbols:           p.Symbols,
		ExcludeAmbiguous:  p.ExcludeAmbiguous,
		GuaranteeEachType: p.GuaranteeEachType,
		UpdatedAt:         p.UpdatedAt,
	}
}
