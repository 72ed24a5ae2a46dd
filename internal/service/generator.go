package service

import (
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

// GeneratorService handles password generation business logic, including
// the boundary policy the core generator deliberately leaves out: the
// minimum length and option defaulting.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate produces a password plus its entropy estimate for the given
// request. Absent booleans default to all pools enabled with guaranteed
// coverage and no ambiguity filtering; a zero length defaults to 16.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:            req.Length,
		Uppercase:         boolOrDefault(req.Uppercase, true),
		Lowercase:         boolOrDefault(req.Lowercase, true),
		Digits:            boolOrDefault(req.Digits, true),
		Symbols:           boolOrDefault(req.Symbols, true),
		ExcludeAmbiguous:  boolOrDefault(req.ExcludeAmbiguous, false),
		GuaranteeEachType: boolOrDefault(req.GuaranteeEachType, true),
	}

	if opts.Length == 0 {
		opts.Length = 16
	}
	if opts.Length < crypto.MinLength {
		return model.GenerateResponse{}, crypto.ErrLengthTooShort
	}

	return generateFromOptions(opts)
}

// EstimateEntropy computes entropy bits and strength for an arbitrary
// length and alphabet size, without generating anything.
func (s *GeneratorService) EstimateEntropy(req model.EntropyRequest) model.EntropyResponse {
	bits := crypto.EstimateBits(req.Length, req.AlphabetSize)
	return model.EntropyResponse{
		EntropyBits: bits,
		Strength:    string(crypto.StrengthFor(bits)),
	}
}

// generateFromOptions runs the core generator and annotates the result with
// its entropy estimate. Shared with preset-based generation.
func generateFromOptions(opts crypto.GeneratorOptions) (model.GenerateResponse, error) {
	password, err := crypto.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	alphabetSize, err := crypto.AlphabetSize(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	bits := crypto.EstimateBits(opts.Length, alphabetSize)
	return model.GenerateResponse{
		Password:    password,
		Length:      len(password),
		EntropyBits: bits,
		Strength:    string(crypto.StrengthFor(bits)),
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
