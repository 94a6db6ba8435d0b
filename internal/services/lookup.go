package services

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pokeapi-desk/pokemon-viewer/internal/artwork"
	"github.com/pokeapi-desk/pokemon-viewer/internal/pokeapi"
	"github.com/pokeapi-desk/pokemon-viewer/internal/species"
)

// ErrEmptyInput is returned for blank queries before any network call.
var ErrEmptyInput = errors.New("empty species name")

// Result is the outcome of one successful search. Image is nil and ImageErr
// set when the artwork could not be loaded; the record is still usable.
type Result struct {
	RequestID string
	Query     string
	Record    *species.Record
	Image     image.Image
	ImageErr  error
}

// LookupService runs the search flow shared by the desktop and terminal shells:
// validate input, fetch the record once, then load its artwork.
type LookupService struct {
	logger      *zap.Logger
	fetcher     pokeapi.Fetcher
	imageWidth  int
	imageHeight int
	timeout     time.Duration
}

// NewLookupService creates a lookup service. A zero timeout means searches are
// bounded only by the caller's context.
func NewLookupService(logger *zap.Logger, fetcher pokeapi.Fetcher, imageWidth, imageHeight int, timeout time.Duration) *LookupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LookupService{
		logger:      logger,
		fetcher:     fetcher,
		imageWidth:  imageWidth,
		imageHeight: imageHeight,
		timeout:     timeout,
	}
}

// Search looks up raw after trimming surrounding whitespace. Fetch errors are
// returned unchanged so callers can tell pokeapi.NotFoundError apart.
func (s *LookupService) Search(ctx context.Context, raw string) (*Result, error) {
	query, err := ValidateQuery(raw)
	if err != nil {
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	requestID := uuid.NewString()
	logger := s.logger.With(zap.String("request_id", requestID), zap.String("query", query))
	start := time.Now()

	record, err := s.fetcher.Fetch(ctx, query)
	if err != nil {
		var nf *pokeapi.NotFoundError
		if errors.As(err, &nf) {
			logger.Info("Species not found", zap.Duration("elapsed", time.Since(start)))
		} else {
			logger.Warn("Species lookup failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		}
		return nil, err
	}

	result := &Result{
		RequestID: requestID,
		Query:     query,
		Record:    record,
	}

	result.Image, result.ImageErr = s.loadArtwork(ctx, record.ImageURL)
	if result.ImageErr != nil {
		logger.Warn("Artwork unavailable", zap.String("image_url", record.ImageURL), zap.Error(result.ImageErr))
	}

	logger.Info("Species lookup completed",
		zap.String("name", record.Name),
		zap.Int("index", record.Index),
		zap.Bool("image", result.Image != nil),
		zap.Duration("elapsed", time.Since(start)))

	return result, nil
}

func (s *LookupService) loadArtwork(ctx context.Context, imageURL string) (image.Image, error) {
	data, err := s.fetcher.FetchImage(ctx, imageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch artwork: %w", err)
	}
	img, err := artwork.Load(data, s.imageWidth, s.imageHeight)
	if err != nil {
		return nil, fmt.Errorf("load artwork: %w", err)
	}
	return img, nil
}

// ValidateQuery trims raw and rejects blank input with ErrEmptyInput.
func ValidateQuery(raw string) (string, error) {
	query := strings.TrimSpace(raw)
	if query == "" {
		return "", ErrEmptyInput
	}
	return query, nil
}

// UserMessage maps a search error to the title and text of the notification a
// shell shows for it.
func UserMessage(err error) (title, message string) {
	var (
		nf *pokeapi.NotFoundError
		pe *pokeapi.ParseError
		le *pokeapi.LookupError
	)
	switch {
	case errors.Is(err, ErrEmptyInput):
		return "Input Error", "Please enter a Pokémon name."
	case errors.As(err, &nf):
		return "Not Found", "Pokémon not found."
	case errors.As(err, &pe):
		return "Not Found", "The Pokémon service returned an unexpected response."
	case errors.As(err, &le) && le.Status != 0:
		return "Not Found", fmt.Sprintf("The Pokémon service answered with status %d.", le.Status)
	case errors.As(err, &le):
		return "Not Found", "Could not reach the Pokémon service."
	default:
		return "Not Found", "Pokémon not found."
	}
}
