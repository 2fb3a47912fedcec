package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yourplaces/places-api/internal/api/metrics"
	"github.com/yourplaces/places-api/internal/core/domain"
	"github.com/yourplaces/places-api/internal/core/ports"
)

// PlaceService implements the place use cases. CreatePlace and DeletePlace
// keep the place collection and the owning user's place list consistent by
// running both writes inside one transaction.
type PlaceService struct {
	places   ports.PlaceRepository
	users    ports.UserRepository
	tx       ports.TxRunner
	geocoder ports.Geocoder
	images   ports.ImageStore
	logger   zerolog.Logger
}

func NewPlaceService(
	places ports.PlaceRepository,
	users ports.UserRepository,
	tx ports.TxRunner,
	geocoder ports.Geocoder,
	images ports.ImageStore,
	logger zerolog.Logger,
) *PlaceService {
	return &PlaceService{
		places:   places,
		users:    users,
		tx:       tx,
		geocoder: geocoder,
		images:   images,
		logger:   logger,
	}
}

// CreatePlace geocodes the address, verifies the creator exists, then inserts
// the place and appends its id to the creator's place list in one atomic unit.
// Both failure paths before the transaction leave the stores untouched; a
// failed commit leaves them untouched too. The stored image file is not part
// of the transaction and survives an aborted create.
func (s *PlaceService) CreatePlace(ctx context.Context, input ports.CreatePlaceInput) (*domain.Place, error) {
	location, err := s.geocoder.Resolve(ctx, input.Address)
	if err != nil {
		return nil, err
	}

	creator, err := s.users.FindByID(ctx, input.CreatorID)
	if err != nil {
		return nil, err
	}

	place := &domain.Place{
		Title:       input.Title,
		Description: input.Description,
		Address:     input.Address,
		Location:    location,
		Image:       input.ImagePath,
		Creator:     creator.ID,
	}

	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.places.Insert(txCtx, place)
		if err != nil {
			return err
		}
		place.ID = id
		return s.users.AddPlace(txCtx, creator.ID, id)
	})
	if err != nil {
		s.logger.Error().Err(err).Str("creator", creator.ID).Msg("create place transaction failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrTransactionAborted, err)
	}

	s.logger.Info().Str("place_id", place.ID).Str("creator", creator.ID).Msg("place created")
	return place, nil
}

func (s *PlaceService) GetPlace(ctx context.Context, placeID string) (*domain.Place, error) {
	return s.places.FindByID(ctx, placeID)
}

// ListPlacesByUser returns every place owned by userID. The user is resolved
// first so an unknown id surfaces as ErrUserNotFound rather than an empty list.
func (s *PlaceService) ListPlacesByUser(ctx context.Context, userID string) ([]*domain.Place, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.places.FindByCreator(ctx, user.ID)
}

// UpdatePlace overwrites title and description. Last write wins; no conflict
// detection.
func (s *PlaceService) UpdatePlace(ctx context.Context, input ports.UpdatePlaceInput) (*domain.Place, error) {
	place, err := s.places.FindByID(ctx, input.PlaceID)
	if err != nil {
		return nil, err
	}

	if err := s.places.UpdateFields(ctx, place.ID, input.Title, input.Description); err != nil {
		return nil, err
	}

	place.Title = input.Title
	place.Description = input.Description
	return place, nil
}

// DeletePlace removes the place and pulls its id from the creator's place list
// in one atomic unit, then deletes the stored image. File removal happens only
// after commit and its failure is logged, not surfaced; the database state is
// already consistent at that point.
func (s *PlaceService) DeletePlace(ctx context.Context, placeID string) error {
	place, err := s.places.FindByID(ctx, placeID)
	if err != nil {
		return err
	}

	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.places.Delete(txCtx, place.ID); err != nil {
			return err
		}
		return s.users.RemovePlace(txCtx, place.Creator, place.ID)
	})
	if err != nil {
		s.logger.Error().Err(err).Str("place_id", place.ID).Msg("delete place transaction failed")
		return fmt.Errorf("%w: %v", domain.ErrTransactionAborted, err)
	}

	if place.Image != "" {
		if err := s.images.Remove(place.Image); err != nil {
			metrics.ImageCleanupFailuresTotal.Inc()
			s.logger.Warn().Err(err).Str("image", place.Image).Msg("could not remove place image")
		}
	}

	s.logger.Info().Str("place_id", place.ID).Str("creator", place.Creator).Msg("place deleted")
	return nil
}
