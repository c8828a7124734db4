package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/press-pay/internal/logger"
	"github.com/MKhiriev/press-pay/internal/store"
	"github.com/MKhiriev/press-pay/internal/validators"
	"github.com/MKhiriev/press-pay/models"
)

// entryService is the concrete implementation of EntryService.
//
// Existence and ownership checks run before the write and are not atomic
// with it. A row removed in between surfaces from the repository as
// store.ErrEntryNotFound, a user removed in between as
// store.ErrInvalidReference.
type entryService struct {
	userRepository  store.UserRepository
	entryRepository store.EntryRepository
	validator       validators.Validator

	logger *logger.Logger
}

// NewEntryService constructs an EntryService over the given repositories.
func NewEntryService(userRepository store.UserRepository, entryRepository store.EntryRepository, logger *logger.Logger) EntryService {
	return &entryService{
		userRepository:  userRepository,
		entryRepository: entryRepository,
		validator:       validators.NewEntryValidator(),
		logger:          logger,
	}
}

// CreateEntry validates the request in this order: presence of type and
// count, type, count, presence of the counterpart id, and finally that the
// counterpart exists with the opposite role. The caller's id is bound to
// its own role column.
func (s *entryService) CreateEntry(ctx context.Context, caller models.Identity, request models.CreateEntryRequest) (models.ClothesEntry, error) {
	log := logger.FromContext(ctx)

	callerSide, err := sideOf(caller.Role)
	if err != nil {
		return models.ClothesEntry{}, err
	}

	if err = s.validator.Validate(ctx, request); err != nil {
		return models.ClothesEntry{}, err
	}

	counterpartID, err := s.counterpart(ctx, callerSide, request)
	if err != nil {
		return models.ClothesEntry{}, err
	}

	// both already validated
	count, _ := request.Count.Int()
	entry := models.ClothesEntry{
		Type:  models.EntryType(request.Type),
		Count: count,
	}
	callerSide.bind(&entry, caller.ID, counterpartID)

	created, err := s.entryRepository.CreateEntry(ctx, entry)
	if err != nil {
		log.Err(err).
			Str("func", "entryService.CreateEntry").
			Int64("customer_id", entry.CustomerID).
			Int64("vendor_id", entry.VendorID).
			Msg("error saving clothes entry")
		return models.ClothesEntry{}, fmt.Errorf("error saving clothes entry: %w", err)
	}

	log.Info().
		Int64("entry_id", created.ID).
		Int64("customer_id", created.CustomerID).
		Int64("vendor_id", created.VendorID).
		Msg("clothes entry created")

	return created, nil
}

// counterpart resolves the other party of a new entry and checks its role.
func (s *entryService) counterpart(ctx context.Context, callerSide side, request models.CreateEntryRequest) (int64, error) {
	raw := callerSide.counterpartID(request)
	if !raw.Present() {
		return 0, callerSide.missingCounterpart()
	}

	id, err := raw.Int()
	if err != nil || id <= 0 {
		return 0, callerSide.invalidCounterpart()
	}

	user, err := s.userRepository.FindUserByID(ctx, id)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return 0, callerSide.invalidCounterpart()
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entryService.counterpart").
			Int64("user_id", id).
			Msg("error looking up counterpart")
		return 0, fmt.Errorf("error looking up counterpart: %w", err)
	}

	if user.Role != callerSide.counterpartRole() {
		return 0, callerSide.invalidCounterpart()
	}

	return user.ID, nil
}

func (s *entryService) ListEntries(ctx context.Context, caller models.Identity) ([]models.ClothesEntry, error) {
	callerSide, err := sideOf(caller.Role)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepository.ListEntries(ctx, callerSide.filter(caller.ID))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entryService.ListEntries").
			Int64("user_id", caller.ID).
			Msg("error listing clothes entries")
		return nil, fmt.Errorf("error listing clothes entries: %w", err)
	}

	if entries == nil {
		entries = []models.ClothesEntry{}
	}

	return entries, nil
}

// UpdateEntry checks the id, existence and ownership before it validates
// the body. Omitted fields keep their stored value, and an update that
// changes nothing returns the stored entry.
func (s *entryService) UpdateEntry(ctx context.Context, caller models.Identity, id int64, request models.UpdateEntryRequest) (models.ClothesEntry, error) {
	log := logger.FromContext(ctx)

	entry, err := s.ownedEntry(ctx, caller, id)
	if err != nil {
		return models.ClothesEntry{}, err
	}

	if err = s.validator.Validate(ctx, request); err != nil {
		return models.ClothesEntry{}, err
	}

	update := models.EntryUpdate{ID: id}
	if request.Type != nil && *request.Type != "" {
		entryType := models.EntryType(*request.Type)
		update.Type = &entryType
	}
	if request.Count != nil {
		count, _ := request.Count.Int()
		update.Count = &count
	}

	if update.IsEmpty() {
		return entry, nil
	}

	updated, err := s.entryRepository.UpdateEntry(ctx, update)
	if err != nil {
		log.Err(err).Str("func", "entryService.UpdateEntry").Int64("entry_id", id).Msg("error updating clothes entry")
		return models.ClothesEntry{}, fmt.Errorf("error updating clothes entry: %w", err)
	}

	return updated, nil
}

func (s *entryService) DeleteEntry(ctx context.Context, caller models.Identity, id int64) error {
	if _, err := s.ownedEntry(ctx, caller, id); err != nil {
		return err
	}

	if err := s.entryRepository.DeleteEntry(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entryService.DeleteEntry").
			Int64("entry_id", id).
			Msg("error deleting clothes entry")
		return fmt.Errorf("error deleting clothes entry: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("entry_id", id).Int64("user_id", caller.ID).Msg("clothes entry deleted")
	return nil
}

// ownedEntry loads entry id and checks that caller is its party on the
// caller's side.
func (s *entryService) ownedEntry(ctx context.Context, caller models.Identity, id int64) (models.ClothesEntry, error) {
	if id <= 0 {
		return models.ClothesEntry{}, ErrInvalidID
	}

	callerSide, err := sideOf(caller.Role)
	if err != nil {
		return models.ClothesEntry{}, err
	}

	entry, err := s.entryRepository.FindEntryByID(ctx, id)
	if errors.Is(err, store.ErrEntryNotFound) {
		return models.ClothesEntry{}, err
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entryService.ownedEntry").
			Int64("entry_id", id).
			Msg("error loading clothes entry")
		return models.ClothesEntry{}, fmt.Errorf("error loading clothes entry: %w", err)
	}

	if !callerSide.owns(entry, caller.ID) {
		return models.ClothesEntry{}, ErrForbidden
	}

	return entry, nil
}
