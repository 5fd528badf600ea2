package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventlisting/internal/domain"
)

type registrationService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	coordinatorRepo  domain.EventCoordinatorRepository
	emailService     domain.EmailService
	clock            Clock
	defaultLanguage  string
	contextTimeout   time.Duration
	logger           *slog.Logger
}

func NewRegistrationService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	coordinatorRepo domain.EventCoordinatorRepository,
	emailService domain.EmailService,
	clock Clock,
	defaultLanguage string,
	timeout time.Duration,
	logger *slog.Logger,
) domain.RegistrationService {
	return &registrationService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		coordinatorRepo:  coordinatorRepo,
		emailService:     emailService,
		clock:            clock,
		defaultLanguage:  defaultLanguage,
		contextTimeout:   timeout,
		logger:           logger,
	}
}

// Register stores a visitor registration for the event behind slug and notifies the visitor
// and every coordinator. Email failures are logged; the registration itself stands.
func (s *registrationService) Register(ctx context.Context, namespace, slug string, reg *domain.Registration) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	language := reg.LanguageCode
	if language == "" {
		language = s.defaultLanguage
		reg.LanguageCode = language
	}
	event, err := findBySlug(ctx, s.eventRepo, namespace, language, s.defaultLanguage, slug)
	if err != nil {
		return nil, err
	}
	now := s.clock.now()
	if !domain.Visible(event, now) {
		return nil, domain.ErrNotFound
	}
	if !event.RegistrationOpen(now) {
		return nil, domain.ErrRegistrationClosed
	}

	reg.EventID = event.ID
	reg.CreatedAt = now
	reg.UpdatedAt = now
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.notify(ctx, event, reg)
	return event, nil
}

func (s *registrationService) notify(ctx context.Context, event *domain.Event, reg *domain.Registration) {
	tr, _, _ := event.Translations.Get(reg.LanguageCode, s.defaultLanguage)
	start := event.StartAt(s.clock.location())
	startText := start.At.Format("2006-01-02")
	if start.HasTime {
		startText = start.At.Format("2006-01-02 15:04")
	}

	err := s.emailService.SendRegistrationConfirmation(ctx, &domain.RegistrationEmailData{
		Email:        reg.Email,
		Salutation:   reg.Salutation.Label(),
		FullName:     reg.FullName(),
		EventTitle:   tr.Title,
		EventStart:   startText,
		Location:     tr.Location,
		Language:     reg.LanguageCode,
		Registration: reg,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "registration confirmation failed", "event_id", event.ID, "registration_id", reg.ID, "err", err)
	}

	coordinators, err := s.coordinatorRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "load coordinators failed", "event_id", event.ID, "err", err)
		return
	}
	for _, c := range coordinators {
		to := c.EmailAddress()
		if to == "" {
			continue
		}
		err := s.emailService.SendCoordinatorNotification(ctx, &domain.CoordinatorEmailData{
			Email:           to,
			CoordinatorName: c.String(),
			EventTitle:      tr.Title,
			Registration:    reg,
		})
		if err != nil {
			s.logger.ErrorContext(ctx, "coordinator notification failed", "event_id", event.ID, "coordinator_id", c.ID, "err", err)
		}
	}
}

// IsRegistered reports whether registrationID belongs to eventID.
func (s *registrationService) IsRegistered(ctx context.Context, eventID, registrationID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	reg, err := s.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return reg.EventID == eventID, nil
}

func (s *registrationService) ListRegistrations(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.registrationRepo.ListByEventID(ctx, eventID)
}
