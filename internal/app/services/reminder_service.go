package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/ethos-training/ethos/internal/app/repositories"
	"github.com/ethos-training/ethos/internal/pkg/email"
)

// ReminderService periodically emails employees who have required modules
// that are not yet completed.
type ReminderService struct {
	progressRepo *repositories.ProgressRepository
	userRepo     *repositories.UserRepository
	emailService email.Service
	schedule     string
	cron         *cron.Cron
	logger       zerolog.Logger
}

// NewReminderService creates a reminder service with the given cron schedule.
func NewReminderService(
	progressRepo *repositories.ProgressRepository,
	userRepo *repositories.UserRepository,
	emailService email.Service,
	schedule string,
	logger zerolog.Logger,
) *ReminderService {
	return &ReminderService{
		progressRepo: progressRepo,
		userRepo:     userRepo,
		emailService: emailService,
		schedule:     schedule,
		logger:       logger,
	}
}

// Start registers the reminder job and starts the scheduler.
func (s *ReminderService) Start() error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.schedule, s.runOnce); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info().Str("schedule", s.schedule).Msg("Reminder scheduler started")
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *ReminderService) Stop() {
	if s.cron == nil {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info().Msg("Reminder scheduler stopped")
}

func (s *ReminderService) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	overdue, err := s.progressRepo.GetOverdueRequired(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to collect overdue training")
		return
	}
	if len(overdue) == 0 {
		s.logger.Debug().Msg("No overdue required training")
		return
	}

	sent := 0
	for userID, moduleTitles := range overdue {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			s.logger.Error().Err(err).Int64("userId", userID).Msg("Failed to load user for reminder")
			continue
		}
		if !user.IsActive {
			continue
		}

		if err := s.emailService.SendReminderEmail(user.Email, user.FullName(), moduleTitles); err != nil {
			s.logger.Error().Err(err).Int64("userId", userID).Msg("Failed to send reminder email")
			continue
		}
		sent++
	}

	s.logger.Info().Int("usersNotified", sent).Int("usersOverdue", len(overdue)).Msg("Reminder run completed")
}
