package service

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/internal/validators"
)

// activeOwner holds the owner id the client currently works for.
type activeOwner struct {
	mu      sync.RWMutex
	ownerID string
}

func (o *activeOwner) get() (string, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.ownerID, o.ownerID != ""
}

func (o *activeOwner) set(ownerID string) (previous string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	previous, o.ownerID = o.ownerID, ownerID
	return previous
}

type sessionService struct {
	owner     *activeOwner
	jobs      SyncJobs
	validator validators.Validator

	logger *logger.Logger
}

func newSessionService(owner *activeOwner, jobs SyncJobs, validator validators.Validator, logger *logger.Logger) *sessionService {
	return &sessionService{owner: owner, jobs: jobs, validator: validator, logger: logger}
}

// SetActiveOwner switches the client to ownerID and starts its sync session.
// Switching to another owner stops the pending syncs of the previous one.
func (s *sessionService) SetActiveOwner(ctx context.Context, ownerID string) error {
	ownerID = strings.TrimSpace(ownerID)
	if err := requireOwner(ctx, s.validator, ownerID); err != nil {
		return err
	}

	if previous := s.owner.set(ownerID); previous != "" && previous != ownerID {
		s.jobs.StopAll()
	}

	if err := s.jobs.StartSession(ownerID); err != nil {
		s.logger.Err(err).Str("func", "sessionService.SetActiveOwner").Str("owner_id", ownerID).Msg("failed to start sync session")
		return err
	}
	return nil
}

func (s *sessionService) ActiveOwner() (string, bool) {
	return s.owner.get()
}

// Clear signs the owner out and stops every sync.
func (s *sessionService) Clear() {
	s.owner.set("")
	s.jobs.StopAll()
}
