package submit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/idea-submitter/internal/model"
	"github.com/ytget/idea-submitter/internal/trello"
)

// Service limits
const (
	DefaultMaxParallel = 1
	MaxParallelLimit   = 10
	IDPrefix           = "submission-"
)

// ErrShutdown is returned by Submit after Shutdown was called
var ErrShutdown = errors.New("submission service is shut down")

// Service sends idea submissions to Trello in the background
type Service struct {
	creator  trello.CardCreator
	creds    model.Credentials
	reporter Reporter
	logger   *zap.Logger

	ctx  context.Context
	stop context.CancelFunc
	wg   sync.WaitGroup

	submissions map[string]*model.Submission
	order       []string // submission IDs in arrival order
	cancels     map[string]context.CancelFunc
	mu          sync.RWMutex
	maxParallel int
	activeCount int
	closed      bool
	onUpdate    func(model.Submission) // callback for UI updates
}

// NewService creates a submission service bound to creds
func NewService(creator trello.CardCreator, creds model.Credentials, reporter Reporter, logger *zap.Logger, maxParallel int) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, stop := context.WithCancel(context.Background())

	s := &Service{
		creator:     creator,
		creds:       creds,
		reporter:    reporter,
		logger:      logger,
		ctx:         ctx,
		stop:        stop,
		submissions: make(map[string]*model.Submission),
		cancels:     make(map[string]context.CancelFunc),
	}
	s.SetMaxParallel(maxParallel)
	return s
}

// SetUpdateCallback sets the callback function for submission updates
func (s *Service) SetUpdateCallback(callback func(model.Submission)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetMaxParallel sets how many card requests may be in flight at once
func (s *Service) SetMaxParallel(max int) {
	if max < 1 {
		max = DefaultMaxParallel
	}
	if max > MaxParallelLimit {
		max = MaxParallelLimit
	}

	s.mu.Lock()
	s.maxParallel = max
	s.mu.Unlock()

	s.startNextPending()
}

// Submit queues content as a new card. Content is sent exactly as given.
func (s *Service) Submit(content string) (model.Submission, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return model.Submission{}, ErrShutdown
	}

	sub := &model.Submission{
		ID:       generateSubmissionID(),
		Content:  content,
		Status:   model.SubmissionStatusPending,
		QueuedAt: time.Now(),
	}
	s.submissions[sub.ID] = sub
	s.order = append(s.order, sub.ID)
	snapshot := *sub
	s.mu.Unlock()

	s.logger.Info("Idea queued", zap.String("id", sub.ID), zap.Int("contentLength", len(content)))
	s.reporter.Submitted(content)
	s.notifyUpdate(snapshot)

	s.startNextPending()

	return snapshot, nil
}

// GetSubmission returns a snapshot of a submission by ID
func (s *Service) GetSubmission(id string) (model.Submission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, exists := s.submissions[id]
	if !exists {
		return model.Submission{}, false
	}
	return *sub, true
}

// GetAllSubmissions returns snapshots of all submissions in arrival order
func (s *Service) GetAllSubmissions() []model.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subs := make([]model.Submission, 0, len(s.order))
	for _, id := range s.order {
		subs = append(subs, *s.submissions[id])
	}
	return subs
}

// Cancel cancels a queued or in-flight submission
func (s *Service) Cancel(id string) error {
	s.mu.Lock()
	sub, exists := s.submissions[id]
	if !exists {
		s.mu.Unlock()
		return fmt.Errorf("submission not found: %s", id)
	}

	switch sub.Status {
	case model.SubmissionStatusPending:
		sub.Status = model.SubmissionStatusCancelled
		sub.FinishedAt = time.Now()
		snapshot := *sub
		s.mu.Unlock()

		s.reporter.Cancelled(id)
		s.notifyUpdate(snapshot)
		return nil
	case model.SubmissionStatusSending:
		cancel := s.cancels[id]
		s.mu.Unlock()

		// run() observes the cancelled context and finalizes the submission
		if cancel != nil {
			cancel()
		}
		return nil
	default:
		status := sub.Status
		s.mu.Unlock()
		return fmt.Errorf("submission is not active: %s", status)
	}
}

// Shutdown cancels everything and waits for in-flight requests to return
func (s *Service) Shutdown() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true

	var cancelled []model.Submission
	for _, id := range s.order {
		sub := s.submissions[id]
		if sub.Status == model.SubmissionStatusPending {
			sub.Status = model.SubmissionStatusCancelled
			sub.FinishedAt = time.Now()
			cancelled = append(cancelled, *sub)
		}
	}
	s.mu.Unlock()

	s.logger.Info("Shutting down submission service", zap.Int("queuedCancelled", len(cancelled)))
	s.stop()

	for _, sub := range cancelled {
		s.reporter.Cancelled(sub.ID)
		s.notifyUpdate(sub)
	}

	s.wg.Wait()
}

// Wait blocks until no submission is queued or in flight
func (s *Service) Wait() {
	s.wg.Wait()
}

// startNextPending starts queued submissions while there is capacity
func (s *Service) startNextPending() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		if s.closed || s.activeCount >= s.maxParallel {
			break
		}
		sub := s.submissions[id]
		if sub.Status != model.SubmissionStatusPending {
			continue
		}

		ctx, cancel := context.WithCancel(s.ctx)
		s.cancels[id] = cancel
		s.activeCount++
		sub.Status = model.SubmissionStatusSending
		sub.StartedAt = time.Now()

		s.wg.Add(1)
		go s.run(ctx, *sub)
	}
}

// run performs one card request and records its outcome
func (s *Service) run(ctx context.Context, started model.Submission) {
	defer s.wg.Done()

	id := started.ID
	s.notifyUpdate(started)

	result, err := s.creator.CreateCard(ctx, s.creds, model.IdeaSubmission{Content: started.Content})
	cancelled := err != nil && ctx.Err() != nil

	s.mu.Lock()
	sub := s.submissions[id]
	switch {
	case cancelled:
		sub.Status = model.SubmissionStatusCancelled
	case err != nil:
		sub.Status = model.SubmissionStatusFailed
		sub.LastError = err.Error()
	default:
		sub.Status = model.SubmissionStatusCreated
		sub.CardID = result.Card.ID
		sub.CardURL = result.Card.ShortURL
		if sub.CardURL == "" {
			sub.CardURL = result.Card.URL
		}
	}
	if result != nil {
		sub.StatusCode = result.StatusCode
	}
	sub.FinishedAt = time.Now()
	snapshot := *sub

	if cancel, ok := s.cancels[id]; ok {
		cancel()
		delete(s.cancels, id)
	}
	s.activeCount--
	s.mu.Unlock()

	if cancelled {
		s.reporter.Cancelled(id)
	} else {
		s.reporter.Result(result, err)
	}

	fields := []zap.Field{
		zap.String("id", id),
		zap.String("status", snapshot.Status.String()),
		zap.Int("statusCode", snapshot.StatusCode),
		zap.Duration("elapsed", snapshot.Duration()),
	}
	if err != nil && !cancelled {
		s.logger.Warn("Idea submission failed", append(fields, zap.Error(err))...)
	} else {
		s.logger.Info("Idea submission finished", fields...)
	}

	s.notifyUpdate(snapshot)
	s.startNextPending()
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(sub model.Submission) {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()

	if callback != nil {
		callback(sub)
	}
}

// generateSubmissionID generates a unique, time-ordered submission ID
func generateSubmissionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(IDPrefix+"%d", time.Now().UnixNano())
	}
	return IDPrefix + id.String()
}
