package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mkulima/shamba-api/internal/domain/repository"
	"github.com/mkulima/shamba-api/internal/live"
	"github.com/robfig/cron/v3"
)

// Scheduler sweeps due task reminders on a cron spec. A fired reminder is
// marked sent and the owner's live task feed is notified; delivery beyond
// the feed is up to connected clients.
type Scheduler struct {
	cron     *cron.Cron
	spec     string
	taskRepo repository.TaskRepository
	hub      *live.Hub
}

// New creates a scheduler sweeping on the given cron spec
func New(spec string, taskRepo repository.TaskRepository, hub *live.Hub) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		spec:     spec,
		taskRepo: taskRepo,
		hub:      hub,
	}
}

// Start registers the sweep and runs until ctx is cancelled
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, s.sweepReminders); err != nil {
		return fmt.Errorf("add reminder sweep: %w", err)
	}

	s.cron.Start()
	log.Printf("Reminder scheduler started (spec: %q)", s.spec)

	<-ctx.Done()
	s.Stop()
	return nil
}

// Stop halts the cron and waits for a running sweep to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Reminder scheduler stopped")
}

func (s *Scheduler) sweepReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	due, err := s.taskRepo.DueReminders(ctx, time.Now())
	if err != nil {
		log.Printf("Reminder sweep failed: %v", err)
		return
	}

	for _, task := range due {
		if err := s.taskRepo.MarkReminderSent(ctx, task.ID); err != nil {
			log.Printf("Failed to mark reminder sent for task %s: %v", task.ID, err)
			continue
		}
		s.hub.Notify(task.OwnerID, live.CollectionTasks)
		log.Printf("Reminder due: task %q (%s)", task.Title, task.ID)
	}
}
