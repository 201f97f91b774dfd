package reminders

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/go-co-op/gocron/v2"
)

// Dispatcher fires due reminders into the notification inbox on a fixed
// tick. A reminder is due when one of its HH:MM entries matches the current
// UTC minute and it has not already fired within that minute.
type Dispatcher struct {
	store     storage.Store
	interval  time.Duration
	now       func() time.Time
	scheduler gocron.Scheduler
}

func NewDispatcher(store storage.Store, interval time.Duration) *Dispatcher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Dispatcher{store: store, interval: interval, now: time.Now}
}

// Start begins ticking in the background until Stop is called.
func (d *Dispatcher) Start() error {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(d.interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := d.DispatchDue(ctx, d.now().UTC()); err != nil {
				log.Printf("WARNING: reminder dispatch failed: %v", err)
			}
		}),
		gocron.WithName("reminder-dispatch"),
	)
	if err != nil {
		return fmt.Errorf("schedule dispatch job: %w", err)
	}

	scheduler.Start()
	d.scheduler = scheduler
	log.Printf("reminder dispatcher started, interval %s", d.interval)

	return nil
}

// Stop shuts the scheduler down and waits for a running tick to finish.
func (d *Dispatcher) Stop() error {
	if d.scheduler == nil {
		return nil
	}
	return d.scheduler.Shutdown()
}

// DispatchDue runs one dispatch pass for the given instant.
func (d *Dispatcher) DispatchDue(ctx context.Context, now time.Time) error {
	active, err := d.store.ListActiveReminders(ctx)
	if err != nil {
		return fmt.Errorf("list active reminders: %w", err)
	}

	minute := now.Format("15:04")
	for i := range active {
		reminder := &active[i]
		if !dueAt(reminder, now, minute) {
			continue
		}

		notification := &storage.Notification{
			UserID: reminder.UserID,
			Kind:   "reminder",
			Title:  reminder.Title,
			Body:   reminder.Message,
		}
		if err := d.store.CreateNotification(ctx, notification); err != nil {
			log.Printf("WARNING: failed to notify reminder %s: %v", reminder.ID, err)
			continue
		}
		if err := d.store.MarkReminderFired(ctx, reminder.ID, now); err != nil {
			log.Printf("WARNING: failed to mark reminder %s fired: %v", reminder.ID, err)
		}
	}

	return nil
}

func dueAt(r *storage.Reminder, now time.Time, minute string) bool {
	// Weekly reminders fire on the weekday they were created.
	if r.Frequency == FrequencyWeekly && now.Weekday() != r.CreatedAt.Weekday() {
		return false
	}
	// Ticks can run more than once per minute.
	if r.LastFiredAt != nil && now.Sub(*r.LastFiredAt) < time.Minute {
		return false
	}
	for _, entry := range r.Times {
		if entry == minute {
			return true
		}
	}
	return false
}
