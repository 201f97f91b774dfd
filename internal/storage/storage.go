package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is an authenticated account. Role decides which profile tables apply.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string // patient, practitioner or admin
	FullName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UsersStorage manages accounts.
type UsersStorage interface {
	// CreateUser inserts a new account. Fails on duplicate email.
	CreateUser(ctx context.Context, user *User) error

	// GetUser returns an account by ID.
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)

	// GetUserByEmail returns an account by email (case-insensitive).
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// UpdateUser updates mutable account fields.
	UpdateUser(ctx context.Context, user *User) error
}

// PatientProfile holds the health profile behind a patient account.
// Dosha scores come from the intake questionnaire.
type PatientProfile struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Gender        string
	DateOfBirth   *time.Time
	HeightCm      float64
	WeightKg      float64
	ActivityLevel string
	DietaryGoal   string
	FitnessGoal   string
	DaysAvailable int
	Equipment     []string
	Restrictions  []string
	Conditions    []string
	VataScore     int
	PittaScore    int
	KaphaScore    int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PatientsStorage manages patient profiles (one per patient account).
type PatientsStorage interface {
	// CreatePatientProfile inserts a profile for a user.
	CreatePatientProfile(ctx context.Context, profile *PatientProfile) error

	// GetPatientProfile returns the profile for a user. ErrNotFound if absent.
	GetPatientProfile(ctx context.Context, userID uuid.UUID) (*PatientProfile, error)

	// UpdatePatientProfile replaces the profile for profile.UserID.
	UpdatePatientProfile(ctx context.Context, profile *PatientProfile) error
}

// Practitioner holds the public profile behind a practitioner account.
type Practitioner struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Specialization  string
	Bio             string
	YearsExperience int
	Available       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PractitionersStorage manages practitioner profiles.
type PractitionersStorage interface {
	// CreatePractitioner inserts a practitioner profile.
	CreatePractitioner(ctx context.Context, p *Practitioner) error

	// GetPractitioner returns a practitioner by ID.
	GetPractitioner(ctx context.Context, id uuid.UUID) (*Practitioner, error)

	// GetPractitionerByUser returns the practitioner profile for a user.
	GetPractitionerByUser(ctx context.Context, userID uuid.UUID) (*Practitioner, error)

	// ListPractitioners returns available practitioners, optionally filtered
	// by specialization substring (case-insensitive).
	ListPractitioners(ctx context.Context, specialization string, limit, offset int) ([]Practitioner, error)

	// UpdatePractitioner updates mutable fields.
	UpdatePractitioner(ctx context.Context, p *Practitioner) error
}

// Appointment is a booked consultation slot.
type Appointment struct {
	ID              uuid.UUID
	PatientUserID   uuid.UUID
	PractitionerID  uuid.UUID
	ScheduledAt     time.Time
	DurationMinutes int
	Status          string // scheduled, confirmed, in_progress, completed, cancelled, no_show
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AppointmentsStorage manages consultations.
type AppointmentsStorage interface {
	// CreateAppointment inserts an appointment.
	CreateAppointment(ctx context.Context, a *Appointment) error

	// GetAppointment returns an appointment by ID.
	GetAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error)

	// ListAppointmentsByPatient returns a patient's appointments, newest first.
	ListAppointmentsByPatient(ctx context.Context, patientUserID uuid.UUID, limit, offset int) ([]Appointment, error)

	// ListAppointmentsByPractitioner returns a practitioner's appointments, newest first.
	ListAppointmentsByPractitioner(ctx context.Context, practitionerID uuid.UUID, limit, offset int) ([]Appointment, error)

	// ListAppointmentsInWindow returns non-cancelled appointments of a
	// practitioner overlapping [from, to). Used for conflict checks.
	ListAppointmentsInWindow(ctx context.Context, practitionerID uuid.UUID, from, to time.Time) ([]Appointment, error)

	// UpdateAppointmentStatus sets the status and notes.
	UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status, notes string) error
}

// HealthLog is one daily patient self-report.
type HealthLog struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Date          string // YYYY-MM-DD
	DoshaVata     *int   // 0..100
	DoshaPitta    *int   // 0..100
	DoshaKapha    *int   // 0..100
	WeightKg      *float64
	SleepHours    *float64
	WaterLitres   *float64
	EnergyLevel   *int   // 1..10
	StressLevel   string // low, medium, high
	BloodPressure string // "120/80"
	Mood          string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Symptom is one reported symptom occurrence.
type Symptom struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Severity     string // low, moderate, high, severe
	DurationDays *int
	Notes        string
	LoggedAt     time.Time
	CreatedAt    time.Time
}

// HealthLogsStorage manages daily logs plus symptom records.
type HealthLogsStorage interface {
	// UpsertHealthLog creates or updates the log for (user, date).
	UpsertHealthLog(ctx context.Context, log *HealthLog) error

	// GetHealthLog returns the log for a specific date. ErrNotFound if absent.
	GetHealthLog(ctx context.Context, userID uuid.UUID, date string) (*HealthLog, error)

	// ListHealthLogs returns logs in [from, to] inclusive, newest first.
	ListHealthLogs(ctx context.Context, userID uuid.UUID, from, to string) ([]HealthLog, error)

	// CreateSymptom inserts a symptom record.
	CreateSymptom(ctx context.Context, s *Symptom) error

	// ListSymptoms returns a user's symptoms, newest first.
	ListSymptoms(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Symptom, error)
}

// Conversation groups agent chat messages for one user.
type Conversation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ConversationMessage is one stored chat turn.
type ConversationMessage struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	Role           string // "user" or "assistant"
	Content        string
	ResponseType   string // conversation, clarification, diet_plan, workout_plan
	CreatedAt      time.Time
}

// ConversationsStorage manages agent chat history.
type ConversationsStorage interface {
	// CreateConversation inserts a conversation.
	CreateConversation(ctx context.Context, c *Conversation) error

	// GetConversation returns a conversation by ID.
	GetConversation(ctx context.Context, id uuid.UUID) (*Conversation, error)

	// ListConversations returns a user's conversations, newest first.
	ListConversations(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Conversation, error)

	// AppendMessage stores one message and bumps the conversation UpdatedAt.
	AppendMessage(ctx context.Context, msg *ConversationMessage) error

	// ListMessages returns a conversation's messages, oldest first.
	ListMessages(ctx context.Context, conversationID uuid.UUID, limit int) ([]ConversationMessage, error)
}

// Reminder is a recurring user reminder. Times holds "HH:MM" entries,
// comma-joined in persistent storage.
type Reminder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Message     string
	Frequency   string // "daily" or "weekly"
	Times       []string
	IsActive    bool
	LastFiredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RemindersStorage manages reminders.
type RemindersStorage interface {
	// CreateReminder inserts a reminder.
	CreateReminder(ctx context.Context, r *Reminder) error

	// GetReminder returns a reminder by ID.
	GetReminder(ctx context.Context, id uuid.UUID) (*Reminder, error)

	// ListReminders returns a user's reminders, newest first.
	ListReminders(ctx context.Context, userID uuid.UUID) ([]Reminder, error)

	// ListActiveReminders returns every active reminder across users.
	// Used by the dispatcher tick.
	ListActiveReminders(ctx context.Context) ([]Reminder, error)

	// UpdateReminder updates mutable fields.
	UpdateReminder(ctx context.Context, r *Reminder) error

	// MarkReminderFired records the last dispatch time.
	MarkReminderFired(ctx context.Context, id uuid.UUID, firedAt time.Time) error

	// DeleteReminder removes a reminder.
	DeleteReminder(ctx context.Context, id uuid.UUID) error
}

// Notification is one inbox entry for a user.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Kind      string // reminder, appointment, system
	Title     string
	Body      string
	CreatedAt time.Time
	ReadAt    *time.Time
}

// NotificationsStorage manages the user inbox.
type NotificationsStorage interface {
	// CreateNotification inserts a notification.
	CreateNotification(ctx context.Context, n *Notification) error

	// ListNotifications returns a user's notifications, newest first.
	ListNotifications(ctx context.Context, userID uuid.UUID, onlyUnread bool, limit, offset int) ([]Notification, error)

	// UnreadCount returns how many notifications are unread.
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)

	// MarkRead marks the given notifications read (ownership checked).
	// Returns the number actually updated.
	MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error)

	// MarkAllRead marks every notification of the user as read.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
}

// ReportMeta describes one generated health report. Data is populated in
// memory mode only; with S3 configured the bytes live under ObjectKey.
type ReportMeta struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Format    string // "pdf" or "csv"
	FromDate  string // YYYY-MM-DD
	ToDate    string // YYYY-MM-DD
	ObjectKey *string
	SizeBytes int64
	Status    string // "ready" or "failed"
	Error     *string
	CreatedAt time.Time
	UpdatedAt time.Time
	Data      []byte
}

// ReportsStorage manages report metadata.
type ReportsStorage interface {
	// CreateReport inserts report metadata (plus data in memory mode).
	CreateReport(ctx context.Context, report *ReportMeta) error

	// GetReport returns a report by ID.
	GetReport(ctx context.Context, id uuid.UUID) (*ReportMeta, error)

	// ListReports returns a user's reports, newest first.
	ListReports(ctx context.Context, userID uuid.UUID, limit, offset int) ([]ReportMeta, error)

	// DeleteReport removes metadata and data.
	DeleteReport(ctx context.Context, id uuid.UUID) error
}

// Upload is a user-submitted file, profile pictures mostly. Data is
// populated in memory mode only; with S3 configured the bytes live under
// ObjectKey.
type Upload struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	FileName    string
	ContentType string
	SizeBytes   int64
	ObjectKey   *string
	CreatedAt   time.Time
	Data        []byte
}

// UploadsStorage manages upload metadata.
type UploadsStorage interface {
	// CreateUpload inserts upload metadata (plus data in memory mode).
	CreateUpload(ctx context.Context, upload *Upload) error

	// GetUpload returns an upload by ID.
	GetUpload(ctx context.Context, id uuid.UUID) (*Upload, error)

	// ListUploads returns a user's uploads, newest first.
	ListUploads(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Upload, error)

	// DeleteUpload removes metadata and data.
	DeleteUpload(ctx context.Context, id uuid.UUID) error
}

// DashboardCounts aggregates headline numbers for the dashboard endpoint.
type DashboardCounts struct {
	UpcomingAppointments int
	UnreadNotifications  int
	ActiveReminders      int
	HealthLogsThisWeek   int
}

// PractitionerDashboardCounts aggregates headline numbers for a practitioner.
type PractitionerDashboardCounts struct {
	UpcomingAppointments int
	CompletedSessions    int
	PatientsSeen         int
}

// AdminDashboardCounts breaks the user base down by role.
type AdminDashboardCounts struct {
	TotalUsers    int
	Patients      int
	Practitioners int
	Admins        int
}

// Store aggregates every storage concern behind one handle. Both the
// in-memory and the Postgres implementations satisfy it.
type Store interface {
	UsersStorage
	PatientsStorage
	PractitionersStorage
	AppointmentsStorage
	HealthLogsStorage
	ConversationsStorage
	RemindersStorage
	NotificationsStorage
	ReportsStorage
	UploadsStorage

	// DashboardCounts computes headline numbers for a patient as of now.
	DashboardCounts(ctx context.Context, userID uuid.UUID, now time.Time) (DashboardCounts, error)

	// PractitionerDashboardCounts computes headline numbers for a
	// practitioner as of now. PatientsSeen is the number of distinct
	// patients across the practitioner's completed appointments.
	PractitionerDashboardCounts(ctx context.Context, practitionerID uuid.UUID, now time.Time) (PractitionerDashboardCounts, error)

	// AdminDashboardCounts computes the user base breakdown by role.
	AdminDashboardCounts(ctx context.Context) (AdminDashboardCounts, error)

	// Close releases the underlying connection pool. No-op for memory.
	Close() error
}
