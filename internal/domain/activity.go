package domain

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Activity is an extracurricular offering with a schedule, a capacity and a participant roster.
// Name is the catalog key and is not part of the serialized body.
// swagger:model Activity
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// ActivityDetails is the payload used to create an activity.
// swagger:model ActivityDetails
type ActivityDetails struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants,omitempty"`
}

// NewActivity builds an Activity from details. The participant slice is copied.
func NewActivity(name string, details ActivityDetails) *Activity {
	participants := make([]string, 0, len(details.Participants))
	participants = append(participants, details.Participants...)
	return &Activity{
		Name:            name,
		Description:     details.Description,
		Schedule:        details.Schedule,
		MaxParticipants: details.MaxParticipants,
		Participants:    participants,
	}
}

// Validate checks capacity and the initial roster. Participant emails are normalized in place.
func (d *ActivityDetails) Validate() []string {
	var errs []string
	if d.MaxParticipants <= 0 {
		errs = append(errs, "max_participants must be a positive integer")
	}
	seen := make(map[string]struct{}, len(d.Participants))
	for i, p := range d.Participants {
		email, err := NormalizeEmail(p)
		if err != nil {
			errs = append(errs, fmt.Sprintf("participants[%d]: %v", i, err))
			continue
		}
		if _, dup := seen[email]; dup {
			errs = append(errs, fmt.Sprintf("participants[%d]: duplicate email %s", i, email))
			continue
		}
		seen[email] = struct{}{}
		d.Participants[i] = email
	}
	if d.MaxParticipants > 0 && len(d.Participants) > d.MaxParticipants {
		errs = append(errs, "participants exceed max_participants")
	}
	return errs
}

// Clone returns a deep copy safe to hand out of the catalog.
func (a *Activity) Clone() *Activity {
	c := *a
	c.Participants = slices.Clone(a.Participants)
	if c.Participants == nil {
		c.Participants = []string{}
	}
	return &c
}

// HasParticipant reports whether email is on the roster.
func (a *Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// IsFull reports whether the roster has reached capacity.
func (a *Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// SpotsLeft returns the number of free places.
func (a *Activity) SpotsLeft() int {
	return max(a.MaxParticipants-len(a.Participants), 0)
}

// AddParticipant appends email to the roster. It returns ErrAlreadyRegistered for a
// duplicate and ErrCapacityExceeded when the activity is full; the roster is unchanged on error.
func (a *Activity) AddParticipant(email string) error {
	if a.HasParticipant(email) {
		return ErrAlreadyRegistered
	}
	if a.IsFull() {
		return ErrCapacityExceeded
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// NormalizeEmail trims and lower-cases an address and checks its shape.
func NormalizeEmail(email string) (string, error) {
	e := strings.ToLower(strings.TrimSpace(email))
	if e == "" {
		return "", fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !emailRegex.MatchString(e) {
		return "", fmt.Errorf("%w: invalid email %q", ErrInvalidInput, email)
	}
	return e, nil
}

// SignupConfirmation is returned after a participant is registered.
// swagger:model SignupConfirmation
type SignupConfirmation struct {
	Activity string `json:"activity"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}

// ActivityRepository is the activity catalog. Implementations must serialize Update calls
// per activity name without serializing different names against each other.
type ActivityRepository interface {
	// List returns a snapshot of every activity keyed by name.
	List(ctx context.Context) (map[string]*Activity, error)
	// Get returns a snapshot of one activity, or ErrNotFound.
	Get(ctx context.Context, name string) (*Activity, error)
	// Create inserts the activity together with its guard, or returns ErrAlreadyExists.
	Create(ctx context.Context, activity *Activity) error
	// Update runs fn on the stored activity while holding that activity's guard.
	// fn must not block on I/O. Returns ErrNotFound for an unknown name, otherwise fn's error.
	Update(ctx context.Context, name string, fn func(activity *Activity) error) error
}

// ActivityService lists and creates catalog entries.
type ActivityService interface {
	ListActivities(ctx context.Context) (map[string]*Activity, error)
	CreateActivity(ctx context.Context, name string, details ActivityDetails) (*Activity, error)
}

// SignupService registers participants for activities.
type SignupService interface {
	Signup(ctx context.Context, activityName, email string) (*SignupConfirmation, error)
}

// SignupMetrics records signup and catalog outcomes.
type SignupMetrics interface {
	ObserveSignup(outcome string)
	ObserveActivityCreated()
}

// Signup outcome labels used with SignupMetrics.
const (
	SignupOutcomeSuccess           = "success"
	SignupOutcomeNotFound          = "not_found"
	SignupOutcomeAlreadyRegistered = "already_registered"
	SignupOutcomeCapacityExceeded  = "capacity_exceeded"
	SignupOutcomeInvalid           = "invalid"
	SignupOutcomeError             = "error"
)
