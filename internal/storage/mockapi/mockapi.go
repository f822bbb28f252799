package mockapi

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"eventhub/internal/models"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrAlreadyRegistered    = errors.New("already registered for this event")
	ErrFullyBooked          = errors.New("event is fully booked")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrInvalidCredentials   = errors.New("invalid password")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrPasswordTooShort     = errors.New("password must be at least 6 characters long")
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Source stands in for a remote API: an in-memory dataset behind calls
// that sleep a configured latency. Callers never get aliases into the
// internal state; every response is a copy.
type Source struct {
	mu sync.Mutex

	latency time.Duration

	users         []models.User
	events        []models.Event
	registrations []models.Registration

	userSeq int
	regSeq  int
}

// New seeds a source with the demo dataset.
func New(latency time.Duration) *Source {
	users, events, registrations := seedData()

	return &Source{
		latency:       latency,
		users:         users,
		events:        events,
		registrations: registrations,
		userSeq:       len(users) + 1,
		regSeq:        len(registrations) + 1,
	}
}

// delay simulates network latency, honoring context cancellation.
func (s *Source) delay(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}

	t := time.NewTimer(s.latency)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *Source) FetchEvents(ctx context.Context) ([]models.Event, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Event, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, cloneEvent(ev))
	}

	return out, nil
}

func (s *Source) FetchEventByID(ctx context.Context, eventID string) (models.Event, error) {
	if err := s.delay(ctx); err != nil {
		return models.Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.eventIndex(eventID)
	if i < 0 {
		return models.Event{}, ErrEventNotFound
	}

	return cloneEvent(s.events[i]), nil
}

// Register creates a registration and takes one spot. At most one
// registration may exist per (user, event) pair.
func (s *Source) Register(ctx context.Context, userID, eventID string) (models.Registration, error) {
	if err := s.delay(ctx); err != nil {
		return models.Registration{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userIndex(userID) < 0 {
		return models.Registration{}, ErrUserNotFound
	}

	i := s.eventIndex(eventID)
	if i < 0 {
		return models.Registration{}, ErrEventNotFound
	}

	for _, reg := range s.registrations {
		if reg.UserID == userID && reg.EventID == eventID {
			return models.Registration{}, ErrAlreadyRegistered
		}
	}

	if s.events[i].AvailableSpots <= 0 {
		return models.Registration{}, ErrFullyBooked
	}

	reg := models.Registration{
		ID:           strconv.Itoa(s.regSeq),
		UserID:       userID,
		EventID:      eventID,
		RegisteredAt: time.Now().UTC(),
	}
	s.regSeq++

	s.registrations = append(s.registrations, reg)
	s.events[i].AvailableSpots--

	return reg, nil
}

// Cancel removes a registration and returns its spot.
func (s *Source) Cancel(ctx context.Context, userID, eventID string) error {
	if err := s.delay(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, reg := range s.registrations {
		if reg.UserID == userID && reg.EventID == eventID {
			s.registrations = append(s.registrations[:i], s.registrations[i+1:]...)

			if j := s.eventIndex(eventID); j >= 0 {
				s.events[j].AvailableSpots++
			}

			return nil
		}
	}

	return ErrRegistrationNotFound
}

// UserRegistrations returns the events the user is registered for.
func (s *Source) UserRegistrations(ctx context.Context, userID string) ([]models.Event, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Event
	for _, reg := range s.registrations {
		if reg.UserID != userID {
			continue
		}
		if i := s.eventIndex(reg.EventID); i >= 0 {
			out = append(out, cloneEvent(s.events[i]))
		}
	}

	return out, nil
}

// RegisteredEvents returns the user's registrations with event details
// attached.
func (s *Source) RegisteredEvents(ctx context.Context, userID string) ([]models.Registration, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Registration
	for _, reg := range s.registrations {
		if reg.UserID != userID {
			continue
		}

		if i := s.eventIndex(reg.EventID); i >= 0 {
			ev := cloneEvent(s.events[i])
			reg.Event = &ev
		}

		out = append(out, reg)
	}

	return out, nil
}

func (s *Source) Login(ctx context.Context, email, password string) (models.User, error) {
	if err := s.delay(ctx); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndexByEmail(email)
	if i < 0 {
		return models.User{}, ErrUserNotFound
	}

	if s.users[i].Password != password {
		return models.User{}, ErrInvalidCredentials
	}

	return s.users[i], nil
}

func (s *Source) SignUp(ctx context.Context, email, password, name string) (models.User, error) {
	if err := s.delay(ctx); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userIndexByEmail(email) >= 0 {
		return models.User{}, ErrEmailTaken
	}

	if !emailRe.MatchString(email) {
		return models.User{}, ErrInvalidEmail
	}

	if len(password) < 6 {
		return models.User{}, ErrPasswordTooShort
	}

	user := models.User{
		ID:        strconv.Itoa(s.userSeq),
		Email:     email,
		Name:      name,
		Password:  password,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	s.userSeq++

	s.users = append(s.users, user)

	return user, nil
}

func (s *Source) eventIndex(id string) int {
	for i := range s.events {
		if s.events[i].ID == id {
			return i
		}
	}

	return -1
}

func (s *Source) userIndex(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}

	return -1
}

func (s *Source) userIndexByEmail(email string) int {
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			return i
		}
	}

	return -1
}

func cloneEvent(ev models.Event) models.Event {
	ev.Speakers = append([]string(nil), ev.Speakers...)
	return ev
}
