package mockapi

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchEvents(t *testing.T) {
	t.Parallel()

	s := New(0)

	events, err := s.FetchEvents(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 10)
}

func TestFetchEventsCopyOut(t *testing.T) {
	t.Parallel()

	s := New(0)

	events, err := s.FetchEvents(context.Background())
	require.NoError(t, err)

	events[0].Name = "tampered"

	again, err := s.FetchEvents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Tech Conference", again[0].Name)
}

func TestFetchEventByID(t *testing.T) {
	t.Parallel()

	s := New(0)

	event, err := s.FetchEventByID(context.Background(), "10")
	require.NoError(t, err)
	assert.Equal(t, "Jazz Night", event.Name)

	_, err = s.FetchEventByID(context.Background(), "999")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	s := New(0)

	before, err := s.FetchEventByID(context.Background(), "10")
	require.NoError(t, err)

	reg, err := s.Register(context.Background(), "2", "10")
	require.NoError(t, err)
	assert.Equal(t, "2", reg.UserID)
	assert.Equal(t, "10", reg.EventID)

	after, err := s.FetchEventByID(context.Background(), "10")
	require.NoError(t, err)
	assert.Equal(t, before.AvailableSpots-1, after.AvailableSpots)
}

func TestRegisterFailureKinds(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		userID  string
		eventID string
		wantErr error
	}{
		{name: "unknown user", userID: "999", eventID: "1", wantErr: ErrUserNotFound},
		{name: "unknown event", userID: "1", eventID: "999", wantErr: ErrEventNotFound},
		{name: "duplicate registration", userID: "1", eventID: "1", wantErr: ErrAlreadyRegistered},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := New(0)

			_, err := s.Register(context.Background(), tc.userID, tc.eventID)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestDuplicateRegistrationDoesNotDoubleDecrement(t *testing.T) {
	t.Parallel()

	s := New(0)

	before, err := s.FetchEventByID(context.Background(), "10")
	require.NoError(t, err)

	_, err = s.Register(context.Background(), "2", "10")
	require.NoError(t, err)

	_, err = s.Register(context.Background(), "2", "10")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	after, err := s.FetchEventByID(context.Background(), "10")
	require.NoError(t, err)
	assert.Equal(t, before.AvailableSpots-1, after.AvailableSpots)
}

func TestRegisterFullyBooked(t *testing.T) {
	t.Parallel()

	s := New(0)

	// Drain event 9 (15 spots) with generated users.
	for i := 0; i < 15; i++ {
		user, err := s.SignUp(context.Background(), userEmail(i), "password", "Filler")
		require.NoError(t, err)

		_, err = s.Register(context.Background(), user.ID, "9")
		require.NoError(t, err)
	}

	user, err := s.SignUp(context.Background(), "late@example.com", "password", "Late")
	require.NoError(t, err)

	_, err = s.Register(context.Background(), user.ID, "9")
	assert.ErrorIs(t, err, ErrFullyBooked)
}

func TestCancel(t *testing.T) {
	t.Parallel()

	s := New(0)

	before, err := s.FetchEventByID(context.Background(), "1")
	require.NoError(t, err)

	// User 1 is pre-registered for event 1.
	require.NoError(t, s.Cancel(context.Background(), "1", "1"))

	after, err := s.FetchEventByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, before.AvailableSpots+1, after.AvailableSpots)

	err = s.Cancel(context.Background(), "1", "1")
	assert.ErrorIs(t, err, ErrRegistrationNotFound)
}

func TestUserRegistrations(t *testing.T) {
	t.Parallel()

	s := New(0)

	events, err := s.UserRegistrations(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, events, 2)

	regs, err := s.RegisteredEvents(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, regs, 2)
	require.NotNil(t, regs[0].Event)
	assert.Equal(t, regs[0].EventID, regs[0].Event.ID)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	s := New(0)

	user, err := s.Login(context.Background(), "demo@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "Demo User", user.Name)

	// Email match is case-insensitive.
	_, err = s.Login(context.Background(), "DEMO@example.com", "password123")
	assert.NoError(t, err)

	_, err = s.Login(context.Background(), "demo@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSignUp(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "success", email: "new@example.com", password: "secret1"},
		{name: "taken email", email: "demo@example.com", password: "secret1", wantErr: ErrEmailTaken},
		{name: "bad email", email: "not-an-email", password: "secret1", wantErr: ErrInvalidEmail},
		{name: "short password", email: "short@example.com", password: "abc", wantErr: ErrPasswordTooShort},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := New(0)

			user, err := s.SignUp(context.Background(), tc.email, tc.password, "Someone")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, user.ID)
			assert.Equal(t, tc.email, user.Email)
		})
	}
}

func TestLatencyHonorsContextCancellation(t *testing.T) {
	t.Parallel()

	s := New(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := s.FetchEvents(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func userEmail(i int) string {
	return "filler" + string(rune('a'+i)) + "@example.com"
}
