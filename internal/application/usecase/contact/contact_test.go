package contact

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type fakeLockStore struct {
	mu     sync.Mutex
	states map[string]contact.State
	getErr error
}

func newFakeLockStore() *fakeLockStore {
	return &fakeLockStore{states: map[string]contact.State{}}
}

func (f *fakeLockStore) Get(_ context.Context, key string) (contact.State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return contact.NotSubmitted, f.getErr
	}
	return f.states[key], nil
}

func (f *fakeLockStore) Set(_ context.Context, key string, s contact.State) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states[key] = s
	return nil
}

type fakeRelay struct {
	sent []contact.Submission
	err  error
}

func (f *fakeRelay) Send(_ context.Context, _ string, s contact.Submission) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, s)
	return nil
}

func (f *fakeRelay) FormActionURL(formName string) string {
	return "https://send.pageclip.co/key/" + formName
}

type fakePublisher struct {
	events chan contact.EventPayload
}

func (f *fakePublisher) PublishContactEvent(_ context.Context, p contact.EventPayload) error {
	f.events <- p
	return nil
}

type fakeRepo struct {
	saved   []*contact.Message
	listed  [2]int
	saveErr error
}

func (f *fakeRepo) Save(_ context.Context, m *contact.Message) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, m)
	return nil
}

func (f *fakeRepo) List(_ context.Context, limit, offset int) ([]*contact.Message, error) {
	f.listed = [2]int{limit, offset}
	return nil, nil
}

var fixedNow = func() time.Time { return time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC) }

func validSubmission() contact.Submission {
	return contact.Submission{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Let's work together.",
	}
}

func TestSubmitContact_RelaysLocksAndPublishes(t *testing.T) {
	store := newFakeLockStore()
	relay := &fakeRelay{}
	pub := &fakePublisher{events: make(chan contact.EventPayload, 1)}
	uc := NewSubmitContactUseCase(contact.NewLock(store), relay, pub, "contact-form", fixedNow, logger.NewNopLogger())

	out, err := uc.Execute(context.Background(), SubmitContactInput{ClientID: "c1", Submission: validSubmission()})
	require.NoError(t, err)
	require.Len(t, relay.sent, 1)
	assert.Equal(t, contact.Submitted, store.states["c1"])

	select {
	case ev := <-pub.events:
		assert.Equal(t, out.MessageID, ev.MessageID)
		assert.Equal(t, contact.EventTypeSubmitted, ev.EventType)
		assert.Equal(t, "c1", ev.ClientID)
		assert.Equal(t, fixedNow(), ev.OccurredAt)
	case <-time.After(time.Second):
		t.Fatal("event was not published")
	}
}

func TestSubmitContact_SecondSubmissionConflicts(t *testing.T) {
	store := newFakeLockStore()
	relay := &fakeRelay{}
	uc := NewSubmitContactUseCase(contact.NewLock(store), relay, nil, "contact-form", fixedNow, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), SubmitContactInput{ClientID: "c1", Submission: validSubmission()})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), SubmitContactInput{ClientID: "c1", Submission: validSubmission()})
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.Len(t, relay.sent, 1)
}

func TestSubmitContact_InvalidInputLeavesLockOpen(t *testing.T) {
	store := newFakeLockStore()
	relay := &fakeRelay{}
	uc := NewSubmitContactUseCase(contact.NewLock(store), relay, nil, "contact-form", fixedNow, logger.NewNopLogger())

	bad := validSubmission()
	bad.Email = "not-an-email"
	_, err := uc.Execute(context.Background(), SubmitContactInput{ClientID: "c1", Submission: bad})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Empty(t, relay.sent)
	assert.Equal(t, contact.NotSubmitted, store.states["c1"])
}

func TestSubmitContact_RelayFailureLeavesLockOpen(t *testing.T) {
	store := newFakeLockStore()
	relay := &fakeRelay{err: errors.New("pageclip returned 500")}
	uc := NewSubmitContactUseCase(contact.NewLock(store), relay, nil, "contact-form", fixedNow, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), SubmitContactInput{ClientID: "c1", Submission: validSubmission()})
	assert.ErrorIs(t, err, apperror.ErrUpstream)
	assert.Equal(t, contact.NotSubmitted, store.states["c1"])
}

func TestSubmitContact_LockReadFailure(t *testing.T) {
	store := newFakeLockStore()
	store.getErr = errors.New("redis down")
	relay := &fakeRelay{}
	uc := NewSubmitContactUseCase(contact.NewLock(store), relay, nil, "contact-form", fixedNow, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), SubmitContactInput{ClientID: "c1", Submission: validSubmission()})
	assert.ErrorIs(t, err, apperror.ErrInternal)
	assert.Empty(t, relay.sent)
}

func TestContactStatus(t *testing.T) {
	store := newFakeLockStore()
	store.states["seen"] = contact.Submitted
	uc := NewContactStatusUseCase(contact.NewLock(store), &fakeRelay{}, "contact-form")

	out, err := uc.Execute(context.Background(), ContactStatusInput{ClientID: "seen"})
	require.NoError(t, err)
	assert.Equal(t, contact.Submitted, out.State)
	assert.Equal(t, "https://send.pageclip.co/key/contact-form", out.FormAction)

	out, err = uc.Execute(context.Background(), ContactStatusInput{})
	require.NoError(t, err)
	assert.Equal(t, contact.NotSubmitted, out.State)
}

func TestArchiveContact(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewArchiveContactUseCase(repo, logger.NewNopLogger())

	payload := contact.EventPayload{
		EventType:  contact.EventTypeSubmitted,
		ClientID:   "c1",
		Submission: validSubmission(),
		OccurredAt: fixedNow(),
	}
	require.NoError(t, uc.Execute(context.Background(), payload))
	require.Len(t, repo.saved, 1)
	assert.Equal(t, "Let's work together.", repo.saved[0].Body)
	assert.Equal(t, fixedNow(), repo.saved[0].ReceivedAt)

	payload.EventType = "SOMETHING_ELSE"
	assert.ErrorIs(t, uc.Execute(context.Background(), payload), apperror.ErrInvalidInput)

	repo.saveErr = errors.New("db down")
	payload.EventType = contact.EventTypeSubmitted
	assert.Error(t, uc.Execute(context.Background(), payload))
}

func TestListMessages_Paging(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewListMessagesUseCase(repo)

	out, err := uc.Execute(context.Background(), ListMessagesInput{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, [2]int{10, 20}, repo.listed)
	assert.NotNil(t, out.Messages)

	out, err = uc.Execute(context.Background(), ListMessagesInput{Page: 0, Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, maxPageSize, out.Limit)
	assert.Equal(t, [2]int{maxPageSize, 0}, repo.listed)
}
