package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, store *SessionStore) Session {
	t.Helper()
	return store.Create(
		QuestionOptions{JobTitle: "Backend Engineer", Mode: ModeBehavioral, Level: "Mid"},
		[]string{"q1", "q2"},
	)
}

func TestSessionStore_CreateAndGet(t *testing.T) {
	store := NewSessionStore()
	created := newTestSession(t, store)

	require.NotEmpty(t, created.ID)
	assert.Equal(t, "q1", created.CurrentQuestion())
	assert.False(t, created.Done())

	fetched, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, []string{"q1", "q2"}, fetched.Questions)
}

func TestSessionStore_Get_Unknown(t *testing.T) {
	store := NewSessionStore()

	_, err := store.Get("nope")

	var notFound *ErrSessionNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope", notFound.ID)
}

func TestSessionStore_SubmitAdvancesThroughQuestions(t *testing.T) {
	store := NewSessionStore()
	session := newTestSession(t, store)
	critique := heuristicCritique(CritiqueRequest{Answer: "a1"})

	after, err := store.Submit(session.ID, "a1", critique)
	require.NoError(t, err)
	require.Len(t, after.Turns, 1)
	assert.Equal(t, "q1", after.Turns[0].Question)
	assert.Equal(t, "a1", after.Turns[0].Answer)
	assert.Equal(t, "q2", after.CurrentQuestion())
	assert.False(t, after.Done())

	after, err = store.Submit(session.ID, "a2", critique)
	require.NoError(t, err)
	assert.True(t, after.Done())
	assert.Equal(t, "", after.CurrentQuestion())
}

func TestSessionStore_SubmitToCompleteSession(t *testing.T) {
	store := NewSessionStore()
	session := store.Create(QuestionOptions{}, []string{"q1"})
	critique := heuristicCritique(CritiqueRequest{Answer: "a"})

	_, err := store.Submit(session.ID, "a", critique)
	require.NoError(t, err)

	_, err = store.Submit(session.ID, "again", critique)
	var complete *ErrSessionComplete
	assert.ErrorAs(t, err, &complete)
}

func TestSessionStore_SubmitUnknownSession(t *testing.T) {
	store := NewSessionStore()

	_, err := store.Submit("missing", "a", Critique{})

	var notFound *ErrSessionNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestSessionStore_SnapshotsAreIsolated(t *testing.T) {
	store := NewSessionStore()
	session := newTestSession(t, store)

	snap, err := store.Get(session.ID)
	require.NoError(t, err)
	snap.Questions[0] = "mutated"

	fresh, err := store.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, "q1", fresh.Questions[0])
}
