package client

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/beer-battle/models"
)

// ─────────────────────────────────────────────
// alcohol
// ─────────────────────────────────────────────

func TestAlcohol_AddWeekSummary(t *testing.T) {
	c := newTestCLI(t, onlineRemote(t))

	out, err := execute(t, c, "--owner", testOwner, "alcohol", "add", "Lager", "500", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Added record")
	assert.Contains(t, out, "2026-03-04 Wed Lager")

	_, err = execute(t, c, "alcohol", "add", "Red wine", "150", "12,5", "--date", "2026-03-01")
	require.NoError(t, err)

	// другая неделя
	_, err = execute(t, c, "alcohol", "add", "Cider", "330", "4,5", "-d", "2026-02-27")
	require.NoError(t, err)

	out, err = execute(t, c, "alcohol", "week")
	require.NoError(t, err)
	assert.Contains(t, out, "Week of 2026-03-01")
	assert.Contains(t, out, "Lager")
	assert.Contains(t, out, "Red wine")
	assert.NotContains(t, out, "Cider")

	out, err = execute(t, c, "alcohol", "summary", "--date", "2026-03-07")
	require.NoError(t, err)
	assert.Contains(t, out, "Sun    18.8 ml")
	assert.Contains(t, out, "Wed    25.0 ml")
	assert.Contains(t, out, "Total  43.8 ml pure alcohol in 2 records, status low")

	out, err = execute(t, c, "alcohol", "search", "cid")
	require.NoError(t, err)
	assert.Contains(t, out, "Cider")
	assert.NotContains(t, out, "Lager")
}

func TestAlcohol_AddValidationError(t *testing.T) {
	c := newTestCLI(t, onlineRemote(t))

	_, err := execute(t, c, "-o", testOwner, "alcohol", "add", "Lager", "lots", "5")
	assert.ErrorContains(t, err, "failed to add record")

	_, err = execute(t, c, "alcohol", "add", "Lager")
	assert.Error(t, err, "three arguments are required")

	_, err = execute(t, c, "alcohol", "week", "--date", "yesterday")
	assert.ErrorContains(t, err, "invalid date")
}

func TestAlcohol_UpdateKeepsOmittedFields(t *testing.T) {
	c := newTestCLI(t, onlineRemote(t))

	_, err := execute(t, c, "-o", testOwner, "alcohol", "add", "Stout", "500", "4,2", "-d", "2026-03-02")
	require.NoError(t, err)

	records, err := c.app.Services().AlcoholService.GetAll(context.Background(), testOwner)
	require.NoError(t, err)
	require.Len(t, records, 1)
	id := records[0].ID

	out, err := execute(t, c, "alcohol", "update", id, "--ml", "330")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Updated record")

	got, err := c.app.Services().AlcoholService.Get(context.Background(), testOwner, id)
	require.NoError(t, err)
	assert.Equal(t, "Stout", got.DrinkName)
	assert.Equal(t, 330, got.Milliliters)
	assert.InDelta(t, 4.2, got.Percentage, 1e-9)
	assert.Equal(t, "2026-03-02", models.FormatDate(got.Date))

	_, err = execute(t, c, "alcohol", "update", "missing", "--ml", "1")
	assert.ErrorContains(t, err, "failed to load record")
}

func TestAlcohol_DeleteAndClear(t *testing.T) {
	c := newTestCLI(t, onlineRemote(t))
	ctx := context.Background()

	for _, drink := range []string{"Lager", "Pils", "IPA"} {
		_, err := execute(t, c, "-o", testOwner, "alcohol", "add", drink, "330", "5")
		require.NoError(t, err)
	}
	records, err := c.app.Services().AlcoholService.GetAll(ctx, testOwner)
	require.NoError(t, err)
	require.Len(t, records, 3)

	out, err := execute(t, c, "alcohol", "rm", records[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Deleted record "+records[0].ID)

	_, err = execute(t, c, "alcohol", "clear")
	require.NoError(t, err)

	out, err = execute(t, c, "alcohol", "week")
	require.NoError(t, err)
	assert.Contains(t, out, "No records found.")
}

// ─────────────────────────────────────────────
// event
// ─────────────────────────────────────────────

func TestEvent_AddUpdateSearch(t *testing.T) {
	c := newTestCLI(t, onlineRemote(t))
	ctx := context.Background()

	out, err := execute(t, c, "-o", testOwner, "event", "add", "Beer fest", "--description", "Munich", "--date", "September")
	require.NoError(t, err)
	assert.Contains(t, out, "Beer fest @ September (Munich)")

	_, err = execute(t, c, "event", "add", "Dinner", "--description", "beer pairing")
	require.NoError(t, err)

	out, err = execute(t, c, "event", "search", "beer")
	require.NoError(t, err)
	assert.Contains(t, out, "Beer fest")
	assert.Contains(t, out, "Dinner")

	out, err = execute(t, c, "event", "search", "beer", "--title")
	require.NoError(t, err)
	assert.Contains(t, out, "Beer fest")
	assert.NotContains(t, out, "Dinner")

	events, err := c.app.Services().EventService.Search(ctx, testOwner, "Dinner")
	require.NoError(t, err)
	require.Len(t, events, 1)

	_, err = execute(t, c, "event", "update", events[0].ID, "--date", "Friday")
	require.NoError(t, err)

	got, err := c.app.Services().EventService.Get(ctx, testOwner, events[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Dinner", got.Title)
	assert.Equal(t, "beer pairing", got.Description)
	assert.Equal(t, "Friday", got.Date)

	_, err = execute(t, c, "event", "rm", events[0].ID)
	require.NoError(t, err)

	out, err = execute(t, c, "event", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "Dinner")

	_, err = execute(t, c, "event", "clear")
	require.NoError(t, err)

	out, err = execute(t, c, "event", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "No events found.")
}

// ─────────────────────────────────────────────
// note and user
// ─────────────────────────────────────────────

func TestNote_Commands(t *testing.T) {
	c := newTestCLI(t, onlineRemote(t))

	out, err := execute(t, c, "note", "add", "Shopping", "--content", "hops, malt")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Added note")

	notes, err := c.app.Services().NoteService.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 1)

	_, err = execute(t, c, "note", "update", notes[0].ID, "--content", "yeast")
	require.NoError(t, err)

	out, err = execute(t, c, "note", "search", "yea")
	require.NoError(t, err)
	assert.Contains(t, out, "Shopping yeast")

	_, err = execute(t, c, "note", "delete", notes[0].ID)
	require.NoError(t, err)

	out, err = execute(t, c, "note", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No notes found.")
}

func TestUser_Commands(t *testing.T) {
	c := newTestCLI(t, onlineRemote(t))

	_, err := execute(t, c, "user", "add", "Ana", "31")
	require.NoError(t, err)

	_, err = execute(t, c, "user", "add", "Old", "151")
	assert.ErrorContains(t, err, "failed to add user")

	out, err := execute(t, c, "user", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Ana, 31")

	users, err := c.app.Services().UserService.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)

	_, err = execute(t, c, "user", "rm", users[0].ID)
	require.NoError(t, err)

	out, err = execute(t, c, "user", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "No users found.")
}

// ─────────────────────────────────────────────
// sync and run
// ─────────────────────────────────────────────

func TestSync_AllKinds(t *testing.T) {
	c := newTestCLI(t, onlineRemote(t))

	out, err := execute(t, c, "-o", testOwner, "sync")

	require.NoError(t, err)
	assert.Contains(t, out, "alcohol")
	assert.Contains(t, out, "event")
}

func TestSync_OneKind(t *testing.T) {
	c := newTestCLI(t, onlineRemote(t))

	out, err := execute(t, c, "-o", testOwner, "sync", "--kind", "event")
	require.NoError(t, err)
	assert.Contains(t, out, "event")
	assert.NotContains(t, out, "alcohol")

	_, err = execute(t, c, "sync", "-k", "notes")
	assert.ErrorContains(t, err, `unknown kind "notes"`)
}

func TestRun_PrintsWeekUntilCancelled(t *testing.T) {
	c := newTestCLI(t, onlineRemote(t))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() {
		done <- executeContext(ctx, c, out, "-o", testOwner, "run")
	}()

	require.Eventually(t, func() bool {
		s := out.String()
		return strings.Contains(s, "Session started for owner-1") && strings.Contains(s, "Week of 2026-03-01")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after cancel")
	}
}
