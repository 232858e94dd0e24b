package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canarylab/chirper/pkg/internal/models"
)

func seedPost(t *testing.T, posts *fakePostStore, account models.Account, body string, date time.Time) {
	t.Helper()
	require.NoError(t, posts.Create(context.Background(), models.Post{
		ID:        body,
		AccountID: account.ID,
		Username:  account.Username,
		Body:      body,
		Date:      date,
	}))
}

func TestTimelineInterleavesByRecency(t *testing.T) {
	profiles := newFakeProfileStore()
	posts := newFakePostStore()
	timeline := NewTimelineService(profiles, posts)

	alice := seedAccount(t, profiles, "alice")
	bob := seedAccount(t, profiles, "bob")
	alice.Following = append(alice.Following, "bob")
	require.NoError(t, profiles.Update(context.Background(), alice))

	now := time.Now()
	seedPost(t, posts, bob, "bob oldest", now.Add(-5*time.Minute))
	seedPost(t, posts, alice, "alice old", now.Add(-4*time.Minute))
	seedPost(t, posts, bob, "bob middle", now.Add(-3*time.Minute))
	seedPost(t, posts, alice, "alice recent", now.Add(-2*time.Minute))
	seedPost(t, posts, bob, "bob newest", now.Add(-time.Minute))

	merged, err := timeline.Build(context.Background(), alice)
	require.NoError(t, err)

	bodies := lo.Map(merged, func(p models.Post, _ int) string { return p.Body })
	assert.Equal(t, []string{"bob newest", "alice recent", "bob middle", "alice old", "bob oldest"}, bodies)
}

func TestTimelineIsCapped(t *testing.T) {
	profiles := newFakeProfileStore()
	posts := newFakePostStore()
	timeline := NewTimelineService(profiles, posts)

	alice := seedAccount(t, profiles, "alice")
	bob := seedAccount(t, profiles, "bob")
	alice.Following = append(alice.Following, "bob")
	require.NoError(t, profiles.Update(context.Background(), alice))

	now := time.Now()
	for idx := 0; idx < 30; idx++ {
		seedPost(t, posts, bob, fmt.Sprintf("bob %d", idx), now.Add(-time.Duration(idx)*time.Minute))
	}
	seedPost(t, posts, alice, "alice stale", now.Add(-time.Hour))

	merged, err := timeline.Build(context.Background(), alice)
	require.NoError(t, err)

	require.Len(t, merged, TimelineFetchLimit)
	// The 30 posts from bob are all newer, so the stale own post is
	// pushed out of the window.
	for _, post := range merged {
		assert.Equal(t, "bob", post.Username)
	}
	assert.Equal(t, "bob 0", merged[0].Body)
}

func TestTimelineSkipsMissingFollowee(t *testing.T) {
	profiles := newFakeProfileStore()
	posts := newFakePostStore()
	timeline := NewTimelineService(profiles, posts)

	alice := seedAccount(t, profiles, "alice")
	alice.Following = append(alice.Following, "ghost")
	require.NoError(t, profiles.Update(context.Background(), alice))
	seedPost(t, posts, alice, "hello", time.Now())

	merged, err := timeline.Build(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.Equal(t, "hello", merged[0].Body)
}

func TestTimelineOnlyContainsFollowedAuthors(t *testing.T) {
	profiles := newFakeProfileStore()
	posts := newFakePostStore()
	timeline := NewTimelineService(profiles, posts)

	alice := seedAccount(t, profiles, "alice")
	bob := seedAccount(t, profiles, "bob")
	carol := seedAccount(t, profiles, "carol")
	alice.Following = append(alice.Following, "bob")
	require.NoError(t, profiles.Update(context.Background(), alice))

	now := time.Now()
	seedPost(t, posts, alice, "from alice", now)
	seedPost(t, posts, bob, "from bob", now.Add(-time.Minute))
	seedPost(t, posts, carol, "from carol", now.Add(-2*time.Minute))

	merged, err := timeline.Build(context.Background(), alice)
	require.NoError(t, err)

	authors := lo.Uniq(lo.Map(merged, func(p models.Post, _ int) string { return p.Username }))
	assert.ElementsMatch(t, []string{"alice", "bob"}, authors)
}

func TestTimelineEmptyForFreshAccount(t *testing.T) {
	profiles := newFakeProfileStore()
	posts := newFakePostStore()
	timeline := NewTimelineService(profiles, posts)

	alice := seedAccount(t, profiles, "alice")

	merged, err := timeline.Build(context.Background(), alice)
	require.NoError(t, err)
	assert.Empty(t, merged)
}
