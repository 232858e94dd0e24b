package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canarylab/chirper/pkg/internal/models"
)

func TestPublishAssignsIdentityAndDate(t *testing.T) {
	store := newFakePostStore()
	posts := NewPostService(store)
	author := models.Account{ID: "uid-alice", Username: "alice"}

	post, err := posts.Publish(context.Background(), author, "hello world", "")
	require.NoError(t, err)

	assert.NotEmpty(t, post.ID)
	assert.False(t, post.Date.IsZero())
	assert.Equal(t, "uid-alice", post.AccountID)
	assert.Equal(t, "alice", post.Username)

	stored, err := posts.Get(context.Background(), author.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello world", stored.Body)
}

func TestEditKeepsCreationDate(t *testing.T) {
	store := newFakePostStore()
	posts := NewPostService(store)
	author := models.Account{ID: "uid-alice", Username: "alice"}

	post, err := posts.Publish(context.Background(), author, "first draft", "")
	require.NoError(t, err)

	edited, err := posts.Edit(context.Background(), author.ID, post.ID, "final version", "")
	require.NoError(t, err)

	assert.Equal(t, "final version", edited.Body)
	assert.True(t, edited.Date.Equal(post.Date))
}

func TestEditKeepsImageWhenNoneSupplied(t *testing.T) {
	store := newFakePostStore()
	posts := NewPostService(store)
	author := models.Account{ID: "uid-alice", Username: "alice"}

	post, err := posts.Publish(context.Background(), author, "look at this", "https://cdn.example.com/cat.jpg")
	require.NoError(t, err)

	edited, err := posts.Edit(context.Background(), author.ID, post.ID, "look at this!", "")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/cat.jpg", edited.ImageURL)

	replaced, err := posts.Edit(context.Background(), author.ID, post.ID, "look at this!", "https://cdn.example.com/dog.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/dog.png", replaced.ImageURL)
}

func TestEditUnknownPost(t *testing.T) {
	posts := NewPostService(newFakePostStore())

	_, err := posts.Edit(context.Background(), "uid-alice", "missing", "body", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePost(t *testing.T) {
	store := newFakePostStore()
	posts := NewPostService(store)
	author := models.Account{ID: "uid-alice", Username: "alice"}

	post, err := posts.Publish(context.Background(), author, "short lived", "")
	require.NoError(t, err)

	require.NoError(t, posts.Delete(context.Background(), author.ID, post.ID))
	_, err = posts.Get(context.Background(), author.ID, post.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = posts.Delete(context.Background(), author.ID, post.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchByBodyPrefix(t *testing.T) {
	store := newFakePostStore()
	posts := NewPostService(store)
	alice := models.Account{ID: "uid-alice", Username: "alice"}
	bob := models.Account{ID: "uid-bob", Username: "bob"}

	_, err := posts.Publish(context.Background(), alice, "go is fun", "")
	require.NoError(t, err)
	_, err = posts.Publish(context.Background(), bob, "go home", "")
	require.NoError(t, err)
	_, err = posts.Publish(context.Background(), bob, "stay here", "")
	require.NoError(t, err)

	found, err := posts.Search(context.Background(), "go")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = posts.Search(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, found)
}
