package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/photocards/internal/domain/entity"
	"github.com/oksasatya/photocards/internal/domain/repository"
	"github.com/oksasatya/photocards/pkg/validation"
)

func newUser(email string) *entity.User {
	u := &entity.User{Email: email, Password: "hash"}
	u.ApplyDefaults()
	return u
}

func TestNewIDShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := newID()
		require.True(t, validation.IsObjectID(id), id)
		require.False(t, seen[id])
		seen[id] = true
	}
}

func TestUserProjections(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()

	u := newUser("a@x.com")
	require.NoError(t, users.Create(ctx, u))
	require.NotEmpty(t, u.ID)

	pub, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, pub.Email)
	assert.Empty(t, pub.Password)

	own, err := users.GetOwn(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", own.Email)
	assert.Empty(t, own.Password)

	creds, err := users.GetCredentials(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", creds.Password)

	assert.ErrorIs(t, users.Create(ctx, newUser("a@x.com")), repository.ErrDuplicateEmail)

	_, err = users.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrInvalidID)
	_, err = users.GetByID(ctx, "64b7f0c2a1b2c3d4e5f60718")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserUpdateRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()
	u := newUser("a@x.com")
	require.NoError(t, users.Create(ctx, u))

	_, err := users.UpdateProfile(ctx, u.ID, "x", "about")
	assert.ErrorIs(t, err, repository.ErrInvalidDocument)

	got, err := users.UpdateAvatar(ctx, u.ID, "https://example.com/me.png")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/me.png", got.Avatar)
	assert.Equal(t, entity.DefaultUserName, got.Name)
}

func TestConcurrentLikesKeepSetSemantics(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	cards := store.Cards()

	owner := newUser("owner@x.com")
	require.NoError(t, store.Users().Create(ctx, owner))
	card := &entity.Card{Name: "Lake", Link: "https://example.com/lake.jpg", Owner: owner.ID}
	require.NoError(t, cards.Create(ctx, card))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cards.AddLike(ctx, card.ID, owner.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := cards.GetByID(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{owner.ID}, got.Likes)
}

func TestDeleteOwnedFiltersByOwner(t *testing.T) {
	ctx := context.Background()
	cards := NewStore().Cards()
	owner := newID()
	card := &entity.Card{Name: "Lake", Link: "https://example.com/lake.jpg", Owner: owner}
	require.NoError(t, cards.Create(ctx, card))

	_, err := cards.DeleteOwned(ctx, card.ID, newID())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	removed, err := cards.DeleteOwned(ctx, card.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, card.ID, removed.ID)

	list, err := cards.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
