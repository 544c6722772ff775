package application

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/photocards/internal/domain/entity"
	"github.com/oksasatya/photocards/internal/infrastructure/memory"
	"github.com/oksasatya/photocards/pkg/apperror"
	"github.com/oksasatya/photocards/pkg/helpers"
)

type fixture struct {
	users *UserService
	cards *CardService
}

func newFixture() fixture {
	store := memory.NewStore()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return fixture{
		users: NewUserService(store.Users(), jwt, bcrypt.MinCost, logger),
		cards: NewCardService(store.Cards(), logger),
	}
}

func (f fixture) signup(t *testing.T, email string) *entity.User {
	t.Helper()
	u, err := f.users.CreateUser(context.Background(), CreateUserInput{Email: email, Password: "secret"})
	require.NoError(t, err)
	return u
}

func TestCreateUserAppliesDefaults(t *testing.T) {
	f := newFixture()
	u := f.signup(t, "a@x.com")

	assert.Equal(t, entity.DefaultUserName, u.Name)
	assert.Equal(t, entity.DefaultUserAbout, u.About)
	assert.Equal(t, entity.DefaultUserAvatar, u.Avatar)
	assert.Equal(t, "a@x.com", u.Email)
	assert.Empty(t, u.Password)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	f := newFixture()
	f.signup(t, "a@x.com")

	_, err := f.users.CreateUser(context.Background(), CreateUserInput{Email: "a@x.com", Password: "other"})
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestCreateUserRejectsInvalidProfile(t *testing.T) {
	f := newFixture()
	_, err := f.users.CreateUser(context.Background(), CreateUserInput{
		Email: "a@x.com", Password: "secret", Avatar: "not-a-url",
	})
	require.Error(t, err)
	ae, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindBadRequest, ae.Kind)
	assert.Equal(t, map[string]string{"avatar": "must be a valid URL"}, ae.Details)
}

func TestCreateUserRejectsPasswordOverBcryptLimit(t *testing.T) {
	f := newFixture()
	// 40 runes, 80 bytes
	_, err := f.users.CreateUser(context.Background(), CreateUserInput{
		Email: "long@x.com", Password: strings.Repeat("ж", 40),
	})
	ae, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindBadRequest, ae.Kind)
	assert.Equal(t, map[string]string{"password": "must be at most 72 bytes long"}, ae.Details)

	_, err = f.users.CreateUser(context.Background(), CreateUserInput{
		Email: "edge@x.com", Password: strings.Repeat("p", 72),
	})
	assert.NoError(t, err)
}

func TestLogin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	u := f.signup(t, "a@x.com")

	token, err := f.users.Login(ctx, "a@x.com", "secret")
	require.NoError(t, err)
	claims, err := f.users.JWT.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)

	_, wrongPass := f.users.Login(ctx, "a@x.com", "nope")
	_, unknown := f.users.Login(ctx, "b@x.com", "secret")
	for _, err := range []error{wrongPass, unknown} {
		ae, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.KindUnauthorized, ae.Kind)
		assert.Equal(t, msgInvalidCredentials, ae.Message)
	}
}

func TestUserReads(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	u := f.signup(t, "a@x.com")
	f.signup(t, "b@x.com")

	list, err := f.users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	for _, item := range list {
		assert.Empty(t, item.Email)
		assert.Empty(t, item.Password)
	}

	pub, err := f.users.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, pub.Email)

	self, err := f.users.GetSelf(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", self.Email)

	_, err = f.users.GetUser(ctx, "123")
	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
	_, err = f.users.GetUser(ctx, "64b7f0c2a1b2c3d4e5f60718")
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestUserUpdates(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	u := f.signup(t, "a@x.com")

	got, err := f.users.UpdateProfile(ctx, u.ID, "Marie", "Physicist")
	require.NoError(t, err)
	assert.Equal(t, "Marie", got.Name)
	assert.Equal(t, "Physicist", got.About)
	assert.Equal(t, "a@x.com", got.Email)

	_, err = f.users.UpdateProfile(ctx, u.ID, "M", "Physicist")
	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))

	got, err = f.users.UpdateAvatar(ctx, u.ID, "https://example.com/me.png")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/me.png", got.Avatar)

	_, err = f.users.UpdateAvatar(ctx, u.ID, "ftp://example.com/me.png")
	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))

	_, err = f.users.UpdateProfile(ctx, "64b7f0c2a1b2c3d4e5f60718", "Marie", "Physicist")
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestCardLifecycle(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	owner := f.signup(t, "owner@x.com")
	other := f.signup(t, "other@x.com")

	card, err := f.cards.CreateCard(ctx, owner.ID, "Lake", "https://example.com/lake.jpg")
	require.NoError(t, err)
	assert.Equal(t, owner.ID, card.Owner)
	assert.Empty(t, card.Likes)
	assert.False(t, card.CreatedAt.IsZero())

	_, err = f.cards.CreateCard(ctx, owner.ID, "L", "https://example.com/lake.jpg")
	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))

	liked, err := f.cards.LikeCard(ctx, card.ID, other.ID)
	require.NoError(t, err)
	liked, err = f.cards.LikeCard(ctx, card.ID, other.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{other.ID}, liked.Likes)

	unliked, err := f.cards.DislikeCard(ctx, card.ID, other.ID)
	require.NoError(t, err)
	assert.Empty(t, unliked.Likes)
	unliked, err = f.cards.DislikeCard(ctx, card.ID, other.ID)
	require.NoError(t, err)
	assert.Empty(t, unliked.Likes)

	_, err = f.cards.DeleteCard(ctx, card.ID, other.ID)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	removed, err := f.cards.DeleteCard(ctx, card.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, card.ID, removed.ID)

	_, err = f.cards.DeleteCard(ctx, card.ID, owner.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	_, err = f.cards.LikeCard(ctx, card.ID, owner.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	_, err = f.cards.LikeCard(ctx, "bad", owner.ID)
	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
}

func TestConcurrentLikeAndDislike(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	owner := f.signup(t, "owner@x.com")
	card, err := f.cards.CreateCard(ctx, owner.ID, "Lake", "https://example.com/lake.jpg")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = f.cards.LikeCard(ctx, card.ID, owner.ID)
		}()
		go func() {
			defer wg.Done()
			_, _ = f.cards.DislikeCard(ctx, card.ID, owner.ID)
		}()
	}
	wg.Wait()

	cards, err := f.cards.ListCards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.LessOrEqual(t, len(cards[0].Likes), 1)
}
