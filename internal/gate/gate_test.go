package gate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bookhaven/storefront/internal/storage"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "reader@bookhaven.example", "  x.y@z.org  ", "a+b@c.d.e"}
	invalid := []string{"", "plain", "a@b", "@b.co", "a@.co.", "a b@c.d", "a@@b.co", "a@b.", "a@b c.d"}

	for _, e := range valid {
		assert.True(t, IsValidEmail(e), "expected %q to be valid", e)
	}
	for _, e := range invalid {
		assert.False(t, IsValidEmail(e), "expected %q to be invalid", e)
	}
}

func TestSubscribeRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	slots := storage.NewMemory()
	core, logs := observer.New(zap.InfoLevel)

	sub, err := MountSubscribe(ctx, slots, zap.New(core))
	require.NoError(t, err)
	require.Equal(t, Pending, sub.State())

	for _, input := range []string{"", "   ", "not-an-email"} {
		out, err := sub.Submit(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, Refocus, out)
	}

	assert.Equal(t, Pending, sub.State())
	_, ok, _ := slots.Get(ctx, storage.KeySubscribed)
	assert.False(t, ok, "nothing may be persisted on rejection")
	assert.Equal(t, 3, logs.FilterMessageSnippet("validation failed").Len())
}

func TestSubscribeAcceptsAndPersists(t *testing.T) {
	ctx := context.Background()
	slots := storage.NewMemory()

	sub, err := MountSubscribe(ctx, slots, zap.NewNop())
	require.NoError(t, err)

	out, err := sub.Submit(ctx, "  reader@bookhaven.example ")
	require.NoError(t, err)
	assert.Equal(t, Accepted, out)
	assert.True(t, sub.ShowThanks())

	flag, _, _ := slots.Get(ctx, storage.KeySubscribed)
	assert.Equal(t, "true", flag)
	email, _, _ := slots.Get(ctx, storage.KeySubscribedEmail)
	assert.Equal(t, "reader@bookhaven.example", email)
}

func TestSubscribeGateIsOneShot(t *testing.T) {
	ctx := context.Background()
	slots := storage.NewMemory()
	require.NoError(t, slots.Set(ctx, storage.KeySubscribed, "true"))

	// A fresh mount on the same profile goes straight to the thank-you view.
	sub, err := MountSubscribe(ctx, slots, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, Submitted, sub.State())
	assert.True(t, sub.ShowThanks())

	_, err = sub.Submit(ctx, "other@bookhaven.example")
	assert.True(t, errors.Is(err, ErrAlreadySubmitted))
	_, ok, _ := slots.Get(ctx, storage.KeySubscribedEmail)
	assert.False(t, ok)
}

func TestFlagMustBeExactlyTrue(t *testing.T) {
	ctx := context.Background()
	slots := storage.NewMemory()
	require.NoError(t, slots.Set(ctx, storage.KeyContact, "yes"))

	c, err := MountContact(ctx, slots)
	require.NoError(t, err)
	assert.Equal(t, Pending, c.State())
}

func TestContactGate(t *testing.T) {
	ctx := context.Background()
	slots := storage.NewMemory()

	c, err := MountContact(ctx, slots)
	require.NoError(t, err)
	assert.False(t, c.ShowThanks())

	out, err := c.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, Accepted, out)
	assert.True(t, c.ShowThanks())

	again, err := MountContact(ctx, slots)
	require.NoError(t, err)
	assert.True(t, again.ShowThanks())
	_, err = again.Submit(ctx)
	assert.True(t, errors.Is(err, ErrAlreadySubmitted))
}

func TestGatesUseIndependentKeys(t *testing.T) {
	ctx := context.Background()
	slots := storage.NewMemory()

	c, _ := MountContact(ctx, slots)
	_, err := c.Submit(ctx)
	require.NoError(t, err)

	sub, err := MountSubscribe(ctx, slots, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, Pending, sub.State())
}
