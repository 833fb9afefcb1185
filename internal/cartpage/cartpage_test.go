package cartpage

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/storefront/internal/cart"
	"github.com/bookhaven/storefront/internal/config"
	"github.com/bookhaven/storefront/internal/message"
	"github.com/bookhaven/storefront/internal/storage"
)

// manualClock fires callbacks when Advance passes their deadline.
type manualClock struct {
	mu      sync.Mutex
	now     time.Duration
	pending []*manualTimer
}

type manualTimer struct {
	at   time.Duration
	f    func()
	dead bool
}

func (t *manualTimer) Stop() bool {
	was := !t.dead
	t.dead = true
	return was
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) message.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{at: c.now + d, f: f}
	c.pending = append(c.pending, t)
	return t
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*manualTimer
	for _, t := range c.pending {
		if !t.dead && t.at <= c.now {
			t.dead = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()
	for _, t := range due {
		t.f()
	}
}

const delay = 3000 * time.Millisecond

func newPage(t *testing.T, items ...cart.Item) (*Page, *cart.Store, *manualClock) {
	t.Helper()
	store := cart.NewStore(storage.NewMemory())
	require.NoError(t, store.Write(context.Background(), items))
	clock := &manualClock{}
	return New(store, message.NewDisplay(clock), delay), store, clock
}

func priced(name string, price float64) cart.Item {
	return cart.Item{SKU: name, Name: name, Desc: name + " desc", Price: cart.NewPrice(price)}
}

func TestRenderEmpty(t *testing.T) {
	page, _, _ := newPage(t)
	v, err := page.Render(context.Background())
	require.NoError(t, err)
	assert.True(t, v.Empty)
	assert.Empty(t, v.Rows)
	assert.Equal(t, "$0.00", v.Total)
}

func TestRenderRowsAndTotal(t *testing.T) {
	page, _, _ := newPage(t, priced("a", 10), priced("b", 5.5))
	v, err := page.Render(context.Background())
	require.NoError(t, err)

	assert.False(t, v.Empty)
	require.Len(t, v.Rows, 2)
	assert.Equal(t, Row{Index: 0, Name: "a", Desc: "a desc", Price: "$10.00"}, v.Rows[0])
	assert.Equal(t, Row{Index: 1, Name: "b", Desc: "b desc", Price: "$5.50"}, v.Rows[1])
	assert.Equal(t, "$15.50", v.Total)
}

func TestRemoveShowsTransientMessage(t *testing.T) {
	ctx := context.Background()
	page, _, clock := newPage(t, priced("a", 1), priced("b", 2))

	v, err := page.Remove(ctx, 0)
	require.NoError(t, err)
	require.Len(t, v.Rows, 1)
	assert.Equal(t, "b", v.Rows[0].Name)
	assert.Equal(t, 0, v.Rows[0].Index)
	assert.Equal(t, MsgItemRemoved, v.Message)

	clock.Advance(delay)
	v, err = page.Render(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", v.Message)
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()
	page, _, clock := newPage(t, priced("a", 1))

	v, err := page.ClearCart(ctx)
	require.NoError(t, err)
	assert.True(t, v.Empty)
	assert.Equal(t, "$0.00", v.Total)
	assert.Equal(t, MsgCartCleared, v.Message)

	clock.Advance(delay)
	v, _ = page.Render(ctx)
	assert.Equal(t, "", v.Message)
}

func TestCheckoutLeavesStandingThankYou(t *testing.T) {
	ctx := context.Background()
	page, store, clock := newPage(t, priced("a", 20))

	v, err := page.Checkout(ctx)
	require.NoError(t, err)
	assert.True(t, v.Empty)
	assert.Equal(t, "$0.00", v.Total)
	assert.Equal(t, MsgThankYou, v.Message)

	items, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	clock.Advance(delay)
	v, err = page.Render(ctx)
	require.NoError(t, err)
	assert.Equal(t, MsgThankYou, v.Message)
}

func TestMessageAfterCheckoutClearsAgain(t *testing.T) {
	ctx := context.Background()
	page, _, clock := newPage(t, priced("a", 20))

	_, err := page.Checkout(ctx)
	require.NoError(t, err)
	_, err = page.ClearCart(ctx)
	require.NoError(t, err)

	clock.Advance(delay)
	v, _ := page.Render(ctx)
	assert.Equal(t, "", v.Message)
}

func TestEnterDropsOldMessages(t *testing.T) {
	ctx := context.Background()
	page, _, _ := newPage(t, priced("a", 20))

	_, err := page.Checkout(ctx)
	require.NoError(t, err)
	page.Enter()

	v, _ := page.Render(ctx)
	assert.Equal(t, "", v.Message)
}

func TestCardsAndAddToCart(t *testing.T) {
	ctx := context.Background()
	cfg := config.DefaultConfig()

	cards := Cards(cfg.Products, "BH-002")
	require.Len(t, cards, len(cfg.Products))
	assert.False(t, cards[0].Added)
	assert.True(t, cards[1].Added)
	assert.Equal(t, "$12.50", cards[1].Price)

	store := cart.NewStore(storage.NewMemory())
	it, err := AddToCart(ctx, store, cfg, "BH-002")
	require.NoError(t, err)
	assert.Equal(t, "Gardens of Ash", it.Name)

	_, err = AddToCart(ctx, store, cfg, "nope")
	assert.True(t, errors.Is(err, ErrUnknownProduct))

	items, _ := store.Read(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, "$12.50", cart.Money(items[0].Price))
}
