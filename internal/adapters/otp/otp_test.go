package otp

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/playmixer/unicredit/internal/adapters/store/errstore"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockCmdable struct {
	data        map[string]string
	incr        map[string]int64
	expireCalls []string
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{
		data: map[string]string{},
		incr: map[string]int64{},
	}
}

func (m *mockCmdable) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	m.data[key] = fmt.Sprint(value)
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) GetDel(_ context.Context, key string) *redis.StringCmd {
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	delete(m.data, key)
	return redis.NewStringResult(v, nil)
}

func (m *mockCmdable) Incr(_ context.Context, key string) *redis.IntCmd {
	m.incr[key]++
	return redis.NewIntResult(m.incr[key], nil)
}

func (m *mockCmdable) Expire(_ context.Context, key string, _ time.Duration) *redis.BoolCmd {
	m.expireCalls = append(m.expireCalls, key)
	return redis.NewBoolResult(true, nil)
}

func TestRedisStore_Allow(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	s := &RedisStore{store: mock, limit: 2, window: time.Minute}

	for i, want := range []bool{true, true, false} {
		allowed, err := s.Allow(ctx, "+10000000001")
		require.NoError(t, err)
		assert.Equal(t, want, allowed, "attempt %d", i+1)
	}
	assert.Equal(t, []string{"unicredit:otp:rate:+10000000001"}, mock.expireCalls)

	allowed, err := s.Allow(ctx, "+10000000002")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisStore_SaveTake(t *testing.T) {
	ctx := context.Background()
	s := &RedisStore{store: newMockCmdable()}

	require.NoError(t, s.Save(ctx, "+10000000001", "hash", time.Minute))

	hash, err := s.Take(ctx, "+10000000001")
	require.NoError(t, err)
	assert.Equal(t, "hash", hash)

	_, err = s.Take(ctx, "+10000000001")
	assert.ErrorIs(t, err, errstore.ErrNotFoundData)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore(&Config{SendLimit: 1, SendWindow: time.Minute})
	s.now = func() time.Time { return now }

	allowed, err := s.Allow(ctx, "+10000000001")
	require.NoError(t, err)
	assert.True(t, allowed)
	allowed, err = s.Allow(ctx, "+10000000001")
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, s.Save(ctx, "+10000000001", "hash", 30*time.Second))
	hash, err := s.Take(ctx, "+10000000001")
	require.NoError(t, err)
	assert.Equal(t, "hash", hash)
	_, err = s.Take(ctx, "+10000000001")
	assert.ErrorIs(t, err, errstore.ErrNotFoundData)

	require.NoError(t, s.Save(ctx, "+10000000001", "hash", 30*time.Second))
	now = now.Add(2 * time.Minute)
	_, err = s.Take(ctx, "+10000000001")
	assert.ErrorIs(t, err, errstore.ErrNotFoundData, "expired code")

	allowed, err = s.Allow(ctx, "+10000000001")
	require.NoError(t, err)
	assert.True(t, allowed, "new window")
}

func TestMemoryStore_SweepsExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore(&Config{SendLimit: 5, SendWindow: time.Minute})
	s.now = func() time.Time { return now }

	for _, phone := range []string{"+10000000001", "+10000000002", "+10000000003"} {
		_, err := s.Allow(ctx, phone)
		require.NoError(t, err)
		require.NoError(t, s.Save(ctx, phone, "hash", 30*time.Second))
	}
	assert.Len(t, s.codes, 3)
	assert.Len(t, s.rates, 3)

	now = now.Add(5 * time.Minute)
	_, err := s.Allow(ctx, "+10000000004")
	require.NoError(t, err)

	assert.Empty(t, s.codes)
	assert.Len(t, s.rates, 1)
	assert.Contains(t, s.rates, "+10000000004")
}

type chanSender struct {
	out chan string
}

func (c *chanSender) Send(_ context.Context, phone, code string) error {
	c.out <- phone + ":" + code
	return nil
}

func TestDispatcher_Delivers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sender := &chanSender{out: make(chan string, 2)}
	d := NewDispatcher(ctx, &Config{Workers: 2, QueueSize: 4}, Delivery(sender), Logger(zap.NewNop()))

	require.NoError(t, d.Send(ctx, "+10000000001", "111111"))
	require.NoError(t, d.Send(ctx, "+10000000002", "222222"))

	got := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case msg := <-sender.out:
			got[msg] = true
		case <-time.After(time.Second):
			t.Fatal("code was not delivered")
		}
	}
	assert.True(t, got["+10000000001:111111"])
	assert.True(t, got["+10000000002:222222"])

	cancel()
	d.Wait()
}

func TestDispatcher_QueueFull(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := NewDispatcher(ctx, &Config{Workers: 1, QueueSize: 1})
	d.Wait()

	require.NoError(t, d.Send(context.Background(), "+10000000001", "111111"))
	assert.ErrorIs(t, d.Send(context.Background(), "+10000000001", "111111"), ErrQueueFull)
}

func TestNew_MemoryFallback(t *testing.T) {
	s, err := New(context.Background(), &Config{SendLimit: 5, SendWindow: time.Minute}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)
}
