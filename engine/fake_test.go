package engine

import (
	"context"
	"errors"
	"iter"
	"sync"
	"testing"
	"time"

	"github.com/himakhaitan/hexkv/pkg/config"
	"github.com/himakhaitan/hexkv/store"
	"go.uber.org/zap/zaptest"
)

var errConnRefused = errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")

// fakeClient records every command and delegates to an in-memory store
// unless the command is set to fail or block.
type fakeClient struct {
	backing *store.Memory

	mu    sync.Mutex
	calls []string
	fail  map[string]bool
	block map[string]bool
	info  map[string]store.Info

	// vanish makes another deleter win the race between EXISTS and DEL.
	vanish bool
}

var _ store.Client = (*fakeClient)(nil)

func newFakeClient() *fakeClient {
	return &fakeClient{
		backing: store.NewMemory(),
		fail:    map[string]bool{},
		block:   map[string]bool{},
	}
}

func newTestGateway(t *testing.T, client store.Client) *Gateway {
	t.Helper()
	return NewGateway(client, &config.Config{StoreTimeout: time.Second}, zaptest.NewLogger(t))
}

func (f *fakeClient) enter(ctx context.Context, op string) error {
	f.mu.Lock()
	f.calls = append(f.calls, op)
	fail, block := f.fail[op], f.block[op]
	f.mu.Unlock()

	if block {
		<-ctx.Done()
		return &store.Error{Op: op, Err: ctx.Err()}
	}
	if fail {
		return &store.Error{Op: op, Err: errConnRefused}
	}
	return nil
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) Ping(ctx context.Context) error {
	if err := f.enter(ctx, "ping"); err != nil {
		return err
	}
	return f.backing.Ping(ctx)
}

func (f *fakeClient) Get(ctx context.Context, key string) (string, error) {
	if err := f.enter(ctx, "get"); err != nil {
		return "", err
	}
	return f.backing.Get(ctx, key)
}

func (f *fakeClient) Set(ctx context.Context, key, value string) error {
	if err := f.enter(ctx, "set"); err != nil {
		return err
	}
	return f.backing.Set(ctx, key, value)
}

func (f *fakeClient) Exists(ctx context.Context, key string) (bool, error) {
	if err := f.enter(ctx, "exists"); err != nil {
		return false, err
	}
	return f.backing.Exists(ctx, key)
}

func (f *fakeClient) Delete(ctx context.Context, key string) (int64, error) {
	if err := f.enter(ctx, "del"); err != nil {
		return 0, err
	}
	if f.vanish {
		_, _ = f.backing.Delete(ctx, key)
	}
	return f.backing.Delete(ctx, key)
}

func (f *fakeClient) DBSize(ctx context.Context) (int64, error) {
	if err := f.enter(ctx, "dbsize"); err != nil {
		return 0, err
	}
	return f.backing.DBSize(ctx)
}

func (f *fakeClient) Scan(ctx context.Context, pattern string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if err := f.enter(ctx, "scan"); err != nil {
			yield("", err)
			return
		}
		for k, err := range f.backing.Scan(ctx, pattern) {
			if !yield(k, err) {
				return
			}
		}
	}
}

func (f *fakeClient) Info(ctx context.Context, section string) (store.Info, error) {
	if err := f.enter(ctx, "info"); err != nil {
		return nil, err
	}
	if info, ok := f.info[section]; ok {
		return info, nil
	}
	return f.backing.Info(ctx, section)
}

func (f *fakeClient) SetMany(ctx context.Context, entries map[string]string) error {
	if err := f.enter(ctx, "pipeline"); err != nil {
		return err
	}
	return f.backing.SetMany(ctx, entries)
}

func (f *fakeClient) Close() error {
	return f.backing.Close()
}
