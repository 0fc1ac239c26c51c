package config

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLoadReturnsInitial(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Port: "8080", Mode: "debug"}}
	store := NewStore(cfg)

	require.Same(t, cfg, store.Load())
}

func TestStoreSwapReplacesSnapshot(t *testing.T) {
	store := NewStore(&Config{JWT: JWTConfig{Secret: "before"}})

	next := &Config{JWT: JWTConfig{Secret: "after"}}
	store.Swap(next)

	assert.Same(t, next, store.Load())
	assert.Equal(t, "after", store.Load().JWT.Secret)
}

// Readers racing a hot reload must only ever see whole snapshots, never a
// half-written one. Run with -race.
func TestStoreConcurrentReload(t *testing.T) {
	const reloads = 200

	secrets := make(map[string]bool, reloads+1)
	for i := 0; i <= reloads; i++ {
		secrets[fmt.Sprintf("secret-%04d", i)] = true
	}

	store := NewStore(&Config{JWT: JWTConfig{Secret: "secret-0000"}})

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				secret := store.Load().JWT.Secret
				if !secrets[secret] {
					t.Errorf("read torn or unknown secret %q", secret)
					return
				}
			}
		}()
	}

	for i := 1; i <= reloads; i++ {
		store.Swap(&Config{JWT: JWTConfig{Secret: fmt.Sprintf("secret-%04d", i)}})
	}
	close(stop)
	wg.Wait()

	assert.Equal(t, fmt.Sprintf("secret-%04d", reloads), store.Load().JWT.Secret)
}
