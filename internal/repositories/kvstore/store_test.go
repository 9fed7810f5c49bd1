package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/KirkDiggler/hydroquest/internal/db"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// StoreTestSuite runs the same contract against every backend. peer is a second
// store on the same data, standing in for another process.
type StoreTestSuite struct {
	suite.Suite
	newStore func(t *testing.T) (store Store, peer Store, cleanup func())
	cleanup  func()
	store    Store
	peer     Store
}

func (s *StoreTestSuite) SetupTest() {
	s.store, s.peer, s.cleanup = s.newStore(s.T())
}

func (s *StoreTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, &StoreTestSuite{
		newStore: func(t *testing.T) (Store, Store, func()) {
			mr, err := miniredis.Run()
			require.NoError(t, err)

			client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
			store, err := NewRedis(&Config{RedisClient: client})
			require.NoError(t, err)

			peerClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
			peer, err := NewRedis(&Config{RedisClient: peerClient})
			require.NoError(t, err)

			return store, peer, func() {
				client.Close()
				peerClient.Close()
				mr.Close()
			}
		},
	})
}

func TestSQLiteStoreSuite(t *testing.T) {
	suite.Run(t, &StoreTestSuite{
		newStore: func(t *testing.T) (Store, Store, func()) {
			path := filepath.Join(t.TempDir(), "local.db")

			database, err := db.OpenSQLite(path)
			require.NoError(t, err)
			require.NoError(t, db.RunMigrations(database, db.Migrations()))
			store, err := NewSQLite(&SQLiteConfig{DB: database})
			require.NoError(t, err)

			peerDatabase, err := db.OpenSQLite(path)
			require.NoError(t, err)
			peer, err := NewSQLite(&SQLiteConfig{DB: peerDatabase})
			require.NoError(t, err)

			return store, peer, func() {
				peerDatabase.Close()
				database.Close()
			}
		},
	})
}

func (s *StoreTestSuite) TestGetMissingKey() {
	_, err := s.store.Get(context.Background(), "userStats")
	s.ErrorIs(err, ErrNotFound)
}

func (s *StoreTestSuite) TestSetGetOverwrite() {
	ctx := context.Background()

	s.Require().NoError(s.store.Set(ctx, "deviceId", []byte(`"first"`)))
	s.Require().NoError(s.store.Set(ctx, "deviceId", []byte(`"second"`)))

	value, err := s.store.Get(ctx, "deviceId")
	s.Require().NoError(err)
	s.Equal(`"second"`, string(value))
}

func (s *StoreTestSuite) TestDelete() {
	ctx := context.Background()

	s.Require().NoError(s.store.Set(ctx, "dehydrated", []byte("true")))
	s.Require().NoError(s.store.Delete(ctx, "dehydrated"))
	s.Require().NoError(s.store.Delete(ctx, "dehydrated"))

	_, err := s.store.Get(ctx, "dehydrated")
	s.ErrorIs(err, ErrNotFound)
}

func (s *StoreTestSuite) TestEmptyKey() {
	ctx := context.Background()

	_, err := s.store.Get(ctx, "")
	s.Error(err)
	s.Error(s.store.Set(ctx, "", []byte("x")))
	s.Error(s.store.Delete(ctx, ""))
	s.Error(s.store.Update(ctx, "", func([]byte, bool) ([]byte, bool, error) { return nil, false, nil }))
	s.Error(s.store.Update(ctx, "alarms", nil))
}

func (s *StoreTestSuite) TestUpdateMissingKey() {
	ctx := context.Background()

	err := s.store.Update(ctx, "alarms", func(current []byte, found bool) ([]byte, bool, error) {
		s.False(found)
		s.Nil(current)
		return []byte(`{}`), true, nil
	})
	s.Require().NoError(err)

	value, err := s.peer.Get(ctx, "alarms")
	s.Require().NoError(err)
	s.Equal(`{}`, string(value))
}

func (s *StoreTestSuite) TestUpdateReplacesValue() {
	ctx := context.Background()
	s.Require().NoError(s.store.Set(ctx, "userStats", []byte(`1`)))

	err := s.store.Update(ctx, "userStats", func(current []byte, found bool) ([]byte, bool, error) {
		s.True(found)
		s.Equal(`1`, string(current))
		return []byte(`2`), true, nil
	})
	s.Require().NoError(err)

	value, err := s.store.Get(ctx, "userStats")
	s.Require().NoError(err)
	s.Equal(`2`, string(value))
}

func (s *StoreTestSuite) TestUpdateWithoutWrite() {
	ctx := context.Background()
	s.Require().NoError(s.store.Set(ctx, "userStats", []byte(`1`)))

	err := s.store.Update(ctx, "userStats", func([]byte, bool) ([]byte, bool, error) {
		return []byte(`ignored`), false, nil
	})
	s.Require().NoError(err)

	value, err := s.store.Get(ctx, "userStats")
	s.Require().NoError(err)
	s.Equal(`1`, string(value))
}

func (s *StoreTestSuite) TestUpdateFuncError() {
	ctx := context.Background()
	s.Require().NoError(s.store.Set(ctx, "userStats", []byte(`1`)))
	boom := errors.New("not enough gold")

	err := s.store.Update(ctx, "userStats", func([]byte, bool) ([]byte, bool, error) {
		return []byte(`2`), true, boom
	})
	s.Equal(boom, err)

	value, err := s.store.Get(ctx, "userStats")
	s.Require().NoError(err)
	s.Equal(`1`, string(value))

	// the store stays usable after a rolled back update
	s.Require().NoError(s.peer.Set(ctx, "userStats", []byte(`3`)))
}

func (s *StoreTestSuite) TestUpdateConcurrentWritersNeverLoseIncrements() {
	ctx := context.Background()
	s.Require().NoError(s.store.Set(ctx, "counter", []byte(`0`)))

	const perWriter = 25
	increment := func(current []byte, _ bool) ([]byte, bool, error) {
		n, err := strconv.Atoi(string(current))
		if err != nil {
			return nil, false, err
		}
		return []byte(strconv.Itoa(n + 1)), true, nil
	}

	var wg sync.WaitGroup
	errs := make(chan error, 2*perWriter)
	for _, store := range []Store{s.store, s.peer} {
		wg.Add(1)
		go func(store Store) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				if err := store.Update(ctx, "counter", increment); err != nil {
					errs <- err
				}
			}
		}(store)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.NoError(err)
	}

	value, err := s.store.Get(ctx, "counter")
	s.Require().NoError(err)
	s.Equal(strconv.Itoa(2*perWriter), string(value))
}

func TestNewSQLite_NilConfig(t *testing.T) {
	if _, err := NewSQLite(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
	if _, err := NewSQLite(&SQLiteConfig{DB: (*sql.DB)(nil)}); err == nil {
		t.Fatal("expected error for nil database")
	}
}

func TestRedisUpdate_RetriesAfterConcurrentWrite(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	peerClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer peerClient.Close()

	store, err := NewRedis(&Config{RedisClient: client})
	require.NoError(t, err)
	peer, err := NewRedis(&Config{RedisClient: peerClient})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "userStats", []byte(`"running"`)))

	var seen []string
	err = store.Update(ctx, "userStats", func(current []byte, _ bool) ([]byte, bool, error) {
		seen = append(seen, string(current))
		if len(seen) == 1 {
			// another process commits between this read and the write
			require.NoError(t, peer.Set(ctx, "userStats", []byte(`"lost"`)))
			return []byte(`"won"`), true, nil
		}
		return nil, false, nil
	})
	require.NoError(t, err)

	require.Equal(t, []string{`"running"`, `"lost"`}, seen)

	value, err := store.Get(ctx, "userStats")
	require.NoError(t, err)
	require.Equal(t, `"lost"`, string(value))
}
