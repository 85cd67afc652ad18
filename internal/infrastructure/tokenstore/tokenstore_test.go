package tokenstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/core/ports"
	"github.com/talentbridge/recruitment-client/internal/infrastructure/config"
)

// exerciseStore runs the slot contract every store must honour.
func exerciseStore(t *testing.T, s ports.TokenStore) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Load(ctx)
	require.ErrorIs(t, err, domain.ErrNoToken)

	require.NoError(t, s.Save(ctx, "first"))
	require.NoError(t, s.Save(ctx, "second"))
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	require.NoError(t, s.Clear(ctx))
	_, err = s.Load(ctx)
	require.ErrorIs(t, err, domain.ErrNoToken)

	// clearing an empty slot is not an error
	require.NoError(t, s.Clear(ctx))
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	f, err := NewFile(path)
	require.NoError(t, err)

	exerciseStore(t, f)
}

func TestFile_PermissionsAndTrim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	f, err := NewFile(path)
	require.NoError(t, err)

	require.NoError(t, f.Save(context.Background(), "abc"))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, os.WriteFile(path, []byte("  abc\n"), 0o600))
	got, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	require.NoError(t, os.WriteFile(path, []byte("\n"), 0o600))
	_, err = f.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoToken)
}

func TestFile_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	f, err := NewFile("~/.recruitctl/token")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".recruitctl", "token"), f.Path())
}

func TestRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s := NewRedis(client, "token", 0)
	exerciseStore(t, s)
	require.NoError(t, s.Ping(context.Background()))
}

func TestRedis_TTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s := NewRedis(client, "tab-1", time.Hour)
	require.NoError(t, s.Save(context.Background(), "abc"))
	assert.Equal(t, time.Hour, mr.TTL("recruit:token:tab-1"))

	mr.FastForward(2 * time.Hour)
	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoToken)
}

func TestRedis_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	s := NewRedis(client, "token", 0)
	_, err := s.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNoToken)
}

func TestMongo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("load missing", func(mt *mtest.T) {
		s := NewMongo(mt.DB, "token")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.session_tokens", mtest.FirstBatch))

		_, err := s.Load(context.Background())
		assert.ErrorIs(mt, err, domain.ErrNoToken)
	})

	mt.Run("load stored", func(mt *mtest.T) {
		s := NewMongo(mt.DB, "token")
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "db.session_tokens", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "token"},
			{Key: "token", Value: "abc"},
			{Key: "updated_at", Value: int64(1700000000)},
		}))

		got, err := s.Load(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, "abc", got)
	})

	mt.Run("save upserts", func(mt *mtest.T) {
		s := NewMongo(mt.DB, "token")
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: "token"}}}},
		))

		require.NoError(mt, s.Save(context.Background(), "abc"))

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "update", started.CommandName)
	})

	mt.Run("clear", func(mt *mtest.T) {
		s := NewMongo(mt.DB, "token")
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		require.NoError(mt, s.Clear(context.Background()))
	})

	mt.Run("server error", func(mt *mtest.T) {
		s := NewMongo(mt.DB, "token")
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "boom",
		}))

		_, err := s.Load(context.Background())
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, domain.ErrNoToken)
	})
}

func TestOpen_MemoryAndFile(t *testing.T) {
	cfg := &config.Config{Token: config.TokenConfig{Store: config.StoreMemory}}
	s, closeFn, err := Open(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)
	require.NoError(t, closeFn(context.Background()))

	cfg = &config.Config{Token: config.TokenConfig{Store: config.StoreFile, File: filepath.Join(t.TempDir(), "tok")}}
	s, _, err = Open(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &File{}, s)
}

func TestOpen_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &config.Config{
		Token: config.TokenConfig{Store: config.StoreRedis, Key: "token"},
		Redis: config.RedisConfig{Addr: mr.Addr()},
	}

	s, closeFn, err := Open(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn(context.Background()) })

	require.NoError(t, s.Save(context.Background(), "abc"))
	got, err := mr.Get("recruit:token:token")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestOpen_Unknown(t *testing.T) {
	_, closeFn, err := Open(context.Background(), &config.Config{Token: config.TokenConfig{Store: "sqlite"}}, zerolog.Nop())
	require.Error(t, err)
	assert.NotNil(t, closeFn)
}
