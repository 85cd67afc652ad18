package tokenstore

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/talentbridge/recruitment-client/internal/core/ports"
	"github.com/talentbridge/recruitment-client/internal/infrastructure/config"
	mongodb "github.com/talentbridge/recruitment-client/internal/infrastructure/db/mongo"
	redisdb "github.com/talentbridge/recruitment-client/internal/infrastructure/db/redis"
)

// Open builds the store selected by TOKEN_STORE. The returned close function
// releases any connection the store holds and is never nil.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.TokenStore, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch cfg.Token.Store {
	case config.StoreMemory:
		log.Debug().Msg("token store: memory")
		return NewMemory(), noop, nil

	case config.StoreFile:
		f, err := NewFile(cfg.Token.File)
		if err != nil {
			return nil, noop, err
		}
		log.Debug().Str("path", f.Path()).Msg("token store: file")
		return f, noop, nil

	case config.StoreRedis:
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			Password: cfg.Redis.Password,
		})
		if err != nil {
			return nil, noop, err
		}
		log.Debug().Str("addr", cfg.Redis.Addr).Int("db", cfg.Redis.DB).Msg("token store: redis")
		r := NewRedis(client, cfg.Token.Key, cfg.Redis.TokenTTL)
		return r, func(context.Context) error { return r.Close() }, nil

	case config.StoreMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, noop, err
		}
		log.Debug().Str("database", cfg.Mongo.Database).Msg("token store: mongo")
		return NewMongo(db, cfg.Token.Key), client.Disconnect, nil
	}

	return nil, noop, fmt.Errorf("unknown token store %q", cfg.Token.Store)
}
