package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/peacelink/peacelink/internal/pkg/database"
	"github.com/peacelink/peacelink/internal/pkg/models"
)

// AccountRepo is the Redis-backed account store. Accounts are durable JSON
// values with unique phone/email index keys; Redis is also where the
// original stored its registered-user list, as a single namespaced
// key-value collection.
type AccountRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewAccountRepo creates a new Redis account repository
func NewAccountRepo(cfg *models.Config, redisClient *database.RedisClient) *AccountRepo {
	return &AccountRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}

// PostgresAccountRepo is the relational alternative to the key-value
// account store, selected with DB_DRIVER=postgres.
type PostgresAccountRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPostgresAccountRepo creates a new Postgres account repository
func NewPostgresAccountRepo(cfg *models.Config, db *sqlx.DB) *PostgresAccountRepo {
	return &PostgresAccountRepo{
		cfg: cfg,
		db:  db,
	}
}

// ChallengeRepo stores verification challenges in Redis with a TTL.
type ChallengeRepo struct {
	redisClient *database.RedisClient
}

// NewChallengeRepo creates a new challenge repository
func NewChallengeRepo(redisClient *database.RedisClient) *ChallengeRepo {
	return &ChallengeRepo{
		redisClient: redisClient,
	}
}
