package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"todoapi/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

var ErrConnectionExhausted = errors.New("exhausted database connection retries")

// Connection holds the read and write pools. Both may point at the same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type Credential struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	SSLMode  string
}

func New(config *config.Config) (*Connection, error) {
	pg := config.DB.Postgres

	read, err := CreatePostgresConnection("read", readCredential(config), pg.MaxRetry, pg.RetryWaitTime)
	if err != nil {
		return nil, err
	}

	write, err := CreatePostgresConnection("write", WriteCredential(config), pg.MaxRetry, pg.RetryWaitTime)
	if err != nil {
		_ = read.Close()

		return nil, err
	}

	return &Connection{
		Read:  read,
		Write: write,
	}, nil
}

// Ping checks both pools.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("read connection: %w", err)
	}

	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("write connection: %w", err)
	}

	return nil
}

func (c *Connection) Close() error {
	return errors.Join(c.Read.Close(), c.Write.Close())
}

// DBName returns the database name with prefix if configured.
func DBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func WriteCredential(config *config.Config) Credential {
	w := config.DB.Postgres.Write

	return Credential{
		Host:     w.Host,
		Port:     w.Port,
		Username: w.Username,
		Password: w.Password,
		Name:     DBName(config, w.Name),
		SSLMode:  w.SSLMode,
	}
}

func readCredential(config *config.Config) Credential {
	r := config.DB.Postgres.Read

	return Credential{
		Host:     r.Host,
		Port:     r.Port,
		Username: r.Username,
		Password: r.Password,
		Name:     DBName(config, r.Name),
		SSLMode:  r.SSLMode,
	}
}

// DSN renders the credential as a postgres URL.
func (c Credential) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		c.Username,
		c.Password,
		net.JoinHostPort(c.Host, c.Port),
		c.Name,
		c.SSLMode,
	)
}

// CreatePostgresConnection connects with a fixed wait between attempts.
func CreatePostgresConnection(name string, cred Credential, maxRetry, waitTime int) (*sqlx.DB, error) {
	var lastErr error

	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", cred.DSN())
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", cred.Host).
				Str("port", cred.Port).
				Str("dbName", cred.Name).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB, nil
		}

		lastErr = err

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", cred.Host).
			Str("port", cred.Port).
			Str("dbName", cred.Name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil, fmt.Errorf("%w (%s): %w", ErrConnectionExhausted, name, lastErr)
}
