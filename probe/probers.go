package probe

import (
	"context"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"siaugesmat-entrypoint/config"
	"siaugesmat-entrypoint/role"
)

// TCPProber checks that an endpoint accepts TCP connections. It is the
// default strategy and the weakest guarantee: the service is listening,
// nothing more.
type TCPProber struct {
	name string
	addr string
}

// NewTCPProber creates a reachability prober for host:port.
func NewTCPProber(name, host, port string) *TCPProber {
	return &TCPProber{name: name, addr: net.JoinHostPort(host, port)}
}

func (p *TCPProber) Name() string   { return p.name }
func (p *TCPProber) Target() string { return p.addr }

func (p *TCPProber) Probe(ctx context.Context) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", p.addr)
	if err != nil {
		return fmt.Errorf("tcp connect failed: %w", err)
	}
	return conn.Close()
}

// PostgresProber checks that the database answers a round trip, not just a
// TCP handshake. A database in crash recovery accepts connects long before
// it accepts queries.
type PostgresProber struct {
	url    string
	target string
}

// NewPostgresProber creates a protocol-aware prober for a postgres URL.
func NewPostgresProber(url, host, port string) *PostgresProber {
	return &PostgresProber{url: url, target: net.JoinHostPort(host, port)}
}

func (p *PostgresProber) Name() string   { return string(role.Database) }
func (p *PostgresProber) Target() string { return p.target }

func (p *PostgresProber) Probe(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, p.url)
	if err != nil {
		return fmt.Errorf("postgres connect failed: %w", err)
	}
	defer func() { _ = conn.Close(ctx) }()

	if err := conn.Ping(ctx); err != nil {
		return fmt.Errorf("postgres ping failed: %w", err)
	}
	return nil
}

// RedisProber checks that the cache answers PING.
type RedisProber struct {
	addr     string
	password string
}

// NewRedisProber creates a protocol-aware prober for host (port is fixed).
func NewRedisProber(host, password string) *RedisProber {
	return &RedisProber{addr: net.JoinHostPort(host, config.RedisPort), password: password}
}

func (p *RedisProber) Name() string   { return string(role.Cache) }
func (p *RedisProber) Target() string { return p.addr }

func (p *RedisProber) Probe(ctx context.Context) error {
	rdb := redis.NewClient(&redis.Options{
		Addr:     p.addr,
		Password: p.password,
		DB:       0, // use default DB
	})
	defer func() { _ = rdb.Close() }()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// ForDependency builds the prober for a dependency under the configured
// strategy.
func ForDependency(dep role.Dependency, cfg *config.Config) Prober {
	switch dep {
	case role.Database:
		if cfg.ProbeStrategy == config.ProbeStrategyPing {
			return NewPostgresProber(cfg.DatabaseURL, cfg.DBHost, cfg.DBPort)
		}
		return NewTCPProber(string(dep), cfg.DBHost, cfg.DBPort)
	case role.Cache:
		if cfg.ProbeStrategy == config.ProbeStrategyPing {
			return NewRedisProber(cfg.RedisHost, cfg.RedisPassword)
		}
		return NewTCPProber(string(dep), cfg.RedisHost, config.RedisPort)
	}
	return nil
}
