package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"8080"`

	MySQLHost string `env:"MYSQL_HOST" envDefault:"mysql"`
	MySQLPort string `env:"MYSQL_PORT" envDefault:"3306"`
	MySQLDB   string `env:"MYSQL_DB" envDefault:"villagefi"`
	MySQLUser string `env:"MYSQL_USER" envDefault:"villagefi"`
	MySQLPass string `env:"MYSQL_PASS" envDefault:"villagefi"`

	RedisAddr string `env:"REDIS_ADDR" envDefault:"redis:6379"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	IdempTTLSecs int `env:"IDEMPOTENCY_TTL_SECONDS" envDefault:"300"`

	// Owner is the deployer principal: the only caller allowed to change
	// thresholds or drain the pool.
	OwnerPrincipal string `env:"OWNER_PRINCIPAL,required"`

	// Lending defaults, seeded into pool_config on first boot.
	MinReputation      int64  `env:"MIN_REPUTATION" envDefault:"50"`
	MaxLoanAmount      uint64 `env:"MAX_LOAN_AMOUNT" envDefault:"0"` // 0 = no cap
	LoanDurationBlocks uint64 `env:"LOAN_DURATION_BLOCKS" envDefault:"2628000"`

	// Block clock: height = (now - genesis) / interval.
	GenesisUnix       int64 `env:"GENESIS_UNIX" envDefault:"0"`
	BlockIntervalSecs int   `env:"BLOCK_INTERVAL_SECONDS" envDefault:"600"`
}

func Load() (*Config, error) {
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.OwnerPrincipal == "" {
		return errors.New("missing OWNER_PRINCIPAL")
	}
	if c.BlockIntervalSecs <= 0 {
		return errors.New("BLOCK_INTERVAL_SECONDS must be positive")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

func (c *Config) Genesis() time.Time { return time.Unix(c.GenesisUnix, 0).UTC() }

func (c *Config) BlockInterval() time.Duration {
	return time.Duration(c.BlockIntervalSecs) * time.Second
}

func (c *Config) IdempTTL() time.Duration { return time.Duration(c.IdempTTLSecs) * time.Second }
