package vectorstore

import "time"

const (
	// BackendRedis selects a Redis Stack server with RediSearch.
	BackendRedis = "redis"

	// BackendQdrant selects a Qdrant server over gRPC.
	BackendQdrant = "qdrant"
)

// Config contains vector store connection settings. Timeouts are in seconds.
type Config struct {
	Backend       string `env:"VECTORSTORE_BACKEND"        envDefault:"redis"`
	Index         string `env:"VECTORSTORE_INDEX"          envDefault:"vectors"`
	InitTimeout   int    `env:"VECTORSTORE_INIT_TIMEOUT"   envDefault:"60"`
	QueryTimeout  int    `env:"VECTORSTORE_QUERY_TIMEOUT"  envDefault:"60"`
	InsertTimeout int    `env:"VECTORSTORE_INSERT_TIMEOUT" envDefault:"120"`

	Redis  RedisConfig
	Qdrant QdrantConfig
}

// RedisConfig contains Redis connection settings.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"       envDefault:"0"`
}

// QdrantConfig contains Qdrant connection settings.
type QdrantConfig struct {
	Host   string `env:"QDRANT_HOST"    envDefault:"localhost"`
	Port   int    `env:"QDRANT_PORT"    envDefault:"6334"`
	APIKey string `env:"QDRANT_API_KEY"`
	UseTLS bool   `env:"QDRANT_USE_TLS" envDefault:"false"`
}

// Timeouts are the connection timeouts as durations.
type Timeouts struct {
	Init   time.Duration
	Query  time.Duration
	Insert time.Duration
}

// Timeouts converts the configured seconds to durations.
func (c *Config) Timeouts() Timeouts {
	return Timeouts{
		Init:   seconds(c.InitTimeout),
		Query:  seconds(c.QueryTimeout),
		Insert: seconds(c.InsertTimeout),
	}
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
