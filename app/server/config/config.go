package config

type Config struct {
	System struct {
		IsProd                bool   // production mode switch
		Listen                string // listen address
		DBConnectionString    string // Postgres connection string
		RedisConnectionString string // Redis connection string
	}
	Security struct {
		SignatureSecretKey string // session signing key; rotating it invalidates every live session
	}
}
