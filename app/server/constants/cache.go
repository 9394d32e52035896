package constants

const (
	CacheKeySessionRevoked = "blog:session:revoked:%s" // %s -> session token
)
