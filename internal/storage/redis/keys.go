package redis

import (
	"fmt"

	"github.com/monstermint/backend/internal/model"
)

// Key prefix for all backend data
const keyPrefix = "mmint"

// accountKey returns the Redis key for an Account
func accountKey(id model.AccountID) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, id)
}

// assetKey returns the Redis key for an Asset
func assetKey(id model.AssetID) string {
	return fmt.Sprintf("%s:asset:%s", keyPrefix, id)
}

// accountIndexKey returns the Redis key for the SET of all account ids
func accountIndexKey() string {
	return fmt.Sprintf("%s:idx:accounts", keyPrefix)
}
