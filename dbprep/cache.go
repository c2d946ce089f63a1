// validoku - a Sudoku puzzle validation service.
// Licensed under the MIT license.  See the LICENSE file for details.

package dbprep

import (
	"github.com/gomodule/redigo/redis"
	"github.com/spf13/viper"
)

// ClearCache flushes everything out of Redis: cached puzzle
// entries and all client sessions.
func ClearCache() error {
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/")
	viper.AutomaticEnv()
	conn, err := redis.DialURL(viper.GetString("REDIS_URL"))
	if err != nil {
		return err
	}
	defer conn.Close()
	_, err = conn.Do("FLUSHALL")
	return err
}
