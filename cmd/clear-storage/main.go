// validoku - a Sudoku puzzle validation service.
// Licensed under the MIT license.  See the LICENSE file for details.

// Clear and re-initialize the validoku storage system: flushes
// the cache, drops the database, and rebuilds both.
package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/validoku/validoku/dbprep"
)

var log = logrus.New()

func main() {
	godotenv.Load()
	log.Info("removing existing storage and cache")
	if err := dbprep.ReinitializeAll(); err != nil {
		log.WithError(err).Fatal("couldn't clear storage")
	}
	log.Info("storage re-initialized")
}
