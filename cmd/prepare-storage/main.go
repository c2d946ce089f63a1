// validoku - a Sudoku puzzle validation service.
// Licensed under the MIT license.  See the LICENSE file for details.

// Bring the validoku storage system up to date: schema, sample
// data, nothing destroyed.
package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/validoku/validoku/dbprep"
)

var log = logrus.New()

func main() {
	godotenv.Load()
	log.Info("preparing storage")
	if err := dbprep.EnsureData(); err != nil {
		log.WithError(err).Fatal("couldn't prepare storage")
	}
	version, err := dbprep.SchemaVersion()
	if err != nil {
		log.WithError(err).Fatal("couldn't read schema version")
	}
	log.WithField("version", version).Info("storage ready")
}
