// file: logger/logger.go

package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger. It is usable with default settings
// before Init runs, which keeps package-level tests simple.
var Log = logrus.New()

// Init configures the shared logger for production use: JSON output to
// stdout so log collectors can parse entries without extra tooling.
func Init() {
	Log.SetFormatter(&logrus.JSONFormatter{})
	Log.SetOutput(os.Stdout)
	Log.SetLevel(logrus.InfoLevel)
}
