package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Init configures the global logrus logger used for diagnostics. The
// logger stays on stderr so it never interleaves with rendered answers
// on stdout.
func Init(level string) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.WarnLevel
	}
	logrus.SetLevel(parsed)
}
