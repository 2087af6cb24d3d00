package logging

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging returns a logger writing to stderr at the given level. The
// format is either "json", or "text".
func SetupLogging(level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)

	if err != nil {
		return nil, err
	}

	logger := logrus.Logger{
		Out:   os.Stderr,
		Hooks: make(logrus.LevelHooks),
		Level: lvl,
	}

	switch format {
	case "json":
		logger.Formatter = &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		}
	case "text", "":
		logger.Formatter = &logrus.TextFormatter{
			DisableTimestamp: true,
		}
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	// Open enums log unknown values through the standard logger.
	logrus.SetOutput(logger.Out)
	logrus.SetFormatter(logger.Formatter)
	logrus.SetLevel(lvl)

	return &logger, nil
}
