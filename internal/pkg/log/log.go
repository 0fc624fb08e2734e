// Package log adds logging utilities.
package log

import (
	"strings"
	"time"

	echopb "echostream/api/proto/gen/pb-go/echo/v1"

	"github.com/sirupsen/logrus"
)

// SetLogger sets the default logger's level and formatter.
func SetLogger(level string) {
	customFormatter := new(logrus.TextFormatter)
	customFormatter.TimestampFormat = time.RFC3339
	customFormatter.FullTimestamp = true
	logrus.SetFormatter(customFormatter)
	switch strings.ToLower(level) {
	case "trace":
		logrus.SetLevel(logrus.TraceLevel)
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.ErrorLevel)
	}
}

// RequestToFields converts an echo request into log fields.
func RequestToFields(req *echopb.EchoRequest) logrus.Fields {
	return logrus.Fields{
		"message": req.GetMessage(),
	}
}

// ResponseToFields converts an echo response into log fields.
func ResponseToFields(resp *echopb.EchoResponse) logrus.Fields {
	return logrus.Fields{
		"message": resp.GetMessage(),
	}
}
