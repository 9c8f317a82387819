package batch

import (
	"github.com/getsentry/raven-go"
)

var (
	packagePrefixes = []string{"github.com/eugenmik/bulk-image-resizer"}
)

// SetupReporting sends critical errors to the sentry project of dsn
func SetupReporting(dsn, release string) error {
	if err := raven.SetDSN(dsn); err != nil {
		return err
	}
	raven.SetRelease(release)
	raven.SetTagsContext(map[string]string{"service": "bulkresize"})
	return nil
}

func reportError(err error, tags map[string]string) {
	if raven.URL() == "" {
		return
	}
	var packet *raven.Packet
	packet = raven.NewPacket(err.Error(),
		raven.NewException(err, raven.NewStacktrace(1, 3, packagePrefixes)))

	raven.Capture(packet, tags)
}
