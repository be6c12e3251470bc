// Package identity decodes the plugin's invocation name. Munin wildcard
// plugins encode their target in the symlink they are installed as:
//
//	snmp_<host>_airport_<metric>
//
// One binary, many symlinks; each run serves exactly one host and metric.
package identity

import "strings"

// Identity is the target decoded from the invocation name. Metric is kept as
// the raw segment; recognition happens downstream against the closed set.
type Identity struct {
	Host   string
	Metric string
}

// Decode splits the invocation name on underscores and extracts the target
// host and metric. Fewer than four segments means the plugin is not fully
// named yet (for example the bare "snmp__airport" template); that is not an
// error, just an absent identity.
func Decode(selfName string) (Identity, bool) {
	parts := strings.Split(selfName, "_")
	if len(parts) < 4 {
		return Identity{}, false
	}
	return Identity{Host: parts[1], Metric: parts[3]}, true
}
