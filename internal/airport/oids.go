package airport

// Apple AirPort base station SNMP OIDs.
// Enterprise OID: 1.3.6.1.4.1.63 (Apple), baseStation3 subtree .501.3.
// The base stations answer SNMPv1 with the well-known "public" community.

const (
	// baseStation3 wireless subtree
	OIDWirelessNumber      = "1.3.6.1.4.1.63.501.3.2.1.0" // associated wireless clients (Integer)
	OIDWirelessClientTable = "1.3.6.1.4.1.63.501.3.2.2.1" // per-client table, walked column-major
	OIDDHCPNumber          = "1.3.6.1.4.1.63.501.3.3.1.0" // active DHCP leases (Integer)

	// Standard MIB-II Interface Table OIDs (RFC 1213)
	OIDIfDescr     = "1.3.6.1.2.1.2.2.1.2"  // interface name
	OIDIfSpeed     = "1.3.6.1.2.1.2.2.1.5"  // nominal bandwidth (bps)
	OIDIfInOctets  = "1.3.6.1.2.1.2.2.1.10" // input bytes
	OIDIfOutOctets = "1.3.6.1.2.1.2.2.1.16" // output bytes
)

const (
	// WANInterfaceName is how the base station reports its uplink in the
	// ifDescr table.
	WANInterfaceName = "wan0"

	// DefaultWANSpeed is the nominal WAN bandwidth in bps used for graph
	// scaling when ifSpeed cannot be read. Never used for measured values.
	DefaultWANSpeed uint64 = 10000000
)
