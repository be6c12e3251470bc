package airport

import (
	"context"
	"fmt"

	"github.com/nanoncore/munin-airport/internal/errors"
	"github.com/nanoncore/munin-airport/internal/logger"
	"github.com/nanoncore/munin-airport/internal/snmp"
)

// Client answers metric queries against one base station, memoizing the
// lookups that are repeated or expensive within a single run. A Client lives
// for exactly one plugin invocation; nothing is cached across processes and
// no locking is needed.
type Client struct {
	exec snmp.Executor
	log  logger.Logger

	clientCount *int64
	leaseCount  *int64
	wanIndex    *int
}

// NewClient wraps an SNMP executor for one invocation.
func NewClient(exec snmp.Executor, log logger.Logger) *Client {
	return &Client{exec: exec, log: log}
}

// ClientCount returns the number of associated wireless clients. Memoized.
func (c *Client) ClientCount(ctx context.Context) (int64, error) {
	if c.clientCount != nil {
		return *c.clientCount, nil
	}
	n, err := c.scalar(ctx, OIDWirelessNumber, "wireless client count")
	if err != nil {
		return 0, err
	}
	c.clientCount = &n
	return n, nil
}

// LeaseCount returns the number of active DHCP leases. Memoized.
func (c *Client) LeaseCount(ctx context.Context) (int64, error) {
	if c.leaseCount != nil {
		return *c.leaseCount, nil
	}
	n, err := c.scalar(ctx, OIDDHCPNumber, "DHCP lease count")
	if err != nil {
		return 0, err
	}
	c.leaseCount = &n
	return n, nil
}

func (c *Client) scalar(ctx context.Context, oid, what string) (int64, error) {
	raw, err := c.exec.Get(ctx, oid)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ExitProtocol, "%s", what)
	}
	n, ok := snmp.ToInt64(raw)
	if !ok {
		return 0, errors.Newf(errors.ExitBadDecode, "%s: unexpected value %v", what, raw)
	}
	return n, nil
}

// WANInterfaceIndex locates the uplink in the ifDescr table and returns its
// row index. Interface tables are one-indexed, so the first row is 1.
// Memoized on success; an absent uplink is unrecoverable since every WAN
// lookup hangs off this index.
func (c *Client) WANInterfaceIndex(ctx context.Context) (int, error) {
	if c.wanIndex != nil {
		return *c.wanIndex, nil
	}

	names, err := c.exec.Walk(ctx, OIDIfDescr)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ExitProtocol, "interface name table")
	}
	for i, raw := range names {
		name, ok := snmp.ToString(raw)
		if ok && name == WANInterfaceName {
			idx := i + 1
			c.wanIndex = &idx
			c.log.Debugf("%s is interface %d", WANInterfaceName, idx)
			return idx, nil
		}
	}

	return 0, errors.Newf(errors.ExitNoWANInterface,
		"interface %s not present on device", WANInterfaceName)
}

// WANTraffic returns the uplink's inbound and outbound octet counters.
func (c *Client) WANTraffic(ctx context.Context) (recv, send uint64, err error) {
	idx, err := c.WANInterfaceIndex(ctx)
	if err != nil {
		return 0, 0, err
	}
	recv, err = c.counter(ctx, OIDIfInOctets, idx, "WAN inbound octets")
	if err != nil {
		return 0, 0, err
	}
	send, err = c.counter(ctx, OIDIfOutOctets, idx, "WAN outbound octets")
	if err != nil {
		return 0, 0, err
	}
	return recv, send, nil
}

func (c *Client) counter(ctx context.Context, base string, idx int, what string) (uint64, error) {
	raw, err := c.exec.Get(ctx, fmt.Sprintf("%s.%d", base, idx))
	if err != nil {
		return 0, errors.Wrapf(err, errors.ExitProtocol, "%s", what)
	}
	n, ok := snmp.ToUint64(raw)
	if !ok {
		return 0, errors.Newf(errors.ExitBadDecode, "%s: unexpected value %v", what, raw)
	}
	return n, nil
}

// WANSpeed returns the uplink's nominal speed in bps, for graph scaling
// only. Any failure here, including the interface lookup, falls back to the
// default instead of aborting the run; measured values never use this.
func (c *Client) WANSpeed(ctx context.Context) uint64 {
	idx, err := c.WANInterfaceIndex(ctx)
	if err != nil {
		c.log.Debugf("wan speed: %v, using default %d", err, DefaultWANSpeed)
		return DefaultWANSpeed
	}
	raw, err := c.exec.Get(ctx, fmt.Sprintf("%s.%d", OIDIfSpeed, idx))
	if err != nil {
		c.log.Debugf("wan speed: %v, using default %d", err, DefaultWANSpeed)
		return DefaultWANSpeed
	}
	speed, ok := snmp.ToUint64(raw)
	if !ok || speed == 0 {
		return DefaultWANSpeed
	}
	return speed
}

// ClientTable fetches and decodes the full per-client table. A zero client
// count skips the walk entirely and yields an empty table.
func (c *Client) ClientTable(ctx context.Context) (*Table, error) {
	n, err := c.ClientCount(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return DecodeTable(nil, 0)
	}

	values, err := c.exec.Walk(ctx, OIDWirelessClientTable)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ExitProtocol, "wireless client table")
	}
	return DecodeTable(values, int(n))
}
