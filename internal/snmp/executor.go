// Package snmp wraps the gosnmp transport behind the narrow query surface
// the plugin needs: one scalar at an object-id, or the ordered sequence of
// values under a table prefix.
package snmp

import (
	"context"
	"fmt"

	"github.com/gosnmp/gosnmp"

	"github.com/nanoncore/munin-airport/internal/config"
	"github.com/nanoncore/munin-airport/internal/logger"
)

// Executor is the transport capability injected into the station client.
// Implementations must preserve walk order: SNMP walks a table column by
// column, and the table decoder depends on that layout.
type Executor interface {
	// Get retrieves a single value at an exact object-id.
	Get(ctx context.Context, oid string) (interface{}, error)
	// Walk retrieves the ordered sequence of values under an object-id
	// prefix.
	Walk(ctx context.Context, oid string) ([]interface{}, error)
}

// Client implements Executor using gosnmp.
type Client struct {
	snmp *gosnmp.GoSNMP
	log  logger.Logger
}

// Dial creates and connects an SNMP client for the given target. AirPort
// base stations speak SNMPv1; v2c can be requested through env.version.
func Dial(cfg config.SNMP, log logger.Logger) (*Client, error) {
	version := gosnmp.Version1
	if cfg.Version == "2c" {
		version = gosnmp.Version2c
	}

	snmpClient := &gosnmp.GoSNMP{
		Target:    cfg.Host,
		Port:      161,
		Community: cfg.Community,
		Version:   version,
		Timeout:   cfg.Timeout,
		Retries:   0, // the next scheduled poll is the retry mechanism
	}

	if err := snmpClient.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect SNMP: %w", err)
	}

	return &Client{snmp: snmpClient, log: log}, nil
}

// Close releases the transport socket.
func (c *Client) Close() error {
	if c.snmp != nil && c.snmp.Conn != nil {
		return c.snmp.Conn.Close()
	}
	return nil
}

// Get retrieves a single value at the given OID.
func (c *Client) Get(ctx context.Context, oid string) (interface{}, error) {
	c.log.Debugf("snmp get %s", oid)

	result, err := c.snmp.Get([]string{oid})
	if err != nil {
		return nil, fmt.Errorf("SNMP GET %s failed: %w", oid, err)
	}
	if len(result.Variables) == 0 {
		return nil, fmt.Errorf("no result for OID %s", oid)
	}

	return coerce(result.Variables[0]), nil
}

// Walk retrieves all values under the given OID prefix, in walk order.
func (c *Client) Walk(ctx context.Context, oid string) ([]interface{}, error) {
	c.log.Debugf("snmp walk %s", oid)

	var values []interface{}
	err := c.snmp.Walk(oid, func(pdu gosnmp.SnmpPDU) error {
		values = append(values, coerce(pdu))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("SNMP WALK %s failed: %w", oid, err)
	}

	c.log.Debugf("snmp walk %s returned %d values", oid, len(values))
	return values, nil
}

// coerce narrows a PDU to the small set of Go types the decoders handle.
func coerce(pdu gosnmp.SnmpPDU) interface{} {
	switch pdu.Type {
	case gosnmp.OctetString:
		return string(pdu.Value.([]byte))
	case gosnmp.Integer:
		return int64(pdu.Value.(int))
	case gosnmp.Counter32, gosnmp.Gauge32:
		return uint64(pdu.Value.(uint))
	case gosnmp.Counter64:
		return pdu.Value.(uint64)
	case gosnmp.TimeTicks:
		return uint64(pdu.Value.(uint32))
	default:
		return pdu.Value
	}
}

// Ensure Client implements Executor
var _ Executor = (*Client)(nil)
