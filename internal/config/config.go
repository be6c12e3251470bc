// Package config resolves the per-invocation SNMP settings. munin-node
// passes plugin configuration through environment variables (env.community
// and friends in the plugin stanza), so everything here is environment
// sourced, with the base station's historical defaults: SNMPv1 and the
// well-known "public" community.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// SNMP holds the transport settings for one plugin run.
type SNMP struct {
	Host      string
	Community string
	Version   string
	Timeout   time.Duration
}

// Load builds the SNMP settings for the given target host. An env.host
// override wins over the host decoded from the symlink name.
func Load(host string) SNMP {
	v := viper.New()
	v.SetDefault("community", "public")
	v.SetDefault("version", "1")
	v.SetDefault("timeout", 5*time.Second)

	// munin-node exports env.* entries verbatim, lowercase.
	_ = v.BindEnv("community", "community", "COMMUNITY")
	_ = v.BindEnv("version", "version", "VERSION")
	_ = v.BindEnv("timeout", "timeout", "TIMEOUT")
	_ = v.BindEnv("host", "host", "HOST")

	if h := v.GetString("host"); h != "" {
		host = h
	}

	return SNMP{
		Host:      host,
		Community: v.GetString("community"),
		Version:   v.GetString("version"),
		Timeout:   v.GetDuration("timeout"),
	}
}
