package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Flags holds the values of the configuration flags bound to a command's
// flag set. Unset flags keep their zero value and therefore never override
// other sources.
type Flags struct {
	cfg     StructuredConfig
	address NetAddress
}

// BindCLIFlags registers the neuprint client flags on fs.
//
// Flags:
//
//	-s/--server       neuPrint server address
//	-t/--token        bearer token or JSON credential document
//	--timeout         per-request timeout (e.g. "30s", "2m")
//	-f/--format       output format: json, table or csv
//	--history-dsn     SQLite path or postgres URL for query history
//	--ca-cert         extra PEM bundle to trust for the server certificate
//	-c/--config       JSON config file path
//	--debug           log every request on stderr
func BindCLIFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVarP(&f.cfg.Client.Server, "server", "s", "", "neuPrint server address (host or https URL)")
	fs.StringVarP(&f.cfg.Client.Token, "token", "t", "", "bearer token or JSON credential document")
	fs.DurationVar(&f.cfg.Client.RequestTimeout, "timeout", 0, "per-request timeout (e.g. 30s, 2m)")
	fs.StringVarP(&f.cfg.Output.Format, "format", "f", "", "output format: json, table or csv")
	fs.StringVar(&f.cfg.Storage.HistoryDSN, "history-dsn", "", "SQLite path or postgres URL for query history")
	fs.StringVar(&f.cfg.Client.CACertFile, "ca-cert", "", "extra PEM bundle to trust for the server certificate")
	fs.StringVarP(&f.cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.BoolVar(&f.cfg.Client.Debug, "debug", false, "log every request on stderr")

	return f
}

// BindSandboxFlags registers the sandbox server flags on fs.
//
// Flags:
//
//	-a/--address      listen address in host:port form
//	--fixtures        JSON fixture file
//	--sign-key        HS256 key used to verify bearer tokens
//	--tls-cert        PEM certificate to serve
//	--tls-key         PEM private key of --tls-cert
//	-c/--config       JSON config file path
//	--debug           verbose logging
func BindSandboxFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.VarP(&f.address, "address", "a", "listen address host:port")
	fs.StringVar(&f.cfg.Sandbox.FixturesPath, "fixtures", "", "JSON fixture file")
	fs.StringVar(&f.cfg.Sandbox.SignKey, "sign-key", "", "HS256 key used to verify bearer tokens")
	fs.StringVar(&f.cfg.Sandbox.TLSCertFile, "tls-cert", "", "PEM certificate to serve (self-signed when empty)")
	fs.StringVar(&f.cfg.Sandbox.TLSKeyFile, "tls-key", "", "PEM private key of --tls-cert")
	fs.DurationVar(&f.cfg.Sandbox.ShutdownTimeout, "shutdown-timeout", 0, "graceful shutdown timeout")
	fs.StringVarP(&f.cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.BoolVar(&f.cfg.Client.Debug, "debug", false, "verbose logging")

	return f
}

func (f *Flags) config() *StructuredConfig {
	cfg := f.cfg
	cfg.Sandbox.Address = f.address.String()
	return &cfg
}

func (f *Flags) jsonPath() string {
	if f == nil {
		return ""
	}
	return f.cfg.JSONFilePath
}

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost", and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
