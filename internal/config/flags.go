package config

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress is a host:port listen address usable as a command-line flag.
// An empty host listens on every interface.
type NetAddress struct {
	Host string
	Port int
}

var _ pflag.Value = (*NetAddress)(nil)

// ParseFlags parses the document store server command line. args excludes
// the program name.
//
//	-a, --address          HTTP listen address, [host]:port
//	    --grpc-address     gRPC listen address, [host]:port
//	-d, --database-dsn     PostgreSQL URL
//	-c, --config           JSON config file
//	    --token-sign-key   owner token signing key
//	    --token-issuer     owner token issuer
//	    --request-timeout  per request timeout, e.g. 30s
//	    --hash-key         body integrity key
//	    --app-version      version reported by /api/version
func ParseFlags(name string, args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig
	var httpAddr, grpcAddr NetAddress
	var requestTimeout time.Duration

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.VarP(&httpAddr, "address", "a", "HTTP listen address")
	fs.Var(&grpcAddr, "grpc-address", "gRPC listen address")
	fs.StringVarP(&cfg.Storage.DB.DSN, "database-dsn", "d", "", "PostgreSQL URL")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "owner token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "owner token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "per request timeout")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "body integrity key")
	fs.StringVar(&cfg.App.Version, "app-version", "", "version reported by /api/version")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server = Server{
		HTTPAddress:    httpAddr.String(),
		GRPCAddress:    grpcAddr.String(),
		RequestTimeout: requestTimeout,
	}
	return &cfg, nil
}

// String returns host:port, or "" when the address was never set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	a.Host, a.Port = host, port
	return nil
}

func (a *NetAddress) Type() string {
	return "host:port"
}
