package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-env runtime environment (development, test, production)
//	-log-level log level
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-query-timeout per-statement database timeout
//	-page-size rows per page in list endpoints
//	-public-courses serve course reads without authentication
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var cfg StructuredConfig

	fs := flag.NewFlagSet("go-course-keeper", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.Environment, "env", "", "Runtime environment")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.DurationVar(&cfg.Storage.DB.QueryTimeout, "query-timeout", 0, "Database query timeout")
	fs.IntVar(&cfg.App.PageSize, "page-size", 0, "Rows per page")
	fs.BoolVar(&cfg.App.PublicCourses, "public-courses", false, "Serve course reads without authentication")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address yields an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces; otherwise the host must be
// "localhost" or a valid IP.
func (a *NetAddress) Set(s string) error {
	host, portStr, found := strings.Cut(s, ":")
	if !found || strings.Contains(portStr, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
