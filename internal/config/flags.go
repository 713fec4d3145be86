package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags on [flag.CommandLine]. Positional
// arguments stay available through [flag.Args].
//
// Flags:
//
//	-a REST API listen address in format [host]:[port]
//	-api REST API base URL used by subctl
//	-bus D-Bus address ("system", "session" or a full address)
//	-status-timeout check_status staleness timeout (e.g., "60s")
//	-d database DSN
//	-c/-config JSON or YAML file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token bearer token sent by subctl
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-api-timeout outbound REST request timeout
//	-refresh-interval background status refresh period, 0 disables
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var apiAddress string
	var busAddress string
	var statusTimeout time.Duration
	var databaseDSN string
	var configPath string
	var tokenSignKey string
	var tokenIssuer string
	var apiToken string
	var requestTimeout time.Duration
	var apiTimeout time.Duration
	var refreshInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&apiAddress, "api", "", "REST API base URL")
	flag.StringVar(&busAddress, "bus", "", "D-Bus address: system, session or a full address")
	flag.DurationVar(&statusTimeout, "status-timeout", 0, "Status check timeout (e.g., 60s)")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&configPath, "c", "", "Config file path")
	flag.StringVar(&configPath, "config", "", "Config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.StringVar(&apiToken, "token", "", "Bearer token for mutating API calls")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&apiTimeout, "api-timeout", 0, "Outbound API request timeout")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval, 0 disables")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
			APIToken:     apiToken,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			BusAddress:     busAddress,
			StatusTimeout:  statusTimeout,
			APIAddress:     apiAddress,
			RequestTimeout: apiTimeout,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		FilePath: configPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
