package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-db-driver postgres, sqlite or memory
//	-d database DSN
//	-f file storage directory
//	-s3-bucket S3 bucket for uploaded files
//	-s3-endpoint S3 endpoint URL
//	-c/-config json file path with configs
//	-session-signing-key portal session signing key
//	-session-duration session lifetime (e.g., "60m")
//	-owner-token-sign-key owner JWT verification key
//	-owner-token-issuer expected owner JWT issuer
//	-request-timeout request timeout (e.g., "30s", "1m")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-doc-portal", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var dbDriver, databaseDSN, filesDir string
	var s3Bucket, s3Endpoint string
	var jsonConfigPath string
	var sessionSigningKey, ownerTokenSignKey, ownerTokenIssuer string
	var sessionDuration, requestTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&dbDriver, "db-driver", "", "Database driver: postgres, sqlite or memory")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&filesDir, "f", "", "File storage directory")
	fs.StringVar(&s3Bucket, "s3-bucket", "", "S3 bucket for uploaded files")
	fs.StringVar(&s3Endpoint, "s3-endpoint", "", "S3 endpoint URL")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&sessionSigningKey, "session-signing-key", "", "Portal session signing key")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session duration (e.g., 60m)")
	fs.StringVar(&ownerTokenSignKey, "owner-token-sign-key", "", "Owner token signing key")
	fs.StringVar(&ownerTokenIssuer, "owner-token-issuer", "", "Owner token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SessionSigningKey: sessionSigningKey,
			SessionDuration:   sessionDuration,
			OwnerTokenSignKey: ownerTokenSignKey,
			OwnerTokenIssuer:  ownerTokenIssuer,
		},
		Storage: Storage{
			DB: DB{
				Driver: dbDriver,
				DSN:    databaseDSN,
			},
			Files: Files{
				Dir: filesDir,
			},
			S3: S3{
				Bucket:   s3Bucket,
				Endpoint: s3Endpoint,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String renders the address for net.Listen; an unset address is "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set implements flag.Value. The host must be empty, "localhost" or an IP
// literal (IPv6 in brackets); the port must be 1-65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q is not in 1-65535", ErrInvalidAddress, rawPort)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: host %q is not an IP address", ErrInvalidAddress, host)
	}

	a.Host, a.Port = host, port
	return nil
}
