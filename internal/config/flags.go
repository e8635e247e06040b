package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a API address in format [host]:[port]
//	-d storage DSN
//	-driver storage driver (sqlite3, pgx, file, memory)
//	-f JSON storage file path
//	-c/-config json file path with configs
//	-tz timezone used for day boundaries
//	-log-level log level
//	-receipt-address receipt verification server URL
//	-quiz-address quiz backend URL
//	-hash-key request signing key
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-textgen-provider text generation provider (openai, anthropic)
//	-textgen-model text generation model
//	-billing billing provider (sandbox, none)
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, driver, fileStoragePath string
	var jsonConfigPath string
	var timezone, logLevel string
	var receiptAddress, quizAddress, hashKey string
	var requestTimeout time.Duration
	var textgenProvider, textgenModel string
	var billingProvider string

	fs := flag.NewFlagSet("lacnutry", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Storage DSN")
	fs.StringVar(&driver, "driver", "", "Storage driver: sqlite3, pgx, file, memory")
	fs.StringVar(&fileStoragePath, "f", "", "JSON storage file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&timezone, "tz", "", "Timezone for day boundaries")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&receiptAddress, "receipt-address", "", "Receipt verification server URL")
	fs.StringVar(&quizAddress, "quiz-address", "", "Quiz backend URL")
	fs.StringVar(&hashKey, "hash-key", "", "Request signing key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&textgenProvider, "textgen-provider", "", "Text generation provider: openai, anthropic")
	fs.StringVar(&textgenModel, "textgen-model", "", "Text generation model")
	fs.StringVar(&billingProvider, "billing", "", "Billing provider: sandbox, none")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Timezone: timezone,
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
			Files: Files{
				Path: fileStoragePath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			ReceiptAddress: receiptAddress,
			QuizAddress:    quizAddress,
			HashKey:        hashKey,
			RequestTimeout: requestTimeout,
		},
		TextGen: TextGen{
			Provider: textgenProvider,
			Model:    textgenModel,
		},
		Billing: Billing{
			Provider: billingProvider,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
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
