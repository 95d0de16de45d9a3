package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// sharedFlags are registered by both binaries.
type sharedFlags struct {
	jsonConfigPath string
	salt           string
	kdfIterations  int
	logLevel       string
	hashKey        string
}

func (s *sharedFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&s.jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&s.jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&s.salt, "salt", "", "PBKDF2 salt shared with the payload producer")
	fs.IntVar(&s.kdfIterations, "iterations", 0, "PBKDF2 iteration count")
	fs.StringVar(&s.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&s.hashKey, "k", "", "Request signing key shared by client and server")
}

func (s *sharedFlags) app() App {
	return App{
		Salt:          s.salt,
		KDFIterations: s.kdfIterations,
		LogLevel:      s.logLevel,
		HashKey:       s.hashKey,
	}
}

// ParseServerFlags parses the HTTP server flags from os.Args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-salt PBKDF2 salt
//	-iterations PBKDF2 iteration count
//	-log-level log level
//	-k request signing key
//	-c/-config json file path with configs
func ParseServerFlags() (*StructuredConfig, error) {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var shared sharedFlags

	fs := flag.CommandLine
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	shared.register(fs)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: shared.app(),
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: shared.jsonConfigPath,
	}, nil
}

// ParseClientFlags parses the command-line unpacker flags from os.Args.
//
// Flags:
//
//	-payload packed payload
//	-f/-payload-file file with the packed payload ("-" for stdin)
//	-p/-password vault password
//	-reveal show recovered passwords
//	-copy copy recovered plaintext to the clipboard
//	-server remote unpack server address
//	-request-timeout remote request timeout
//	-salt PBKDF2 salt
//	-iterations PBKDF2 iteration count
//	-log-level log level
//	-k request signing key
//	-c/-config json file path with configs
//	-version print build information
func ParseClientFlags() (*StructuredConfig, error) {
	var input Input
	var adapter Adapter
	var shared sharedFlags

	fs := flag.CommandLine
	fs.StringVar(&input.Payload, "payload", "", "Packed payload")
	fs.StringVar(&input.PayloadFile, "f", "", "File with the packed payload, - for stdin")
	fs.StringVar(&input.PayloadFile, "payload-file", "", "File with the packed payload (alias)")
	fs.StringVar(&input.Password, "p", "", "Vault password")
	fs.StringVar(&input.Password, "password", "", "Vault password (alias)")
	fs.BoolVar(&input.Reveal, "reveal", false, "Show recovered passwords")
	fs.BoolVar(&input.Copy, "copy", false, "Copy recovered plaintext to the clipboard")
	fs.BoolVar(&input.ShowVersion, "version", false, "Print build information and exit")
	fs.StringVar(&adapter.HTTPAddress, "server", "", "Remote unpack server address")
	fs.DurationVar(&adapter.RequestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 15s)")
	shared.register(fs)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App:          shared.app(),
		Adapter:      adapter,
		Input:        input,
		JSONFilePath: shared.jsonConfigPath,
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
