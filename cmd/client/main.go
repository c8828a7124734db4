// Command press-pay-client is a small command-line client for the PressPay
// API.
//
//	press-pay-client [-s url] [-t token] [-timeout d] <command> [flags]
//
// Commands: version, info, register, login, me, list, create, update, delete.
// Results are printed to stdout as JSON; logs go to stderr.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/press-pay/internal/adapter"
	"github.com/MKhiriev/press-pay/internal/config"
	"github.com/MKhiriev/press-pay/internal/logger"
	"github.com/MKhiriev/press-pay/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errUnknownCommand = errors.New("unknown command")

func main() {
	log := logger.NewClientLogger("press-pay-client")
	if err := logger.SetLevel("info"); err != nil {
		log.Fatal().Err(err).Send()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, log); err != nil {
		var apiErr *adapter.APIError
		if errors.As(err, &apiErr) {
			log.Error().Int("status", apiErr.StatusCode).Str("code", apiErr.Code).Msg("request failed")
		} else {
			log.Error().Err(err).Msg("request failed")
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer, log *logger.Logger) error {
	cfg, rest, err := config.GetClientConfig(args)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return fmt.Errorf("%w: none given", errUnknownCommand)
	}

	client, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		return err
	}

	command, cmdArgs := rest[0], rest[1:]
	result, err := dispatch(ctx, client, command, cmdArgs)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// dispatch parses the command's flags and performs the call.
func dispatch(ctx context.Context, client adapter.ServerAdapter, command string, args []string) (any, error) {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)

	switch command {
	case "version":
		return map[string]string{"version": buildVersion, "date": buildDate, "commit": buildCommit}, nil

	case "info":
		name, err := client.ServiceInfo(ctx)
		return map[string]string{"service": name}, err

	case "register":
		var request models.RegisterRequest
		var rate string
		fs.StringVar(&request.Role, "role", "", "CUSTOMER or VENDOR")
		fs.StringVar(&request.Name, "name", "", "display name")
		fs.StringVar(&request.Email, "email", "", "email")
		fs.StringVar(&request.Password, "password", "", "password")
		fs.StringVar(&request.Phone, "phone", "", "phone (optional)")
		fs.StringVar(&request.Address, "address", "", "address (optional)")
		fs.StringVar(&rate, "rate", "", "vendor rate (optional)")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		request.Rate = optionalNumber(rate)
		return client.Register(ctx, request)

	case "login":
		var request models.LoginRequest
		fs.StringVar(&request.Email, "email", "", "email")
		fs.StringVar(&request.Password, "password", "", "password")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		return client.Login(ctx, request)

	case "me":
		return client.Me(ctx)

	case "list":
		return client.ListEntries(ctx)

	case "create":
		var request models.CreateEntryRequest
		var count, customerID, vendorID string
		fs.StringVar(&request.Type, "type", "", "GIVEN or RECEIVED")
		fs.StringVar(&count, "count", "", "number of items")
		fs.StringVar(&customerID, "customer", "", "customer id (vendors)")
		fs.StringVar(&vendorID, "vendor", "", "vendor id (customers)")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		request.Count = optionalNumber(count)
		request.CustomerID = optionalNumber(customerID)
		request.VendorID = optionalNumber(vendorID)
		return client.CreateEntry(ctx, request)

	case "update":
		var request models.UpdateEntryRequest
		var id int64
		var entryType, count string
		fs.Int64Var(&id, "id", 0, "entry id")
		fs.StringVar(&entryType, "type", "", "new type (optional)")
		fs.StringVar(&count, "count", "", "new count (optional)")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if entryType != "" {
			request.Type = &entryType
		}
		request.Count = optionalNumber(count)
		return client.UpdateEntry(ctx, id, request)

	case "delete":
		var id int64
		fs.Int64Var(&id, "id", 0, "entry id")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if err := client.DeleteEntry(ctx, id); err != nil {
			return nil, err
		}
		return models.StatusResponse{OK: true}, nil

	default:
		return nil, fmt.Errorf("%w: %q", errUnknownCommand, command)
	}
}

func optionalNumber(s string) *models.FlexNumber {
	if s == "" {
		return nil
	}
	n := models.FlexNumber(s)
	return &n
}
