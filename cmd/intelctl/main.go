// Command intelctl calls the intelligence API from the command line.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sameer-dev-stack/Royal-Class-Events/client"
	"github.com/sameer-dev-stack/Royal-Class-Events/internal/config"
	"github.com/sameer-dev-stack/Royal-Class-Events/models"
)

const usage = `usage: intelctl <command> [flags]

commands:
  info      show service information
  predict   predict demand for an event
  forecast  forecast revenue from a demand score
  suggest   suggest an initial ticket price
  reprice   calculate a dynamic ticket price

run "intelctl <command> -h" for command flags`

var (
	errUsage = errors.New("invalid usage")
	// errFlagUsage marks a bad command flag; the command's own usage has
	// already been printed.
	errFlagUsage = errors.New("invalid command flags")
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log.Logger = log.Logger.Level(level)
	}

	if err := run(context.Background(), os.Args[1:], cfg.Client, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		if errors.Is(err, errFlagUsage) {
			os.Exit(2)
		}
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			evt := log.Error().Int("status", apiErr.StatusCode).Str("code", apiErr.Code).Str("request_id", apiErr.RequestID)
			for _, d := range apiErr.Details {
				evt = evt.Str(d.Field, d.Message)
			}
			evt.Msg(apiErr.Message)
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("Request failed")
	}
}

func run(ctx context.Context, args []string, defaults config.Client, out, errOut io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, args := args[0], args[1:]
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	baseURL := fs.String("url", defaults.BaseURL, "intelligence API base URL")
	timeout := fs.Duration("timeout", defaults.RequestTimeout, "per-request timeout")

	var call func(*client.Client) (any, error)
	switch cmd {
	case "info":
		call = func(c *client.Client) (any, error) { return c.Info(ctx) }

	case "predict":
		var ev models.EventAttributes
		var ticketType string
		fs.StringVar(&ev.Category, "category", "", "event category")
		fs.StringVar(&ev.Location, "location", "", "event city")
		fs.StringVar(&ev.StartDate, "start", "", "start date, ISO-8601")
		fs.IntVar(&ev.Capacity, "capacity", 0, "venue capacity")
		fs.StringVar(&ticketType, "ticket-type", string(models.TicketFree), "free or paid")
		call = func(c *client.Client) (any, error) {
			ev.TicketType = models.TicketType(ticketType)
			return c.PredictDemand(ctx, ev)
		}

	case "forecast":
		var req client.ForecastRequest
		var ticketType string
		fs.Float64Var(&req.DemandScore, "demand", 0, "demand score 0-100")
		fs.IntVar(&req.Capacity, "capacity", 0, "venue capacity")
		fs.Float64Var(&req.TicketPrice, "price", 0, "ticket price")
		fs.StringVar(&ticketType, "ticket-type", string(models.TicketPaid), "free or paid")
		call = func(c *client.Client) (any, error) {
			req.TicketType = models.TicketType(ticketType)
			return c.ForecastRevenue(ctx, req)
		}

	case "suggest":
		var req client.SuggestRequest
		fs.StringVar(&req.Category, "category", "", "event category")
		fs.StringVar(&req.Location, "location", "", "event city")
		fs.Float64Var(&req.DemandScore, "demand", 0, "demand score 0-100")
		fs.IntVar(&req.Capacity, "capacity", 0, "venue capacity")
		call = func(c *client.Client) (any, error) { return c.SuggestPrice(ctx, req) }

	case "reprice":
		var in models.DynamicPriceInput
		fs.Float64Var(&in.BasePrice, "base", 0, "base ticket price")
		fs.Float64Var(&in.MinPrice, "min", 0, "price floor")
		fs.Float64Var(&in.MaxPrice, "max", 0, "price ceiling")
		fs.IntVar(&in.Registrations, "registrations", 0, "tickets sold so far")
		fs.IntVar(&in.Capacity, "capacity", 0, "venue capacity")
		fs.IntVar(&in.DaysUntilEvent, "days", 0, "days until the event")
		call = func(c *client.Client) (any, error) { return c.CalculateDynamicPrice(ctx, in) }

	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}

	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintf(errOut, "usage: intelctl %s [flags]\n\n", cmd)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errFlagUsage, err)
	}

	c := client.New(client.Options{
		BaseURL:        *baseURL,
		Timeout:        *timeout,
		RequestsPerSec: float64(defaults.RequestsPerSec),
	})
	log.Debug().Str("command", cmd).Str("url", *baseURL).Msg("calling intelligence API")

	result, err := call(c)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(result)
}
