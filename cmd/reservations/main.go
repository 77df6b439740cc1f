package main

import (
	"context"
	"encoding/json"
	"os"

	"frontdesk/config"
	"frontdesk/infras/database"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/redis"
	"frontdesk/infras/s3"
	"frontdesk/internal/domains/reservation/model/dto"
	"frontdesk/internal/domains/reservation/service"
	"frontdesk/internal/domains/store/repository"
	"frontdesk/internal/domains/store/snapshot"
	"frontdesk/shared/events"
	"frontdesk/shared/lock"
	"frontdesk/shared/logger"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	argLength     = 2
	argLengthWith = 3
)

func main() {
	if len(os.Args) < argLength {
		log.Fatal().Msg("Command is required: summary, purge DD/MM/YYYY or import FILE")
	}

	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	ctx := context.Background()
	tracer := otel.New(cfg)

	publisher := events.New(cfg, kafka.New(cfg), tracer)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close event publisher")
		}
	}()

	reservations := service.New(
		repository.New(cfg, database.New(cfg), tracer),
		snapshot.New(cfg, s3.New(cfg, tracer), tracer),
		lock.New(newRedis(cfg), cfg, tracer),
		publisher,
		cfg,
		tracer,
	)

	var (
		res any
		err error
	)

	switch os.Args[1] {
	case "summary":
		res, err = reservations.Summary(ctx)
	case "purge":
		requireArg("purge needs a check-in date, e.g. purge 10/03/2026")

		checkIn, ok := dto.ParseDate(os.Args[2], cfg.Hotel.ImportDateLayout)
		if !ok {
			log.Fatal().Str("date", os.Args[2]).Str("layout", cfg.Hotel.ImportDateLayout).Msg("Invalid check-in date")
		}

		res, err = reservations.PurgeByCheckIn(ctx, checkIn)
	case "import":
		requireArg("import needs a csv or xlsx file")

		res, err = importFile(ctx, reservations, os.Args[2])
	default:
		log.Fatal().Str("command", os.Args[1]).Msg("Invalid command. Use 'summary', 'purge' or 'import'")
	}

	if err != nil {
		log.Fatal().Err(err).Str("command", os.Args[1]).Msg("Reservation maintenance failed")
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(res); err != nil {
		log.Error().Err(err).Msg("Failed to write result")
	}
}

func requireArg(msg string) {
	if len(os.Args) < argLengthWith {
		log.Fatal().Msg(msg)
	}
}

func importFile(ctx context.Context, reservations service.Reservation, path string) (dto.ImportResponse, error) {
	format, err := dto.FormatOf(path)
	if err != nil {
		return dto.ImportResponse{}, err // nolint:wrapcheck
	}

	file, err := os.Open(path)
	if err != nil {
		return dto.ImportResponse{}, err // nolint:wrapcheck
	}
	defer file.Close()

	return reservations.Import(ctx, format, file) // nolint:wrapcheck
}

// newRedis shares the write lock with a running server when Redis is configured.
func newRedis(cfg *config.Config) *goRedis.Client {
	if cfg.Cache.Redis.Primary.Host == "" {
		log.Warn().Msg("Redis not configured, using a process-local write lock")

		return nil
	}

	return redis.New(cfg)
}
