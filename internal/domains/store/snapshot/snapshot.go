package snapshot

//go:generate go run go.uber.org/mock/mockgen -source=./snapshot.go -destination=./mocks/snapshot_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/infras/s3"
	stay "frontdesk/internal/domains/stay/model"
	"frontdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

// Snapshotter keeps a copy of the stay set before a bulk change.
type Snapshotter interface {
	// Stays uploads the set and returns its location, empty when snapshots are disabled.
	Stays(ctx context.Context, stays []stay.StayRecord, at time.Time) (location string, err error)
}

type snapshotImpl struct {
	s3   s3.S3
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, storage s3.S3, otel otel.Otel) Snapshotter {
	return &snapshotImpl{
		s3:   storage,
		cfg:  cfg,
		otel: otel,
	}
}

// FileName names a stay snapshot taken at the given instant.
func FileName(at time.Time) string {
	return fmt.Sprintf("stays-%s.json", at.Format(constant.SnapshotLayout))
}

func (s *snapshotImpl) Stays(ctx context.Context, stays []stay.StayRecord, at time.Time) (location string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".snapshot.Stays")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.s3.Enabled() {
		log.Debug().Int("stays", len(stays)).Msg("snapshots disabled, skipping")

		return constant.Empty, nil
	}

	content, err := json.Marshal(stays)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode stay snapshot")

		return constant.Empty, fmt.Errorf("failed to encode stay snapshot: %w", err)
	}

	location, err = s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, s.cfg.External.S3.SnapshotPrefix,
		FileName(at), constant.ContentTypeJSON, content)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload stay snapshot")

		return constant.Empty, fmt.Errorf("failed to upload stay snapshot: %w", err)
	}

	log.Info().Str("location", location).Int("stays", len(stays)).Msg("stay snapshot stored")

	return location, nil
}
