package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"bloodbank/config"
	deliverycontext "bloodbank/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(cfg *config.Config) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg), &buf
}

func sqlAndRows() (string, int64) {
	return `UPDATE "donors" SET "is_available"=false WHERE id = 'x' AND is_available = true`, 0
}

func TestGormLogger_Defaults(t *testing.T) {
	l, _ := newTestGormLogger(nil)

	gl, ok := l.(*gormSlogLogger)
	assert.True(t, ok)
	assert.Equal(t, logger.Warn, gl.level)
	assert.Equal(t, defaultGormSlowThreshold, gl.slowThreshold)

	cfg := &config.Config{Store: &config.StoreConfig{SlowQueryThreshold: time.Second}}
	cfg.Env.Debug = true
	gl = newGormSlogLogger(nil, cfg).(*gormSlogLogger)
	assert.Equal(t, logger.Info, gl.level)
	assert.Equal(t, time.Second, gl.slowThreshold)
}

func TestGormLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		elapsed time.Duration
		want    string
	}{
		{name: "failure", err: errors.New("connection reset"), want: "GORM query failed"},
		{name: "unique violation", err: errors.New(`duplicate key value violates unique constraint "idx_matches_donor_id"`), want: "GORM unique violation"},
		{name: "slow", elapsed: time.Second, want: "GORM slow query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newTestGormLogger(nil)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlAndRows, tt.err)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestGormLogger_QuietOutcomes(t *testing.T) {
	l, buf := newTestGormLogger(nil)

	l.Trace(context.Background(), time.Now(), sqlAndRows, gorm.ErrRecordNotFound)
	l.Trace(context.Background(), time.Now(), sqlAndRows, nil)
	assert.Empty(t, buf.String())

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlAndRows, errors.New("boom"))
	assert.Empty(t, buf.String())
}

func TestGormLogger_UsesRequestLogger(t *testing.T) {
	l, _ := newTestGormLogger(nil)

	var scoped bytes.Buffer
	ctx := deliverycontext.WithLogger(context.Background(),
		slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-42")))

	l.Trace(ctx, time.Now(), sqlAndRows, errors.New("boom"))
	assert.Contains(t, scoped.String(), "request_id=req-42")
}
