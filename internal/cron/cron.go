package cron

import (
	"context"

	"github.com/zungle102/shiftrec-sub000/internal/database/mongodb/repository"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron)

type Cron struct {
	logger          *zap.Logger
	server          *cron.Cron
	shiftRepository *repository.ShiftRepository
}

// NewCron .
func NewCron(logger *zap.Logger, shiftRepository *repository.ShiftRepository) *Cron {
	server := cron.New(
		cron.WithSeconds(),
	)

	return &Cron{
		logger:          logger,
		server:          server,
		shiftRepository: shiftRepository,
	}
}

func (c *Cron) Run() error {
	// 每小時整點輸出全站班表狀態統計
	if _, err := c.server.AddFunc("0 0 * * * *", c.reportShiftStatusCounts); err != nil {
		return err
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	c.server.Stop()
	return nil
}

func (c *Cron) reportShiftStatusCounts() {
	ctx := context.Background()
	counts, err := c.shiftRepository.CountByStatus(ctx, bson.M{})
	if err != nil {
		c.logger.Warn("[Cron] shift status report failed", zap.Error(err))
		return
	}
	fields := make([]zap.Field, 0, len(counts))
	for status, count := range counts {
		fields = append(fields, zap.Int64(string(status), count))
	}
	c.logger.Info("[Cron] active shift counts by status", fields...)
}
