package jobs

import (
	"context"
	"time"

	"github.com/fenilmodi00/agribridge-dashboard/shared"
	"github.com/sirupsen/logrus"
)

// MetricsSummaryJob periodically logs the loader's fetch metrics
type MetricsSummaryJob struct {
	Metrics  *shared.ServiceMetrics
	Interval time.Duration
}

func NewMetricsSummaryJob(metrics *shared.ServiceMetrics, interval time.Duration) *MetricsSummaryJob {
	return &MetricsSummaryJob{Metrics: metrics, Interval: interval}
}

// Start runs the job on its interval until ctx is done. A zero interval disables it.
func (j *MetricsSummaryJob) Start(ctx context.Context) {
	if j.Interval <= 0 {
		logrus.Info("Metrics summary job disabled")
		return
	}

	logrus.Infof("Starting metrics summary job (runs every %v)", j.Interval)
	ticker := time.NewTicker(j.Interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				j.Run()
			}
		}
	}()
}

func (j *MetricsSummaryJob) Run() {
	if j.Metrics.GetSnapshot().TotalRequests == 0 {
		logrus.Debug("Metrics summary job: no fetches recorded yet")
		return
	}
	j.Metrics.LogSummary()
}
