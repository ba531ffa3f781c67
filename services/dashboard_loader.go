package services

import (
	"context"
	"sync"
	"time"

	"github.com/fenilmodi00/agribridge-dashboard/models"
	"github.com/fenilmodi00/agribridge-dashboard/shared"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DashboardLoader loads the four dashboard resources for one mount. Every
// resource is fetched exactly once, concurrently and independently; a failed
// fetch settles its slot with the empty default and is never returned.
type DashboardLoader struct {
	source       AnalyticsSource
	fetchTimeout time.Duration
	Metrics      *shared.ServiceMetrics
}

// NewDashboardLoader creates a loader reading from source. A non-positive
// fetchTimeout leaves each fetch bounded only by the caller's context.
func NewDashboardLoader(source AnalyticsSource, fetchTimeout time.Duration) *DashboardLoader {
	return &DashboardLoader{
		source:       source,
		fetchTimeout: fetchTimeout,
		Metrics:      shared.NewServiceMetrics("DashboardLoader"),
	}
}

// Probe returns a loader reading the same source with its own metrics
func (l *DashboardLoader) Probe() *DashboardLoader {
	return &DashboardLoader{
		source:       l.source,
		fetchTimeout: l.fetchTimeout,
		Metrics:      shared.NewServiceMetrics("BackendHealth"),
	}
}

// Load runs one mount and returns the settled snapshot
func (l *DashboardLoader) Load(ctx context.Context) *models.Snapshot {
	snapshot := models.NewSnapshot()
	for update := range l.stream(ctx, snapshot.MountID.String()) {
		snapshot.Apply(update)
	}
	return snapshot
}

// Stream dispatches the four fetches and emits each outcome as soon as it is
// known. The channel is closed once every resource has reported.
func (l *DashboardLoader) Stream(ctx context.Context) <-chan models.SlotUpdate {
	return l.stream(ctx, uuid.NewString())
}

func (l *DashboardLoader) stream(ctx context.Context, mountID string) <-chan models.SlotUpdate {
	updates := make(chan models.SlotUpdate, len(models.Resources))

	var wg sync.WaitGroup
	for _, resource := range models.Resources {
		wg.Add(1)
		go func(resource models.Resource) {
			defer wg.Done()
			updates <- l.loadResource(ctx, resource, mountID)
		}(resource)
	}

	go func() {
		wg.Wait()
		close(updates)
	}()

	return updates
}

func (l *DashboardLoader) loadResource(ctx context.Context, resource models.Resource, mountID string) (update models.SlotUpdate) {
	defer func() {
		if recovered := recover(); recovered != nil {
			l.Metrics.IncrementCounter(string(resource) + "_unavailable")
			logrus.WithFields(logrus.Fields{
				"component": "DashboardLoader",
				"resource":  resource,
				"mount_id":  mountID,
				"panic":     recovered,
			}).Warn("Recovered from panic while loading resource")
			update = models.Unavailable(resource)
		}
	}()

	if l.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.fetchTimeout)
		defer cancel()
	}

	startTime := time.Now()
	update, err := l.fetch(ctx, resource)
	elapsed := time.Since(startTime)

	l.Metrics.RecordRequest(err == nil, elapsed)
	if err == nil {
		l.Metrics.IncrementCounter(string(resource) + "_populated")
		return update
	}

	serviceErr := shared.WrapError(err, "DashboardLoader", string(resource))
	l.Metrics.IncrementCounter(string(resource) + "_unavailable")
	l.Metrics.IncrementCounter("failure_" + string(serviceErr.Category))

	logrus.WithFields(serviceErr.Fields()).WithFields(logrus.Fields{
		"component": "DashboardLoader",
		"resource":  resource,
		"mount_id":  mountID,
		"elapsed":   elapsed,
	}).Debug("Resource unavailable, showing empty state")

	return models.Unavailable(resource)
}

func (l *DashboardLoader) fetch(ctx context.Context, resource models.Resource) (models.SlotUpdate, error) {
	switch resource {
	case models.ResourceGreeting:
		greeting, err := l.source.FetchGreeting(ctx)
		return models.GreetingLoaded(greeting), err
	case models.ResourcePricing:
		entries, err := l.source.FetchPricing(ctx)
		return models.PricingLoaded(entries), err
	case models.ResourceDemand:
		entries, err := l.source.FetchDemand(ctx)
		return models.DemandLoaded(entries), err
	case models.ResourceSupply:
		entries, err := l.source.FetchSupply(ctx)
		return models.SupplyLoaded(entries), err
	}
	return models.Unavailable(resource), shared.NewServiceError(shared.ErrorCategoryConfiguration,
		"UNKNOWN_RESOURCE", "unknown resource "+string(resource), "DashboardLoader", string(resource), nil)
}
