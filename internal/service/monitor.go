package service

import (
	"context"
	"time"

	"github.com/Nomenandrianina/fleet-master/internal/logger"
)

// MonitorService periodically logs a fleet status snapshot so operators
// can follow the dashboard from the process log. It reads only; the
// fleet store is never written.
type MonitorService struct {
	analytics Analytics
	log       *logger.Logger
}

func NewMonitorService(analytics Analytics, log *logger.Logger) *MonitorService {
	return &MonitorService{analytics: analytics, log: log}
}

var _ Monitor = (*MonitorService)(nil)

// Run ticks at the given interval until ctx is canceled.
func (s *MonitorService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			st := s.analytics.FleetStatus()
			alerts := s.analytics.AlertSummary()
			if s.log != nil {
				s.log.Infow("fleet_snapshot",
					"total", st.Total,
					"online", st.Online,
					"offline", st.Offline,
					"moving", st.Moving,
					"stopped", st.Stopped,
					"unresolved_alerts", alerts.Unresolved,
				)
			}
		}
	}
}
