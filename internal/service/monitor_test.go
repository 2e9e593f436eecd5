package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

// analyticsSpy counts snapshot reads; the other figures are irrelevant
// to the monitor loop.
type analyticsSpy struct {
	reads atomic.Int64
}

func (s *analyticsSpy) FleetStatus() FleetStatus {
	s.reads.Add(1)
	return FleetStatus{Total: 4, Online: 2}
}
func (s *analyticsSpy) Composition() Composition               { return Composition{} }
func (s *analyticsSpy) AlertSummary() AlertSummary             { return AlertSummary{} }
func (s *analyticsSpy) MaintenanceSummary() MaintenanceSummary { return MaintenanceSummary{} }
func (s *analyticsSpy) FuelSummary() FuelSummary               { return FuelSummary{} }
func (s *analyticsSpy) CostSummary() CostSummary               { return CostSummary{} }
func (s *analyticsSpy) AnomalyRate() AnomalyRate               { return AnomalyRate{} }
func (s *analyticsSpy) Overview() Overview                     { return Overview{} }

func TestMonitorService_RunStopsOnCancel(t *testing.T) {
	t.Parallel()

	spy := &analyticsSpy{}
	mon := NewMonitorService(spy, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		mon.Run(ctx, time.Millisecond)
		close(done)
	}()

	// let a few ticks pass, then stop
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	if spy.reads.Load() == 0 {
		t.Error("monitor never read a snapshot")
	}
}
