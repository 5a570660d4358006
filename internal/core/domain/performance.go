package domain

import "time"

// PerformanceData is one reporting window of observed spend and
// conversions for a strategy. Rows are appended by the external metrics
// ingestion pipeline; the control loop only ever reads them.
type PerformanceData struct {
	ID          int64
	StrategyID  int64
	Spend       int64 // integer units
	Conversions int64
	WindowStart time.Time
	WindowEnd   time.Time
	CreatedAt   time.Time
}
