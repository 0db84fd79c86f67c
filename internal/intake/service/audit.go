package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
	"github.com/aussiebroadwan/intake/internal/intake/metrics"
	"github.com/aussiebroadwan/intake/internal/intake/store"
	"github.com/aussiebroadwan/intake/pkg/idx"
)

const defaultAuditBuffer = 256

// AuditRecorder writes raw integration responses to the audit log from a
// background worker. Record never blocks; when the buffer is full the entry
// is dropped and logged.
type AuditRecorder struct {
	Store   store.Store
	Logger  *slog.Logger
	Metrics *metrics.Metrics

	// mu orders Record against Stop: nothing is queued once stopCh closes.
	mu      sync.RWMutex
	stopped bool

	queue  chan auditJob
	stopCh chan struct{}
	doneCh chan struct{}
}

type auditJob struct {
	firmID   string
	matterID string
	response any
	at       time.Time
}

var _ AuditSink = (*AuditRecorder)(nil)

// NewAuditRecorder creates a recorder with room for buffer pending entries.
// A non-positive buffer uses the default of 256.
func NewAuditRecorder(st store.Store, logger *slog.Logger, m *metrics.Metrics, buffer int) *AuditRecorder {
	if buffer <= 0 {
		buffer = defaultAuditBuffer
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditRecorder{
		Store:   st,
		Logger:  logger,
		Metrics: m,
		queue:   make(chan auditJob, buffer),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Start launches the worker. Call Stop to drain and shut it down.
func (a *AuditRecorder) Start() {
	go a.run()
	a.Logger.Info("audit recorder started", "buffer", cap(a.queue))
}

// Stop signals the worker, waits for queued entries to be written and returns.
func (a *AuditRecorder) Stop() {
	a.mu.Lock()
	a.stopped = true
	close(a.stopCh)
	a.mu.Unlock()

	<-a.doneCh
	a.Logger.Info("audit recorder stopped")
}

// Record queues a response for writing.
func (a *AuditRecorder) Record(firmID string, response any, matterID string) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.stopped {
		a.Logger.Warn("audit recorder stopped, dropping integration response", "firm_id", firmID)
		a.Metrics.IncrementAuditDropped()
		return
	}

	job := auditJob{firmID: firmID, matterID: matterID, response: response, at: time.Now()}
	select {
	case a.queue <- job:
	default:
		a.Logger.Warn("audit buffer full, dropping integration response", "firm_id", firmID)
		a.Metrics.IncrementAuditDropped()
	}
}

func (a *AuditRecorder) run() {
	defer close(a.doneCh)

	for {
		select {
		case job := <-a.queue:
			a.write(job)
		case <-a.stopCh:
			for {
				select {
				case job := <-a.queue:
					a.write(job)
				default:
					return
				}
			}
		}
	}
}

func (a *AuditRecorder) write(job auditJob) {
	payload, err := json.Marshal(job.response)
	if err != nil {
		a.Logger.Error("failed to encode integration response", "firm_id", job.firmID, "error", err)
		a.Metrics.IncrementAuditDropped()
		return
	}

	entry := domain.AuditEntry{
		ID:        idx.NewAt(job.at).String(),
		FirmID:    job.firmID,
		MatterID:  job.matterID,
		Payload:   payload,
		CreatedAt: job.at,
	}
	if err := a.Store.AuditLog().AppendIntegrationResponse(context.Background(), entry); err != nil {
		a.Logger.Error("failed to write integration response", "firm_id", job.firmID, "error", err)
		a.Metrics.IncrementAuditDropped()
		return
	}
	a.Metrics.IncrementAuditWritten()
}
