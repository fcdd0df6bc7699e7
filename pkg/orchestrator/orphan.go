package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/maestro-works/maestro/ent"
	"github.com/maestro-works/maestro/ent/workflowexecution"
	"github.com/maestro-works/maestro/pkg/services"
)

// orphanScanInterval is how often each pod scans for executions with
// stale heartbeats. Every pod scans independently; recovery writes are
// idempotent.
const orphanScanInterval = 60 * time.Second

// orphanState tracks orphan detection metrics.
type orphanState struct {
	mu        sync.Mutex
	lastScan  time.Time
	recovered int
}

// runOrphanDetection periodically scans for orphaned executions.
func (p *Pool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(orphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds in-progress executions whose heartbeat
// went stale and closes them as timed_out. Terminal; executions never
// resume on another pod.
func (p *Pool) detectAndRecoverOrphans(ctx context.Context) error {
	orphans, err := p.executions.FindOrphanedExecutions(ctx, p.cfg.OrphanThreshold)
	if err != nil {
		return fmt.Errorf("querying orphaned executions: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned executions", "count", len(orphans))

	recovered := 0
	for _, exec := range orphans {
		if err := p.recoverOrphan(ctx, exec); err != nil {
			slog.Error("Failed to recover orphaned execution",
				"execution_id", exec.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastScan = time.Now()
	p.orphans.recovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphan closes one orphaned execution as timed_out.
func (p *Pool) recoverOrphan(ctx context.Context, exec *ent.WorkflowExecution) error {
	lastHeartbeat := "unknown"
	if exec.LastInteractionAt != nil {
		lastHeartbeat = exec.LastInteractionAt.Format(time.RFC3339)
	}
	podID := "unknown"
	if exec.PodID != nil {
		podID = *exec.PodID
	}

	msg := fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)
	if err := p.executions.CompleteExecution(ctx, exec.ID, workflowexecution.StatusTimedOut, msg); err != nil {
		return fmt.Errorf("marking execution timed_out: %w", err)
	}

	slog.Warn("Orphaned execution marked as timed_out",
		"execution_id", exec.ID,
		"old_pod_id", podID,
		"last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans closes executions this pod still owned when it
// previously crashed. Called once at startup, before the pool starts
// claiming work.
func CleanupStartupOrphans(ctx context.Context, executions *services.ExecutionService, podID string) error {
	orphans, err := executions.FindExecutionsOwnedBy(ctx, podID)
	if err != nil {
		return fmt.Errorf("querying startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, exec := range orphans {
		msg := fmt.Sprintf("Orphaned: pod %s restarted while execution was in progress", podID)
		if err := executions.CompleteExecution(ctx, exec.ID, workflowexecution.StatusTimedOut, msg); err != nil {
			slog.Error("Failed to mark startup orphan",
				"execution_id", exec.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "execution_id", exec.ID)
	}

	return nil
}
