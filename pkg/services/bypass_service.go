package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/maestro-works/maestro/ent"
	"github.com/maestro-works/maestro/ent/bypassrequest"
	"github.com/maestro-works/maestro/pkg/models"
)

// BypassService persists gate bypass requests. State transitions are
// conditional updates so concurrent approvals never double-fire; the
// policy rules that decide whether a transition is allowed live in
// pkg/bypass.
type BypassService struct {
	client *ent.Client
}

// NewBypassService creates a new BypassService
func NewBypassService(client *ent.Client) *BypassService {
	return &BypassService{client: client}
}

// CreateBypassRequest stores a new bypass proposal
func (s *BypassService) CreateBypassRequest(httpCtx context.Context, req models.CreateBypassRequest) (*ent.BypassRequest, error) {
	if req.Gate == "" {
		return nil, NewValidationError("gate", "required")
	}
	if req.Phase == "" {
		return nil, NewValidationError("phase", "required")
	}
	if req.Justification == "" {
		return nil, NewValidationError("justification", "required")
	}
	if req.RequestedBy == "" {
		return nil, NewValidationError("requested_by", "required")
	}
	if req.Duration == string(bypassrequest.DurationTemporary) || req.Duration == "" {
		if req.ExpiresAt == nil {
			return nil, NewValidationError("expires_at", "required for temporary bypasses")
		}
		if req.RemediationPlan == "" {
			return nil, NewValidationError("remediation_plan", "required for temporary bypasses")
		}
	}

	bypassID := req.BypassID
	if bypassID == "" {
		bypassID = uuid.New().String()
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.BypassRequest.Create().
		SetID(bypassID).
		SetGate(req.Gate).
		SetPhase(req.Phase).
		SetCurrentValue(req.CurrentValue).
		SetThreshold(req.Threshold).
		SetJustification(req.Justification).
		SetRequestedBy(req.RequestedBy).
		SetStatus(bypassrequest.StatusProposed).
		SetCreatedAt(time.Now())

	if req.WorkflowID != "" {
		builder.SetWorkflowID(req.WorkflowID)
	}
	if req.ExecutionID != "" {
		builder.SetExecutionID(req.ExecutionID)
	}
	if req.TechnicalRisk != "" {
		builder.SetTechnicalRisk(bypassrequest.TechnicalRisk(req.TechnicalRisk))
	}
	if req.BusinessRisk != "" {
		builder.SetBusinessRisk(bypassrequest.BusinessRisk(req.BusinessRisk))
	}
	if req.SecurityRisk != "" {
		builder.SetSecurityRisk(bypassrequest.SecurityRisk(req.SecurityRisk))
	}
	if req.Duration != "" {
		builder.SetDuration(bypassrequest.Duration(req.Duration))
	}
	if req.ExpiresAt != nil {
		builder.SetExpiresAt(*req.ExpiresAt)
	}
	if req.RemediationPlan != "" {
		builder.SetRemediationPlan(req.RemediationPlan)
	}
	if req.CompensatingControls != nil {
		builder.SetCompensatingControls(req.CompensatingControls)
	}
	if req.FollowUpTasks != nil {
		builder.SetFollowUpTasks(req.FollowUpTasks)
	}
	if req.ADRPath != "" {
		builder.SetAdrPath(req.ADRPath)
	}

	bypass, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create bypass request: %w", err)
	}

	return bypass, nil
}

// GetBypass retrieves a bypass request by ID
func (s *BypassService) GetBypass(ctx context.Context, bypassID string) (*ent.BypassRequest, error) {
	bypass, err := s.client.BypassRequest.Get(ctx, bypassID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bypass request: %w", err)
	}
	return bypass, nil
}

// ListBypasses lists bypass requests with filtering and pagination
func (s *BypassService) ListBypasses(ctx context.Context, filters models.BypassFilters) (*models.BypassListResponse, error) {
	query := s.client.BypassRequest.Query()

	if filters.Gate != "" {
		query = query.Where(bypassrequest.GateEQ(filters.Gate))
	}
	if filters.Phase != "" {
		query = query.Where(bypassrequest.PhaseEQ(filters.Phase))
	}
	if filters.Status != "" {
		query = query.Where(bypassrequest.StatusEQ(bypassrequest.Status(filters.Status)))
	}
	if filters.WorkflowID != "" {
		query = query.Where(bypassrequest.WorkflowIDEQ(filters.WorkflowID))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(bypassrequest.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(bypassrequest.CreatedAtLT(*filters.CreatedBefore))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count bypass requests: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	bypasses, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(bypassrequest.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bypass requests: %w", err)
	}

	return &models.BypassListResponse{
		Bypasses:   bypasses,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// ApproveBypass transitions proposed -> approved. Returns
// ErrConcurrentModification when the request is no longer proposed.
func (s *BypassService) ApproveBypass(ctx context.Context, bypassID, approver, approvalLevel string, expiresAt *time.Time) (*ent.BypassRequest, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.BypassRequest.Update().
		Where(
			bypassrequest.IDEQ(bypassID),
			bypassrequest.StatusEQ(bypassrequest.StatusProposed),
		).
		SetStatus(bypassrequest.StatusApproved).
		SetApprovedBy(approver).
		SetApprovalLevel(approvalLevel).
		SetDecidedAt(time.Now())

	if expiresAt != nil {
		update = update.SetExpiresAt(*expiresAt)
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to approve bypass: %w", err)
	}
	if count == 0 {
		return nil, s.transitionConflict(writeCtx, bypassID)
	}

	return s.GetBypass(writeCtx, bypassID)
}

// AttachApprovalRecord amends a proposed request with decision
// artifacts supplied at approval time: the ADR path and any extra
// compensating controls. Only proposed requests can be amended.
func (s *BypassService) AttachApprovalRecord(ctx context.Context, bypassID, adrPath string, controls []string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.BypassRequest.Update().
		Where(
			bypassrequest.IDEQ(bypassID),
			bypassrequest.StatusEQ(bypassrequest.StatusProposed),
		)
	if adrPath != "" {
		update = update.SetAdrPath(adrPath)
	}
	if len(controls) > 0 {
		update = update.SetCompensatingControls(controls)
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to attach approval record: %w", err)
	}
	if count == 0 {
		return s.transitionConflict(writeCtx, bypassID)
	}
	return nil
}

// RejectBypass transitions proposed -> rejected
func (s *BypassService) RejectBypass(ctx context.Context, bypassID, approver, reason string) (*ent.BypassRequest, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.BypassRequest.Update().
		Where(
			bypassrequest.IDEQ(bypassID),
			bypassrequest.StatusEQ(bypassrequest.StatusProposed),
		).
		SetStatus(bypassrequest.StatusRejected).
		SetApprovedBy(approver).
		SetRejectionReason(reason).
		SetDecidedAt(time.Now()).
		SetClosedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to reject bypass: %w", err)
	}
	if count == 0 {
		return nil, s.transitionConflict(writeCtx, bypassID)
	}

	return s.GetBypass(writeCtx, bypassID)
}

// ActivateBypass transitions approved -> active, recorded when an exit
// gate first relies on the bypass
func (s *BypassService) ActivateBypass(ctx context.Context, bypassID string) (*ent.BypassRequest, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.BypassRequest.Update().
		Where(
			bypassrequest.IDEQ(bypassID),
			bypassrequest.StatusEQ(bypassrequest.StatusApproved),
		).
		SetStatus(bypassrequest.StatusActive).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to activate bypass: %w", err)
	}
	if count == 0 {
		return nil, s.transitionConflict(writeCtx, bypassID)
	}

	return s.GetBypass(writeCtx, bypassID)
}

// RevokeBypass transitions approved/active -> revoked
func (s *BypassService) RevokeBypass(ctx context.Context, bypassID, actor, reason string) (*ent.BypassRequest, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.BypassRequest.Update().
		Where(
			bypassrequest.IDEQ(bypassID),
			bypassrequest.StatusIn(
				bypassrequest.StatusApproved,
				bypassrequest.StatusActive,
			),
		).
		SetStatus(bypassrequest.StatusRevoked).
		SetRejectionReason(reason).
		SetClosedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to revoke bypass: %w", err)
	}
	if count == 0 {
		return nil, s.transitionConflict(writeCtx, bypassID)
	}

	return s.GetBypass(writeCtx, bypassID)
}

// MarkExpired transitions approved/active -> expired for one request
func (s *BypassService) MarkExpired(ctx context.Context, bypassID string) (*ent.BypassRequest, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.BypassRequest.Update().
		Where(
			bypassrequest.IDEQ(bypassID),
			bypassrequest.StatusIn(
				bypassrequest.StatusApproved,
				bypassrequest.StatusActive,
			),
		).
		SetStatus(bypassrequest.StatusExpired).
		SetClosedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to expire bypass: %w", err)
	}
	if count == 0 {
		return nil, s.transitionConflict(writeCtx, bypassID)
	}

	return s.GetBypass(writeCtx, bypassID)
}

// FindOverdueBypasses returns temporary approved/active requests whose
// expiry has passed
func (s *BypassService) FindOverdueBypasses(ctx context.Context, now time.Time) ([]*ent.BypassRequest, error) {
	bypasses, err := s.client.BypassRequest.Query().
		Where(
			bypassrequest.StatusIn(
				bypassrequest.StatusApproved,
				bypassrequest.StatusActive,
			),
			bypassrequest.DurationEQ(bypassrequest.DurationTemporary),
			bypassrequest.ExpiresAtNotNil(),
			bypassrequest.ExpiresAtLT(now),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find overdue bypasses: %w", err)
	}
	return bypasses, nil
}

// CoveringBypasses returns the approved/active requests for a gate and
// phase that have not yet expired. Callers still need to lazy-expire
// rows whose expiry passed between sweeps.
func (s *BypassService) CoveringBypasses(ctx context.Context, gate, phase string) ([]*ent.BypassRequest, error) {
	bypasses, err := s.client.BypassRequest.Query().
		Where(
			bypassrequest.GateEQ(gate),
			bypassrequest.PhaseEQ(phase),
			bypassrequest.StatusIn(
				bypassrequest.StatusApproved,
				bypassrequest.StatusActive,
			),
		).
		Order(ent.Desc(bypassrequest.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query covering bypasses: %w", err)
	}
	return bypasses, nil
}

// CountCreatedSince counts bypass requests created in a window
func (s *BypassService) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	return s.client.BypassRequest.Query().
		Where(bypassrequest.CreatedAtGTE(since)).
		Count(ctx)
}

// CountApprovedSince counts requests that received approval in a window,
// whatever state they have moved to since
func (s *BypassService) CountApprovedSince(ctx context.Context, since time.Time) (int, error) {
	return s.client.BypassRequest.Query().
		Where(
			bypassrequest.DecidedAtNotNil(),
			bypassrequest.DecidedAtGTE(since),
			bypassrequest.StatusIn(
				bypassrequest.StatusApproved,
				bypassrequest.StatusActive,
				bypassrequest.StatusExpired,
				bypassrequest.StatusRevoked,
			),
		).
		Count(ctx)
}

// CountByGateSince returns per-gate bypass request counts in a window
func (s *BypassService) CountByGateSince(ctx context.Context, since time.Time) (map[string]int, error) {
	var rows []struct {
		Gate  string `json:"gate"`
		Count int    `json:"count"`
	}
	err := s.client.BypassRequest.Query().
		Where(bypassrequest.CreatedAtGTE(since)).
		GroupBy(bypassrequest.FieldGate).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count bypasses by gate: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Gate] = row.Count
	}
	return counts, nil
}

// CountByPhaseSince returns per-phase bypass request counts in a window
func (s *BypassService) CountByPhaseSince(ctx context.Context, since time.Time) (map[string]int, error) {
	var rows []struct {
		Phase string `json:"phase"`
		Count int    `json:"count"`
	}
	err := s.client.BypassRequest.Query().
		Where(bypassrequest.CreatedAtGTE(since)).
		GroupBy(bypassrequest.FieldPhase).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count bypasses by phase: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Phase] = row.Count
	}
	return counts, nil
}

// CountInStatus counts requests currently in the given status.
func (s *BypassService) CountInStatus(ctx context.Context, status bypassrequest.Status) (int, error) {
	return s.client.BypassRequest.Query().
		Where(bypassrequest.StatusEQ(status)).
		Count(ctx)
}

// transitionConflict distinguishes a missing row from an illegal state
func (s *BypassService) transitionConflict(ctx context.Context, bypassID string) error {
	exists, err := s.client.BypassRequest.Query().
		Where(bypassrequest.IDEQ(bypassID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check bypass existence: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return ErrConcurrentModification
}
