package service

import (
	"context"
	"time"

	"github.com/zungle102/shiftrec-sub000/internal/dto"
	cErr "github.com/zungle102/shiftrec-sub000/internal/pkg/error"
	"github.com/zungle102/shiftrec-sub000/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
)

// DashboardService 首頁儀表板彙總（唯讀）
type DashboardService struct {
	trace       *telemetry.Trace
	shiftStore  ShiftStore
	clientStore ClientStore
	staffStore  StaffMemberStore
}

func NewDashboardService(trace *telemetry.Trace, shiftStore ShiftStore, clientStore ClientStore, staffStore StaffMemberStore) *DashboardService {
	return &DashboardService{trace: trace, shiftStore: shiftStore, clientStore: clientStore, staffStore: staffStore}
}

func (s *DashboardService) Summary(ctx context.Context, ownerEmail string) (_ *dto.DashboardSummaryDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	statusCounts, err := s.shiftStore.CountByStatus(ctx, bson.M{"ownerEmail": ownerEmail})
	if err != nil {
		return nil, cErr.DatabaseError("database dashboard status counts error")
	}
	byStatus := make(map[string]int64, len(statusCounts))
	var totalShifts int64
	for status, count := range statusCounts {
		byStatus[string(status)] = count
		totalShifts += count
	}

	today := time.Now().UTC().Format(serviceDateLayout)
	upcoming, err := s.shiftStore.Count(ctx, bson.M{
		"ownerEmail":  ownerEmail,
		"archived":    false,
		"serviceDate": bson.M{"$gte": today},
	})
	if err != nil {
		return nil, cErr.DatabaseError("database dashboard upcoming count error")
	}
	unassigned, err := s.shiftStore.Count(ctx, bson.M{
		"ownerEmail":            ownerEmail,
		"archived":              false,
		"assignedStaffMemberId": bson.M{"$exists": false},
	})
	if err != nil {
		return nil, cErr.DatabaseError("database dashboard unassigned count error")
	}
	totalClients, err := s.clientStore.Count(ctx, bson.M{"ownerEmail": ownerEmail, "archived": false})
	if err != nil {
		return nil, cErr.DatabaseError("database dashboard client count error")
	}
	totalStaff, err := s.staffStore.Count(ctx, bson.M{"ownerEmail": ownerEmail, "archived": false})
	if err != nil {
		return nil, cErr.DatabaseError("database dashboard staff count error")
	}

	return &dto.DashboardSummaryDto{
		ShiftsByStatus:   byStatus,
		TotalShifts:      totalShifts,
		TotalClients:     totalClients,
		TotalStaff:       totalStaff,
		UpcomingShifts:   upcoming,
		UnassignedShifts: unassigned,
	}, nil
}
