package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zungle102/shiftrec-sub000/internal/core"
	fluentdModel "github.com/zungle102/shiftrec-sub000/internal/database/fluentd/model"
	"github.com/zungle102/shiftrec-sub000/internal/database/mongodb/model"
	"github.com/zungle102/shiftrec-sub000/internal/dto"
	cErr "github.com/zungle102/shiftrec-sub000/internal/pkg/error"
	"github.com/zungle102/shiftrec-sub000/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	serviceDateLayout = "2006-01-02"
	timeOfDayLayout   = "15:04"
	datetimeLayout    = "2006-01-02 15:04:05"
)

// ShiftService 班表核心：參照解析、舊欄位相容、狀態生命週期。
// 顯示欄位（客戶名稱、地址、員工名稱）每次讀取都由參照文件重算。
type ShiftService struct {
	trace           *telemetry.Trace
	metric          *telemetry.Metric
	shiftStore      ShiftStore
	clientStore     ClientStore
	staffStore      StaffMemberStore
	clientTypeStore ClientTypeStore
	auditStore      AuditLogStore
}

func NewShiftService(
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	shiftStore ShiftStore,
	clientStore ClientStore,
	staffStore StaffMemberStore,
	clientTypeStore ClientTypeStore,
	auditStore AuditLogStore,
) *ShiftService {
	return &ShiftService{
		trace:           trace,
		metric:          metric,
		shiftStore:      shiftStore,
		clientStore:     clientStore,
		staffStore:      staffStore,
		clientTypeStore: clientTypeStore,
		auditStore:      auditStore,
	}
}

// ListShiftsQuery 列表查詢條件；DateFrom/DateTo 供月曆頁用（含端點）
type ListShiftsQuery struct {
	IncludeArchived bool
	Page            int64
	Size            int64
	DateFrom        string
	DateTo          string
}

// 列表：租戶過濾 + 分頁 + 整頁一次批次解析參照
func (s *ShiftService) ListShifts(ctx context.Context, ownerEmail string, query ListShiftsQuery) (_ *dto.ShiftListResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if query.Page < 1 {
		query.Page = 1
	}
	if query.Size < 1 || query.Size > 200 {
		query.Size = 50
	}

	filter := bson.M{"ownerEmail": ownerEmail}
	if !query.IncludeArchived {
		filter["archived"] = false
	}
	if query.DateFrom != "" || query.DateTo != "" {
		dateRange := bson.M{}
		if query.DateFrom != "" {
			if _, err := time.Parse(serviceDateLayout, query.DateFrom); err != nil {
				return nil, cErr.ValidateErr("dateFrom must be YYYY-MM-DD")
			}
			dateRange["$gte"] = query.DateFrom
		}
		if query.DateTo != "" {
			if _, err := time.Parse(serviceDateLayout, query.DateTo); err != nil {
				return nil, cErr.ValidateErr("dateTo must be YYYY-MM-DD")
			}
			dateRange["$lte"] = query.DateTo
		}
		filter["serviceDate"] = dateRange
	}

	shifts, err := s.shiftStore.List(ctx, core.ListOptions{Filter: filter, Page: query.Page, Size: query.Size})
	if err != nil {
		return nil, cErr.DatabaseError("database ListShifts error")
	}

	views, err := s.resolveShiftViews(ctx, ownerEmail, shifts)
	if err != nil {
		return nil, err
	}

	s.trace.ApplyTraceAttributes(span, core.TraceShiftListMeta{
		OwnerEmail:      ownerEmail,
		Page:            query.Page,
		Size:            query.Size,
		IncludeArchived: query.IncludeArchived,
		DateFrom:        query.DateFrom,
		DateTo:          query.DateTo,
		ResultCount:     len(views),
	})
	return &dto.ShiftListResponseDto{Shifts: views, Page: query.Page, Size: query.Size}, nil
}

// 單筆讀取：與列表共用同一條解析路徑
func (s *ShiftService) GetShift(ctx context.Context, ownerEmail string, shiftID primitive.ObjectID) (_ *dto.ShiftResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	shift, err := s.shiftStore.GetByID(ctx, ownerEmail, shiftID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("shift not found")
		}
		return nil, cErr.DatabaseError("database GetShift error")
	}
	views, err := s.resolveShiftViews(ctx, ownerEmail, []*model.Shift{shift})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// 建立：clientId 必填且必須屬於同租戶；員工參照全有或全無；
// 初始狀態：明確指定 > 有員工則 Assigned > Drafted
func (s *ShiftService) CreateShift(ctx context.Context, ownerEmail string, input *dto.CreateShiftDto) (_ *dto.ShiftResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	// 舊欄位名映射先於一切驗證
	input.Normalize()

	if err := validateScheduleFields(input.ServiceDate, input.StartTime, input.EndTime); err != nil {
		return nil, err
	}

	ownedClient, err := s.resolveOwnedClient(ctx, ownerEmail, input.ClientID)
	if err != nil {
		return nil, err
	}

	assignedID, notifiedIDs, err := s.validateStaffReferences(ctx, ownerEmail, input.StaffMemberID, input.NotifiedStaffMemberIDs)
	if err != nil {
		return nil, err
	}

	status := core.ShiftStatusDrafted
	if input.Status != "" {
		normalized, ok := core.NormalizeShiftStatus(input.Status)
		if !ok {
			return nil, cErr.ValidateErr(fmt.Sprintf("invalid status %q", input.Status))
		}
		status = normalized
	} else if assignedID != nil || len(notifiedIDs) > 0 {
		status = core.ShiftStatusAssigned
	}

	breakDuration := 0
	if input.BreakDuration != nil {
		breakDuration = *input.BreakDuration
	}

	nowUTC := time.Now().UTC()
	shift := &model.Shift{
		OwnerEmail:             ownerEmail,
		ServiceDate:            input.ServiceDate,
		StartTime:              input.StartTime,
		EndTime:                input.EndTime,
		BreakDuration:          breakDuration,
		ServiceType:            input.ServiceType,
		ClientID:               &ownedClient.ID,
		ClientName:             ownedClient.Name,
		AssignedStaffMemberID:  assignedID,
		NotifiedStaffMemberIDs: notifiedIDs,
		Status:                 status,
		Note:                   input.Note,
		Archived:               false,
	}
	applyStatusTimestamp(shift, status, nowUTC)

	created, err := s.shiftStore.Create(ctx, shift)
	if err != nil {
		return nil, cErr.DatabaseError("database CreateShift error")
	}

	s.metric.AddShiftMutation("create")
	s.trace.ApplyTraceAttributes(span, core.TraceShiftMutationMeta{
		OwnerEmail: ownerEmail, ShiftID: created.ID.Hex(), Action: "create", Status: string(status),
	})
	_ = s.auditStore.LogAudit(ctx, fluentdModel.ShiftAuditLog{
		OwnerEmail: ownerEmail, ShiftID: created.ID.Hex(), Action: "create", ToStatus: string(status),
	})

	views, err := s.resolveShiftViews(ctx, ownerEmail, []*model.Shift{created})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// 更新：merge-patch；notifiedStaffMemberIds 一旦給了（含空清單）就整組取代。
// 狀態改變（不同於現值）蓋對應時間戳；只給 staffMemberId 且未給 status 時
// 自動推進到 Assigned。
func (s *ShiftService) UpdateShift(ctx context.Context, ownerEmail string, shiftID primitive.ObjectID, input *dto.UpdateShiftDto) (_ *dto.ShiftResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	input.Normalize()

	existing, err := s.shiftStore.GetByID(ctx, ownerEmail, shiftID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("shift not found")
		}
		return nil, cErr.DatabaseError("database UpdateShift error")
	}

	nowUTC := time.Now().UTC()
	set := bson.M{}
	unset := bson.M{}
	merged := *existing

	if input.ServiceDate != nil {
		if _, parseErr := time.Parse(serviceDateLayout, *input.ServiceDate); parseErr != nil {
			return nil, cErr.ValidateErr("serviceDate must be YYYY-MM-DD")
		}
		set["serviceDate"] = *input.ServiceDate
		merged.ServiceDate = *input.ServiceDate
	}
	if input.StartTime != nil {
		if _, parseErr := time.Parse(timeOfDayLayout, *input.StartTime); parseErr != nil {
			return nil, cErr.ValidateErr("startTime must be HH:mm")
		}
		set["startTime"] = *input.StartTime
		merged.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		if _, parseErr := time.Parse(timeOfDayLayout, *input.EndTime); parseErr != nil {
			return nil, cErr.ValidateErr("endTime must be HH:mm")
		}
		set["endTime"] = *input.EndTime
		merged.EndTime = *input.EndTime
	}
	if input.BreakDuration != nil {
		if *input.BreakDuration < 0 {
			return nil, cErr.ValidateErr("breakDuration must be >= 0")
		}
		set["breakDuration"] = *input.BreakDuration
		merged.BreakDuration = *input.BreakDuration
	}
	if input.ServiceType != nil {
		set["serviceType"] = *input.ServiceType
		merged.ServiceType = *input.ServiceType
	}
	if input.Note != nil {
		set["note"] = *input.Note
		merged.Note = *input.Note
	}
	if input.ClientName != nil {
		set["clientName"] = *input.ClientName
		merged.ClientName = *input.ClientName
	}

	if input.ClientID != nil {
		ownedClient, resolveErr := s.resolveOwnedClient(ctx, ownerEmail, *input.ClientID)
		if resolveErr != nil {
			return nil, resolveErr
		}
		set["clientId"] = ownedClient.ID
		set["clientName"] = ownedClient.Name
		merged.ClientID = &ownedClient.ID
		merged.ClientName = ownedClient.Name
	}

	// notified 清單整組取代（空清單代表清空）
	if input.NotifiedStaffMemberIDs != nil {
		notifiedIDs, validateErr := s.validateStaffIDList(ctx, ownerEmail, *input.NotifiedStaffMemberIDs)
		if validateErr != nil {
			return nil, validateErr
		}
		set["notifiedStaffMemberIds"] = notifiedIDs
		merged.NotifiedStaffMemberIDs = notifiedIDs
	}

	staffSupplied := false
	if input.StaffMemberID != nil {
		staffSupplied = true
		if *input.StaffMemberID == "" {
			unset["assignedStaffMemberId"] = ""
			merged.AssignedStaffMemberID = nil
			staffSupplied = false // 清除指派不觸發自動 Assigned
		} else {
			staffIDs, validateErr := s.validateStaffIDList(ctx, ownerEmail, []string{*input.StaffMemberID})
			if validateErr != nil {
				return nil, validateErr
			}
			set["assignedStaffMemberId"] = staffIDs[0]
			merged.AssignedStaffMemberID = &staffIDs[0]
		}
	}

	// 狀態：明確指定永遠優先；隱含轉換只有「補員工→Assigned」一種
	var nextStatus *core.ShiftStatus
	if input.Status != nil {
		normalized, ok := core.NormalizeShiftStatus(*input.Status)
		if !ok {
			return nil, cErr.ValidateErr(fmt.Sprintf("invalid status %q", *input.Status))
		}
		if normalized != existing.Status {
			nextStatus = &normalized
		}
	} else if staffSupplied && existing.Status != core.ShiftStatusAssigned {
		assigned := core.ShiftStatusAssigned
		nextStatus = &assigned
	}

	if nextStatus != nil {
		set["status"] = *nextStatus
		merged.Status = *nextStatus
		// 任何「改變」都蓋章，包含離開後再回來；重送相同狀態不蓋
		if field, ok := core.ShiftStatusTimestampFields[*nextStatus]; ok {
			set[field] = nowUTC
			applyStatusTimestamp(&merged, *nextStatus, nowUTC)
		}
	}

	if len(set) == 0 && len(unset) == 0 {
		// 空 patch：不碰資料庫，直接回現狀
		views, resolveErr := s.resolveShiftViews(ctx, ownerEmail, []*model.Shift{existing})
		if resolveErr != nil {
			return nil, resolveErr
		}
		return views[0], nil
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	matched, err := s.shiftStore.UpdateByID(ctx, ownerEmail, shiftID, update)
	if err != nil {
		return nil, cErr.DatabaseError("database UpdateShift error")
	}
	if matched == 0 {
		return nil, cErr.NotFound("shift not found")
	}
	merged.UpdatedAt = nowUTC

	s.metric.AddShiftMutation("update")
	mutationMeta := core.TraceShiftMutationMeta{
		OwnerEmail: ownerEmail, ShiftID: shiftID.Hex(), Action: "update", Status: string(merged.Status),
	}
	s.trace.ApplyTraceAttributes(span, mutationMeta)
	if nextStatus != nil {
		_ = s.auditStore.LogAudit(ctx, fluentdModel.ShiftAuditLog{
			OwnerEmail: ownerEmail, ShiftID: shiftID.Hex(), Action: "status_change",
			FromStatus: string(existing.Status), ToStatus: string(*nextStatus),
		})
	} else {
		_ = s.auditStore.LogAudit(ctx, fluentdModel.ShiftAuditLog{
			OwnerEmail: ownerEmail, ShiftID: shiftID.Hex(), Action: "update",
		})
	}

	views, err := s.resolveShiftViews(ctx, ownerEmail, []*model.Shift{&merged})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// 封存：archived 與 status 互不相干；重複封存不重蓋 archivedAt
func (s *ShiftService) ArchiveShift(ctx context.Context, ownerEmail string, shiftID primitive.ObjectID) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	existing, err := s.shiftStore.GetByID(ctx, ownerEmail, shiftID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("shift not found")
		}
		return cErr.DatabaseError("database ArchiveShift error")
	}
	if existing.Archived {
		return nil
	}

	update := bson.M{"$set": bson.M{"archived": true, "archivedAt": time.Now().UTC()}}
	if _, err := s.shiftStore.UpdateByID(ctx, ownerEmail, shiftID, update); err != nil {
		return cErr.DatabaseError("database ArchiveShift error")
	}
	s.metric.AddShiftMutation("archive")
	_ = s.auditStore.LogAudit(ctx, fluentdModel.ShiftAuditLog{
		OwnerEmail: ownerEmail, ShiftID: shiftID.Hex(), Action: "archive",
	})
	return nil
}

func (s *ShiftService) RestoreShift(ctx context.Context, ownerEmail string, shiftID primitive.ObjectID) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	update := bson.M{"$set": bson.M{"archived": false}, "$unset": bson.M{"archivedAt": ""}}
	matched, err := s.shiftStore.UpdateByID(ctx, ownerEmail, shiftID, update)
	if err != nil {
		return cErr.DatabaseError("database RestoreShift error")
	}
	if matched == 0 {
		return cErr.NotFound("shift not found")
	}
	s.metric.AddShiftMutation("restore")
	_ = s.auditStore.LogAudit(ctx, fluentdModel.ShiftAuditLog{
		OwnerEmail: ownerEmail, ShiftID: shiftID.Hex(), Action: "restore",
	})
	return nil
}

// 永久刪除：只允許刪已封存的班表，擋誤刪
func (s *ShiftService) DeleteShift(ctx context.Context, ownerEmail string, shiftID primitive.ObjectID) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	existing, err := s.shiftStore.GetByID(ctx, ownerEmail, shiftID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("shift not found")
		}
		return cErr.DatabaseError("database DeleteShift error")
	}
	if !existing.Archived {
		return cErr.NotArchived("shift must be archived before permanent deletion")
	}

	if _, err := s.shiftStore.DeleteByID(ctx, ownerEmail, shiftID); err != nil {
		return cErr.DatabaseError("database DeleteShift error")
	}
	s.metric.AddShiftMutation("delete")
	_ = s.auditStore.LogAudit(ctx, fluentdModel.ShiftAuditLog{
		OwnerEmail: ownerEmail, ShiftID: shiftID.Hex(), Action: "delete",
		FromStatus: string(existing.Status),
	})
	return nil
}

// ─── 參照解析 ──────────────────────────────────────────────────────────────────

// resolveShiftViews 整頁一次批次查詢：clients、staff、client types 各打一發 $in，
// 舊資料沒有 clientId 的再補一發 name+owner 批次查詢。絕不逐列查。
func (s *ShiftService) resolveShiftViews(ctx context.Context, ownerEmail string, shifts []*model.Shift) ([]*dto.ShiftResponseDto, error) {
	clientIDSet := map[primitive.ObjectID]struct{}{}
	legacyNameSet := map[string]struct{}{}
	staffIDSet := map[primitive.ObjectID]struct{}{}

	for _, shift := range shifts {
		if shift.ClientID != nil {
			clientIDSet[*shift.ClientID] = struct{}{}
		} else if shift.ClientName != "" {
			legacyNameSet[shift.ClientName] = struct{}{}
		}
		if shift.AssignedStaffMemberID != nil {
			staffIDSet[*shift.AssignedStaffMemberID] = struct{}{}
		}
		for _, id := range shift.NotifiedStaffMemberIDs {
			staffIDSet[id] = struct{}{}
		}
	}

	clientsByID := map[primitive.ObjectID]*model.Client{}
	clientsByName := map[string]*model.Client{}
	if len(clientIDSet) > 0 {
		clients, err := s.clientStore.FindByIDs(ctx, ownerEmail, setToSlice(clientIDSet))
		if err != nil {
			return nil, cErr.DatabaseError("database resolve clients error")
		}
		for _, c := range clients {
			clientsByID[c.ID] = c
		}
	}
	if len(legacyNameSet) > 0 {
		names := make([]string, 0, len(legacyNameSet))
		for name := range legacyNameSet {
			names = append(names, name)
		}
		clients, err := s.clientStore.FindByNames(ctx, ownerEmail, names)
		if err != nil {
			return nil, cErr.DatabaseError("database resolve clients by name error")
		}
		for _, c := range clients {
			clientsByName[c.Name] = c
		}
	}

	// 客戶解析完才知道要查哪些 client type
	clientTypeIDSet := map[primitive.ObjectID]struct{}{}
	for _, c := range clientsByID {
		if c.ClientTypeID != nil {
			clientTypeIDSet[*c.ClientTypeID] = struct{}{}
		}
	}
	for _, c := range clientsByName {
		if c.ClientTypeID != nil {
			clientTypeIDSet[*c.ClientTypeID] = struct{}{}
		}
	}
	clientTypesByID := map[primitive.ObjectID]*model.ClientType{}
	if len(clientTypeIDSet) > 0 {
		clientTypes, err := s.clientTypeStore.FindByIDs(ctx, ownerEmail, setToSlice(clientTypeIDSet))
		if err != nil {
			return nil, cErr.DatabaseError("database resolve client types error")
		}
		for _, ct := range clientTypes {
			clientTypesByID[ct.ID] = ct
		}
	}

	staffByID := map[primitive.ObjectID]*model.StaffMember{}
	if len(staffIDSet) > 0 {
		staffMembers, err := s.staffStore.FindByIDs(ctx, ownerEmail, setToSlice(staffIDSet))
		if err != nil {
			return nil, cErr.DatabaseError("database resolve staff members error")
		}
		for _, staffMember := range staffMembers {
			staffByID[staffMember.ID] = staffMember
		}
	}

	views := make([]*dto.ShiftResponseDto, len(shifts))
	for i, shift := range shifts {
		views[i] = buildShiftView(shift, clientsByID, clientsByName, clientTypesByID, staffByID)
	}
	return views, nil
}

// buildShiftView 組單筆視圖：查無的參照靜默略過（讀取端不報錯）
func buildShiftView(
	shift *model.Shift,
	clientsByID map[primitive.ObjectID]*model.Client,
	clientsByName map[string]*model.Client,
	clientTypesByID map[primitive.ObjectID]*model.ClientType,
	staffByID map[primitive.ObjectID]*model.StaffMember,
) *dto.ShiftResponseDto {

	view := &dto.ShiftResponseDto{
		ID:            shift.ID.Hex(),
		OwnerEmail:    shift.OwnerEmail,
		ServiceDate:   shift.ServiceDate,
		StartTime:     shift.StartTime,
		EndTime:       shift.EndTime,
		BreakDuration: shift.BreakDuration,
		ServiceType:   shift.ServiceType,
		ClientName:    shift.ClientName, // 後備值，解析成功會被覆寫
		Status:        shift.Status,
		Note:          shift.Note,
		Archived:      shift.Archived,
		ArchivedAt:    formatTimestamp(shift.ArchivedAt),
		CreatedAt:     formatTime(shift.CreatedAt),
		UpdatedAt:     formatTime(shift.UpdatedAt),

		PublishedAt:          formatTimestamp(shift.PublishedAt),
		AssignedAt:           formatTimestamp(shift.AssignedAt),
		ConfirmedAt:          formatTimestamp(shift.ConfirmedAt),
		DeclinedAt:           formatTimestamp(shift.DeclinedAt),
		InProgressAt:         formatTimestamp(shift.InProgressAt),
		CompletedAt:          formatTimestamp(shift.CompletedAt),
		MissedAt:             formatTimestamp(shift.MissedAt),
		CanceledAt:           formatTimestamp(shift.CanceledAt),
		TimesheetSubmittedAt: formatTimestamp(shift.TimesheetSubmittedAt),
		ApprovedAt:           formatTimestamp(shift.ApprovedAt),
	}

	// 先 id、後 name 的兩段式客戶解析
	var resolvedClient *model.Client
	if shift.ClientID != nil {
		view.ClientID = shift.ClientID.Hex()
		resolvedClient = clientsByID[*shift.ClientID]
	} else if shift.ClientName != "" {
		resolvedClient = clientsByName[shift.ClientName]
		if resolvedClient != nil {
			view.ClientID = resolvedClient.ID.Hex()
		}
	}
	if resolvedClient != nil {
		view.ClientName = resolvedClient.Name
		view.ClientAddress = resolvedClient.Address
		view.ClientSuburb = resolvedClient.Suburb
		view.ClientPhone = resolvedClient.PhoneNumber
		if resolvedClient.ClientTypeID != nil {
			view.ClientTypeID = resolvedClient.ClientTypeID.Hex()
			if clientType := clientTypesByID[*resolvedClient.ClientTypeID]; clientType != nil {
				view.ClientTypeName = clientType.Name
			}
		}
	}

	if shift.AssignedStaffMemberID != nil {
		view.StaffMemberID = shift.AssignedStaffMemberID.Hex()
		if staffMember := staffByID[*shift.AssignedStaffMemberID]; staffMember != nil {
			view.StaffMemberName = staffMember.Name
		}
	}
	if len(shift.NotifiedStaffMemberIDs) > 0 {
		view.NotifiedStaffMemberIDs = make([]string, len(shift.NotifiedStaffMemberIDs))
		for i, id := range shift.NotifiedStaffMemberIDs {
			view.NotifiedStaffMemberIDs[i] = id.Hex()
			if staffMember := staffByID[id]; staffMember != nil {
				view.StaffMemberNames = append(view.StaffMemberNames, staffMember.Name)
			}
		}
	}
	return view
}

// ─── 寫入端參照驗證 ────────────────────────────────────────────────────────────

// resolveOwnedClient 寫入端驗證：解析失敗回 InvalidReference（caller 給錯，不是 NotFound）
func (s *ShiftService) resolveOwnedClient(ctx context.Context, ownerEmail, clientIDHex string) (*model.Client, error) {
	if clientIDHex == "" {
		return nil, cErr.InvalidReference("clientId must not be blank")
	}
	clientID, err := primitive.ObjectIDFromHex(clientIDHex)
	if err != nil {
		return nil, cErr.InvalidReference(fmt.Sprintf("invalid clientId %q", clientIDHex))
	}
	ownedClient, err := s.clientStore.GetByID(ctx, ownerEmail, clientID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.InvalidReference(fmt.Sprintf("client %s does not exist for this account", clientIDHex))
		}
		return nil, cErr.DatabaseError("database resolve client error")
	}
	return ownedClient, nil
}

// validateStaffIDList 全有或全無：任何一個解析失敗整個操作就失敗
func (s *ShiftService) validateStaffIDList(ctx context.Context, ownerEmail string, idHexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(idHexes))
	uniq := map[primitive.ObjectID]struct{}{}
	for _, idHex := range idHexes {
		id, err := primitive.ObjectIDFromHex(idHex)
		if err != nil {
			return nil, cErr.InvalidReference(fmt.Sprintf("invalid staff member id %q", idHex))
		}
		ids = append(ids, id)
		uniq[id] = struct{}{}
	}
	if len(uniq) == 0 {
		return ids, nil
	}
	found, err := s.staffStore.FindByIDs(ctx, ownerEmail, setToSlice(uniq))
	if err != nil {
		return nil, cErr.DatabaseError("database validate staff members error")
	}
	foundSet := map[primitive.ObjectID]struct{}{}
	for _, staffMember := range found {
		foundSet[staffMember.ID] = struct{}{}
	}
	for id := range uniq {
		if _, ok := foundSet[id]; !ok {
			return nil, cErr.InvalidReference(fmt.Sprintf("staff member %s does not exist for this account", id.Hex()))
		}
	}
	return ids, nil
}

func (s *ShiftService) validateStaffReferences(
	ctx context.Context,
	ownerEmail string,
	assignedHex string,
	notifiedHexes []string,
) (assignedID *primitive.ObjectID, notifiedIDs []primitive.ObjectID, returnedError error) {

	all := make([]string, 0, len(notifiedHexes)+1)
	if assignedHex != "" {
		all = append(all, assignedHex)
	}
	all = append(all, notifiedHexes...)
	ids, err := s.validateStaffIDList(ctx, ownerEmail, all)
	if err != nil {
		return nil, nil, err
	}
	if assignedHex != "" {
		assignedID = &ids[0]
		notifiedIDs = ids[1:]
	} else {
		notifiedIDs = ids
	}
	if len(notifiedIDs) == 0 {
		notifiedIDs = nil
	}
	return assignedID, notifiedIDs, nil
}

// ─── 小工具 ───────────────────────────────────────────────────────────────────

func validateScheduleFields(serviceDate, startTime, endTime string) error {
	if _, err := time.Parse(serviceDateLayout, serviceDate); err != nil {
		return cErr.ValidateErr("serviceDate must be YYYY-MM-DD")
	}
	if _, err := time.Parse(timeOfDayLayout, startTime); err != nil {
		return cErr.ValidateErr("startTime must be HH:mm")
	}
	if _, err := time.Parse(timeOfDayLayout, endTime); err != nil {
		return cErr.ValidateErr("endTime must be HH:mm")
	}
	return nil
}

func applyStatusTimestamp(shift *model.Shift, status core.ShiftStatus, at time.Time) {
	switch status {
	case core.ShiftStatusPublished:
		shift.PublishedAt = &at
	case core.ShiftStatusAssigned:
		shift.AssignedAt = &at
	case core.ShiftStatusConfirmed:
		shift.ConfirmedAt = &at
	case core.ShiftStatusDeclined:
		shift.DeclinedAt = &at
	case core.ShiftStatusInProgress:
		shift.InProgressAt = &at
	case core.ShiftStatusCompleted:
		shift.CompletedAt = &at
	case core.ShiftStatusMissed:
		shift.MissedAt = &at
	case core.ShiftStatusCanceled:
		shift.CanceledAt = &at
	case core.ShiftStatusTimesheetSubmitted:
		shift.TimesheetSubmittedAt = &at
	case core.ShiftStatusApproved:
		shift.ApprovedAt = &at
	}
}

func setToSlice(set map[primitive.ObjectID]struct{}) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(datetimeLayout)
}

func formatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}
