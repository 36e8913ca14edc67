package inquiry

import (
	"errors"
	"fmt"
	"time"

	"tour-contact/cache"
	"tour-contact/logger"
	"tour-contact/metrics"
	inquiryModel "tour-contact/models/inquiry"
	"tour-contact/services/notifier"
	inquiryTypes "tour-contact/types/inquiry"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// recentWindowDays is the statistics window for "recent" inquiries,
// aligned to the beginning of the day.
const recentWindowDays = 7

// DefaultRecentLimit caps the recent-inquiries action.
const DefaultRecentLimit = 10

// Service orchestrates validation, persistence, cache invalidation
// and notification dispatch for contact inquiries.
type Service struct {
	db       *gorm.DB
	cache    cache.Store
	notifier *notifier.Notifier
}

func NewService(db *gorm.DB, store cache.Store, n *notifier.Notifier) *Service {
	return &Service{
		db:       db,
		cache:    store,
		notifier: n,
	}
}

// ListParams are the filter and pagination knobs of the list operation.
type ListParams struct {
	Status      string
	InquiryType string
	Page        int
	PageSize    int
}

func (p *ListParams) normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 10
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p ListParams) validate() error {
	fields := make(map[string]string)
	if p.Status != "" && !inquiryModel.InquiryStatus(p.Status).IsValid() {
		fields["status"] = "Must be one of: pending, in_progress, resolved, closed"
	}
	if p.InquiryType != "" && !inquiryModel.InquiryType(p.InquiryType).IsValid() {
		fields["inquiry_type"] = "Must be one of: general, booking, package, complaint, feedback"
	}
	if len(fields) > 0 {
		return NewValidationError(fields)
	}
	return nil
}

// ListPage is one cached page of the listing.
type ListPage struct {
	Count    int64
	Page     int
	PageSize int
	Results  []inquiryTypes.InquiryResponse
}

// List returns one page of active inquiries ordered newest first,
// read through the cache.
func (s *Service) List(params ListParams) (*ListPage, error) {
	params.normalize()
	if err := params.validate(); err != nil {
		return nil, err
	}

	key := cache.ListKey(params.Status, params.InquiryType, params.Page, params.PageSize)
	if cached, ok := s.cache.Get(key); ok {
		if page, ok := cached.(*ListPage); ok {
			metrics.RecordCacheHit("list")
			return page, nil
		}
	}
	metrics.RecordCacheMiss("list")

	// Fresh query per finalizer: gorm chains are not safe to reuse
	// across Count and Find.
	filtered := func() *gorm.DB {
		query := s.activeQuery()
		if params.Status != "" {
			query = query.Where("status = ?", params.Status)
		}
		if params.InquiryType != "" {
			query = query.Where("inquiry_type = ?", params.InquiryType)
		}
		return query
	}

	var count int64
	if err := filtered().Model(&inquiryModel.Inquiry{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to count inquiries: %w", err)
	}

	var records []inquiryModel.Inquiry
	offset := (params.Page - 1) * params.PageSize
	if err := filtered().Order("created_at DESC").Offset(offset).Limit(params.PageSize).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}

	page := &ListPage{
		Count:    count,
		Page:     params.Page,
		PageSize: params.PageSize,
		Results:  inquiryTypes.NewInquiryResponseList(records),
	}
	s.cache.Set(key, page, cache.ListTTL)
	return page, nil
}

// Get returns a single active inquiry by id, read through the cache.
func (s *Service) Get(id uint) (*inquiryTypes.InquiryResponse, error) {
	key := cache.DetailKey(id)
	if cached, ok := s.cache.Get(key); ok {
		if resp, ok := cached.(*inquiryTypes.InquiryResponse); ok {
			metrics.RecordCacheHit("detail")
			return resp, nil
		}
	}
	metrics.RecordCacheMiss("detail")

	record, err := s.findActive(id)
	if err != nil {
		return nil, err
	}

	resp := inquiryTypes.NewInquiryResponse(*record)
	s.cache.Set(key, &resp, cache.DetailTTL)
	return &resp, nil
}

// Create validates and persists a new inquiry, queues the two
// notification emails, and invalidates the listing caches. The
// response never waits on, or reflects, email delivery.
func (s *Service) Create(req *inquiryTypes.InquiryCreateRequest) (*inquiryTypes.InquiryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, NewValidationError(inquiryTypes.ValidationMessages(err))
	}

	record := inquiryModel.Inquiry{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       optionalString(req.Phone),
		InquiryType: inquiryModel.InquiryType(req.InquiryType),
		Subject:     req.Subject,
		Message:     req.Message,
		Status:      inquiryModel.StatusPending,
		IsActive:    true,
	}

	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}
	logger.Success(fmt.Sprintf("Contact inquiry #%d created", record.ID))
	metrics.RecordInquiryCreated()

	// Fire-and-forget: dispatch runs on its own goroutines against a
	// snapshot of the record; delivery failures are logged only.
	s.notifier.SendConfirmation(record)
	s.notifier.SendAdminAlert(record)

	s.invalidateLists()

	resp := inquiryTypes.NewInquiryResponse(record)
	return &resp, nil
}

// Update replaces the mutable fields of an inquiry (PUT).
func (s *Service) Update(id uint, req *inquiryTypes.InquiryCreateRequest) (*inquiryTypes.InquiryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, NewValidationError(inquiryTypes.ValidationMessages(err))
	}

	record, err := s.findActive(id)
	if err != nil {
		return nil, err
	}

	record.FullName = req.FullName
	record.Email = req.Email
	record.Phone = optionalString(req.Phone)
	record.InquiryType = inquiryModel.InquiryType(req.InquiryType)
	record.Subject = req.Subject
	record.Message = req.Message

	if err := s.db.Save(record).Error; err != nil {
		return nil, fmt.Errorf("failed to update inquiry #%d: %w", id, err)
	}

	s.invalidate(id)

	resp := inquiryTypes.NewInquiryResponse(*record)
	return &resp, nil
}

// PartialUpdate applies only the provided fields (PATCH).
func (s *Service) PartialUpdate(id uint, req *inquiryTypes.InquiryUpdateRequest) (*inquiryTypes.InquiryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, NewValidationError(inquiryTypes.ValidationMessages(err))
	}

	record, err := s.findActive(id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		record.FullName = *req.FullName
	}
	if req.Email != nil {
		record.Email = *req.Email
	}
	if req.Phone != nil {
		record.Phone = optionalString(*req.Phone)
	}
	if req.InquiryType != nil {
		record.InquiryType = inquiryModel.InquiryType(*req.InquiryType)
	}
	if req.Subject != nil {
		record.Subject = *req.Subject
	}
	if req.Message != nil {
		record.Message = *req.Message
	}
	if req.Status != nil {
		record.Status = inquiryModel.InquiryStatus(*req.Status)
	}
	if req.AdminNotes != nil {
		record.AdminNotes = req.AdminNotes
	}

	if err := s.db.Save(record).Error; err != nil {
		return nil, fmt.Errorf("failed to update inquiry #%d: %w", id, err)
	}

	s.invalidate(id)

	resp := inquiryTypes.NewInquiryResponse(*record)
	return &resp, nil
}

// SoftDelete marks an inquiry inactive. The row stays in the store
// for record keeping. Deleting an unknown or already-inactive id
// reports ErrNotFound, matching the visibility rule of every other
// operation.
func (s *Service) SoftDelete(id uint) error {
	record, err := s.findActive(id)
	if err != nil {
		return err
	}

	record.IsActive = false
	if err := s.db.Save(record).Error; err != nil {
		return fmt.Errorf("failed to soft delete inquiry #%d: %w", id, err)
	}
	logger.Info(fmt.Sprintf("Contact inquiry #%d soft deleted", id))

	s.invalidate(id)
	return nil
}

// UpdateStatus transitions an inquiry to a new status, optionally
// recording admin notes, and returns the updated record plus a
// human-readable confirmation message.
func (s *Service) UpdateStatus(id uint, req *inquiryTypes.StatusUpdateRequest) (*inquiryTypes.InquiryResponse, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", NewValidationError(inquiryTypes.ValidationMessages(err))
	}

	record, err := s.findActive(id)
	if err != nil {
		return nil, "", err
	}

	record.Status = inquiryModel.InquiryStatus(req.Status)
	if req.AdminNotes != nil {
		record.AdminNotes = req.AdminNotes
	}

	if err := s.db.Save(record).Error; err != nil {
		return nil, "", fmt.Errorf("failed to update status of inquiry #%d: %w", id, err)
	}
	logger.Info(fmt.Sprintf("Inquiry #%d status updated to %s", id, record.Status))

	s.invalidate(id)

	resp := inquiryTypes.NewInquiryResponse(*record)
	message := fmt.Sprintf("Status updated to %s", record.Status.Display())
	return &resp, message, nil
}

// Statistics returns aggregate counts over active inquiries, cached
// for ten minutes and invalidated by any write.
func (s *Service) Statistics() (*inquiryTypes.StatsResponse, error) {
	if cached, ok := s.cache.Get(cache.StatsKey); ok {
		if stats, ok := cached.(*inquiryTypes.StatsResponse); ok {
			metrics.RecordCacheHit("stats")
			return stats, nil
		}
	}
	metrics.RecordCacheMiss("stats")

	stats := &inquiryTypes.StatsResponse{
		ByType: make(map[string]inquiryTypes.TypeCount),
	}

	if err := s.activeQuery().Model(&inquiryModel.Inquiry{}).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count inquiries: %w", err)
	}

	statusCounts := map[inquiryModel.InquiryStatus]*int64{
		inquiryModel.StatusPending:    &stats.Pending,
		inquiryModel.StatusInProgress: &stats.InProgress,
		inquiryModel.StatusResolved:   &stats.Resolved,
		inquiryModel.StatusClosed:     &stats.Closed,
	}
	for _, status := range inquiryModel.GetAllInquiryStatuses() {
		if err := s.activeQuery().Model(&inquiryModel.Inquiry{}).
			Where("status = ?", status).Count(statusCounts[status]).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s inquiries: %w", status, err)
		}
		if status.IsOpen() {
			stats.Open += *statusCounts[status]
		}
	}

	for _, inquiryType := range inquiryModel.GetAllInquiryTypes() {
		var count int64
		if err := s.activeQuery().Model(&inquiryModel.Inquiry{}).
			Where("inquiry_type = ?", inquiryType).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s inquiries: %w", inquiryType, err)
		}
		stats.ByType[inquiryType.String()] = inquiryTypes.TypeCount{
			Count:       count,
			DisplayName: inquiryType.Display(),
		}
	}

	cutoff := now.New(time.Now().AddDate(0, 0, -recentWindowDays)).BeginningOfDay()
	if err := s.activeQuery().Model(&inquiryModel.Inquiry{}).
		Where("created_at >= ?", cutoff).Count(&stats.RecentInquiries).Error; err != nil {
		return nil, fmt.Errorf("failed to count recent inquiries: %w", err)
	}

	s.cache.Set(cache.StatsKey, stats, cache.StatsTTL)
	return stats, nil
}

// Recent returns the most recently created active inquiries.
func (s *Service) Recent(limit int) ([]inquiryTypes.InquiryResponse, error) {
	if limit < 1 || limit > 100 {
		limit = DefaultRecentLimit
	}

	key := cache.RecentKey(limit)
	if cached, ok := s.cache.Get(key); ok {
		if responses, ok := cached.([]inquiryTypes.InquiryResponse); ok {
			metrics.RecordCacheHit("recent")
			return responses, nil
		}
	}
	metrics.RecordCacheMiss("recent")

	var records []inquiryModel.Inquiry
	if err := s.activeQuery().Order("created_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch recent inquiries: %w", err)
	}

	responses := inquiryTypes.NewInquiryResponseList(records)
	s.cache.Set(key, responses, cache.RecentTTL)
	return responses, nil
}

// Notifier exposes the notifier for shutdown draining.
func (s *Service) Notifier() *notifier.Notifier {
	return s.notifier
}

func (s *Service) activeQuery() *gorm.DB {
	return s.db.Where("is_active = ?", true)
}

func (s *Service) findActive(id uint) (*inquiryModel.Inquiry, error) {
	var record inquiryModel.Inquiry
	err := s.activeQuery().First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inquiry #%d: %w", id, err)
	}
	return &record, nil
}

// invalidate drops the detail entry for id plus every listing and
// statistics entry. List keys are parameterized by filter and page,
// so whole key families are swept by prefix.
func (s *Service) invalidate(id uint) {
	s.cache.Delete(cache.DetailKey(id))
	s.invalidateLists()
}

func (s *Service) invalidateLists() {
	for _, prefix := range cache.ListFamilyPrefixes() {
		s.cache.DeletePrefix(prefix)
	}
	s.cache.Delete(cache.StatsKey)
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
