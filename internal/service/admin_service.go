package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/eduonboard-api/internal/dto"
	"github.com/noah-isme/eduonboard-api/internal/models"
	"github.com/noah-isme/eduonboard-api/internal/repository"
)

// atRiskThreshold is the completion percentage under which a student is
// flagged in the tracker and counted in analytics.
const atRiskThreshold = 20

// AdminService backs the admin oversight views: student tracker search,
// the analytics summary and the dashboard overview.
type AdminService interface {
	SearchStudents(ctx context.Context, query, department string) ([]dto.StudentRow, error)
	Analytics(ctx context.Context) (dto.AnalyticsResponse, error)
	Overview(ctx context.Context) (dto.OverviewResponse, error)
}

type adminService struct {
	students      repository.StudentRepository
	documents     repository.DocumentRepository
	tickets       repository.TicketRepository
	notifications repository.NotificationRepository
	cache         *redis.Client
	cacheTTL      time.Duration
	logger        zerolog.Logger
	now           func() time.Time
}

// NewAdminService constructs the admin oversight service.
func NewAdminService(
	students repository.StudentRepository,
	documents repository.DocumentRepository,
	tickets repository.TicketRepository,
	notifications repository.NotificationRepository,
	cache *redis.Client,
	ttl time.Duration,
	logger zerolog.Logger,
) AdminService {
	return &adminService{
		students:      students,
		documents:     documents,
		tickets:       tickets,
		notifications: notifications,
		cache:         cache,
		cacheTTL:      ttl,
		logger:        logger.With().Str("component", "admin_service").Logger(),
		now:           time.Now,
	}
}

func (s *adminService) SearchStudents(ctx context.Context, query, department string) ([]dto.StudentRow, error) {
	students, err := s.students.Search(ctx, repository.StudentFilter{Query: query, Department: department})
	if err != nil {
		return nil, err
	}

	rows := make([]dto.StudentRow, 0, len(students))
	for _, student := range students {
		rows = append(rows, dto.NewStudentRow(student, atRiskThreshold))
	}
	return rows, nil
}

func (s *adminService) Analytics(ctx context.Context) (dto.AnalyticsResponse, error) {
	const cacheKey = "analytics:summary"

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.AnalyticsResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				response.CacheHit = true
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read analytics cache")
		}
	}

	students, err := s.students.List(ctx)
	if err != nil {
		return dto.AnalyticsResponse{}, err
	}

	approved, err := s.documents.CountByStatus(ctx, models.DocumentStatusApproved)
	if err != nil {
		return dto.AnalyticsResponse{}, err
	}
	totalDocs, err := s.documents.Count(ctx)
	if err != nil {
		return dto.AnalyticsResponse{}, err
	}
	openTickets, err := s.tickets.CountByStatus(ctx, models.TicketStatusOpen)
	if err != nil {
		return dto.AnalyticsResponse{}, err
	}

	summary := BuildAnalytics(students)
	summary.DocumentsVerified = int(approved)
	summary.DocumentsTotal = int(totalDocs)
	summary.OpenEscalations = int(openTickets)

	if s.cache != nil {
		if payload, err := json.Marshal(summary); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store analytics cache")
			}
		}
	}

	return summary, nil
}

func (s *adminService) Overview(ctx context.Context) (dto.OverviewResponse, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return dto.OverviewResponse{}, err
	}

	active := 0
	for _, student := range students {
		if student.EnrollmentStatus == models.EnrollmentActive {
			active++
		}
	}

	pendingDocs, err := s.documents.CountByStatus(ctx, models.DocumentStatusPending)
	if err != nil {
		return dto.OverviewResponse{}, err
	}
	openTickets, err := s.tickets.CountByStatus(ctx, models.TicketStatusOpen)
	if err != nil {
		return dto.OverviewResponse{}, err
	}
	unreadAlerts, err := s.notifications.CountUnreadByType(ctx, "", models.NotificationAlert)
	if err != nil {
		return dto.OverviewResponse{}, err
	}

	return dto.OverviewResponse{
		TotalStudents:    len(students),
		ActiveStudents:   active,
		PendingDocuments: int(pendingDocs),
		OpenEscalations:  int(openTickets),
		UnreadAlerts:     int(unreadAlerts),
	}, nil
}

// BuildAnalytics computes the student aggregates: average completion across
// all students and per-department groupings. Percentages round half up.
func BuildAnalytics(students []models.Student) dto.AnalyticsResponse {
	response := dto.AnalyticsResponse{
		TotalStudents: len(students),
		Departments:   []dto.DepartmentStats{},
	}
	if len(students) == 0 {
		return response
	}

	total := 0
	atRisk := 0
	type deptAccumulator struct {
		count int
		sum   int
	}
	departments := map[string]*deptAccumulator{}

	for _, student := range students {
		total += student.CompletionPercentage
		if student.CompletionPercentage < atRiskThreshold {
			atRisk++
		}

		acc, ok := departments[student.Department]
		if !ok {
			acc = &deptAccumulator{}
			departments[student.Department] = acc
		}
		acc.count++
		acc.sum += student.CompletionPercentage
	}

	response.AverageCompletion = roundHalfUp(float64(total) / float64(len(students)))
	response.AtRiskStudents = atRisk

	names := make([]string, 0, len(departments))
	for name := range departments {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		acc := departments[name]
		response.Departments = append(response.Departments, dto.DepartmentStats{
			Department:        name,
			Students:          acc.count,
			AverageCompletion: roundHalfUp(float64(acc.sum) / float64(acc.count)),
		})
	}
	return response
}
