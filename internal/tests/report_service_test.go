package tests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/N4th0wl/HangTuah-Website/internal/domain"
	"github.com/N4th0wl/HangTuah-Website/internal/mocks"
	"github.com/N4th0wl/HangTuah-Website/internal/service"
)

func TestReportService_Stats(t *testing.T) {
	repo := new(mocks.StatsRepository)
	svc := service.NewReportService(repo)

	repo.On("CountUsers").Return(10, nil).Once()
	repo.On("CountOrders").Return(25, nil).Once()
	repo.On("CountMenuItems").Return(8, nil).Once()
	repo.On("RecentUsers", 5).Return([]domain.User{{ID: 1, Username: "budi"}}, nil).Once()
	repo.On("RecentOrders", 5).Return([]domain.Order{{ID: 2, Username: "budi"}}, nil).Once()
	repo.On("RecentMenuItems", 5).Return([]domain.MenuItem{{ID: 3, Name: "Toast"}}, nil).Once()

	stats, activities, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{TotalUsers: 10, TotalOrders: 25, TotalMenus: 8}, stats)
	assert.Len(t, activities.Users, 1)
	assert.Len(t, activities.Orders, 1)
	assert.Len(t, activities.Menus, 1)
	repo.AssertExpectations(t)
}

func TestReportService_UsersReport(t *testing.T) {
	repo := new(mocks.StatsRepository)
	svc := service.NewReportService(repo)

	repo.On("ListUsers").Return([]domain.User{
		{Username: "budi", Email: "budi@example.com", Role: "admin", CreatedAt: time.Now()},
	}, nil).Once()

	report, err := svc.UsersReport()
	require.NoError(t, err)
	html := string(report)
	assert.Contains(t, html, "Users Report")
	assert.Contains(t, html, "budi@example.com")
	assert.Contains(t, html, "Total Users: 1")
}

func TestReportService_OrdersReportWithRange(t *testing.T) {
	repo := new(mocks.StatsRepository)
	svc := service.NewReportService(repo)

	repo.On("ListOrdersBetween", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]domain.Order{
			{ID: 1, Username: "budi", TotalPrice: 36000, Status: "completed", CreatedAt: time.Now()},
			{ID: 2, Username: "sari", TotalPrice: 14000, Status: "pending", CreatedAt: time.Now()},
		}, nil).Once()

	report, err := svc.OrdersReport("2026-08-01", "2026-08-28")
	require.NoError(t, err)
	html := string(report)
	assert.Contains(t, html, "Orders Report")
	assert.Contains(t, html, "2026-08-01 to 2026-08-28")
	assert.Contains(t, html, "Total Orders: 2")
	assert.Contains(t, html, "Rp 50000")
}

func TestReportService_OrdersReportRejectsBadDates(t *testing.T) {
	repo := new(mocks.StatsRepository)
	svc := service.NewReportService(repo)

	_, err := svc.OrdersReport("not-a-date", "2026-08-28")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "ListOrdersBetween", mock.Anything, mock.Anything)
}
