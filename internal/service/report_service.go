package service

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/N4th0wl/HangTuah-Website/internal/domain"
)

const recentActivityLimit = 5

const reportStyle = `
    body { font-family: Arial, sans-serif; margin: 20px; }
    h1 { color: #333; text-align: center; }
    table { width: 100%; border-collapse: collapse; margin-top: 20px; }
    th, td { border: 1px solid #ddd; padding: 12px; text-align: left; }
    th { background-color: #d4af37; color: white; }
    tr:nth-child(even) { background-color: #f9f9f9; }
    .footer { margin-top: 30px; text-align: center; color: #666; font-size: 12px; }
`

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <style>` + reportStyle + `</style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <p>Generated on: {{.GeneratedAt}}</p>
  {{if .Range}}<p>Period: {{.Range}}</p>{{end}}
  <table>
    <thead>
      <tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
    </thead>
    <tbody>
      {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
      {{end}}
    </tbody>
  </table>
  <div class="footer">
    <p>{{.Summary}}</p>
    <p>This is an automatically generated report.</p>
  </div>
</body>
</html>
`))

type reportData struct {
	Title       string
	GeneratedAt string
	Range       string
	Headers     []string
	Rows        [][]string
	Summary     string
}

// ReportService serves the admin dashboard and the HTML export documents.
// It is a read-only consumer of ledger and account state.
type ReportService struct {
	repo StatsRepository
}

func NewReportService(repo StatsRepository) *ReportService {
	return &ReportService{repo: repo}
}

func (s *ReportService) Stats() (domain.Stats, domain.Activities, error) {
	var stats domain.Stats
	var activities domain.Activities
	var err error

	if stats.TotalUsers, err = s.repo.CountUsers(); err != nil {
		return stats, activities, err
	}
	if stats.TotalOrders, err = s.repo.CountOrders(); err != nil {
		return stats, activities, err
	}
	if stats.TotalMenus, err = s.repo.CountMenuItems(); err != nil {
		return stats, activities, err
	}

	if activities.Users, err = s.repo.RecentUsers(recentActivityLimit); err != nil {
		return stats, activities, err
	}
	if activities.Orders, err = s.repo.RecentOrders(recentActivityLimit); err != nil {
		return stats, activities, err
	}
	if activities.Menus, err = s.repo.RecentMenuItems(recentActivityLimit); err != nil {
		return stats, activities, err
	}
	return stats, activities, nil
}

func (s *ReportService) UsersReport() ([]byte, error) {
	users, err := s.repo.ListUsers()
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(users))
	for _, user := range users {
		rows = append(rows, []string{
			user.Username, user.Email, user.Role, user.CreatedAt.Format("02/01/2006"),
		})
	}
	return renderReport(reportData{
		Title:   "Users Report",
		Headers: []string{"Username", "Email", "Role", "Created Date"},
		Rows:    rows,
		Summary: fmt.Sprintf("Total Users: %d", len(users)),
	})
}

func (s *ReportService) MenusReport() ([]byte, error) {
	menus, err := s.repo.ListMenuItems("", "")
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(menus))
	for _, menu := range menus {
		rows = append(rows, []string{
			menu.Name, menu.Category, menu.Description,
			formatRupiah(menu.Price), menu.CreatedAt.Format("02/01/2006"),
		})
	}
	return renderReport(reportData{
		Title:   "Menus Report",
		Headers: []string{"Name", "Category", "Description", "Price", "Created Date"},
		Rows:    rows,
		Summary: fmt.Sprintf("Total Menu Items: %d", len(menus)),
	})
}

// OrdersReport accepts an optional YYYY-MM-DD date range.
func (s *ReportService) OrdersReport(startDate, endDate string) ([]byte, error) {
	var start, end time.Time
	var rangeLabel string
	if startDate != "" && endDate != "" {
		var err error
		if start, err = time.Parse("2006-01-02", startDate); err != nil {
			return nil, fmt.Errorf("start date %q: %w", startDate, domain.ErrInvalidInput)
		}
		if end, err = time.Parse("2006-01-02", endDate); err != nil {
			return nil, fmt.Errorf("end date %q: %w", endDate, domain.ErrInvalidInput)
		}
		end = end.Add(24*time.Hour - time.Nanosecond)
		rangeLabel = startDate + " to " + endDate
	}

	orders, err := s.repo.ListOrdersBetween(start, end)
	if err != nil {
		return nil, err
	}

	var revenue int64
	rows := make([][]string, 0, len(orders))
	for _, order := range orders {
		revenue += order.TotalPrice
		rows = append(rows, []string{
			fmt.Sprintf("#%d", order.ID), order.Username,
			formatRupiah(order.TotalPrice), order.Status,
			order.CreatedAt.Format("02/01/2006 15:04"),
		})
	}
	return renderReport(reportData{
		Title:   "Orders Report",
		Range:   rangeLabel,
		Headers: []string{"Order", "Customer", "Total", "Status", "Created"},
		Rows:    rows,
		Summary: fmt.Sprintf("Total Orders: %d, Total Revenue: %s", len(orders), formatRupiah(revenue)),
	})
}

func renderReport(data reportData) ([]byte, error) {
	data.GeneratedAt = time.Now().Format("02/01/2006")
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatRupiah(amount int64) string {
	return fmt.Sprintf("Rp %d", amount)
}

var _ ReportServiceInterface = (*ReportService)(nil)
