package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Narug1fps/cardapio-sub000/models"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// DailyReport computes the sales summary for one calendar day. Cancelled
// orders are counted separately and excluded from revenue and averages;
// settled, delivered and still-open orders all count as sales.
func (s *ReportService) DailyReport(day time.Time) (*models.DailyReport, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	report := models.DailyReport{Date: start}

	var totalOrders int64
	if err := s.db.Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ? AND status <> ?", start, end, models.OrderCancelled).
		Count(&totalOrders).Error; err != nil {
		return nil, err
	}
	report.TotalOrders = int(totalOrders)

	var cancelled int64
	if err := s.db.Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ? AND status = ?", start, end, models.OrderCancelled).
		Count(&cancelled).Error; err != nil {
		return nil, err
	}
	report.CancelledCount = int(cancelled)

	if err := s.db.Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ? AND status <> ?", start, end, models.OrderCancelled).
		Select("COALESCE(SUM(total), 0)").
		Scan(&report.TotalRevenue).Error; err != nil {
		return nil, err
	}

	if report.TotalOrders > 0 {
		report.AverageOrderValue = report.TotalRevenue / float64(report.TotalOrders)
	}

	var top struct {
		DishName string
		Quantity int
	}
	err := s.db.Table("order_items").
		Select("order_items.dish_name, SUM(order_items.quantity) as quantity").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at >= ? AND orders.created_at < ? AND orders.status <> ?", start, end, models.OrderCancelled).
		Group("order_items.dish_name").
		Order("quantity DESC").
		Limit(1).
		Scan(&top).Error
	if err != nil {
		return nil, err
	}
	report.TopDishName = top.DishName
	report.TopDishQuantity = top.Quantity

	return &report, nil
}

// RangeReport computes one report per day over [startDate, endDate].
func (s *ReportService) RangeReport(startDate, endDate time.Time) ([]models.DailyReport, error) {
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end date before start date", ErrValidation)
	}

	var reports []models.DailyReport
	for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
		report, err := s.DailyReport(day)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	return reports, nil
}

// Snapshot persists (or refreshes) the stored report row for a day.
func (s *ReportService) Snapshot(day time.Time) (*models.DailyReport, error) {
	report, err := s.DailyReport(day)
	if err != nil {
		return nil, err
	}

	var existing models.DailyReport
	err = s.db.Where("date = ?", report.Date).First(&existing).Error
	switch {
	case err == nil:
		report.ID = existing.ID
		if err := s.db.Model(&existing).Updates(map[string]interface{}{
			"total_orders":        report.TotalOrders,
			"total_revenue":       report.TotalRevenue,
			"cancelled_count":     report.CancelledCount,
			"average_order_value": report.AverageOrderValue,
			"top_dish_name":       report.TopDishName,
			"top_dish_quantity":   report.TopDishQuantity,
		}).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.Create(report).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return report, nil
}

// StartScheduler snapshots the previous day's report shortly after
// midnight.
func (s *ReportService) StartScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("5 0 * * *", func() {
		yesterday := time.Now().AddDate(0, 0, -1)
		if _, err := s.Snapshot(yesterday); err != nil {
			log.Printf("Failed to snapshot daily report: %v", err)
			return
		}
		log.Printf("Daily report snapshot stored for %s", yesterday.Format("2006-01-02"))
	}); err != nil {
		log.Printf("Failed to schedule report snapshot: %v", err)
		return
	}

	c.Start()
	log.Println("Report scheduler started")
}
