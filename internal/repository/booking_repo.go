package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lightscape/internal/domain"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID               string     `gorm:"column:id;primaryKey"`
	FullName         string     `gorm:"column:full_name"`
	Email            string     `gorm:"column:email;index"`
	Phone            string     `gorm:"column:phone"`
	Address          *string    `gorm:"column:address"`
	ServiceType      string     `gorm:"column:service_type"`
	ProjectDetails   *string    `gorm:"column:project_details"`
	Status           string     `gorm:"column:status"`
	EstimatedPrice   float64    `gorm:"column:estimated_price"`
	PaymentStatus    string     `gorm:"column:payment_status"`
	PaymentIntentID  *string    `gorm:"column:payment_intent_id"`
	PaidAmount       *float64   `gorm:"column:paid_amount"`
	PaymentDate      *time.Time `gorm:"column:payment_date"`
	AutomatedBooking bool       `gorm:"column:automated_booking"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	b := &domain.Booking{
		ID:               m.ID,
		FullName:         m.FullName,
		Email:            m.Email,
		Phone:            m.Phone,
		ServiceType:      m.ServiceType,
		Status:           domain.BookingStatus(m.Status),
		EstimatedPrice:   m.EstimatedPrice,
		PaymentStatus:    domain.PaymentStatus(m.PaymentStatus),
		PaidAmount:       m.PaidAmount,
		PaymentDate:      m.PaymentDate,
		AutomatedBooking: m.AutomatedBooking,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	if m.Address != nil {
		b.Address = *m.Address
	}
	if m.ProjectDetails != nil {
		b.ProjectDetails = *m.ProjectDetails
	}
	if m.PaymentIntentID != nil {
		b.PaymentIntentID = *m.PaymentIntentID
	}
	return b
}

func toBookingModel(b *domain.Booking) bookingModel {
	m := bookingModel{
		ID:               b.ID,
		FullName:         b.FullName,
		Email:            b.Email,
		Phone:            b.Phone,
		ServiceType:      b.ServiceType,
		Status:           string(b.Status),
		EstimatedPrice:   b.EstimatedPrice,
		PaymentStatus:    string(b.PaymentStatus),
		PaidAmount:       b.PaidAmount,
		PaymentDate:      b.PaymentDate,
		AutomatedBooking: b.AutomatedBooking,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
	if b.Address != "" {
		v := b.Address
		m.Address = &v
	}
	if b.ProjectDetails != "" {
		v := b.ProjectDetails
		m.ProjectDetails = &v
	}
	if b.PaymentIntentID != "" {
		v := b.PaymentIntentID
		m.PaymentIntentID = &v
	}
	return m
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	m := toBookingModel(b)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	var rows []bookingModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) GetByEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// GetByEmailAndPhone returns the newest booking matching both contact fields
// exactly. The customer portal treats a match as "authenticated".
func (r *BookingRepository) GetByEmailAndPhone(ctx context.Context, email, phone string) (*domain.Booking, error) {
	var m bookingModel
	err := r.db.WithContext(ctx).
		Where("email = ? AND phone = ?", email, phone).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return toDomainBooking(m), nil
}

// UpdateFields applies a column->value patch and bumps updated_at.
func (r *BookingRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*domain.Booking, error) {
	fields["updated_at"] = time.Now().UTC()

	res := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrBookingNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	return r.UpdateFields(ctx, id, map[string]interface{}{"status": string(status)})
}

// PaymentUpdate carries the booking columns the payment bridge is allowed to
// touch. Nil fields are left unchanged.
type PaymentUpdate struct {
	PaymentIntentID *string
	PaymentStatus   *domain.PaymentStatus
	PaidAmount      *float64
	PaymentDate     *time.Time
	Status          *domain.BookingStatus
}

func (r *BookingRepository) UpdatePayment(ctx context.Context, id string, upd PaymentUpdate) (*domain.Booking, error) {
	fields := map[string]interface{}{}
	if upd.PaymentIntentID != nil {
		fields["payment_intent_id"] = *upd.PaymentIntentID
	}
	if upd.PaymentStatus != nil {
		fields["payment_status"] = string(*upd.PaymentStatus)
	}
	if upd.PaidAmount != nil {
		fields["paid_amount"] = *upd.PaidAmount
	}
	if upd.PaymentDate != nil {
		fields["payment_date"] = *upd.PaymentDate
	}
	if upd.Status != nil {
		fields["status"] = string(*upd.Status)
	}
	return r.UpdateFields(ctx, id, fields)
}

// StatusCounts aggregates bookings per lifecycle and payment status for the
// admin dashboard.
type StatusCounts struct {
	ByStatus        map[string]int64
	ByPaymentStatus map[string]int64
}

func (r *BookingRepository) CountByStatus(ctx context.Context) (*StatusCounts, error) {
	type row struct {
		Key   string
		Total int64
	}

	counts := &StatusCounts{
		ByStatus:        map[string]int64{},
		ByPaymentStatus: map[string]int64{},
	}

	var byStatus []row
	err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Select("status AS key, COUNT(*) AS total").
		Group("status").
		Scan(&byStatus).Error
	if err != nil {
		return nil, err
	}
	for _, v := range byStatus {
		counts.ByStatus[v.Key] = v.Total
	}

	var byPayment []row
	err = r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Select("payment_status AS key, COUNT(*) AS total").
		Group("payment_status").
		Scan(&byPayment).Error
	if err != nil {
		return nil, err
	}
	for _, v := range byPayment {
		counts.ByPaymentStatus[v.Key] = v.Total
	}

	return counts, nil
}
