package models

import (
	"time"

	"github.com/gookit/validate"
	"github.com/varejotech/caixa/config"
)

// CashBoxService is one service line on a cash box: how many units of a
// service type were sold and the amount collected for them, in cents.
type CashBoxService struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	CashBoxID     int64     `json:"cash_box_id" gorm:"index"`
	ServiceTypeID int64     `json:"service_type_id" validate:"required|ServiceTypeVaildator"`
	Quantity      int32     `json:"quantity" gorm:"default:1" validate:"QuantityVaildator"`
	AmountCents   int64     `json:"amount_cents" validate:"AmountVaildator"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (s CashBoxService) Messages() map[string]string {
	invalid_message := "cashbox.service.invalid_{field}"

	return validate.MS{
		"required":             invalid_message,
		"ServiceTypeVaildator": "cashbox.service.unknown_service_type",
		"QuantityVaildator":    "cashbox.service.non_positive_quantity",
		"AmountVaildator":      "cashbox.service.non_positive_amount",
	}
}

func (s CashBoxService) ServiceTypeVaildator(service_type_id int64) bool {
	return GetServiceTypeByID(service_type_id) != nil
}

func (s CashBoxService) QuantityVaildator(quantity int32) bool {
	return quantity > 0
}

func (s CashBoxService) AmountVaildator(amount_cents int64) bool {
	return amount_cents > 0
}

func (s *CashBoxService) ServiceType() *ServiceType {
	var service_type *ServiceType

	config.DataBase.First(&service_type, s.ServiceTypeID)

	return service_type
}
