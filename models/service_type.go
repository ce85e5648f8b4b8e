package models

import (
	"time"

	"github.com/varejotech/caixa/config"
	"gorm.io/gorm"
)

// ServiceType is the catalog of sellable services. GrossCounted marks the
// types whose revenue counts toward a store's gross; the rest are tracked
// separately in summaries.
type ServiceType struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" validate:"required"`
	GrossCounted bool      `json:"gross_counted" gorm:"default:true"`
	Active       bool      `json:"active" gorm:"default:true"`
	Position     int32     `json:"position" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// InUse reports whether any cash-box line or receivable still references the
// type. A referenced type can be deactivated but not deleted.
func (s *ServiceType) InUse(tx *gorm.DB) bool {
	var count int64

	tx.Model(&CashBoxService{}).Where("service_type_id = ?", s.ID).Count(&count)
	if count > 0 {
		return true
	}

	tx.Model(&Receivable{}).Where("service_type_id = ?", s.ID).Count(&count)

	return count > 0
}

func GetServiceTypeByID(id int64) *ServiceType {
	var service_type *ServiceType

	if result := config.DataBase.First(&service_type, id); result.Error != nil {
		return nil
	}

	return service_type
}

func ActiveServiceTypes() []*ServiceType {
	var service_types []*ServiceType

	config.DataBase.Where("active = ?", true).Order("position asc, id asc").Find(&service_types)

	return service_types
}
