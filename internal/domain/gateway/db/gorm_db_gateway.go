package db

import (
	"context"

	"gorm.io/gorm"
)

type GormHealthDBGateway struct {
	DB *gorm.DB
}

var _ HealthDBGateway = (*GormHealthDBGateway)(nil)

func NewGormHealthDBGateway(db *gorm.DB) *GormHealthDBGateway {
	return &GormHealthDBGateway{DB: db}
}

func (gateway *GormHealthDBGateway) Probe(ctx context.Context) error {
	return gateway.DB.WithContext(ctx).Exec(probeQuery).Error
}

func (gateway *GormHealthDBGateway) Client() string {
	return "gorm"
}
