package repository

import "github.com/brokerdesk/carrier-sales-api/internal/model"

type LoadEntity struct {
	LoadID           string  `db:"load_id"           gorm:"column:load_id;primaryKey"`
	Origin           string  `db:"origin"            gorm:"column:origin;not null"`
	Destination      string  `db:"destination"       gorm:"column:destination;not null"`
	PickupDatetime   string  `db:"pickup_datetime"   gorm:"column:pickup_datetime;not null"`
	DeliveryDatetime string  `db:"delivery_datetime" gorm:"column:delivery_datetime;not null"`
	EquipmentType    string  `db:"equipment_type"    gorm:"column:equipment_type;not null"`
	LoadboardRate    int     `db:"loadboard_rate"    gorm:"column:loadboard_rate;not null"`
	Miles            *int    `db:"miles"             gorm:"column:miles"`
	Notes            *string `db:"notes"             gorm:"column:notes"`
	Weight           *int    `db:"weight"            gorm:"column:weight"`
	CommodityType    *string `db:"commodity_type"    gorm:"column:commodity_type"`
}

func (LoadEntity) TableName() string {
	return "loads"
}

func toLoadEntity(m *model.Load) *LoadEntity {
	if m == nil {
		return nil
	}
	return &LoadEntity{
		LoadID:           m.LoadID,
		Origin:           m.Origin,
		Destination:      m.Destination,
		PickupDatetime:   m.PickupDatetime,
		DeliveryDatetime: m.DeliveryDatetime,
		EquipmentType:    m.EquipmentType,
		LoadboardRate:    m.LoadboardRate,
		Miles:            m.Miles,
		Notes:            m.Notes,
		Weight:           m.Weight,
		CommodityType:    m.CommodityType,
	}
}

func toLoadModel(e *LoadEntity) *model.Load {
	if e == nil {
		return nil
	}
	return &model.Load{
		LoadID:           e.LoadID,
		Origin:           e.Origin,
		Destination:      e.Destination,
		PickupDatetime:   e.PickupDatetime,
		DeliveryDatetime: e.DeliveryDatetime,
		EquipmentType:    e.EquipmentType,
		LoadboardRate:    e.LoadboardRate,
		Miles:            e.Miles,
		Notes:            e.Notes,
		Weight:           e.Weight,
		CommodityType:    e.CommodityType,
	}
}

func toLoadModels(entities []*LoadEntity) []*model.Load {
	models := make([]*model.Load, len(entities))
	for i, e := range entities {
		models[i] = toLoadModel(e)
	}
	return models
}
