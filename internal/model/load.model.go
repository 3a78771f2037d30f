package model

import "errors"

// Load is a freight shipment offer posted to the loadboard.
type Load struct {
	LoadID           string  `json:"load_id"           db:"load_id"           gorm:"column:load_id;primaryKey"`
	Origin           string  `json:"origin"            db:"origin"            gorm:"column:origin;not null"`
	Destination      string  `json:"destination"       db:"destination"       gorm:"column:destination;not null"`
	PickupDatetime   string  `json:"pickup_datetime"   db:"pickup_datetime"   gorm:"column:pickup_datetime;not null"`
	DeliveryDatetime string  `json:"delivery_datetime" db:"delivery_datetime" gorm:"column:delivery_datetime;not null"`
	EquipmentType    string  `json:"equipment_type"    db:"equipment_type"    gorm:"column:equipment_type;not null"`
	LoadboardRate    int     `json:"loadboard_rate"    db:"loadboard_rate"    gorm:"column:loadboard_rate;not null"`
	Miles            *int    `json:"miles"             db:"miles"             gorm:"column:miles"`
	Notes            *string `json:"notes"             db:"notes"             gorm:"column:notes"`
	Weight           *int    `json:"weight"            db:"weight"            gorm:"column:weight"`
	CommodityType    *string `json:"commodity_type"    db:"commodity_type"    gorm:"column:commodity_type"`
}

func (Load) TableName() string { return "loads" }

func (l Load) Validate() error {
	if l.LoadID == "" {
		return errors.New("load_id is required")
	}
	if l.Origin == "" {
		return errors.New("origin is required")
	}
	if l.Destination == "" {
		return errors.New("destination is required")
	}
	if l.PickupDatetime == "" {
		return errors.New("pickup_datetime is required")
	}
	if l.DeliveryDatetime == "" {
		return errors.New("delivery_datetime is required")
	}
	if l.EquipmentType == "" {
		return errors.New("equipment_type is required")
	}
	if l.LoadboardRate < 0 {
		return errors.New("loadboard_rate must not be negative")
	}
	return nil
}

// LoadFilter controls Search queries. Substring filters are case-insensitive
// and apply only when non-empty; rate bounds are inclusive. All predicates
// combine with AND.
type LoadFilter struct {
	Origin      *string
	Destination *string
	Equipment   *string
	MinRate     *int
	MaxRate     *int
	Limit       int // validated to [1,100] at the boundary, default 10
}
