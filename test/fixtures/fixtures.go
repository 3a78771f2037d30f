package fixtures

import (
	"time"

	"github.com/brokerdesk/carrier-sales-api/internal/model"
)

var (
	TestLoadChicagoDallas = model.Load{
		LoadID:           "LD7001",
		Origin:           "Chicago, IL",
		Destination:      "Dallas, TX",
		PickupDatetime:   "2025-09-08T08:00:00",
		DeliveryDatetime: "2025-09-09T17:00:00",
		EquipmentType:    "Dry Van",
		LoadboardRate:    1450,
	}

	TestLoadAtlantaMiami = model.Load{
		LoadID:           "LD7002",
		Origin:           "Atlanta, GA",
		Destination:      "Miami, FL",
		PickupDatetime:   "2025-09-08T09:30:00",
		DeliveryDatetime: "2025-09-09T06:00:00",
		EquipmentType:    "Reefer",
		LoadboardRate:    1200,
	}
)

func NewTestLoad(id, origin, destination, equipment string, rate int) model.Load {
	return model.Load{
		LoadID:           id,
		Origin:           origin,
		Destination:      destination,
		PickupDatetime:   "2025-09-08T08:00:00",
		DeliveryDatetime: "2025-09-09T17:00:00",
		EquipmentType:    equipment,
		LoadboardRate:    rate,
	}
}

func NewTestCallEvent(daysAgo int, outcome, sentiment string) model.CallEvent {
	ev := model.CallEvent{
		TS: time.Now().UTC().AddDate(0, 0, -daysAgo).Format("2006-01-02T15:04:05"),
	}
	if outcome != "" {
		ev.Outcome = &outcome
	}
	if sentiment != "" {
		ev.Sentiment = &sentiment
	}
	return ev
}
