package repository

import "github.com/brokerdesk/carrier-sales-api/internal/model"

// CallEventEntity maps call_events rows. Verified is a nullable boolean
// stored as 0/1/NULL in the integer column.
type CallEventEntity struct {
	ID                int64   `db:"id"                 gorm:"column:id;primaryKey;autoIncrement"`
	TS                string  `db:"ts"                 gorm:"column:ts;not null"`
	MCNumber          *string `db:"mc_number"          gorm:"column:mc_number"`
	LegalName         *string `db:"legal_name"         gorm:"column:legal_name"`
	Verified          *bool   `db:"verified"           gorm:"column:verified"`
	LoadID            *string `db:"load_id"            gorm:"column:load_id"`
	Origin            *string `db:"origin"             gorm:"column:origin"`
	Destination       *string `db:"destination"        gorm:"column:destination"`
	PickupDatetime    *string `db:"pickup_datetime"    gorm:"column:pickup_datetime"`
	DeliveryDatetime  *string `db:"delivery_datetime"  gorm:"column:delivery_datetime"`
	LoadboardRate     *int    `db:"loadboard_rate"     gorm:"column:loadboard_rate"`
	AgreedPrice       *int    `db:"agreed_price"       gorm:"column:agreed_price"`
	NegotiationRounds *int    `db:"negotiation_rounds" gorm:"column:negotiation_rounds"`
	Outcome           *string `db:"outcome"            gorm:"column:outcome"`
	Sentiment         *string `db:"sentiment"          gorm:"column:sentiment"`
}

func (CallEventEntity) TableName() string {
	return "call_events"
}

func toCallEventEntity(m *model.CallEvent) *CallEventEntity {
	if m == nil {
		return nil
	}
	return &CallEventEntity{
		ID:                m.ID,
		TS:                m.TS,
		MCNumber:          m.MCNumber,
		LegalName:         m.LegalName,
		Verified:          m.Verified,
		LoadID:            m.LoadID,
		Origin:            m.Origin,
		Destination:       m.Destination,
		PickupDatetime:    m.PickupDatetime,
		DeliveryDatetime:  m.DeliveryDatetime,
		LoadboardRate:     m.LoadboardRate,
		AgreedPrice:       m.AgreedPrice,
		NegotiationRounds: m.NegotiationRounds,
		Outcome:           m.Outcome,
		Sentiment:         m.Sentiment,
	}
}

func toCallEventModel(e *CallEventEntity) *model.CallEvent {
	if e == nil {
		return nil
	}
	return &model.CallEvent{
		ID:                e.ID,
		TS:                e.TS,
		MCNumber:          e.MCNumber,
		LegalName:         e.LegalName,
		Verified:          e.Verified,
		LoadID:            e.LoadID,
		Origin:            e.Origin,
		Destination:       e.Destination,
		PickupDatetime:    e.PickupDatetime,
		DeliveryDatetime:  e.DeliveryDatetime,
		LoadboardRate:     e.LoadboardRate,
		AgreedPrice:       e.AgreedPrice,
		NegotiationRounds: e.NegotiationRounds,
		Outcome:           e.Outcome,
		Sentiment:         e.Sentiment,
	}
}

func toCallEventModels(entities []*CallEventEntity) []*model.CallEvent {
	models := make([]*model.CallEvent, len(entities))
	for i, e := range entities {
		models[i] = toCallEventModel(e)
	}
	return models
}
