package model

// Documented call outcomes. Storage accepts free text; these constants exist
// for clients and tests, not for enforcement.
const (
	OutcomeIneligible    = "ineligible"
	OutcomeNotInterested = "not_interested"
	OutcomePriceRejected = "price_rejected"
	OutcomeAgreed        = "agreed"
)

const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// CallEvent is one logged sales-call outcome, append-only. ID is assigned by
// storage at insert time. LoadID may dangle; referential integrity against
// loads is intentionally not enforced.
type CallEvent struct {
	ID                int64   `json:"id"                 db:"id"                 gorm:"column:id;primaryKey;autoIncrement"`
	TS                string  `json:"ts"                 db:"ts"                 gorm:"column:ts;not null"`
	MCNumber          *string `json:"mc_number"          db:"mc_number"          gorm:"column:mc_number"`
	LegalName         *string `json:"legal_name"         db:"legal_name"         gorm:"column:legal_name"`
	Verified          *bool   `json:"verified"           db:"verified"           gorm:"column:verified"`
	LoadID            *string `json:"load_id"            db:"load_id"            gorm:"column:load_id"`
	Origin            *string `json:"origin"             db:"origin"             gorm:"column:origin"`
	Destination       *string `json:"destination"        db:"destination"        gorm:"column:destination"`
	PickupDatetime    *string `json:"pickup_datetime"    db:"pickup_datetime"    gorm:"column:pickup_datetime"`
	DeliveryDatetime  *string `json:"delivery_datetime"  db:"delivery_datetime"  gorm:"column:delivery_datetime"`
	LoadboardRate     *int    `json:"loadboard_rate"     db:"loadboard_rate"     gorm:"column:loadboard_rate"`
	AgreedPrice       *int    `json:"agreed_price"       db:"agreed_price"       gorm:"column:agreed_price"`
	NegotiationRounds *int    `json:"negotiation_rounds" db:"negotiation_rounds" gorm:"column:negotiation_rounds"`
	Outcome           *string `json:"outcome"            db:"outcome"            gorm:"column:outcome"`
	Sentiment         *string `json:"sentiment"          db:"sentiment"          gorm:"column:sentiment"`
}

func (CallEvent) TableName() string { return "call_events" }
