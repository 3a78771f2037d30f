package services

import (
	"context"
	"encoding/json"
)

type VerificationGateway interface {
	VerifyMC(ctx context.Context, mcNumber string) ([]byte, error)
}

type VerifyService struct {
	gateway VerificationGateway
}

func NewVerifyService(gateway VerificationGateway) *VerifyService {
	return &VerifyService{
		gateway: gateway,
	}
}

// Verify relays the registry's reply. A parseable body passes through
// unchanged; anything else (the registry often answers XML) is wrapped in a
// {"raw": ...} envelope instead of failing.
func (s *VerifyService) Verify(ctx context.Context, mcNumber string) (json.RawMessage, error) {
	body, err := s.gateway.VerifyMC(ctx, mcNumber)
	if err != nil {
		return nil, err
	}

	if json.Valid(body) {
		return json.RawMessage(body), nil
	}

	envelope, err := json.Marshal(map[string]string{"raw": string(body)})
	if err != nil {
		return nil, err
	}
	return json.RawMessage(envelope), nil
}
