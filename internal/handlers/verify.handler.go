package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"unicode/utf8"

	gateway "github.com/brokerdesk/carrier-sales-api/internal/gateways"
	xhttp "github.com/brokerdesk/carrier-sales-api/pkg/http"
)

const (
	minMCNumberLen = 3
	maxMCNumberLen = 20
)

type VerifyService interface {
	Verify(ctx context.Context, mcNumber string) (json.RawMessage, error)
}

type VerifyHandler struct {
	svc VerifyService
}

func RegisterVerifyRoutes(r *xhttp.Router, h *VerifyHandler) {
	r.GET("/mc/verify", h.VerifyMC)
}

func NewVerifyHandler(verifyService VerifyService) *VerifyHandler {
	return &VerifyHandler{
		svc: verifyService,
	}
}

func (h *VerifyHandler) VerifyMC(ctx *xhttp.RequestCtx) {
	mcNumber := query(ctx, "mc_number")
	if n := utf8.RuneCountInString(mcNumber); n < minMCNumberLen || n > maxMCNumberLen {
		writeError(ctx, 422, "mc_number must be 3-20 characters")
		return
	}

	body, err := h.svc.Verify(ctx, mcNumber)
	if err != nil {
		if errors.Is(err, gateway.ErrUpstreamUnavailable) {
			writeError(ctx, 502, "External API error: "+err.Error())
			return
		}
		writeError(ctx, 500, err.Error())
		return
	}
	writeRawJSON(ctx, 200, body)
}
