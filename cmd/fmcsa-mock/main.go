// A mock FMCSA carrier registry for local development and e2e runs. Answers
// the docket-number lookup the real registry serves, including its habit of
// replying with XML when a docket is unknown.
package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CarrierRecord mirrors the shape of one FMCSA carrier content entry.
type CarrierRecord struct {
	LegalName        string `json:"legalName"`
	DBAName          string `json:"dbaName,omitempty"`
	DotNumber        int    `json:"dotNumber"`
	AllowedToOperate string `json:"allowedToOperate"`
	StatusCode       string `json:"statusCode"`
}

type CarrierResponse struct {
	Content []struct {
		Carrier CarrierRecord `json:"carrier"`
	} `json:"content"`
	RetrievalDate string `json:"retrievalDate"`
}

// MockRegistry simulates the FMCSA docket-number lookup service.
type MockRegistry struct {
	hitRate    float64
	minDelay   time.Duration
	maxDelay   time.Duration
	instanceID string
	rng        *rand.Rand
}

func NewMockRegistry(hitRate float64, minDelay, maxDelay time.Duration) *MockRegistry {
	return &MockRegistry{
		hitRate:    hitRate,
		minDelay:   minDelay,
		maxDelay:   maxDelay,
		instanceID: "MOCK_FMCSA_" + uuid.New().String()[:8],
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (m *MockRegistry) randomDelay() time.Duration {
	delta := m.maxDelay - m.minDelay
	return m.minDelay + time.Duration(m.rng.Int63n(int64(delta)))
}

func (m *MockRegistry) shouldHit() bool {
	return m.rng.Float64() < m.hitRate
}

var legalNames = []string{
	"WESTERN EXPRESS INC",
	"RIVERLINE CARRIERS LLC",
	"BLUE MESA FREIGHT",
	"PRAIRIE HAUL CO",
	"GULF COAST TRANSPORT",
	"CASCADE MOTOR LINES",
}

func (m *MockRegistry) lookup(docket string) *CarrierResponse {
	record := CarrierRecord{
		LegalName:        legalNames[m.rng.Intn(len(legalNames))],
		DotNumber:        1000000 + m.rng.Intn(3000000),
		AllowedToOperate: "Y",
		StatusCode:       "A",
	}

	resp := &CarrierResponse{RetrievalDate: time.Now().Format(time.RFC3339)}
	resp.Content = append(resp.Content, struct {
		Carrier CarrierRecord `json:"carrier"`
	}{Carrier: record})

	log.Info().
		Str("docket", docket).
		Str("legal_name", record.LegalName).
		Msg("Docket lookup served")

	return resp
}

type Handler struct {
	registry *MockRegistry
}

func NewHandler(registry *MockRegistry) *Handler {
	return &Handler{registry: registry}
}

// GetDocket handles the docket-number lookup the proxy forwards to.
func (h *Handler) GetDocket(c *gin.Context) {
	docket := c.Param("mc_number")
	if c.Query("webKey") == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "webKey is required"})
		return
	}

	time.Sleep(h.registry.randomDelay())

	if !h.registry.shouldHit() {
		// the real registry answers unknown dockets with an XML body
		log.Warn().Str("docket", docket).Msg("Docket not found, answering XML")
		c.Data(http.StatusOK, "application/xml",
			[]byte(`<?xml version="1.0"?><error>Record not found for docket `+docket+`</error>`))
		return
	}

	c.JSON(http.StatusOK, h.registry.lookup(docket))
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"instance_id": h.registry.instanceID,
		"timestamp":   time.Now(),
	})
}

func SetupRouter(handler *Handler) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request processed")
	})

	router.GET("/qc/services/carriers/docket-number/:mc_number", handler.GetDocket)
	router.GET("/health", handler.HealthCheck)

	return router
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	port := os.Getenv("PORT")
	if port == "" {
		port = "9090"
	}

	registry := NewMockRegistry(0.9, 50*time.Millisecond, 400*time.Millisecond)
	handler := NewHandler(registry)
	router := SetupRouter(handler)

	log.Info().
		Str("instance_id", registry.instanceID).
		Str("port", port).
		Msg("Mock FMCSA registry starting")

	if err := router.Run(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
