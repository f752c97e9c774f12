package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Saeed76a/eigen-layer-monorepo/internal/metric"
	"github.com/Saeed76a/eigen-layer-monorepo/pkg/avs"
)

// StatusReader is the chain-facing surface the handler needs.
type StatusReader interface {
	Status(ctx context.Context) (*avs.Status, error)
}

type Handler struct {
	status StatusReader
}

func NewHandler(status StatusReader) *Handler {
	return &Handler{status: status}
}

type statusResponse struct {
	Operator        string `json:"operator"`
	ChainID         uint64 `json:"chain_id"`
	BlockNumber     uint64 `json:"block_number"`
	BalanceWei      string `json:"balance_wei"`
	Registered      bool   `json:"registered"`
	SubstrateRPCURL string `json:"substrate_rpc_url"`
}

// GetStatus serves the operator's current on-chain standing.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	defer func() { metric.RecordCommandDuration("api_status", time.Since(started)) }()
	metric.RecordCommand("api_status")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	status, err := h.status.Status(ctx)
	if err != nil {
		metric.RecordError("api_status")
		log.Error().Err(err).Msg("status query failed")
		http.Error(w, "status query failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(statusResponse{
		Operator:        status.Operator.Hex(),
		ChainID:         status.ChainID,
		BlockNumber:     status.BlockNumber,
		BalanceWei:      status.Balance.String(),
		Registered:      status.Registered,
		SubstrateRPCURL: status.SubstrateRPCURL,
	})
}

// GetHealth is a liveness probe.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
