package handlers

import (
	"net/http"

	"github.com/cataleon/cataleon/app/services"
	"github.com/unrolled/render"
)

type ExchangeHandler struct {
	exchange services.ExchangeRateClient
	render   *render.Render
}

func NewExchangeHandler(fx services.ExchangeRateClient, r *render.Render) *ExchangeHandler {
	return &ExchangeHandler{exchange: fx, render: r}
}

func (h *ExchangeHandler) GetRate(w http.ResponseWriter, req *http.Request) {
	respondOK(h.render, w, map[string]interface{}{
		"base":   "USD",
		"target": "INR",
		"rate":   h.exchange.USDToINR(req.Context()),
	})
}
