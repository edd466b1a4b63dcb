package httphandler

import (
	"github.com/dega-network/nft-engine/modules/minter"
)

type HttpHandler struct {
	processor *minter.Processor
}

func New(processor *minter.Processor) *HttpHandler {
	return &HttpHandler{
		processor: processor,
	}
}

type HttpResponse[T any] struct {
	Error  *string `json:"error"`
	Result *T      `json:"result,omitempty"`
}
