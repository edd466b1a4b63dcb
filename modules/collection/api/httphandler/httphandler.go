package httphandler

import (
	"github.com/dega-network/nft-engine/modules/collection"
)

type HttpHandler struct {
	processor *collection.Processor
}

func New(processor *collection.Processor) *HttpHandler {
	return &HttpHandler{
		processor: processor,
	}
}

type HttpResponse[T any] struct {
	Error  *string `json:"error"`
	Result *T      `json:"result,omitempty"`
}
