package core

import (
	"strings"

	"github.com/go-zoox/bitpacket/protocol"
	"github.com/go-zoox/bitpacket/protocol/evaluate"
)

// Process decodes and evaluates one transmission.
// Failures are reported through the response status, never as an error.
func Process(request *evaluate.Request) *evaluate.Response {
	response := &evaluate.Response{
		RequestID: request.RequestID,
		Status:    evaluate.STATUS_OK,
	}

	if strings.TrimSpace(request.Hex) == "" {
		response.Status = evaluate.STATUS_INVALID_REQUEST
		response.Message = "empty transmission"
		return response
	}

	packet, err := protocol.DecodeHex(request.Hex)
	if err != nil {
		response.Status = evaluate.STATUS_DECODE_FAILED
		response.Message = err.Error()
		return response
	}
	response.VersionSum = protocol.SumOfVersions(packet)

	value, err := protocol.Evaluate(packet)
	if err != nil {
		response.Status = evaluate.STATUS_EVALUATE_FAILED
		response.Message = err.Error()
		return response
	}
	response.Value = value

	return response
}
