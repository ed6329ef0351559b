package application

import (
	"hexquantity/internal/core/domain"
	"hexquantity/pkg/hexquantity"
)

// mapBytesToAPIResult converts decoded bytes to the public API Result DTO.
func mapBytesToAPIResult(input string, out []byte) hexquantity.Result {
	values := make([]int, len(out))
	for i, b := range out {
		values[i] = int(b)
	}
	return hexquantity.Result{
		Input:  input,
		Bytes:  values,
		Length: len(out),
	}
}

// mapDomainToAPIStats converts domain counters to the public API Stats DTO.
func mapDomainToAPIStats(s domain.DecodeStats) hexquantity.Stats {
	return hexquantity.Stats{
		Total:            s.Total(),
		Decoded:          s.Decoded,
		InvalidCharacter: s.InvalidCharacter,
		Rejected:         s.Rejected,
		BytesProduced:    s.BytesProduced,
	}
}
