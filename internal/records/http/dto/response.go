package dto

import (
	"time"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
	recordsDomain "github.com/allisson/sealbox/internal/records/domain"
)

// RecordResponse represents a stored record in API responses. The envelope is
// returned verbatim; the server holds nothing that can open it.
type RecordResponse struct {
	ID         string                     `json:"id"`
	Envelope   cryptoDomain.EncodedRecord `json:"envelope"`
	KeyVersion uint                       `json:"key_version"`
	CreatedAt  time.Time                  `json:"created_at"`
	UpdatedAt  time.Time                  `json:"updated_at"`
}

// ListRecordsResponse represents a paginated list of records in API responses.
type ListRecordsResponse struct {
	Data []RecordResponse `json:"data"`
}

// MapRecordToResponse converts a domain record to an API response.
func MapRecordToResponse(record *recordsDomain.Record) RecordResponse {
	return RecordResponse{
		ID:         record.ID.String(),
		Envelope:   record.Envelope,
		KeyVersion: record.KeyVersion(),
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
}

// MapRecordsToListResponse converts a slice of domain records to a list response.
func MapRecordsToListResponse(records []*recordsDomain.Record) ListRecordsResponse {
	data := make([]RecordResponse, 0, len(records))
	for _, record := range records {
		data = append(data, MapRecordToResponse(record))
	}

	return ListRecordsResponse{
		Data: data,
	}
}
