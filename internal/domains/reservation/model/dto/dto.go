package dto

import "mime/multipart"

type SummaryLine struct {
	CheckIn string `json:"check_in"`
	Records int    `json:"records"`
	Rooms   int    `json:"rooms"`
}

type SummaryResponse struct {
	Total int           `json:"total"`
	Dates []SummaryLine `json:"dates"`
}

// ImportRequest is an uploaded reservation file of at most 10 MB.
type ImportRequest struct {
	File *multipart.FileHeader `validate:"required,extensions=csv xlsx,maxfilesize=10"`
}

type PurgeRequest struct {
	CheckIn string `validate:"required,datetime=2006-01-02"`
}

type PurgeResponse struct {
	CheckIn  string `json:"check_in"`
	Before   int    `json:"before"`
	Removed  int    `json:"removed"`
	Snapshot string `json:"snapshot,omitempty"`
}

type ImportResponse struct {
	Before   int    `json:"before"`
	Added    int    `json:"added"`
	Snapshot string `json:"snapshot,omitempty"`
}
