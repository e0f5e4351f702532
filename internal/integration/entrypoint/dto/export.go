package dto

// ExportToSheetsRequest is the body of POST /exports/sheets.
type ExportToSheetsRequest struct {
	Kind      string `json:"kind" binding:"required"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ExportToSheetsResponse describes the spreadsheet range that was written.
type ExportToSheetsResponse struct {
	Tab          string `json:"tab"`
	UpdatedRange string `json:"updated_range"`
	Rows         int    `json:"rows"`
}
