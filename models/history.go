package models

// ScanRecord is a single product scan kept in the history log.
// Field names match the persisted JSON written by earlier app versions.
type ScanRecord struct {
	ID          string `json:"id"`
	ProductName string `json:"productName"`
	// Date is an ISO-8601 timestamp of when the scan happened.
	Date       string `json:"date"`
	HasLactose bool   `json:"hasLactose"`
	ImageURI   string `json:"imageUri,omitempty"`
}
