package models

// UploadedMessage is the value sent back for every accepted upload.
const UploadedMessage = "Uploaded"

// UploadResponse acknowledges an accepted upload.
type UploadResponse struct {
	Success string `json:"success"`
}

// LegacyUploadResponse keeps the misspelled key of the first API version
// for clients that still parse it.
type LegacyUploadResponse struct {
	Sucess string `json:"sucess"`
}

// ErrorResponse carries a human-readable reason for a rejected upload.
type ErrorResponse struct {
	Message string `json:"message"`
}
