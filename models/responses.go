package models

// ErrorResponse is the body of every non-2xx response of the Remote Authority.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is returned by calls that have no record to report.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ArchivesResponse lists the archives of a list, newest first.
type ArchivesResponse struct {
	Archives []Archive `json:"archives"`
}

// AddItemRequest is the body of an item creation call.
type AddItemRequest struct {
	Item ItemFields `json:"item"`
}

// VersionResponse describes the running backend build.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}

// BulkScope selects which items a bulk delete removes.
type BulkScope string

const (
	BulkScopeBought BulkScope = "bought"
	BulkScopeAll    BulkScope = "all"
)
