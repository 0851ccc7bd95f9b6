package domain

// Attachment is a stored file reference. Rows are created pending
// (RMAID nil) when an upload URL is issued and linked to their RMA at
// submission time. Pending rows older than the grace window are purged
// by the cleanup job.
type Attachment struct {
	ID          int32  `json:"id"`
	RMAID       *int32 `json:"rma_id,omitempty"`
	CustomerID  int32  `json:"customer_id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	StorageKey  string `json:"storage_key"`
	CreatedOn   string `json:"created_on"`
}
