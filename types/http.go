package types

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type BulkResponse struct {
	Stored int `json:"stored"`
}

type KeyCountResponse struct {
	KeyCount int64 `json:"key_count"`
}

type PatternCountResponse struct {
	Pattern string `json:"pattern"`
	Count   int64  `json:"count"`
}
