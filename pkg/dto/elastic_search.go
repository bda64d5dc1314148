package dto

import "github.com/alimikegami/point-of-sales/gaming-store-service/internal/domain"

type ElasticsearchResponse struct {
	Took     int      `json:"took"`
	TimedOut bool     `json:"timed_out"`
	Hits     HitsInfo `json:"hits"`
}

type HitsInfo struct {
	Total TotalHitsInfo `json:"total"`
	Hits  []Hit         `json:"hits"`
}

type TotalHitsInfo struct {
	Value    int    `json:"value"`
	Relation string `json:"relation"`
}

type Hit struct {
	Index  string         `json:"_index"`
	ID     string         `json:"_id"`
	Source domain.Product `json:"_source"`
}

type ElasticsearchBulkResponse struct {
	Errors bool `json:"errors"`
}
