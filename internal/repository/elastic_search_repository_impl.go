package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/domain"
	pkgdto "github.com/alimikegami/point-of-sales/gaming-store-service/pkg/dto"
	"github.com/elastic/go-elasticsearch/v9"
	"github.com/rs/zerolog/log"
)

// The catalog is small enough to come back in one page.
const searchResultSize = 1000

var productIndexMapping = map[string]interface{}{
	"mappings": map[string]interface{}{
		"properties": map[string]interface{}{
			"id":          map[string]interface{}{"type": "keyword"},
			"name":        map[string]interface{}{"type": "keyword"},
			"category":    map[string]interface{}{"type": "keyword"},
			"description": map[string]interface{}{"type": "keyword"},
			"brand":       map[string]interface{}{"type": "keyword"},
			"console":     map[string]interface{}{"type": "keyword"},
			"condition":   map[string]interface{}{"type": "keyword"},
			"image_url":   map[string]interface{}{"type": "keyword", "index": false},
			"price":       map[string]interface{}{"type": "double"},
			"stock":       map[string]interface{}{"type": "integer"},
			"created_at":  map[string]interface{}{"type": "date"},
		},
	},
}

type ElasticSearchProductRepositoryImpl struct {
	client *elasticsearch.Client
	index  string
}

func CreateNewElasticSearchRepository(client *elasticsearch.Client, index string) ProductSearchRepository {
	return &ElasticSearchProductRepositoryImpl{client: client, index: index}
}

func (r *ElasticSearchProductRepositoryImpl) EnsureIndex(ctx context.Context) error {
	res, err := r.client.Indices.Exists([]string{r.index}, r.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "EnsureIndex").Msg("")
		return err
	}
	res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	payload, err := json.Marshal(productIndexMapping)
	if err != nil {
		return err
	}

	res, err = r.client.Indices.Create(
		r.index,
		r.client.Indices.Create.WithContext(ctx),
		r.client.Indices.Create.WithBody(bytes.NewReader(payload)),
	)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "EnsureIndex").Msg("")
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("creating index %s: %s", r.index, res.String())
	}

	return nil
}

func (r *ElasticSearchProductRepositoryImpl) IndexProducts(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	var body bytes.Buffer
	encoder := json.NewEncoder(&body)
	for _, product := range products {
		action := map[string]interface{}{
			"index": map[string]interface{}{"_index": r.index, "_id": product.ID},
		}
		if err := encoder.Encode(action); err != nil {
			return err
		}
		if err := encoder.Encode(product); err != nil {
			return err
		}
	}

	res, err := r.client.Bulk(
		&body,
		r.client.Bulk.WithContext(ctx),
		r.client.Bulk.WithRefresh("true"),
	)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "IndexProducts").Msg("")
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk indexing products: %s", res.String())
	}

	var parsed pkgdto.ElasticsearchBulkResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return err
	}

	if parsed.Errors {
		return fmt.Errorf("bulk indexing products: some documents were rejected")
	}

	return nil
}

func (r *ElasticSearchProductRepositoryImpl) SearchProducts(ctx context.Context, filter pkgdto.ProductFilter) ([]domain.Product, error) {
	payload, err := json.Marshal(buildSearchQuery(filter))
	if err != nil {
		return nil, err
	}

	res, err := r.client.Search(
		r.client.Search.WithContext(ctx),
		r.client.Search.WithIndex(r.index),
		r.client.Search.WithBody(bytes.NewReader(payload)),
	)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SearchProducts").Msg("")
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("searching products: %s", res.String())
	}

	var parsed pkgdto.ElasticsearchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	data := make([]domain.Product, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		data = append(data, hit.Source)
	}

	return data, nil
}

func buildSearchQuery(filter pkgdto.ProductFilter) map[string]interface{} {
	boolQuery := map[string]interface{}{}

	if category := filter.CategoryFilter(); category != "" {
		boolQuery["filter"] = []interface{}{
			map[string]interface{}{"term": map[string]interface{}{"category": category}},
		}
	}

	if filter.Search != "" {
		pattern := "*" + escapeWildcard(filter.Search) + "*"
		should := make([]interface{}, 0, 3)
		for _, field := range []string{"name", "description", "brand"} {
			should = append(should, map[string]interface{}{
				"wildcard": map[string]interface{}{
					field: map[string]interface{}{"value": pattern, "case_insensitive": true},
				},
			})
		}
		boolQuery["should"] = should
		boolQuery["minimum_should_match"] = 1
	}

	return map[string]interface{}{
		"size":  searchResultSize,
		"query": map[string]interface{}{"bool": boolQuery},
		"sort": []interface{}{
			map[string]interface{}{"created_at": "desc"},
			map[string]interface{}{"id": "asc"},
		},
	}
}

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)

func escapeWildcard(s string) string {
	return wildcardEscaper.Replace(s)
}
