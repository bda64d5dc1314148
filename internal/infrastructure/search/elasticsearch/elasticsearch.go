package elasticsearch

import (
	"fmt"

	"github.com/alimikegami/point-of-sales/gaming-store-service/config"
	"github.com/elastic/go-elasticsearch/v9"
)

func CreateElasticsearchClient(config *config.Config) (*elasticsearch.Client, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{
			config.ElasticsearchConfig.DBHost,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating elasticsearch client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("connecting to elasticsearch: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch info: %s", res.String())
	}

	return client, nil
}
