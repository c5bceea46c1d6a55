package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/221FA04614/AuraShop-main/model"
)

const indexName = "products"

// Index wraps the Elasticsearch client for catalog search. Products are
// indexed on create and at seed time; search runs a multi_match over name
// and description.
type Index struct {
	es *elasticsearch.Client
}

func New(url string) (*Index, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{url}})
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}
	return &Index{es: es}, nil
}

func (i *Index) IndexProduct(ctx context.Context, p model.Product) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return err
	}
	res, err := i.es.Index(
		indexName,
		bytes.NewReader(doc),
		i.es.Index.WithDocumentID(strconv.FormatUint(uint64(p.ID), 10)),
		i.es.Index.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index product %d: %s", p.ID, res.Status())
	}
	return nil
}

func (i *Index) Search(ctx context.Context, query string) ([]model.Product, error) {
	body, err := json.Marshal(map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name", "description"},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	res, err := i.es.Search(
		i.es.Search.WithContext(ctx),
		i.es.Search.WithIndex(indexName),
		i.es.Search.WithBody(bytes.NewReader(body)),
		i.es.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search %q: %s", query, res.Status())
	}

	var result struct {
		Hits struct {
			Hits []struct {
				Source model.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	products := make([]model.Product, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		products = append(products, hit.Source)
	}
	return products, nil
}
