package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type graphqlError struct {
	Message string `json:"message"`
}

func graphqlQuery(ctx context.Context, client *resty.Client, name, query string, output any) error {
	ctx, span := tracer.Start(ctx, fmt.Sprintf("graphql:%s", name))
	defer span.End()

	span.SetAttributes(attribute.String("name", name))

	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to serialize json query")
		return err
	}

	res, err := client.R().
		SetContext(ctx).
		SetHeader("content-type", "application/json").
		SetBody(body).
		Post(fmt.Sprintf("/api/%s/graphql.json", apiVersion))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return err
	}
	if res.IsError() {
		err := fmt.Errorf("storefront api: %s", res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return err
	}

	var result struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphqlError  `json:"errors"`
	}
	err = json.Unmarshal(res.Body(), &result)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse json response")
		return err
	}

	// the api reports query failures with a 200 status and an errors
	// array, they are just as fatal as a failed request
	if len(result.Errors) > 0 {
		messages := make([]string, len(result.Errors))
		for i, e := range result.Errors {
			messages[i] = e.Message
		}
		err := fmt.Errorf("storefront api errors: %s", strings.Join(messages, "; "))
		span.RecordError(err)
		span.SetStatus(codes.Error, "api returned errors")
		return err
	}

	err = json.Unmarshal(result.Data, output)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse json response")
		return err
	}

	return nil
}
