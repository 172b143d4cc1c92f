package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/stac-to-layers/generator/internal/generator"
	_ "github.com/stac-to-layers/generator/internal/handler" // register layer handlers
	"github.com/stac-to-layers/generator/internal/request"
	"github.com/stac-to-layers/generator/internal/result"
)

// LambdaEvent is the invocation payload (e.g. from API Gateway). Body
// holds the request document JSON, optionally base64-encoded.
type LambdaEvent struct {
	Body     string `json:"body"`
	IsBase64 bool   `json:"isBase64,omitempty"`
}

// LambdaResponse is returned to the client (API Gateway).
type LambdaResponse struct {
	StatusCode int              `json:"statusCode"`
	Success    bool             `json:"success"`
	Errors     []result.Error   `json:"errors,omitempty"`
	Warnings   []result.Warning `json:"warnings,omitempty"`
	Config     json.RawMessage  `json:"config,omitempty"`
}

// APIGatewayResponse is the shape expected by API Gateway proxy
// integration (body = JSON string).
type APIGatewayResponse struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body"`
}

func handler(ctx context.Context, event LambdaEvent) (APIGatewayResponse, error) {
	out := LambdaResponse{StatusCode: 200}

	body := event.Body
	if event.IsBase64 {
		dec, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			out.StatusCode = 400
			out.Errors = []result.Error{{Type: result.TypeInvalidRequest, Severity: "error", Message: "invalid base64 body: " + err.Error()}}
			return wrap(out), nil
		}
		body = string(dec)
	}

	var doc request.Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		out.StatusCode = 400
		out.Errors = []result.Error{{Type: result.TypeInvalidRequest, Severity: "error", Message: "invalid request JSON: " + err.Error()}}
		return wrap(out), nil
	}

	g := generator.New(generator.DefaultOptions())
	res := g.Generate(ctx, &doc)

	out.Success = res.Success
	out.Errors = res.Errors
	out.Warnings = res.Warnings
	if res.Success {
		var buf bytes.Buffer
		if err := res.Config.Encode(&buf); err != nil {
			out.StatusCode = 500
			out.Success = false
			out.Errors = []result.Error{{Type: "internal_error", Severity: "error", Message: "encoding config: " + err.Error()}}
			return wrap(out), nil
		}
		out.Config = buf.Bytes()
	} else {
		out.StatusCode = 422
	}
	return wrap(out), nil
}

func wrap(out LambdaResponse) APIGatewayResponse {
	bodyBytes, _ := json.Marshal(out)
	return APIGatewayResponse{
		StatusCode: out.StatusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(bodyBytes),
	}
}

func main() {
	lambda.Start(handler)
}
