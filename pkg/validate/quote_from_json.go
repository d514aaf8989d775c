package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/wb_tickets/internal/domain"
	"github.com/Gunvolt24/wb_tickets/internal/ports"
)

// DecodePurchaseRequest — строгий разбор запроса: неизвестные поля и хвост после объекта запрещены.
func DecodePurchaseRequest(raw []byte) (*domain.PurchaseRequest, error) {
	var req domain.PurchaseRequest
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	return &req, nil
}

// QuoteFromJSON — разбор и проверка запроса из JSON.
func QuoteFromJSON(ctx context.Context, validator ports.PurchaseValidator, raw []byte) (domain.Quote, error) {
	req, err := DecodePurchaseRequest(raw)
	if err != nil {
		return domain.Quote{}, err
	}
	return validator.Validate(ctx, req)
}
