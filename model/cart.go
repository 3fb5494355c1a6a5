package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexInt decodes a JSON number or a numeric string. The cart is built
// client-side and form serialization tends to stringify the numbers.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*f = FlexInt(v)
		return nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("not a numeric value: %q", v)
		}
		*f = FlexInt(n)
		return nil
	default:
		return fmt.Errorf("unsupported value %v", raw)
	}
}

func (f FlexInt) Int64() int64 {
	return int64(f)
}

// CartItem is one entry of the client-submitted cart payload.
type CartItem struct {
	ProductID    string  `json:"product_id" validate:"required"`
	ProductPrice FlexInt `json:"product_price" validate:"gte=0"`
	Jumlah       FlexInt `json:"jumlah" validate:"required,gt=0"`
}

// CheckoutRequest carries the parsed cart plus the free-text note.
type CheckoutRequest struct {
	Items   []CartItem `json:"items" validate:"required,dive"`
	Catatan string     `json:"catatan"`
}
