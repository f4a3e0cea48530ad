package dto

import "encoding/json"

// Optional distinguishes the three states a partial-update field can be
// in: absent from the payload (leave unchanged), explicit null (clear),
// or an explicit value (replace). UnmarshalJSON only runs for fields
// present in the payload, so Set stays false for omitted ones.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
