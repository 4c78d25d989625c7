package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, err := jsonbBytes(value)
	if err != nil {
		return err
	}

	result := map[string]interface{}{}
	err = json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// BoolMap is a sparse slot-keyed availability map stored as JSONB.
// An absent key means unavailable.
type BoolMap map[string]bool

func (m BoolMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *BoolMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	bytes, err := jsonbBytes(value)
	if err != nil {
		return err
	}

	result := map[string]bool{}
	err = json.Unmarshal(bytes, &result)
	*m = BoolMap(result)
	return err
}

// FloatMap is a sparse slot-keyed preference map stored as JSONB.
// An absent key means neutral preference, applied at read time.
type FloatMap map[string]float64

func (m FloatMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *FloatMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	bytes, err := jsonbBytes(value)
	if err != nil {
		return err
	}

	result := map[string]float64{}
	err = json.Unmarshal(bytes, &result)
	*m = FloatMap(result)
	return err
}

// StringList is a JSONB-backed string slice.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	bytes, err := jsonbBytes(value)
	if err != nil {
		return err
	}

	result := []string{}
	err = json.Unmarshal(bytes, &result)
	*l = StringList(result)
	return err
}

func jsonbBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}
}
