package postgres

import (
	"database/sql"
	"errors"

	sonic "github.com/bytedance/sonic"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// metricsToJSON renders a metrics map for a JSONB column. A nil map becomes
// the empty object so the column stays NOT NULL.
func metricsToJSON(in map[string]float64) ([]byte, error) {
	if in == nil {
		in = map[string]float64{}
	}
	return sonic.Marshal(in)
}

func metricsFromJSON(raw []byte) (map[string]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var out map[string]float64
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
