package models

import (
	"bytes"
	"encoding/json"
)

// CriticalServices is an insertion-ordered mapping of service name to
// critical entry. It marshals as a JSON object whose keys appear in
// allow-list order, matching what the dashboard renders top to bottom.
type CriticalServices []CriticalServiceEntry

type criticalEntryBody struct {
	Status          UnitStatus `json:"status"`
	SubState        string     `json:"sub_state,omitempty"`
	Importance      string     `json:"importance"`
	Troubleshooting string     `json:"troubleshooting"`
}

func (c CriticalServices) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, entry := range c {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(entry.Name)
		if err != nil {
			return nil, err
		}

		body, err := json.Marshal(criticalEntryBody{
			Status:          entry.Status,
			SubState:        entry.SubState,
			Importance:      entry.Importance,
			Troubleshooting: entry.Troubleshooting,
		})
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(body)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
