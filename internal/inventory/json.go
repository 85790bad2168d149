package inventory

import "encoding/json"

// snapshotJSON is the wire form of Snapshot.
type snapshotJSON struct {
	Total           float64   `json:"total"`
	Scope1Total     float64   `json:"scope1_total"`
	Scope2Total     float64   `json:"scope2_total"`
	Scope3Total     float64   `json:"scope3_total"`
	Scope1Breakdown Breakdown `json:"scope1_breakdown"`
	Scope2Breakdown Breakdown `json:"scope2_breakdown"`
	Scope3Breakdown Breakdown `json:"scope3_breakdown"`
}

// MarshalJSON implements json.Marshaler.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(snapshotJSON(s))
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var aux snapshotJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*s = Snapshot(aux)
	return nil
}
