// pkg/api/results_v1.go
package api

// ApproximationV1 is the stable JSON schema for one benchmark row.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ApproximationV1 struct {
	Method     string  `json:"method"`
	Iterations int     `json:"iterations,omitempty"` // 0 for closed-form methods
	Value      float64 `json:"value"`
	AbsError   float64 `json:"abs_error"`
	Seconds    float64 `json:"seconds"`
}
