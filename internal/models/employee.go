package models

// Employee is one worker in the vacation-allocation pool. Rate and
// admission date are fixed for the lifetime of a single optimization run.
type Employee struct {
	ID             string  `json:"id" validate:"required"`
	Name           string  `json:"name" validate:"required"`
	AdmissionDate  string  `json:"admission_date" validate:"required"`
	HourlyRate     float64 `json:"hourly_rate" validate:"gte=0"`
	ClientID       string  `json:"client_id" validate:"required"`
	Locality       string  `json:"locality"`
}
