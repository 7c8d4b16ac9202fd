package dto

// ServiceInfo is returned from the root endpoint.
type ServiceInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
}
