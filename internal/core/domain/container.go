package domain

import "time"

// ContainerStatus is the fill state of a container.
type ContainerStatus string

const (
	ContainerAvailable ContainerStatus = "Available"
	ContainerFull      ContainerStatus = "Full"
)

// TransportMedium is how a container travels.
type TransportMedium string

const (
	TransportSea  TransportMedium = "Sea"
	TransportAir  TransportMedium = "Air"
	TransportLand TransportMedium = "Land"
)

// Valid reports whether m is a known transport medium.
func (m TransportMedium) Valid() bool {
	return m == TransportSea || m == TransportAir || m == TransportLand
}

// Container groups bookings travelling together. ContainerID is a minted
// identifier prefixed "CON".
type Container struct {
	ID          string          `json:"id"`
	ContainerID string          `json:"container_id"`
	Model       string          `json:"model"`
	Status      ContainerStatus `json:"status"`
	Medium      TransportMedium `json:"medium_of_transport"`
	Location    string          `json:"location,omitempty"`
	Ports       []string        `json:"ports"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
