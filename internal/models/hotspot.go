package models

// Hotspot - точка концентрации ДТП на карте
type Hotspot struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Count     int      `json:"count"`
	Severity  Severity `json:"severity"`
}
